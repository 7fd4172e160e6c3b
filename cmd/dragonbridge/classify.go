package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fjccv/dragonbridge/internal/command"
)

func newClassifyCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "classify [phrase]",
		Short: "Classify a dictated phrase against the voice-command tables",
		Long: `Shows how the bridge would treat a phrase: as an editor action, a literal
substitution, or verbatim insertion. Reads stdin when no phrase is given.
Useful for checking what a dictated phrase will do without a running daemon.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if list {
				printTables()
				return nil
			}

			var input string
			if len(args) == 1 {
				input = args[0]
			} else {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				input = strings.TrimSuffix(string(data), "\n")
			}

			fmt.Println(formatClassification(command.Classify(input)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "list all known voice-command phrases")
	return cmd
}

func formatClassification(res command.Result) string {
	switch res.Kind {
	case command.KindAction:
		return fmt.Sprintf("action\t%s", res.Action)
	case command.KindText:
		return fmt.Sprintf("text\t%q", res.Text)
	default:
		return fmt.Sprintf("insert\t%q", res.Text)
	}
}

func printTables() {
	w := tabwriter.NewWriter(os.Stdout, 1, 0, 2, ' ', 0)

	fmt.Fprintf(w, "PHRASE\tKIND\tRESULT\n")
	fmt.Fprintf(w, "------\t----\t------\n")

	actions := command.ActionTable()
	for _, phrase := range sortedKeys(actions) {
		fmt.Fprintf(w, "%s\taction\t%s\n", phrase, actions[phrase])
	}

	text := command.TextTable()
	for _, phrase := range sortedKeys(text) {
		fmt.Fprintf(w, "%s\ttext\t%q\n", phrase, text[phrase])
	}
	_ = w.Flush()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
