package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/fjccv/dragonbridge/internal/message"
	"github.com/fjccv/dragonbridge/internal/monitor"
)

func newStatusCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the state of the running daemon",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			resp, err := request(&message.Message{Type: message.TypeStatus})
			if err != nil {
				return err
			}
			if jsonOut {
				enc, _ := json.MarshalIndent(resp, "", "  ")
				fmt.Println(string(enc))
				return nil
			}
			printStatus(resp)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "output raw JSON")
	return cmd
}

func printStatus(resp *message.Message) {
	st := resp.Monitor
	if st == nil {
		st = &monitor.Status{}
	}

	w := tabwriter.NewWriter(os.Stdout, 1, 0, 2, ' ', 0)
	state := "paused"
	if st.Running {
		state = "monitoring"
	}
	fmt.Fprintf(w, "State:\t%s\n", state)
	fmt.Fprintf(w, "Clipboard:\t%s\n", st.Backend)
	fmt.Fprintf(w, "Editor:\t%s\n", st.Editor)
	if st.Running {
		fmt.Fprintf(w, "Interval:\t%d ms\n", st.PollIntervalMS)
		fmt.Fprintf(w, "Started:\t%s (%s)\n", st.StartedAt.Format(time.RFC3339), fmtAge(st.StartedAt))
	}
	if resp.SettingsPath != "" {
		fmt.Fprintf(w, "Settings:\t%s\n", resp.SettingsPath)
	}
	fmt.Fprintf(w, "Changes seen:\t%d\n", st.ChangesSeen)
	fmt.Fprintf(w, "Inserted:\t%d\n", st.Inserted)
	fmt.Fprintf(w, "Actions:\t%d\n", st.Actions)
	fmt.Fprintf(w, "Errors:\t%d\n", st.Errors)
	if st.LastKind != "" {
		fmt.Fprintf(w, "Last dispatch:\t%s %q\n", st.LastKind, st.LastPhrase)
	}
	_ = w.Flush()
}

func fmtAge(t time.Time) string {
	age := time.Since(t).Round(time.Second)
	if age < time.Minute {
		return fmt.Sprintf("%ds ago", int(age.Seconds()))
	}
	if age < time.Hour {
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	}
	return t.Format("15:04:05")
}
