// dragonbridge: bridges dictation software output into the foreground
// document via clipboard monitoring and voice-command processing.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "dragonbridge",
		Short: "Dictation-to-editor clipboard bridge",
		Long: `dragonbridge watches the system clipboard for text produced by dictation
software, translates known voice commands ("undo that", "new line", ...) into
editor actions or punctuation, and types everything else into the foreground
document at the cursor.

Run "dragonbridge run" to start the daemon. Use "dragonbridge toggle" to
pause/resume monitoring and "dragonbridge settings" to edit the settings file.

Config file search order (first found wins):
  /etc/dragonbridge/dragonbridge.toml
  $HOME/.config/dragonbridge/dragonbridge.toml
  path supplied via --config

All flags can be set via DRAGONBRIDGE_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newRunCmd(),
		newToggleCmd(),
		newStatusCmd(),
		newStopCmd(),
		newClassifyCmd(),
		newSettingsCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("dragonbridge %s\n", Version)
		},
	}
}
