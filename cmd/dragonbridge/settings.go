package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fjccv/dragonbridge/internal/settings"
	"github.com/fjccv/dragonbridge/internal/settingsui"
)

func newSettingsCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Edit the bridge settings interactively",
		Long: `Opens the settings editor. A running daemon picks the new values up the
next time monitoring is started (toggle off and on again).`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if path == "" {
				p, err := settings.DefaultPath()
				if err != nil {
					return fmt.Errorf("settings path: %w", err)
				}
				path = p
			}
			return settingsui.Run(settings.NewStore(path))
		},
	}

	cmd.Flags().StringVar(&path, "settings", "", "path to the settings file (default: per-user config dir)")
	return cmd
}
