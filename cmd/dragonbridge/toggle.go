package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fjccv/dragonbridge/internal/message"
)

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Pause or resume clipboard monitoring in the running daemon",
		Long: `Flips monitoring on or off. Resuming re-reads the settings file, so a
changed poll interval takes effect on the next toggle-on.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			resp, err := request(&message.Message{Type: message.TypeToggle})
			if err != nil {
				return err
			}
			if resp.Monitor != nil && resp.Monitor.Running {
				fmt.Println("monitoring started")
			} else {
				fmt.Println("monitoring stopped")
			}
			return nil
		},
	}
}

func newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Shut down the running daemon",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := request(&message.Message{Type: message.TypeShutdown}); err != nil {
				return err
			}
			fmt.Println("daemon stopping")
			return nil
		},
	}
}
