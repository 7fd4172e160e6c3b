package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fjccv/dragonbridge/internal/logging"
)

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and DRAGONBRIDGE_* env var prefix.
//
// Precedence (lowest → highest): defaults → config file → DRAGONBRIDGE_* env vars → flags
//
// Note this file configures the CLI, not the bridge: the runtime settings
// (poll interval etc.) live in their own settings.json, see internal/settings.
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("dragonbridge")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/dragonbridge/")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(fmt.Sprintf("%s/.config/dragonbridge", home))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("DRAGONBRIDGE")
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// addLoggingFlags adds the standard logging flags to a command.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().String("log-format", "auto", "log format: auto|text|json")
	cmd.Flags().String("log-level", "", "log level: debug|info|warn|error (default: info, debug when interactive)")
}

// addConfigFlag adds the --config flag to a command.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to config file (overrides auto-discovery)")
}

// setupLogging reads logging flags from viper and configures slog.
func setupLogging(v *viper.Viper) {
	logging.Resolve(v.GetString("log-format"), v.GetString("log-level"))
}
