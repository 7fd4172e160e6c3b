// Package settings loads and persists the user-editable bridge settings.
//
// The settings file is flat JSON at the per-user config location
// (~/.config/dragonbridge/settings.json on Linux). Missing or corrupt files
// fall back to defaults; unknown keys in an existing file are preserved
// across saves.
package settings

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Poll interval bounds enforced on load and save. The monitor never sees a
// value outside this range.
const (
	MinPollIntervalMS     = 100
	MaxPollIntervalMS     = 2000
	DefaultPollIntervalMS = 300
)

// Settings is the persisted bridge configuration.
type Settings struct {
	// PollIntervalMS is the clipboard polling interval in milliseconds.
	PollIntervalMS int `mapstructure:"poll_interval_ms"`

	// AutoSpace is reserved for future use: it is loaded, shown in the
	// settings UI, and persisted, but not consumed by the monitor.
	AutoSpace bool `mapstructure:"auto_space"`

	// ShowNotifications enables desktop notifications on start/stop.
	ShowNotifications bool `mapstructure:"show_notifications"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		PollIntervalMS:    DefaultPollIntervalMS,
		AutoSpace:         true,
		ShowNotifications: true,
	}
}

// PollInterval returns the polling interval as a duration.
func (s Settings) PollInterval() time.Duration {
	return time.Duration(s.PollIntervalMS) * time.Millisecond
}

// ClampInterval forces ms into the [MinPollIntervalMS, MaxPollIntervalMS] range.
func ClampInterval(ms int) int {
	if ms < MinPollIntervalMS {
		return MinPollIntervalMS
	}
	if ms > MaxPollIntervalMS {
		return MaxPollIntervalMS
	}
	return ms
}

// Store reads and writes the settings file.
type Store struct {
	path string
}

// NewStore returns a Store bound to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path this store reads and writes.
func (st *Store) Path() string { return st.path }

// DefaultPath returns the per-user settings file location, creating no
// directories. Honors os.UserConfigDir (XDG_CONFIG_HOME, %AppData%, ...).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "dragonbridge", "settings.json"), nil
}

// Load returns the persisted settings merged over defaults. A missing or
// unparseable file yields defaults; Load never fails.
func (st *Store) Load() Settings {
	def := Default()

	v := viper.New()
	v.SetConfigFile(st.path)
	v.SetConfigType("json")
	v.SetDefault("poll_interval_ms", def.PollIntervalMS)
	v.SetDefault("auto_space", def.AutoSpace)
	v.SetDefault("show_notifications", def.ShowNotifications)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			slog.Debug("settings file unreadable, using defaults", "path", st.path, "err", err)
		}
		return def
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		slog.Debug("settings file malformed, using defaults", "path", st.path, "err", err)
		return def
	}
	s.PollIntervalMS = ClampInterval(s.PollIntervalMS)
	return s
}

// Save persists s, preserving any unknown keys already present in the file.
// Persistence is best-effort: callers may log and ignore the error.
func (st *Store) Save(s Settings) error {
	v := viper.New()
	v.SetConfigFile(st.path)
	v.SetConfigType("json")

	// Carry forward keys we don't know about.
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		slog.Debug("discarding unreadable settings file on save", "path", st.path, "err", err)
	}

	v.Set("poll_interval_ms", ClampInterval(s.PollIntervalMS))
	v.Set("auto_space", s.AutoSpace)
	v.Set("show_notifications", s.ShowNotifications)

	if err := os.MkdirAll(filepath.Dir(st.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := v.WriteConfigAs(st.path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
