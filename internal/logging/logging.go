// Package logging configures the global slog logger for the dragonbridge
// binary: tinted human-readable output on a terminal, JSON when the daemon
// runs under a service manager or with output redirected.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pwntr/tinter"
)

// tintTimeFormat keeps interactive log lines short; poll-loop events arrive
// sub-second, so millisecond precision matters more than the date.
const tintTimeFormat = "15:04:05.000"

// Format selects the log output format.
type Format string

const (
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat converts a string to a Format, returning FormatAuto for unknown values.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "text", "tint", "human":
		return FormatText
	case "json":
		return FormatJSON
	default:
		return FormatAuto
	}
}

// ParseLevel converts a string to a slog.Level, defaulting to Info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// DefaultLevel returns the level used when none is configured: debug for
// interactive sessions (someone is watching the bridge dispatch), info
// otherwise.
func DefaultLevel(interactive bool) slog.Level {
	if interactive {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// Resolve configures the global logger from the raw flag values, applying
// the interactive level default when levelStr is empty. Call once after
// flag/viper parsing.
func Resolve(formatStr, levelStr string) {
	interactive := IsTTY(os.Stderr)
	level := DefaultLevel(interactive)
	if levelStr != "" {
		level = ParseLevel(levelStr)
	}
	Setup(ParseFormat(formatStr), level)
}

// Setup installs the global slog logger: a tinter handler when the format is
// text or auto-detects a terminal, a JSON handler otherwise.
func Setup(format Format, level slog.Level) {
	w := os.Stderr
	useTint := format == FormatText || (format == FormatAuto && IsTTY(w))

	var h slog.Handler
	if useTint {
		h = tinter.NewHandler(w, &tinter.Options{
			Level:      level,
			TimeFormat: tintTimeFormat,
		})
	} else {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	}
	slog.SetDefault(slog.New(h))
}
