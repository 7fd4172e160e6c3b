//go:build linux

package editor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/fjccv/dragonbridge/internal/command"
)

// New probes for an available injection tool: wtype on Wayland sessions,
// xdotool otherwise. Falls back to the no-op editor when neither is on PATH.
func New() Editor {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if _, err := exec.LookPath("wtype"); err == nil {
			return wtypeEditor{}
		}
	}
	if _, err := exec.LookPath("xdotool"); err == nil {
		return xdotoolEditor{}
	}
	if _, err := exec.LookPath("wtype"); err == nil {
		return wtypeEditor{}
	}
	slog.Warn("no keystroke injector found (install xdotool or wtype), insertions disabled")
	return Noop{}
}

// xdotoolEditor drives X11 applications through xdotool.
type xdotoolEditor struct{}

func (xdotoolEditor) Name() string { return "xdotool" }

func (xdotoolEditor) InsertText(ctx context.Context, text string) error {
	// --file - types stdin verbatim, so dashes and flags in the dictated
	// text can't be misparsed as xdotool arguments.
	return runWithInput(ctx, []string{"xdotool", "type", "--clearmodifiers", "--delay", "0", "--file", "-"}, text)
}

func (xdotoolEditor) InvokeAction(ctx context.Context, action command.Action) error {
	c, ok := shortcuts[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedAction, action)
	}
	return run(ctx, []string{"xdotool", "key", "--clearmodifiers", xdotoolKey(c)})
}

// wtypeEditor drives Wayland compositors that implement the virtual keyboard
// protocol through wtype.
type wtypeEditor struct{}

func (wtypeEditor) Name() string { return "wtype" }

func (wtypeEditor) InsertText(ctx context.Context, text string) error {
	// "-" makes wtype read the text from stdin.
	return runWithInput(ctx, []string{"wtype", "-"}, text)
}

func (wtypeEditor) InvokeAction(ctx context.Context, action command.Action) error {
	c, ok := shortcuts[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedAction, action)
	}
	return run(ctx, append([]string{"wtype"}, wtypeArgs(c)...))
}
