//go:build darwin

package editor

import (
	"context"
	"fmt"

	"github.com/fjccv/dragonbridge/internal/command"
)

// New returns the macOS injector. osascript ships with the OS, so no probing
// is needed; the first call will fail (and be logged by the caller) if the
// process lacks Accessibility permission.
func New() Editor {
	return osascriptEditor{}
}

// osascriptEditor drives the frontmost application through System Events.
type osascriptEditor struct{}

func (osascriptEditor) Name() string { return "osascript" }

func (osascriptEditor) InsertText(ctx context.Context, text string) error {
	// "-" makes osascript read the program from stdin, keeping dictated
	// text out of the argument list.
	return runWithInput(ctx, []string{"osascript", "-"}, keystrokeScript(text))
}

func (osascriptEditor) InvokeAction(ctx context.Context, action command.Action) error {
	c, ok := shortcuts[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedAction, action)
	}
	return runWithInput(ctx, []string{"osascript", "-"}, actionScript(c))
}
