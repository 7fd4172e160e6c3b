// Package editor injects dictated text and editor commands into the
// foreground document by simulating keyboard input through an external tool.
// Build constraints select the injector:
//
//	editor_linux.go   — xdotool (X11) or wtype (Wayland)
//	editor_darwin.go  — osascript / System Events
//	editor_windows.go — WScript.Shell SendKeys via powershell
//	editor_other.go   — no-op stub
//
// All operations are best-effort: the caller logs failures and keeps going.
package editor

import (
	"context"
	"errors"

	"github.com/fjccv/dragonbridge/internal/command"
)

// ErrUnsupportedAction is returned when the injector has no keystroke mapping
// for an action identifier.
var ErrUnsupportedAction = errors.New("editor: unsupported action")

// Editor abstracts the foreground document the bridge types into.
type Editor interface {
	// Name returns a human-readable name for the injector.
	Name() string

	// InsertText types text at the cursor position of the foreground
	// document, replacing any active selection and leaving the cursor
	// after the inserted text.
	InsertText(ctx context.Context, text string) error

	// InvokeAction executes a named editor command (undo, bold, ...) on
	// the foreground document.
	InvokeAction(ctx context.Context, action command.Action) error
}

// Noop discards all insertions and actions. It backs headless hosts and tests.
type Noop struct{}

func (Noop) Name() string { return "noop" }

func (Noop) InsertText(context.Context, string) error { return nil }

func (Noop) InvokeAction(context.Context, command.Action) error { return nil }
