//go:build windows

package editor

import (
	"context"
	"fmt"

	"github.com/fjccv/dragonbridge/internal/command"
)

// New returns the Windows injector, which types through WScript.Shell
// SendKeys hosted in powershell.
func New() Editor {
	return sendKeysEditor{}
}

type sendKeysEditor struct{}

func (sendKeysEditor) Name() string { return "SendKeys (powershell)" }

func (sendKeysEditor) InsertText(ctx context.Context, text string) error {
	return runPowershell(ctx, sendKeysScript(sendKeysEscape(text)))
}

func (sendKeysEditor) InvokeAction(ctx context.Context, action command.Action) error {
	c, ok := shortcuts[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedAction, action)
	}
	return runPowershell(ctx, sendKeysScript(sendKeysChord(c)))
}

func runPowershell(ctx context.Context, script string) error {
	// "-Command -" reads the script from stdin, keeping dictated text out
	// of the process argument list.
	return runWithInput(ctx, []string{"powershell", "-NoProfile", "-NonInteractive", "-Command", "-"}, script)
}
