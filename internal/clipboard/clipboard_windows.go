//go:build windows

package clipboard

import (
	"log/slog"

	xclip "golang.design/x/clipboard"
	"golang.org/x/sys/windows"
)

var (
	user32                         = windows.NewLazySystemDLL("user32.dll")
	procGetClipboardSequenceNumber = user32.NewProc("GetClipboardSequenceNumber")
)

// windowsBackend uses the OS-maintained clipboard sequence number, which the
// kernel increments on every clipboard content change. Sampling it never
// opens the clipboard, so polling stays cheap even at short intervals.
type windowsBackend struct{}

// New returns the Windows clipboard backend. clipboard.Init is called here
// rather than in init() so that sub-commands that never construct a Backend
// don't log spurious warnings.
func New() Backend {
	if err := xclip.Init(); err != nil {
		slog.Warn("clipboard init failed", "err", err)
	}
	return windowsBackend{}
}

func (windowsBackend) Name() string { return "Windows clipboard (sequence number)" }

func (windowsBackend) Sequence() (uint64, error) {
	seq, _, _ := procGetClipboardSequenceNumber.Call()
	return uint64(seq), nil
}

func (windowsBackend) ReadText() (string, error) {
	return string(xclip.Read(xclip.FmtText)), nil
}

func (windowsBackend) Close() {}
