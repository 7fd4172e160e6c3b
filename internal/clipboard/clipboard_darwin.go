//go:build darwin

package clipboard

// #cgo CFLAGS: -x objective-c
// #cgo LDFLAGS: -framework Cocoa
// #import <Cocoa/Cocoa.h>
//
// long dragonbridge_changeCount() {
//     return (long)[[NSPasteboard generalPasteboard] changeCount];
// }
import "C"

import (
	"log/slog"

	xclip "golang.design/x/clipboard"
)

// darwinBackend maps NSPasteboard's changeCount onto the Backend sequence
// contract. changeCount increments on every pasteboard write.
type darwinBackend struct{}

// New returns the macOS clipboard backend. clipboard.Init is called here
// rather than in init() so that sub-commands that never construct a Backend
// don't log spurious warnings.
func New() Backend {
	if err := xclip.Init(); err != nil {
		slog.Warn("clipboard init failed", "err", err)
	}
	return darwinBackend{}
}

func (darwinBackend) Name() string { return "macOS NSPasteboard (changeCount)" }

func (darwinBackend) Sequence() (uint64, error) {
	return uint64(C.dragonbridge_changeCount()), nil
}

func (darwinBackend) ReadText() (string, error) {
	return string(xclip.Read(xclip.FmtText)), nil
}

func (darwinBackend) Close() {}
