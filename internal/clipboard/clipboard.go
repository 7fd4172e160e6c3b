// Package clipboard provides text read access to the system clipboard plus a
// cheap change counter. Build constraints select the implementation:
//
//	clipboard_windows.go — GetClipboardSequenceNumber via golang.org/x/sys
//	clipboard_darwin.go  — NSPasteboard changeCount via cgo
//	clipboard_linux.go   — golang.design/x/clipboard with a synthetic counter
//	clipboard_other.go   — headless / container stub
package clipboard

// Backend abstracts the system clipboard for the monitor. Implementations
// are not safe for concurrent use; the monitor goroutine is the only caller.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// Sequence returns a counter that increases whenever the clipboard
	// contents change. Absolute values carry no meaning; only inequality
	// with a previous sample signals a change.
	Sequence() (uint64, error)

	// ReadText returns the current clipboard text, or "" when the
	// clipboard is empty or holds no text representation.
	ReadText() (string, error)

	// Close releases any resources held by the backend.
	Close()
}
