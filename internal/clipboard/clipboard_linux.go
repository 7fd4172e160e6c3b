//go:build linux

package clipboard

import (
	"bytes"
	"log/slog"

	xclip "golang.design/x/clipboard"
)

// linuxBackend synthesizes a sequence number by comparing clipboard contents:
// X11/Wayland expose no cheap OS-level change counter, so Sequence reads the
// text and bumps a counter when it differs from the previous sample. ReadText
// stays a separate call so the Backend contract matches the platforms that do
// have a real counter.
type linuxBackend struct {
	seq  uint64
	last []byte
}

// New returns the Linux clipboard backend, or the headless no-op backend when
// no display environment is available. clipboard.Init is called here rather
// than in init() so that sub-commands that never construct a Backend don't
// log spurious warnings on headless systems.
func New() Backend {
	if err := xclip.Init(); err != nil {
		slog.Warn("clipboard unavailable, running headless", "err", err)
		return headlessBackend{}
	}
	return &linuxBackend{}
}

func (b *linuxBackend) Name() string { return "Linux clipboard (content compare)" }

func (b *linuxBackend) Sequence() (uint64, error) {
	text := xclip.Read(xclip.FmtText)
	if !bytes.Equal(text, b.last) {
		b.last = bytes.Clone(text)
		b.seq++
	}
	return b.seq, nil
}

func (b *linuxBackend) ReadText() (string, error) {
	return string(xclip.Read(xclip.FmtText)), nil
}

func (b *linuxBackend) Close() {}
