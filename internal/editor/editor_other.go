//go:build !linux && !windows && !darwin

package editor

// New returns the no-op editor on platforms without an injector.
func New() Editor {
	return Noop{}
}
