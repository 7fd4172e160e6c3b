//go:build !linux && !windows && !darwin

package clipboard

// New returns the no-op backend on platforms without clipboard support.
func New() Backend {
	return headlessBackend{}
}
