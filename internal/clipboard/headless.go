package clipboard

// headlessBackend is a no-op backend for environments without a display
// server (headless Linux hosts, containers, CI). Its sequence never changes,
// so a monitor running against it never dispatches anything.
type headlessBackend struct{}

func (headlessBackend) Name() string              { return "headless (no-op)" }
func (headlessBackend) Sequence() (uint64, error) { return 0, nil }
func (headlessBackend) ReadText() (string, error) { return "", nil }
func (headlessBackend) Close()                    {}
