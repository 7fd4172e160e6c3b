// Package monitor implements the clipboard polling loop that bridges
// dictation output into the editor: it watches the clipboard change counter,
// classifies new text, and dispatches the result as an insertion or an
// editor action.
package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fjccv/dragonbridge/internal/clipboard"
	"github.com/fjccv/dragonbridge/internal/command"
	"github.com/fjccv/dragonbridge/internal/editor"
	"github.com/fjccv/dragonbridge/internal/notify"
	"github.com/fjccv/dragonbridge/internal/settings"
)

// joinTimeout bounds how long Stop waits for the loop goroutine to exit.
const joinTimeout = 2 * time.Second

// lastPhraseMax caps the phrase echoed in status output.
const lastPhraseMax = 64

// Status is a point-in-time snapshot of the monitor, served over IPC.
type Status struct {
	Running        bool      `json:"running"`
	Backend        string    `json:"backend"`
	Editor         string    `json:"editor"`
	PollIntervalMS int       `json:"poll_interval_ms,omitempty"`
	StartedAt      time.Time `json:"started_at,omitzero"`
	ChangesSeen    uint64    `json:"changes_seen"`
	Inserted       uint64    `json:"inserted"`
	Actions        uint64    `json:"actions"`
	Errors         uint64    `json:"errors"`
	LastKind       string    `json:"last_kind,omitempty"`
	LastPhrase     string    `json:"last_phrase,omitempty"`
}

// Monitor owns the background polling goroutine. One monitor exists per
// daemon; the run command constructs it and hands it to the IPC surface.
// Start and Stop are idempotent and safe to call from any goroutine.
type Monitor struct {
	backend  clipboard.Backend
	editor   editor.Editor
	notifier notify.Notifier
	load     func() settings.Settings

	mu           sync.Mutex
	running      bool
	notifyOnStop bool
	stopCh       chan struct{}
	doneCh       chan struct{}
	startedAt    time.Time
	intervalMS   int
	changesSeen  uint64
	inserted     uint64
	actions      uint64
	errors       uint64
	lastKind     string
	lastPhrase   string

	// Owned exclusively by the loop goroutine between Start and Stop;
	// Start seeds them while no loop is running.
	lastSeq  uint64
	lastText string
}

// New constructs a stopped monitor. load supplies the settings snapshot read
// at each Start; a settings change takes effect on the next start.
func New(backend clipboard.Backend, ed editor.Editor, notifier notify.Notifier, load func() settings.Settings) *Monitor {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Monitor{
		backend:  backend,
		editor:   ed,
		notifier: notifier,
		load:     load,
	}
}

// Running reports whether the polling loop is active.
func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Start transitions Stopped → Running. Calling Start while running is a no-op.
// The current clipboard state is captured as a baseline so existing content
// is never reprocessed. If a previous loop overran the Stop join timeout
// (a slow editor call can outlive it), Start waits for that loop to exit
// first: the last-seen state must never be touched by two loops.
func (m *Monitor) Start() {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		slog.Debug("monitor already running, start ignored")
		return
	}
	prev := m.doneCh
	m.mu.Unlock()

	if prev != nil {
		select {
		case <-prev:
		default:
			slog.Warn("waiting for previous monitor loop to exit")
			<-prev
		}
	}

	m.mu.Lock()
	if m.running {
		// Lost a start race while waiting for the old loop.
		m.mu.Unlock()
		return
	}

	s := m.load()

	if seq, err := m.backend.Sequence(); err == nil {
		m.lastSeq = seq
	} else {
		slog.Warn("baseline sequence read failed", "err", err)
	}
	if text, err := m.backend.ReadText(); err == nil {
		m.lastText = text
	} else {
		slog.Warn("baseline clipboard read failed", "err", err)
	}

	m.running = true
	m.notifyOnStop = s.ShowNotifications
	m.startedAt = time.Now()
	m.intervalMS = s.PollIntervalMS
	m.stopCh = make(chan struct{})
	m.doneCh = make(chan struct{})
	go m.loop(m.stopCh, m.doneCh, s.PollInterval())
	notifyStart := s.ShowNotifications
	m.mu.Unlock()

	slog.Info("clipboard monitoring started",
		"backend", m.backend.Name(),
		"editor", m.editor.Name(),
		"interval_ms", s.PollIntervalMS,
	)
	if notifyStart {
		m.notifier.Notify("Clipboard monitoring started — dictate and transfer.")
	}
}

// Stop transitions Running → Stopped, waiting up to joinTimeout for the loop
// to exit. Calling Stop while stopped is a no-op.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	notifyStop := m.notifyOnStop
	close(m.stopCh)
	done := m.doneCh
	m.mu.Unlock()

	select {
	case <-done:
	case <-time.After(joinTimeout):
		slog.Warn("monitor loop did not exit within join timeout")
	}

	slog.Info("clipboard monitoring stopped")
	if notifyStop {
		m.notifier.Notify("Clipboard monitoring stopped.")
	}
}

// Toggle starts the monitor if stopped and stops it if running, returning
// the new running state.
func (m *Monitor) Toggle() bool {
	if m.Running() {
		m.Stop()
		return false
	}
	m.Start()
	return true
}

// Snapshot returns the current monitor status.
func (m *Monitor) Snapshot() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := Status{
		Running:     m.running,
		Backend:     m.backend.Name(),
		Editor:      m.editor.Name(),
		ChangesSeen: m.changesSeen,
		Inserted:    m.inserted,
		Actions:     m.actions,
		Errors:      m.errors,
		LastKind:    m.lastKind,
		LastPhrase:  m.lastPhrase,
	}
	if m.running {
		st.PollIntervalMS = m.intervalMS
		st.StartedAt = m.startedAt
	}
	return st
}

func (m *Monitor) loop(stop <-chan struct{}, done chan<- struct{}, interval time.Duration) {
	defer close(done)
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			m.pollOnce()
		}
	}
}

// pollOnce runs one iteration of the monitoring loop. Errors are recorded
// and logged; no single bad iteration terminates monitoring.
func (m *Monitor) pollOnce() {
	seq, err := m.backend.Sequence()
	if err != nil {
		m.recordError()
		slog.Warn("clipboard sequence read failed", "err", err)
		return
	}
	if seq == m.lastSeq {
		return
	}
	m.lastSeq = seq

	text, err := m.backend.ReadText()
	if err != nil {
		m.recordError()
		slog.Warn("clipboard read failed", "err", err)
		return
	}
	if text == "" || text == m.lastText {
		return
	}
	m.lastText = text

	m.mu.Lock()
	m.changesSeen++
	m.mu.Unlock()

	m.dispatch(text)
}

// dispatch classifies text and forwards it to the editor. The editor call is
// synchronous: one iteration completes before the next poll fires, so
// dispatch order matches clipboard order.
func (m *Monitor) dispatch(text string) {
	res := command.Classify(text)
	ctx := context.Background()

	var err error
	switch res.Kind {
	case command.KindAction:
		err = m.editor.InvokeAction(ctx, res.Action)
	default:
		err = m.editor.InsertText(ctx, res.Text)
	}

	m.mu.Lock()
	m.lastKind = res.Kind.String()
	m.lastPhrase = truncate(text, lastPhraseMax)
	if err != nil {
		m.errors++
	} else if res.Kind == command.KindAction {
		m.actions++
	} else {
		m.inserted++
	}
	m.mu.Unlock()

	if err != nil {
		slog.Warn("editor dispatch failed",
			"kind", res.Kind.String(),
			"err", err,
		)
		return
	}
	slog.Debug("dispatched", "kind", res.Kind.String(), "chars", len(text))
}

func (m *Monitor) recordError() {
	m.mu.Lock()
	m.errors++
	m.mu.Unlock()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}
