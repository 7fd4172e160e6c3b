package main

import (
	"net"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fjccv/dragonbridge/internal/editor"
	"github.com/fjccv/dragonbridge/internal/message"
	"github.com/fjccv/dragonbridge/internal/monitor"
	"github.com/fjccv/dragonbridge/internal/settings"
	"github.com/fjccv/dragonbridge/internal/wire"
)

// stubBackend is an inert clipboard: the sequence never changes.
type stubBackend struct{}

func (stubBackend) Name() string              { return "stub" }
func (stubBackend) Sequence() (uint64, error) { return 0, nil }
func (stubBackend) ReadText() (string, error) { return "", nil }
func (stubBackend) Close()                    {}

func testDaemon(t *testing.T) (*monitor.Monitor, *settings.Store) {
	t.Helper()
	store := settings.NewStore(filepath.Join(t.TempDir(), "settings.json"))
	mon := monitor.New(stubBackend{}, editor.Noop{}, nil, store.Load)
	t.Cleanup(mon.Stop)
	return mon, store
}

func roundtrip(t *testing.T, mon *monitor.Monitor, store *settings.Store, req *message.Message) *message.Message {
	t.Helper()
	client, server := net.Pipe()
	go handleControlConn(server, mon, store, func() {})

	wc := wire.New(client)
	defer wc.Close()
	require.NoError(t, wc.WriteMsg(req))
	resp, err := wc.ReadMsg()
	require.NoError(t, err)
	return resp
}

func TestControlStatus(t *testing.T) {
	t.Parallel()

	mon, store := testDaemon(t)
	resp := roundtrip(t, mon, store, &message.Message{Type: message.TypeStatus})

	require.Equal(t, message.TypeStatusResponse, resp.Type)
	require.Equal(t, store.Path(), resp.SettingsPath)
	require.NotNil(t, resp.Monitor)
	require.False(t, resp.Monitor.Running)
	require.Equal(t, "stub", resp.Monitor.Backend)
}

func TestControlToggleFlipsMonitor(t *testing.T) {
	t.Parallel()

	mon, store := testDaemon(t)

	resp := roundtrip(t, mon, store, &message.Message{Type: message.TypeToggle})
	require.Equal(t, message.TypeOK, resp.Type)
	require.NotNil(t, resp.Monitor)
	require.True(t, resp.Monitor.Running)
	require.True(t, mon.Running())

	resp = roundtrip(t, mon, store, &message.Message{Type: message.TypeToggle})
	require.False(t, resp.Monitor.Running)
	require.False(t, mon.Running())
}

func TestControlShutdownInvokesCallback(t *testing.T) {
	t.Parallel()

	mon, store := testDaemon(t)
	client, server := net.Pipe()
	called := make(chan struct{}, 1)
	go handleControlConn(server, mon, store, func() { called <- struct{}{} })

	wc := wire.New(client)
	defer wc.Close()
	require.NoError(t, wc.WriteMsg(&message.Message{Type: message.TypeShutdown}))
	resp, err := wc.ReadMsg()
	require.NoError(t, err)
	require.Equal(t, message.TypeOK, resp.Type)
	<-called
}

func TestControlUnknownTypeReturnsError(t *testing.T) {
	t.Parallel()

	mon, store := testDaemon(t)
	resp := roundtrip(t, mon, store, &message.Message{Type: "BOGUS"})
	require.Equal(t, message.TypeError, resp.Type)
	require.Contains(t, resp.Error, "BOGUS")
}
