package main

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fjccv/dragonbridge/internal/clipboard"
	"github.com/fjccv/dragonbridge/internal/editor"
	"github.com/fjccv/dragonbridge/internal/ipc"
	"github.com/fjccv/dragonbridge/internal/message"
	"github.com/fjccv/dragonbridge/internal/monitor"
	"github.com/fjccv/dragonbridge/internal/notify"
	"github.com/fjccv/dragonbridge/internal/settings"
	"github.com/fjccv/dragonbridge/internal/wire"
)

const controlReadTimeout = 5 * time.Second

func newRunCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the dictation bridge daemon",
		Long: `Starts the bridge: a background loop polls the clipboard change counter
and dispatches new text to the foreground document, and a local control
socket serves the toggle/status/stop sub-commands.

Monitoring starts immediately unless --paused is given. Settings
(poll interval, notifications) are read from the settings file at each
monitor start; edit them with "dragonbridge settings".`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runDaemon(v) },
	}

	f := cmd.Flags()
	f.String("settings", "", "path to the settings file (default: per-user config dir)")
	f.Bool("paused", false, "start with monitoring paused (resume with \"dragonbridge toggle\")")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runDaemon(v *viper.Viper) error {
	setupLogging(v)

	settingsPath := v.GetString("settings")
	if settingsPath == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			return fmt.Errorf("settings path: %w", err)
		}
		settingsPath = p
	}
	store := settings.NewStore(settingsPath)

	if ipc.IsRunning() {
		return fmt.Errorf("another dragonbridge daemon is already running (%s)", ipc.SocketPath())
	}

	backend := clipboard.New()
	defer backend.Close()
	ed := editor.New()

	mon := monitor.New(backend, ed, notify.NewDesktop(), store.Load)

	slog.Info("dragonbridge starting",
		"version", Version,
		"backend", backend.Name(),
		"editor", ed.Name(),
		"settings", settingsPath,
	)

	ln, err := ipc.Listen()
	if err != nil {
		return fmt.Errorf("control socket: %w", err)
	}
	defer ln.Close()
	slog.Info("control socket listening", "path", ipc.SocketPath())

	shutdown := make(chan struct{})
	go serveControl(ln, mon, store, shutdown)

	if !v.GetBool("paused") {
		mon.Start()
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case s := <-sig:
		slog.Info("signal received, shutting down", "signal", s.String())
	case <-shutdown:
		slog.Info("shutdown requested over control socket")
	}

	mon.Stop()
	return nil
}

func serveControl(ln net.Listener, mon *monitor.Monitor, store *settings.Store, shutdown chan struct{}) {
	var once sync.Once
	requestShutdown := func() { once.Do(func() { close(shutdown) }) }

	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		go handleControlConn(conn, mon, store, requestShutdown)
	}
}

// handleControlConn serves one CLI request. The protocol is strictly
// request/response: one message each way, then the connection closes.
func handleControlConn(conn net.Conn, mon *monitor.Monitor, store *settings.Store, requestShutdown func()) {
	defer conn.Close()
	wc := wire.New(conn)
	wc.SetReadDeadline(controlReadTimeout)

	msg, err := wc.ReadMsg()
	if err != nil {
		return
	}

	switch msg.Type {
	case message.TypeToggle:
		mon.Toggle()
		snap := mon.Snapshot()
		_ = wc.WriteMsg(&message.Message{Type: message.TypeOK, Monitor: &snap})

	case message.TypeStatus:
		snap := mon.Snapshot()
		_ = wc.WriteMsg(&message.Message{
			Type:         message.TypeStatusResponse,
			Monitor:      &snap,
			SettingsPath: store.Path(),
		})

	case message.TypeShutdown:
		_ = wc.WriteMsg(&message.Message{Type: message.TypeOK})
		requestShutdown()

	default:
		_ = wc.WriteMsg(&message.Message{
			Type:  message.TypeError,
			Error: fmt.Sprintf("unknown request type %q", msg.Type),
		})
	}
}
