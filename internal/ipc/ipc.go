// Package ipc provides the local control channel used by CLI sub-commands
// (toggle/status/stop) to talk to a running dragonbridge daemon. Unix domain
// socket on Linux/macOS, named pipe on Windows. There is no network surface:
// the socket is local and owner-restricted by the OS.
package ipc

import (
	"net"
	"os"
)

// SocketPath returns the platform-appropriate path for the control socket.
// Override with $DRAGONBRIDGE_SOCKET.
func SocketPath() string {
	if s := os.Getenv("DRAGONBRIDGE_SOCKET"); s != "" {
		return s
	}
	return socketPath()
}

// IsRunning reports whether a daemon appears to be listening on the control
// socket. A cheap dial-and-close; no data is exchanged.
func IsRunning() bool {
	c, err := dialIPC(SocketPath())
	if err != nil {
		return false
	}
	_ = c.Close()
	return true
}

// Listen creates a net.Listener on the control socket, removing any stale
// socket file left by a crashed daemon first.
func Listen() (net.Listener, error) {
	path := SocketPath()
	_ = os.Remove(path)
	return listenIPC(path)
}

// Dial connects to the control socket of a running daemon.
func Dial() (net.Conn, error) {
	return dialIPC(SocketPath())
}
