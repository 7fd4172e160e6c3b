package main

import (
	"fmt"

	"github.com/fjccv/dragonbridge/internal/ipc"
	"github.com/fjccv/dragonbridge/internal/message"
	"github.com/fjccv/dragonbridge/internal/wire"
)

// request sends one control message to the running daemon and returns its
// reply. Every client sub-command funnels through here.
func request(msg *message.Message) (*message.Message, error) {
	if !ipc.IsRunning() {
		return nil, fmt.Errorf("no dragonbridge daemon running (socket %s), start one with \"dragonbridge run\"", ipc.SocketPath())
	}

	conn, err := ipc.Dial()
	if err != nil {
		return nil, fmt.Errorf("dial control socket: %w", err)
	}
	wc := wire.New(conn)
	defer wc.Close()

	if err := wc.WriteMsg(msg); err != nil {
		return nil, fmt.Errorf("send: %w", err)
	}

	resp, err := wc.ReadMsg()
	if err != nil {
		return nil, fmt.Errorf("read reply: %w", err)
	}
	if resp.Type == message.TypeError {
		return nil, fmt.Errorf("daemon: %s", resp.Error)
	}
	return resp, nil
}
