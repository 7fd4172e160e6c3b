// Package message defines the local control protocol spoken between the
// dragonbridge daemon and its CLI sub-commands. Every message is one line of
// JSON: <json>\n
package message

import (
	"encoding/json"
	"fmt"

	"github.com/fjccv/dragonbridge/internal/monitor"
)

// Type identifies the kind of message.
type Type string

const (
	// Requests (CLI → daemon)
	TypeToggle   Type = "TOGGLE"
	TypeStatus   Type = "STATUS"
	TypeShutdown Type = "SHUTDOWN"

	// Responses (daemon → CLI)
	TypeStatusResponse Type = "STATUS_RESPONSE"
	TypeOK             Type = "OK"
	TypeError          Type = "ERROR"
)

// Message is the top-level wire envelope.
type Message struct {
	Type Type `json:"type"`

	// STATUS_RESPONSE and OK (after a TOGGLE) carry the monitor snapshot.
	Monitor *monitor.Status `json:"monitor,omitempty"`

	// SettingsPath is echoed in STATUS_RESPONSE for diagnostics.
	SettingsPath string `json:"settings_path,omitempty"`

	// ERROR
	Error string `json:"error,omitempty"`
}

// Encode serialises the message to JSON without a trailing newline.
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode deserialises a message from raw JSON bytes.
func Decode(b []byte) (*Message, error) {
	var m Message
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("message decode: %w", err)
	}
	return &m, nil
}
