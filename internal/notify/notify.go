// Package notify delivers best-effort status notifications for monitor
// start/stop transitions. Delivery failures are swallowed: a missing
// notification must never affect monitoring.
package notify

import (
	"log/slog"

	"github.com/gen2brain/beeep"
)

// Notifier shows a short status message to the user, fire-and-forget.
type Notifier interface {
	Notify(message string)
}

// Desktop sends notifications through the OS notification service
// (D-Bus, Notification Center, toast).
type Desktop struct {
	Title string
}

// NewDesktop returns a Desktop notifier with the standard title.
func NewDesktop() Desktop {
	return Desktop{Title: "Dragon Bridge"}
}

func (d Desktop) Notify(message string) {
	if err := beeep.Notify(d.Title, message, ""); err != nil {
		slog.Debug("notification failed", "err", err)
	}
}

// Noop discards all notifications.
type Noop struct{}

func (Noop) Notify(string) {}
