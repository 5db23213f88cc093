package tui

import (
	"sync"

	"github.com/sadopc/saltlab/internal/engine"
)

// AlertRecorder implements the engine's notification collaborator for
// the terminal: alerts queue up and the app surfaces them in the status
// bar. Permission is always granted — there is no OS prompt to lose.
type AlertRecorder struct {
	mu      sync.Mutex
	pending []engine.Alert
}

func NewAlertRecorder() *AlertRecorder {
	return &AlertRecorder{}
}

func (r *AlertRecorder) RequestPermission() bool { return true }

func (r *AlertRecorder) Notify(title, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending, engine.Alert{Title: title, Body: body})
	return nil
}

// Drain returns and clears the queued alerts.
func (r *AlertRecorder) Drain() []engine.Alert {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.pending
	r.pending = nil
	return out
}
