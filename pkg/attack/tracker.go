// Package attack tracks which attack modes the operator has enabled.
//
// The tracker is a status provider only: it records the requested modes and
// reports them to the configuration interface. It never transmits frames.
package attack

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// Mode is one of the attack modes shown in the interface.
type Mode uint8

const (
	ModeBeacon Mode = iota
	ModeDeauth
	ModeProbe
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeBeacon:
		return "BEACON"
	case ModeDeauth:
		return "DEAUTH"
	case ModeProbe:
		return "PROBE"
	default:
		return "UNKNOWN"
	}
}

// Status is the JSON document served as /attack.json.
type Status struct {
	Running bool `json:"running"`
	Beacon  bool `json:"beacon"`
	Deauth  bool `json:"deauth"`
	Probe   bool `json:"probe"`

	// Since is when the current run started. Omitted when idle.
	Since *time.Time `json:"since,omitempty"`
}

// Tracker records the enabled attack modes.
type Tracker struct {
	mu      sync.Mutex
	enabled [3]bool
	since   time.Time
	logger  *slog.Logger
	now     func() time.Time
}

// NewTracker returns an idle tracker. logger may be nil.
func NewTracker(logger *slog.Logger) *Tracker {
	return &Tracker{logger: logger, now: time.Now}
}

// Start enables the given modes in addition to those already running.
func (t *Tracker) Start(modes ...Mode) {
	t.mu.Lock()
	defer t.mu.Unlock()

	wasRunning := t.runningLocked()
	for _, m := range modes {
		if int(m) < len(t.enabled) {
			t.enabled[m] = true
		}
	}
	if !wasRunning && t.runningLocked() {
		t.since = t.now()
	}
	if t.logger != nil {
		t.logger.Info("attack modes enabled", "modes", modeNames(modes))
	}
}

// Stop disables every mode.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.runningLocked() {
		return
	}
	t.enabled = [3]bool{}
	t.since = time.Time{}
	if t.logger != nil {
		t.logger.Info("attack modes disabled")
	}
}

// Status returns a snapshot.
func (t *Tracker) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Status{
		Running: t.runningLocked(),
		Beacon:  t.enabled[ModeBeacon],
		Deauth:  t.enabled[ModeDeauth],
		Probe:   t.enabled[ModeProbe],
	}
	if s.Running {
		since := t.since
		s.Since = &since
	}
	return s
}

// JSON encodes Status.
func (t *Tracker) JSON() ([]byte, error) {
	return json.Marshal(t.Status())
}

func (t *Tracker) runningLocked() bool {
	return t.enabled[ModeBeacon] || t.enabled[ModeDeauth] || t.enabled[ModeProbe]
}

func modeNames(modes []Mode) []string {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return names
}
