package log

import (
	"time"

	"github.com/google/uuid"
)

// SessionLogger stamps every event with a boot session ID and, when unset,
// the current time before forwarding it.
type SessionLogger struct {
	sessionID string
	next      Logger
	now       func() time.Time
}

// NewSessionLogger wraps next. An empty sessionID is replaced by a fresh
// random UUID. A nil next discards events.
func NewSessionLogger(sessionID string, next Logger) *SessionLogger {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	if next == nil {
		next = NoopLogger{}
	}
	return &SessionLogger{sessionID: sessionID, next: next, now: time.Now}
}

// SessionID returns the ID stamped onto events.
func (s *SessionLogger) SessionID() string {
	return s.sessionID
}

// Log stamps and forwards the event.
func (s *SessionLogger) Log(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	if event.SessionID == "" {
		event.SessionID = s.sessionID
	}
	s.next.Log(event)
}

var _ Logger = (*SessionLogger)(nil)
