package log

import (
	"testing"
	"time"
)

func TestNoopLoggerDoesNotPanic(t *testing.T) {
	logger := NoopLogger{}

	event := Event{
		Timestamp: time.Now(),
		SessionID: "test-session",
		Category:  CategoryState,
		Component: ComponentController,
	}
	logger.Log(event)

	event.StateChange = &StateChangeEvent{OldState: "OFF", NewState: "AP"}
	logger.Log(event)

	event.StateChange = nil
	event.Validation = &ValidationEvent{Field: "channel", Value: "20", Reason: "out of range"}
	logger.Log(event)

	event.Validation = nil
	event.Driver = &DriverEvent{Operation: "start_ap", Applied: false, Error: "rejected"}
	logger.Log(event)
}

func TestNoopLoggerIsZeroValue(t *testing.T) {
	var logger NoopLogger
	logger.Log(Event{})
}

// recordingLogger records events for testing
type recordingLogger struct {
	events []Event
}

func (r *recordingLogger) Log(event Event) {
	r.events = append(r.events, event)
}

func TestMultiLoggerCallsAll(t *testing.T) {
	rec1 := &recordingLogger{}
	rec2 := &recordingLogger{}
	rec3 := &recordingLogger{}

	multi := NewMultiLogger(rec1, rec2, rec3)

	multi.Log(Event{
		Timestamp: time.Now(),
		SessionID: "session-123",
		Category:  CategoryRequest,
	})

	for i, rec := range []*recordingLogger{rec1, rec2, rec3} {
		if len(rec.events) != 1 {
			t.Errorf("logger %d: got %d events, want 1", i, len(rec.events))
			continue
		}
		if rec.events[0].SessionID != "session-123" {
			t.Errorf("logger %d: SessionID = %q, want %q", i, rec.events[0].SessionID, "session-123")
		}
	}
}

func TestMultiLoggerEmptyList(t *testing.T) {
	multi := NewMultiLogger()
	multi.Log(Event{Timestamp: time.Now()})
}

func TestMultiLoggerSkipsNil(t *testing.T) {
	rec := &recordingLogger{}
	multi := NewMultiLogger(nil, rec, nil)

	multi.Log(Event{Category: CategoryCommand})

	if len(rec.events) != 1 {
		t.Fatalf("got %d events, want 1", len(rec.events))
	}
}

func TestLoggerFunc(t *testing.T) {
	var got []Category
	logger := LoggerFunc(func(e Event) { got = append(got, e.Category) })

	NewMultiLogger(logger, nil).Log(Event{Category: CategoryDriver})

	if len(got) != 1 || got[0] != CategoryDriver {
		t.Errorf("got %v, want [DRIVER]", got)
	}
}
