package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func logAndParse(t *testing.T, event Event) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	NewSlogAdapter(slog.New(handler)).Log(event)

	if buf.Len() == 0 {
		t.Fatal("no output produced")
	}
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	return entry
}

func TestSlogAdapterLogsValidationAtWarn(t *testing.T) {
	entry := logAndParse(t, Event{
		Timestamp: time.Now(),
		Category:  CategoryValidation,
		Component: ComponentValidator,
		Validation: &ValidationEvent{
			Field:  "passphrase",
			Value:  "****",
			Reason: "shorter than 8 characters",
		},
	})

	if entry["level"] != "WARN" {
		t.Errorf("level: got %v, want WARN", entry["level"])
	}
	if entry["field"] != "passphrase" {
		t.Errorf("field: got %v, want passphrase", entry["field"])
	}
	if entry["category"] != "VALIDATION" {
		t.Errorf("category: got %v, want VALIDATION", entry["category"])
	}
}

func TestSlogAdapterLogsStateChange(t *testing.T) {
	entry := logAndParse(t, Event{
		Timestamp:   time.Now(),
		SessionID:   "boot-1",
		Category:    CategoryState,
		Component:   ComponentController,
		StateChange: &StateChangeEvent{OldState: "OFF", NewState: "AP", Reason: "start"},
	})

	if entry["level"] != "DEBUG" {
		t.Errorf("level: got %v, want DEBUG", entry["level"])
	}
	if entry["old_state"] != "OFF" || entry["new_state"] != "AP" {
		t.Errorf("state: got %v -> %v", entry["old_state"], entry["new_state"])
	}
	if entry["session"] != "boot-1" {
		t.Errorf("session: got %v", entry["session"])
	}
	if entry["reason"] != "start" {
		t.Errorf("reason: got %v", entry["reason"])
	}
}

func TestSlogAdapterLogsRejectedDriverCall(t *testing.T) {
	entry := logAndParse(t, Event{
		Category:  CategoryDriver,
		Component: ComponentRadio,
		Driver:    &DriverEvent{Operation: "start_ap", Applied: false, Error: "channel 0"},
	})

	if entry["level"] != "WARN" {
		t.Errorf("level: got %v, want WARN", entry["level"])
	}
	if entry["applied"] != false {
		t.Errorf("applied: got %v", entry["applied"])
	}
	if entry["error"] != "channel 0" {
		t.Errorf("error: got %v", entry["error"])
	}
}

func TestSlogAdapterLogsRequest(t *testing.T) {
	entry := logAndParse(t, Event{
		Category:  CategoryRequest,
		Component: ComponentRoutes,
		Request:   &RequestEvent{Method: "GET", Path: "/list", Status: 500, RequestID: "node/1"},
	})

	if entry["path"] != "/list" {
		t.Errorf("path: got %v", entry["path"])
	}
	if entry["status"] != float64(500) {
		t.Errorf("status: got %v", entry["status"])
	}
	if entry["request_id"] != "node/1" {
		t.Errorf("request_id: got %v", entry["request_id"])
	}
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	NewSlogAdapter(slog.New(handler)).Log(Event{
		Category:    CategoryState,
		StateChange: &StateChangeEvent{NewState: "AP"},
	})

	if buf.Len() != 0 {
		t.Errorf("debug event logged at info level: %s", buf.String())
	}
}
