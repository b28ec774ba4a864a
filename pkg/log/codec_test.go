package log

import (
	"bytes"
	"testing"
	"time"
)

func TestEventCBORRoundTrip(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456789, time.UTC)
	original := Event{
		Timestamp: ts,
		SessionID: "abc12345-def6-7890-abcd-ef1234567890",
		Category:  CategoryValidation,
		Component: ComponentValidator,
		Mode:      "OFF",
		Validation: &ValidationEvent{
			Field:  "channel",
			Value:  "20",
			Reason: "must be within [1,14]",
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(original.Timestamp) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, original.Timestamp)
	}
	if decoded.SessionID != original.SessionID {
		t.Errorf("SessionID: got %q, want %q", decoded.SessionID, original.SessionID)
	}
	if decoded.Category != original.Category {
		t.Errorf("Category: got %v, want %v", decoded.Category, original.Category)
	}
	if decoded.Component != original.Component {
		t.Errorf("Component: got %v, want %v", decoded.Component, original.Component)
	}
	if decoded.Mode != "OFF" {
		t.Errorf("Mode: got %q, want OFF", decoded.Mode)
	}
	if decoded.Validation == nil {
		t.Fatal("Validation payload lost")
	}
	if *decoded.Validation != *original.Validation {
		t.Errorf("Validation: got %+v, want %+v", *decoded.Validation, *original.Validation)
	}
}

func TestEventCBORPreservesDuration(t *testing.T) {
	original := Event{
		Timestamp: time.Now(),
		Category:  CategoryRequest,
		Component: ComponentRoutes,
		Request: &RequestEvent{
			Method:   "GET",
			Path:     "/index.html",
			Status:   200,
			Duration: 1500 * time.Microsecond,
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}
	if decoded.Request == nil || decoded.Request.Duration != 1500*time.Microsecond {
		t.Errorf("Request: got %+v", decoded.Request)
	}
}

func TestEventCBOROmitsEmptyPayloads(t *testing.T) {
	bare, err := EncodeEvent(Event{Category: CategoryState})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	withPayload, err := EncodeEvent(Event{
		Category:    CategoryState,
		StateChange: &StateChangeEvent{NewState: "AP"},
	})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	if len(withPayload) <= len(bare) {
		t.Errorf("payload not encoded: %d <= %d bytes", len(withPayload), len(bare))
	}
}

func TestEventCBORDeterministic(t *testing.T) {
	event := Event{
		Timestamp: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		SessionID: "s",
		Category:  CategoryDriver,
		Driver:    &DriverEvent{Operation: "set_opmode", Applied: true},
	}

	a, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	b, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("encoding is not deterministic")
	}
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xff, 0x00, 0x13}); err == nil {
		t.Error("expected error decoding garbage")
	}
}

func TestEncoderDecoderStream(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for i := 0; i < 3; i++ {
		if err := enc.Encode(Event{Category: CategoryCommand, Command: &CommandEvent{Line: "status"}}); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}

	dec := NewDecoder(&buf)
	for i := 0; i < 3; i++ {
		var e Event
		if err := dec.Decode(&e); err != nil {
			t.Fatalf("Decode %d failed: %v", i, err)
		}
		if e.Command == nil || e.Command.Line != "status" {
			t.Errorf("event %d: got %+v", i, e.Command)
		}
	}
}
