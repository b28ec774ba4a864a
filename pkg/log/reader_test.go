package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.alog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func readAll(t *testing.T, r *Reader) []Event {
	t.Helper()
	var read []Event
	for {
		event, err := r.Next()
		if err == io.EOF {
			return read
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, event)
	}
}

func TestReaderIteratesEvents(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), SessionID: "s-1", Category: CategoryState, Component: ComponentController},
		{Timestamp: time.Now(), SessionID: "s-2", Category: CategoryRequest, Component: ComponentRoutes},
		{Timestamp: time.Now(), SessionID: "s-3", Category: CategoryCommand, Component: ComponentCLI},
	}

	path := createTestLogFile(t, events)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 3 {
		t.Fatalf("got %d events, want 3", len(read))
	}
	if read[0].SessionID != "s-1" {
		t.Errorf("first event SessionID = %q, want %q", read[0].SessionID, "s-1")
	}
	if read[2].SessionID != "s-3" {
		t.Errorf("last event SessionID = %q, want %q", read[2].SessionID, "s-3")
	}
}

func TestReaderHandlesEmptyFile(t *testing.T) {
	path := createTestLogFile(t, nil)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("Next on empty file = %v, want io.EOF", err)
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.alog")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFilteredReader(t *testing.T) {
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	events := []Event{
		{Timestamp: base, SessionID: "boot-a", Category: CategoryValidation, Component: ComponentValidator},
		{Timestamp: base.Add(time.Second), SessionID: "boot-a", Category: CategoryState, Component: ComponentController},
		{Timestamp: base.Add(2 * time.Second), SessionID: "boot-b", Category: CategoryState, Component: ComponentController},
		{Timestamp: base.Add(3 * time.Second), SessionID: "boot-b", Category: CategoryRequest, Component: ComponentRoutes},
	}
	path := createTestLogFile(t, events)

	state := CategoryState
	routes := ComponentRoutes
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 4},
		{"session", Filter{SessionID: "boot-a"}, 2},
		{"category", Filter{Category: &state}, 2},
		{"component", Filter{Component: &routes}, 1},
		{"time range", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"combined", Filter{SessionID: "boot-b", Category: &state}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader failed: %v", err)
			}
			defer reader.Close()

			if got := len(readAll(t, reader)); got != tt.want {
				t.Errorf("got %d events, want %d", got, tt.want)
			}
		})
	}
}

func TestReaderTruncatedTail(t *testing.T) {
	fs := afero.NewMemMapFs()

	first, err := EncodeEvent(Event{SessionID: "whole", Category: CategoryState})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	second, err := EncodeEvent(Event{SessionID: "cut", Category: CategoryState})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	data := append(first, second[:len(second)/2]...)
	if err := afero.WriteFile(fs, "/node.alog", data, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	reader, err := OpenReader(fs, "/node.alog", Filter{})
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	defer reader.Close()

	events := readAll(t, reader)
	if len(events) != 1 || events[0].SessionID != "whole" {
		t.Errorf("got %+v, want only the complete event", events)
	}
	if !reader.Truncated() {
		t.Error("expected Truncated to report the partial record")
	}
}

func TestFilterMatchZeroValue(t *testing.T) {
	if !(Filter{}).Match(Event{}) {
		t.Error("zero Filter should match every event")
	}
}
