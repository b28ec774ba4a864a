package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/apnode/apnode-go/pkg/log"
)

func exportEvents() []log.Event {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	return []log.Event{
		{Timestamp: ts, SessionID: "s1", Category: log.CategoryCommand, Component: log.ComponentCLI, Mode: "AP",
			Command: &log.CommandEvent{Line: "stopap", Source: "serial"}},
		{Timestamp: ts, SessionID: "s1", Category: log.CategoryRequest, Component: log.ComponentRoutes,
			Request: &log.RequestEvent{Method: "GET", Path: "/list", Status: 500}},
	}
}

func exportTo(t *testing.T, format string) (string, error) {
	t.Helper()

	reader, err := log.NewReader(createTestLogFile(t, exportEvents()))
	if err != nil {
		t.Fatalf("failed to open log: %v", err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	err = export(reader, format, &buf)
	return buf.String(), err
}

func TestExportJSONL(t *testing.T) {
	output, err := exportTo(t, "jsonl")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %s", len(lines), output)
	}

	var decoded log.Event
	if err := json.Unmarshal([]byte(lines[0]), &decoded); err != nil {
		t.Fatalf("line is not valid JSON: %v", err)
	}
	if decoded.Command == nil || decoded.Command.Line != "stopap" {
		t.Errorf("expected stopap command, got %+v", decoded)
	}
}

func TestExportCSV(t *testing.T) {
	output, err := exportTo(t, "csv")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(output)).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(records))
	}
	if records[0][0] != "timestamp" {
		t.Errorf("expected header row, got %v", records[0])
	}

	cmd := records[1]
	if cmd[2] != "COMMAND" || cmd[3] != "CLI" || cmd[4] != "AP" || cmd[5] != "stopap" || cmd[6] != "serial" {
		t.Errorf("unexpected command row %v", cmd)
	}
	req := records[2]
	if req[5] != "GET /list" || req[6] != "500" {
		t.Errorf("unexpected request row %v", req)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	if _, err := exportTo(t, "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestRunExportToFile(t *testing.T) {
	path := createTestLogFile(t, exportEvents())
	out := filepath.Join(t.TempDir(), "events.csv")

	if err := RunExport(path, "csv", out); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.Contains(string(data), "stopap") {
		t.Errorf("expected exported command, got: %s", data)
	}
}
