package log

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func TestFileLoggerCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "node.alog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("log file was not created")
	}
}

func TestFileLoggerAppends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "node.alog")

	for _, state := range []string{"AP", "STATION"} {
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger failed: %v", err)
		}
		logger.Log(Event{
			Timestamp:   time.Now(),
			Category:    CategoryState,
			StateChange: &StateChangeEvent{NewState: state},
		})
		logger.Close()
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()

	dec := NewDecoder(f)
	var states []string
	for {
		var e Event
		if err := dec.Decode(&e); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		states = append(states, e.StateChange.NewState)
	}

	if len(states) != 2 || states[0] != "AP" || states[1] != "STATION" {
		t.Errorf("states = %v, want [AP STATION]", states)
	}
}

func TestFileLoggerThreadSafe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "node.alog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	const goroutines = 8
	const perGoroutine = 25

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				logger.Log(Event{Timestamp: time.Now(), Category: CategoryRequest})
			}
		}()
	}
	wg.Wait()
	logger.Close()

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	count := 0
	for {
		_, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		count++
	}

	if count != goroutines*perGoroutine {
		t.Errorf("got %d events, want %d", count, goroutines*perGoroutine)
	}
}

func TestFileLoggerClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "node.alog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	// Logging after close is ignored.
	logger.Log(Event{Category: CategoryState})

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("file size = %d after closed Log, want 0", info.Size())
	}
}

func TestFileLoggerRotates(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/logs/node.alog"

	event := Event{
		Timestamp: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
		Category:  CategoryCommand,
		Command:   &CommandEvent{Line: "startap -s rotate", Source: "serial"},
	}
	encoded, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	// The third event reaches the limit and triggers rotation.
	logger, err := OpenFileLogger(fs, path, int64(len(encoded))*3)
	if err != nil {
		t.Fatalf("OpenFileLogger failed: %v", err)
	}
	for i := 0; i < 4; i++ {
		logger.Log(event)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	count := func(p string) int {
		r, err := OpenReader(fs, p, Filter{})
		if err != nil {
			t.Fatalf("OpenReader(%s) failed: %v", p, err)
		}
		defer r.Close()
		return len(readAll(t, r))
	}

	if got := count(path + RotatedSuffix); got != 3 {
		t.Errorf("rotated file has %d events, want 3", got)
	}
	if got := count(path); got != 1 {
		t.Errorf("current file has %d events, want 1", got)
	}
}

func TestFileLoggerResumesSize(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/node.alog"

	if err := afero.WriteFile(fs, path, make([]byte, 100), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	logger, err := OpenFileLogger(fs, path, 50)
	if err != nil {
		t.Fatalf("OpenFileLogger failed: %v", err)
	}
	logger.Log(Event{Category: CategoryState})
	logger.Close()

	if ok, _ := afero.Exists(fs, path+RotatedSuffix); !ok {
		t.Error("expected oversized existing file to rotate on first write")
	}
}
