// Package commands implements the apnode-log CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/apnode/apnode-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Category  *log.Category
	Component *log.Component
}

func (f ViewFilter) filter() log.Filter {
	return log.Filter{Category: f.Category, Component: f.Component}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	session := shortenID(event.SessionID)

	mode := event.Mode
	if mode == "" {
		mode = "-"
	}
	fmt.Fprintf(w, "%s [session:%s] %-10s %-10s %s\n", ts, session, event.Component, event.Category, mode)

	switch {
	case event.Validation != nil:
		v := event.Validation
		fmt.Fprintf(w, "  Field: %s\n", v.Field)
		if v.Value != "" {
			fmt.Fprintf(w, "  Value: %q\n", v.Value)
		}
		fmt.Fprintf(w, "  Reason: %s\n", v.Reason)
	case event.StateChange != nil:
		sc := event.StateChange
		if sc.OldState != "" {
			fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
		} else {
			fmt.Fprintf(w, "  -> %s\n", sc.NewState)
		}
		if sc.Reason != "" {
			fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
		}
	case event.Driver != nil:
		d := event.Driver
		result := "applied"
		if !d.Applied {
			result = "rejected"
		}
		fmt.Fprintf(w, "  Operation: %s (%s)\n", d.Operation, result)
		if d.Error != "" {
			fmt.Fprintf(w, "  Error: %s\n", d.Error)
		}
	case event.Request != nil:
		r := event.Request
		fmt.Fprintf(w, "  %s %s -> %d (%s)\n", r.Method, r.Path, r.Status, formatDuration(r.Duration))
		if r.Remote != "" {
			fmt.Fprintf(w, "  Remote: %s\n", r.Remote)
		}
	case event.Command != nil:
		c := event.Command
		fmt.Fprintf(w, "  Line: %q", c.Line)
		if c.Source != "" {
			fmt.Fprintf(w, " from %s", c.Source)
		}
		fmt.Fprintln(w)
		if c.Error != "" {
			fmt.Fprintf(w, "  Error: %s\n", c.Error)
		}
	}

	fmt.Fprintln(w)
}

// shortenID returns the first 8 characters of an ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	if id == "" {
		return "-"
	}
	return id
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseCategoryFlag parses a category name (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	if c, ok := log.ParseCategory(strings.ToUpper(s)); ok {
		return c, nil
	}
	return 0, fmt.Errorf("invalid category: %s (must be validation, state, driver, request, or command)", s)
}

// ParseComponentFlag parses a component name (case-insensitive).
func ParseComponentFlag(s string) (log.Component, error) {
	if c, ok := log.ParseComponent(strings.ToUpper(s)); ok {
		return c, nil
	}
	return 0, fmt.Errorf("invalid component: %s", s)
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter.filter())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
}
