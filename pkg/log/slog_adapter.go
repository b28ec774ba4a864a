package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes diagnostic events to an slog.Logger.
// Useful for development when you want to see the trace on the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Validation failures and rejected
// driver calls are logged at Warn, everything else at Debug.
func (a *SlogAdapter) Log(event Event) {
	level := slog.LevelDebug
	attrs := []slog.Attr{
		slog.String("category", event.Category.String()),
		slog.String("component", event.Component.String()),
	}
	if event.SessionID != "" {
		attrs = append(attrs, slog.String("session", event.SessionID))
	}
	if event.Mode != "" {
		attrs = append(attrs, slog.String("mode", event.Mode))
	}

	switch {
	case event.Validation != nil:
		level = slog.LevelWarn
		attrs = append(attrs,
			slog.String("field", event.Validation.Field),
			slog.String("value", event.Validation.Value),
			slog.String("reason", event.Validation.Reason),
		)
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Driver != nil:
		attrs = append(attrs,
			slog.String("op", event.Driver.Operation),
			slog.Bool("applied", event.Driver.Applied),
		)
		if !event.Driver.Applied {
			level = slog.LevelWarn
			attrs = append(attrs, slog.String("error", event.Driver.Error))
		}
	case event.Request != nil:
		attrs = append(attrs,
			slog.String("method", event.Request.Method),
			slog.String("path", event.Request.Path),
			slog.Int("status", event.Request.Status),
			slog.Duration("duration", event.Request.Duration),
		)
		if event.Request.RequestID != "" {
			attrs = append(attrs, slog.String("request_id", event.Request.RequestID))
		}
	case event.Command != nil:
		attrs = append(attrs,
			slog.String("line", event.Command.Line),
			slog.String("source", event.Command.Source),
		)
		if event.Command.Error != "" {
			level = slog.LevelWarn
			attrs = append(attrs, slog.String("error", event.Command.Error))
		}
	}

	a.logger.LogAttrs(context.Background(), level, "diag", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
