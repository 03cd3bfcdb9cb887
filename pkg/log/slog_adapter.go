package log

import (
	"context"
	"encoding/hex"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogAdapter creates a SlogAdapter that logs at Debug level.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger, level: slog.LevelDebug}
}

// WithLevel returns a copy of the adapter logging at level.
func (a *SlogAdapter) WithLevel(level slog.Level) *SlogAdapter {
	return &SlogAdapter{logger: a.logger, level: level}
}

// Log writes the event to the slog logger. Error events are always logged
// at Warn level or above.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("form", event.Form.String()),
		slog.String("category", event.Category.String()),
	}
	level := a.level

	switch {
	case event.Conversion != nil:
		c := event.Conversion
		if c.Long != "" {
			attrs = append(attrs, slog.String("long", c.Long))
		}
		attrs = append(attrs,
			slog.String("data", hex.EncodeToString(c.Data)),
			slog.Int("size", c.Size),
		)
		if c.Truncated {
			attrs = append(attrs, slog.Bool("truncated", true))
		}
		if c.Duration != nil {
			attrs = append(attrs, slog.Duration("duration", *c.Duration))
		}
	case event.Validation != nil:
		v := event.Validation
		attrs = append(attrs,
			slog.String("uri", v.URI),
			slog.Bool("long_form", v.LongForm),
			slog.Bool("micro_form", v.MicroForm),
			slog.Bool("resolved", v.Resolved),
			slog.Bool("rpc_method", v.RPCMethod),
			slog.Bool("rpc_response", v.RPCResponse),
		)
	case event.Error != nil:
		attrs = append(attrs, slog.String("error", event.Error.Message))
		if len(event.Error.Input) > 0 {
			attrs = append(attrs, slog.String("input", hex.EncodeToString(event.Error.Input)))
		}
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("context", event.Error.Context))
		}
		level = max(level, slog.LevelWarn)
	}

	a.logger.LogAttrs(context.Background(), level, "uprotocol", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
