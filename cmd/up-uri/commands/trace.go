package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/uprotocol/up-go/pkg/log"
)

// TraceStats counts the events printed by RunTrace.
type TraceStats struct {
	Events     int
	ByCategory map[log.Category]int
	ByForm     map[log.Form]int
}

// RunTrace prints the events of a trace file that match filter.
func RunTrace(path string, filter log.Filter, output io.Writer) (TraceStats, error) {
	stats := TraceStats{
		ByCategory: make(map[log.Category]int),
		ByForm:     make(map[log.Form]int),
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return stats, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("failed to read event: %w", err)
		}

		formatEvent(output, event)
		stats.Events++
		stats.ByCategory[event.Category]++
		stats.ByForm[event.Form]++
	}
	return stats, nil
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [session:%s] %-6s %-10s %s\n",
		ts, shortenID(event.SessionID), event.Direction, event.Form, event.Category)

	switch {
	case event.Conversion != nil:
		c := event.Conversion
		if c.Long != "" {
			fmt.Fprintf(w, "  Long: %s\n", c.Long)
		}
		if c.Size > 0 {
			fmt.Fprintf(w, "  Data: %s", hex.EncodeToString(c.Data))
			if c.Truncated {
				fmt.Fprintf(w, " (truncated, %d bytes)", c.Size)
			}
			fmt.Fprintln(w)
		}
		if c.Duration != nil {
			fmt.Fprintf(w, "  Duration: %s\n", formatDuration(*c.Duration))
		}
	case event.Validation != nil:
		v := event.Validation
		fmt.Fprintf(w, "  URI: %s\n", v.URI)
		var flags []string
		for _, f := range []struct {
			set  bool
			name string
		}{
			{v.LongForm, "long"},
			{v.MicroForm, "micro"},
			{v.Resolved, "resolved"},
			{v.RPCMethod, "rpc-method"},
			{v.RPCResponse, "rpc-response"},
		} {
			if f.set {
				flags = append(flags, f.name)
			}
		}
		if len(flags) == 0 {
			flags = append(flags, "none")
		}
		fmt.Fprintf(w, "  Forms: %s\n", strings.Join(flags, ", "))
	case event.Error != nil:
		fmt.Fprintf(w, "  Message: %s\n", event.Error.Message)
		if len(event.Error.Input) > 0 {
			fmt.Fprintf(w, "  Input: %s\n", hex.EncodeToString(event.Error.Input))
		}
		if event.Error.Context != "" {
			fmt.Fprintf(w, "  Context: %s\n", event.Error.Context)
		}
	}

	fmt.Fprintln(w)
}

// shortenID returns the first 8 characters of a session id.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
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

// ParseDirectionFlag parses a direction string (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "encode":
		return log.DirectionEncode, nil
	case "decode":
		return log.DirectionDecode, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be encode or decode)", s)
	}
}

// ParseFormFlag parses a trace form string (case-insensitive).
func ParseFormFlag(s string) (log.Form, error) {
	f, ok := log.ParseForm(s)
	if !ok {
		return 0, fmt.Errorf("invalid form: %s (must be long, micro, wire, cloudevent, or any)", s)
	}
	return f, nil
}

// ParseCategoryFlag parses a category string (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "conversion":
		return log.CategoryConversion, nil
	case "validation":
		return log.CategoryValidation, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be conversion, validation, or error)", s)
	}
}
