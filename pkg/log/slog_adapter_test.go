package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"
)

func captureSlog(t *testing.T, level slog.Level, events ...Event) []map[string]any {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})
	adapter := NewSlogAdapter(slog.New(handler))
	for _, e := range events {
		adapter.Log(e)
	}

	var entries []map[string]any
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var entry map[string]any
		if err := dec.Decode(&entry); err != nil {
			t.Fatalf("failed to parse log output: %v", err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestSlogAdapterConversion(t *testing.T) {
	d := 2 * time.Microsecond
	entries := captureSlog(t, slog.LevelDebug, Event{
		Timestamp: time.Now(),
		SessionID: "s-1",
		Direction: DirectionEncode,
		Form:      FormMicro,
		Category:  CategoryConversion,
		Conversion: &ConversionEvent{
			Long:     "/body.access/1",
			Data:     []byte{0x01, 0x00},
			Size:     2,
			Duration: &d,
		},
	})

	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	want := map[string]any{
		"msg":       "uprotocol",
		"level":     "DEBUG",
		"session":   "s-1",
		"direction": "ENCODE",
		"form":      "MICRO",
		"category":  "CONVERSION",
		"long":      "/body.access/1",
		"data":      "0100",
	}
	for k, v := range want {
		if e[k] != v {
			t.Errorf("%s: got %v, want %v", k, e[k], v)
		}
	}
	if e["size"] != float64(2) {
		t.Errorf("size: got %v, want 2", e["size"])
	}
}

func TestSlogAdapterValidation(t *testing.T) {
	entries := captureSlog(t, slog.LevelDebug, Event{
		Form:     FormLong,
		Category: CategoryValidation,
		Validation: &ValidationEvent{
			URI:       "/body.access/1/rpc.UpdateDoor",
			LongForm:  true,
			RPCMethod: true,
		},
	})

	e := entries[0]
	if e["uri"] != "/body.access/1/rpc.UpdateDoor" {
		t.Errorf("uri: got %v", e["uri"])
	}
	if e["rpc_method"] != true || e["micro_form"] != false {
		t.Errorf("unexpected predicates: %v", e)
	}
}

func TestSlogAdapterErrorsAreWarnings(t *testing.T) {
	// Debug events are filtered at Info level but errors still get through.
	entries := captureSlog(t, slog.LevelInfo,
		Event{Category: CategoryConversion, Conversion: &ConversionEvent{}},
		Event{
			Category: CategoryError,
			Form:     FormMicro,
			Error:    NewError(errors.New("Invalid micro URI length"), []byte{0xab}, "decode"),
		},
	)

	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e["level"] != "WARN" {
		t.Errorf("level: got %v, want WARN", e["level"])
	}
	if e["error"] != "Invalid micro URI length" || e["input"] != "ab" || e["context"] != "decode" {
		t.Errorf("unexpected error attrs: %v", e)
	}
}

func TestSlogAdapterWithLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	adapter := NewSlogAdapter(slog.New(handler)).WithLevel(slog.LevelInfo)

	adapter.Log(Event{Category: CategoryConversion, Conversion: &ConversionEvent{}})
	if buf.Len() == 0 {
		t.Error("expected output at Info level")
	}
}
