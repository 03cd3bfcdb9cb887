package log

import (
	"path/filepath"
	"testing"
	"time"
)

func writeTrace(t *testing.T, events ...Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.utrace")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func TestFilteredReader(t *testing.T) {
	base := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	path := writeTrace(t,
		Event{Timestamp: base, SessionID: "a", Direction: DirectionEncode, Form: FormLong, Category: CategoryConversion},
		Event{Timestamp: base.Add(time.Second), SessionID: "a", Direction: DirectionDecode, Form: FormMicro, Category: CategoryError},
		Event{Timestamp: base.Add(2 * time.Second), SessionID: "b", Direction: DirectionEncode, Form: FormMicro, Category: CategoryConversion},
		Event{Timestamp: base.Add(3 * time.Second), SessionID: "b", Direction: DirectionDecode, Form: FormWire, Category: CategoryValidation},
	)

	micro := FormMicro
	decode := DirectionDecode
	errs := CategoryError
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 4},
		{"session", Filter{SessionID: "b"}, 2},
		{"form", Filter{Form: &micro}, 2},
		{"direction", Filter{Direction: &decode}, 2},
		{"category", Filter{Category: &errs}, 1},
		{"time window", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"combined", Filter{SessionID: "a", Form: &micro}, 1},
		{"no match", Filter{SessionID: "c"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader failed: %v", err)
			}
			defer r.Close()

			events, err := r.ReadAll()
			if err != nil {
				t.Fatalf("ReadAll failed: %v", err)
			}
			if len(events) != tt.want {
				t.Errorf("got %d events, want %d", len(events), tt.want)
			}
		})
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.utrace")); err == nil {
		t.Error("expected error for missing file")
	}
}
