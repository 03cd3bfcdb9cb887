// Package log provides structured conversion tracing for uProtocol tools.
//
// The codec packages never log. Tools that drive them (the up-uri CLI,
// test harnesses) record what they encoded, decoded and validated as Events
// through a Logger. This is separate from operational logging (slog): a
// trace is a machine-readable record that can be replayed and filtered.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For later analysis: write to a CBOR trace file
//	logger, _ := log.NewFileLogger("session.utrace")
//
//	// Both: use MultiLogger
//	logger := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Each event names the URI form involved (long, micro, wire, CloudEvent,
// Any) and carries one of:
//   - ConversionEvent: input and output of an encode or decode
//   - ValidationEvent: the validator predicates of a URI
//   - ErrorEventData: a failed conversion
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events with integer keys. The
// up-uri trace command filters and prints them.
package log
