package log

import (
	"time"

	"github.com/google/uuid"
)

// Tracer stamps events with a session id and time before handing them to
// a Logger.
type Tracer struct {
	logger  Logger
	session string
	now     func() time.Time
}

// NewTracer creates a Tracer with a fresh session id. A nil logger
// discards all events.
func NewTracer(logger Logger) *Tracer {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &Tracer{logger: logger, session: uuid.NewString(), now: time.Now}
}

// SessionID returns the id stamped on every event.
func (t *Tracer) SessionID() string {
	return t.session
}

// Conversion records a successful conversion between the long form and a
// binary form. d is omitted when zero.
func (t *Tracer) Conversion(dir Direction, form Form, long string, data []byte, d time.Duration) {
	c := NewConversion(long, data)
	if d > 0 {
		c.Duration = &d
	}
	t.log(Event{Direction: dir, Form: form, Category: CategoryConversion, Conversion: c})
}

// Validation records the validator predicates of a URI.
func (t *Tracer) Validation(form Form, v *ValidationEvent) {
	t.log(Event{Direction: DirectionDecode, Form: form, Category: CategoryValidation, Validation: v})
}

// Error records a failed conversion of input.
func (t *Tracer) Error(dir Direction, form Form, err error, input []byte, context string) {
	t.log(Event{Direction: dir, Form: form, Category: CategoryError, Error: NewError(err, input, context)})
}

func (t *Tracer) log(event Event) {
	event.Timestamp = t.now()
	event.SessionID = t.session
	t.logger.Log(event)
}
