package engine

import (
	"errors"
	"fmt"

	"github.com/dxlabs/dxindex/internal/feed"
)

// EventError reports a failure to process one event. The event is considered
// unprocessed in its entirety: handlers fail before persisting anything or
// leave the caller to treat the whole event as unapplied.
type EventError struct {
	// Code identifies the error category.
	Code EventErrorCode

	// Message is a human-readable description.
	Message string

	// EventType identifies the affected event's type.
	EventType feed.EventType

	// Seq is the engine sequence number assigned to the event.
	Seq int64

	// Err is the underlying cause, if any.
	Err error
}

// EventErrorCode categorizes event processing errors.
type EventErrorCode string

const (
	// ErrCodeMalformed indicates an event with missing or mismatched data.
	ErrCodeMalformed EventErrorCode = "MALFORMED_EVENT"

	// ErrCodeStoreFailure indicates the entity store failed mid-event.
	// Fatal for the current event; any retry belongs to the dispatcher.
	ErrCodeStoreFailure EventErrorCode = "STORE_FAILURE"
)

// Error implements the error interface.
func (e *EventError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s event (seq=%d): %v", e.Code, e.EventType, e.Seq, e.Err)
	}
	return fmt.Sprintf("%s: %s event (seq=%d): %s", e.Code, e.EventType, e.Seq, e.Message)
}

// Unwrap returns the underlying cause.
func (e *EventError) Unwrap() error {
	return e.Err
}

// IsMalformed reports whether err is a malformed-event rejection.
// Uses errors.As to handle wrapped errors.
func IsMalformed(err error) bool {
	var ee *EventError
	if errors.As(err, &ee) {
		return ee.Code == ErrCodeMalformed
	}
	return false
}

// IsStoreFailure reports whether err is a store failure.
// Uses errors.As to handle wrapped errors.
func IsStoreFailure(err error) bool {
	var ee *EventError
	if errors.As(err, &ee) {
		return ee.Code == ErrCodeStoreFailure
	}
	return false
}

func newMalformedError(eventType feed.EventType, seq int64, message string) *EventError {
	return &EventError{
		Code:      ErrCodeMalformed,
		Message:   message,
		EventType: eventType,
		Seq:       seq,
	}
}

func newStoreError(eventType feed.EventType, seq int64, err error) *EventError {
	return &EventError{
		Code:      ErrCodeStoreFailure,
		Message:   "entity store operation failed",
		EventType: eventType,
		Seq:       seq,
		Err:       err,
	}
}
