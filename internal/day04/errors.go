package day04

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedRecord   = errors.New("malformed record")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrNoSleep           = errors.New("no sleep recorded")
)

// RecordError describes a log line that does not match any record shape.
type RecordError struct {
	Line   int
	Text   string
	Reason string
}

func (e *RecordError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d %q: %s", ErrMalformedRecord, e.Line, e.Text, e.Reason)
	}
	return fmt.Sprintf("%s: %q: %s", ErrMalformedRecord, e.Text, e.Reason)
}

func (e *RecordError) Unwrap() error { return ErrMalformedRecord }

// TransitionError describes an event the shift state machine cannot accept.
type TransitionError struct {
	Line  int
	State State
	Event Event
	Msg   string
}

func (e *TransitionError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("%s: %s while %s", ErrInvalidTransition, e.Event, e.State)
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d)", msg, e.Line)
	}
	return msg
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
