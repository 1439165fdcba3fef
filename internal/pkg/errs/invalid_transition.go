package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel for rejected status transitions.
// Use errors.Is to classify an InvalidTransitionError regardless of record kind.
var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError indicates that a requested status change is not
// reachable from the record's current status. It carries the attempted pair
// so callers can surface exactly which move was rejected.
//
// The error is always produced before any write: a rejected transition never
// mutates stored state.
type InvalidTransitionError struct {
	Kind  string
	From  string
	To    string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the attempted pair.
func NewInvalidTransitionError(kind, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{
		Kind: kind,
		From: from,
		To:   to,
	}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(kind, from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{
		Kind:  kind,
		From:  from,
		To:    to,
		Cause: cause,
	}
}

func (e *InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidTransition, e.Kind, e.From, e.To)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
