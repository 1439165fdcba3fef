package commands

import (
	"errors"
	"fmt"

	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/pkg/guard"
)

var ErrResendNotificationCommandIsNotConstructed = errors.New(
	"ResendNotificationCommand must be created via NewResendNotificationCommand constructor",
)

// RecordKind identifies which tracked record kind a resend targets.
// Orders are deliberately absent: their confirmation email is
// fire-and-forget and has nothing to resend.
type RecordKind string

const (
	KindSubmission           RecordKind = "submission"
	KindCustomizationRequest RecordKind = "customizationRequest"
)

// RecordKindFromString parses a record kind from its wire form.
func RecordKindFromString(s string) (RecordKind, error) {
	switch RecordKind(s) {
	case KindSubmission:
		return KindSubmission, nil
	case KindCustomizationRequest:
		return KindCustomizationRequest, nil
	default:
		return "", fmt.Errorf("unknown record kind: %q", s)
	}
}

// ResendNotificationCommand represents a manual retry of a tracked
// notification, typically after a delivery failure.
type ResendNotificationCommand struct { //nolint:recvcheck //using for validation
	kind     RecordKind
	recordID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResendNotificationCommand creates a command to retry a notification.
func NewResendNotificationCommand(kind RecordKind, recordID kernel.UUID) (ResendNotificationCommand, error) {
	if _, err := RecordKindFromString(string(kind)); err != nil {
		return ResendNotificationCommand{}, err
	}
	if err := recordID.Validate(); err != nil {
		return ResendNotificationCommand{}, err
	}

	return ResendNotificationCommand{
		kind:     kind,
		recordID: recordID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ResendNotificationCommand) Validate() error {
	return c.guard.Validate(ErrResendNotificationCommandIsNotConstructed)
}

// Kind returns the record kind the resend targets.
func (c ResendNotificationCommand) Kind() RecordKind {
	return c.kind
}

// RecordID returns the identifier of the record whose notification is retried.
func (c ResendNotificationCommand) RecordID() kernel.UUID {
	return c.recordID
}
