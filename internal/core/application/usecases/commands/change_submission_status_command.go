package commands

import (
	"errors"

	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/core/domain/model/submission"
	"punarvasthra/internal/pkg/guard"
)

var ErrChangeSubmissionStatusCommandIsNotConstructed = errors.New(
	"ChangeSubmissionStatusCommand must be created via NewChangeSubmissionStatusCommand constructor",
)

// ChangeSubmissionStatusCommand represents a staff decision on a resale
// submission: approval or rejection.
type ChangeSubmissionStatusCommand struct { //nolint:recvcheck //using for validation
	submissionID kernel.UUID
	status       submission.Status

	guard guard.ConstructorGuard
}

// NewChangeSubmissionStatusCommand creates a command to record a staff decision.
// The requested status must be a known submission status; whether the
// transition is legal is decided by the aggregate.
func NewChangeSubmissionStatusCommand(
	submissionID kernel.UUID,
	status submission.Status,
) (ChangeSubmissionStatusCommand, error) {
	if err := submissionID.Validate(); err != nil {
		return ChangeSubmissionStatusCommand{}, err
	}
	if err := status.Validate(); err != nil {
		return ChangeSubmissionStatusCommand{}, err
	}

	return ChangeSubmissionStatusCommand{
		submissionID: submissionID,
		status:       status,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeSubmissionStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeSubmissionStatusCommandIsNotConstructed)
}

// SubmissionID returns the identifier of the submission being reviewed.
func (c ChangeSubmissionStatusCommand) SubmissionID() kernel.UUID {
	return c.submissionID
}

// Status returns the requested status.
func (c ChangeSubmissionStatusCommand) Status() submission.Status {
	return c.status
}
