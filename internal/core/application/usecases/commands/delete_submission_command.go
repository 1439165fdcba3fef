package commands

import (
	"errors"

	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/pkg/guard"
)

var ErrDeleteSubmissionCommandIsNotConstructed = errors.New(
	"DeleteSubmissionCommand must be created via NewDeleteSubmissionCommand constructor",
)

// DeleteSubmissionCommand represents a request to withdraw a resale
// submission before review.
type DeleteSubmissionCommand struct { //nolint:recvcheck //using for validation
	submissionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteSubmissionCommand creates a command to withdraw a submission.
func NewDeleteSubmissionCommand(submissionID kernel.UUID) (DeleteSubmissionCommand, error) {
	if err := submissionID.Validate(); err != nil {
		return DeleteSubmissionCommand{}, err
	}

	return DeleteSubmissionCommand{
		submissionID: submissionID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteSubmissionCommand) Validate() error {
	return c.guard.Validate(ErrDeleteSubmissionCommandIsNotConstructed)
}

// SubmissionID returns the identifier of the submission to delete.
func (c DeleteSubmissionCommand) SubmissionID() kernel.UUID {
	return c.submissionID
}
