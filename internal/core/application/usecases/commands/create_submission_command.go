package commands

import (
	"errors"

	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/core/domain/model/submission"
	"punarvasthra/internal/pkg/guard"
)

var ErrCreateSubmissionCommandIsNotConstructed = errors.New(
	"CreateSubmissionCommand must be created via NewCreateSubmissionCommand constructor",
)

// CreateSubmissionCommand represents a request to register a new resale
// submission. Field-level validation lives in the submission aggregate; the
// command only guards its own construction and the identifier.
type CreateSubmissionCommand struct { //nolint:recvcheck //using for validation
	submissionID kernel.UUID
	details      submission.Details

	guard guard.ConstructorGuard
}

// NewCreateSubmissionCommand creates a command to register a new resale submission.
func NewCreateSubmissionCommand(
	submissionID kernel.UUID,
	details submission.Details,
) (CreateSubmissionCommand, error) {
	if err := submissionID.Validate(); err != nil {
		return CreateSubmissionCommand{}, err
	}

	return CreateSubmissionCommand{
		submissionID: submissionID,
		details:      details,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSubmissionCommand) Validate() error {
	return c.guard.Validate(ErrCreateSubmissionCommandIsNotConstructed)
}

// SubmissionID returns the unique identifier for the submission.
func (c CreateSubmissionCommand) SubmissionID() kernel.UUID {
	return c.submissionID
}

// Details returns the customer-supplied submission content.
func (c CreateSubmissionCommand) Details() submission.Details {
	return c.details
}
