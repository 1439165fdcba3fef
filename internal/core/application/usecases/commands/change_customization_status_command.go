package commands

import (
	"errors"

	"punarvasthra/internal/core/domain/model/customization"
	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/pkg/guard"
)

var ErrChangeCustomizationStatusCommandIsNotConstructed = errors.New(
	"ChangeCustomizationStatusCommand must be created via NewChangeCustomizationStatusCommand constructor",
)

// ChangeCustomizationStatusCommand represents a workflow move on a
// customization request other than tailor assignment: starting the work,
// completing it, or cancelling the request.
type ChangeCustomizationStatusCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	status    customization.Status

	guard guard.ConstructorGuard
}

// NewChangeCustomizationStatusCommand creates a command to move a request
// through its workflow. Requesting the assigned status this way is rejected
// by the aggregate; assignment goes through AssignTailorCommand.
func NewChangeCustomizationStatusCommand(
	requestID kernel.UUID,
	status customization.Status,
) (ChangeCustomizationStatusCommand, error) {
	if err := requestID.Validate(); err != nil {
		return ChangeCustomizationStatusCommand{}, err
	}
	if err := status.Validate(); err != nil {
		return ChangeCustomizationStatusCommand{}, err
	}

	return ChangeCustomizationStatusCommand{
		requestID: requestID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeCustomizationStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeCustomizationStatusCommandIsNotConstructed)
}

// RequestID returns the identifier of the request being moved.
func (c ChangeCustomizationStatusCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Status returns the requested status.
func (c ChangeCustomizationStatusCommand) Status() customization.Status {
	return c.status
}
