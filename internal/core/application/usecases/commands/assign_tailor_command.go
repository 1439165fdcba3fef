package commands

import (
	"errors"

	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/pkg/guard"
)

var ErrAssignTailorCommandIsNotConstructed = errors.New(
	"AssignTailorCommand must be created via NewAssignTailorCommand constructor",
)

// AssignTailorCommand represents a staff decision to hand a customization
// request to a tailor. The tailor travels with the transition so a request
// can never reach the assigned status without one.
type AssignTailorCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	tailorID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignTailorCommand creates a command to assign a tailor to a request.
func NewAssignTailorCommand(requestID, tailorID kernel.UUID) (AssignTailorCommand, error) {
	if err := errors.Join(
		requestID.Validate(),
		tailorID.Validate(),
	); err != nil {
		return AssignTailorCommand{}, err
	}

	return AssignTailorCommand{
		requestID: requestID,
		tailorID:  tailorID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTailorCommand) Validate() error {
	return c.guard.Validate(ErrAssignTailorCommandIsNotConstructed)
}

// RequestID returns the identifier of the request being assigned.
func (c AssignTailorCommand) RequestID() kernel.UUID {
	return c.requestID
}

// TailorID returns the identifier of the tailor taking the request.
func (c AssignTailorCommand) TailorID() kernel.UUID {
	return c.tailorID
}
