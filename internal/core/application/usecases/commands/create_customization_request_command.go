package commands

import (
	"errors"

	"punarvasthra/internal/core/domain/model/customization"
	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/pkg/guard"
)

var ErrCreateCustomizationRequestCommandIsNotConstructed = errors.New(
	"CreateCustomizationRequestCommand must be created via NewCreateCustomizationRequestCommand constructor",
)

// CreateCustomizationRequestCommand represents a request to register a new
// customization request.
type CreateCustomizationRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	details   customization.Details

	guard guard.ConstructorGuard
}

// NewCreateCustomizationRequestCommand creates a command to register a customization request.
func NewCreateCustomizationRequestCommand(
	requestID kernel.UUID,
	details customization.Details,
) (CreateCustomizationRequestCommand, error) {
	if err := requestID.Validate(); err != nil {
		return CreateCustomizationRequestCommand{}, err
	}

	return CreateCustomizationRequestCommand{
		requestID: requestID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomizationRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomizationRequestCommandIsNotConstructed)
}

// RequestID returns the unique identifier for the request.
func (c CreateCustomizationRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Details returns the customer-supplied request content.
func (c CreateCustomizationRequestCommand) Details() customization.Details {
	return c.details
}
