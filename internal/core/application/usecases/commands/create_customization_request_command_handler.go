package commands

import (
	"context"
	"time"

	"punarvasthra/internal/core/domain/model/customization"
)

// CreateCustomizationRequestCommandHandler handles registration of
// customization requests. New requests start pending with no tailor.
type CreateCustomizationRequestCommandHandler struct {
	uowFactory CustomizationUoWFactory
	now        func() time.Time
}

// NewCreateCustomizationRequestCommandHandler creates a handler for request registration.
func NewCreateCustomizationRequestCommandHandler(
	uowFactory CustomizationUoWFactory,
	now func() time.Time,
) CreateCustomizationRequestCommandHandler {
	return CreateCustomizationRequestCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the request registration command.
func (h CreateCustomizationRequestCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCustomizationRequestCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	request, err := customization.NewRequest(cmd.RequestID(), cmd.Details(), h.now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomizationRepository().Add(ctx, request); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
