package commands

import (
	"context"

	"punarvasthra/internal/core/domain/model/customization"
)

// ChangeCustomizationStatusCommandHandler moves a customization request
// through its workflow. None of these moves trigger a notification; only
// tailor assignment does.
type ChangeCustomizationStatusCommandHandler struct {
	uowFactory CustomizationUoWFactory
}

// NewChangeCustomizationStatusCommandHandler creates a handler for workflow moves.
func NewChangeCustomizationStatusCommandHandler(
	uowFactory CustomizationUoWFactory,
) ChangeCustomizationStatusCommandHandler {
	return ChangeCustomizationStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the workflow move and returns the updated request.
// An illegal move is rejected with an InvalidTransitionError and the stored
// record is left untouched.
func (h ChangeCustomizationStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeCustomizationStatusCommand,
) (*customization.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomizationRepository()

	request, err := repo.Get(ctx, cmd.RequestID())
	if err != nil {
		return nil, err
	}

	if err = request.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, request); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return request, nil
}
