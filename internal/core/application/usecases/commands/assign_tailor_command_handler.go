package commands

import (
	"context"
	"log/slog"

	"punarvasthra/internal/core/application/notifications"
	"punarvasthra/internal/core/domain/model/customization"
)

// AssignTailorCommandHandler assigns a tailor to a customization request and
// runs the tracked notification protocol for the assignment email.
//
// Like the submission approval flow, the assignment is committed before the
// email is attempted and a delivery failure is recorded on the request
// instead of being raised.
type AssignTailorCommandHandler struct {
	uowFactory CustomizationUoWFactory
	dispatcher notifications.Dispatcher
	tracker    notifications.Tracker
	logger     *slog.Logger
}

// NewAssignTailorCommandHandler creates a handler for tailor assignment.
func NewAssignTailorCommandHandler(
	uowFactory CustomizationUoWFactory,
	dispatcher notifications.Dispatcher,
	tracker notifications.Tracker,
	logger *slog.Logger,
) AssignTailorCommandHandler {
	return AssignTailorCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		tracker:    tracker,
		logger:     logger,
	}
}

// Handle processes the assignment command and returns the updated request.
// Assignment is only legal from the pending status; anything else is
// rejected with an InvalidTransitionError.
func (h AssignTailorCommandHandler) Handle(
	ctx context.Context,
	cmd AssignTailorCommand,
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

	if err = request.AssignTailor(cmd.TailorID()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, request); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifyAssigned(ctx, request)

	return request, nil
}

func (h AssignTailorCommandHandler) notifyAssigned(ctx context.Context, request *customization.Request) {
	outcome, err := h.tracker.AttemptAndRecord(ctx, request,
		persistCustomization(h.uowFactory, request),
		func(ctx context.Context) notifications.Outcome {
			return h.dispatcher.SendCustomizationAssigned(ctx, request)
		})
	if err != nil {
		h.logger.ErrorContext(ctx, "Assignment notification attempt did not complete",
			"requestID", request.ID().String(), "error", err)
		return
	}

	if !outcome.Success {
		h.logger.WarnContext(ctx, "Assignment notification delivery failed",
			"requestID", request.ID().String(), "detail", outcome.ErrorDetail)
	}
}
