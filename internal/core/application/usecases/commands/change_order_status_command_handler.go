package commands

import (
	"context"
	"log/slog"

	"punarvasthra/internal/core/application/notifications"
	"punarvasthra/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler moves an order through its fulfilment
// sequence. Confirming an order sends the confirmation email fire-and-forget:
// the outcome is logged but not recorded on the order, and resending is not
// supported for this event.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher notifications.Dispatcher
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for order fulfilment moves.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher notifications.Dispatcher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle processes the fulfilment move and returns the updated order.
// Skipping a step, moving backward, or cancelling after shipping is rejected
// with an InvalidTransitionError and the stored record is left untouched.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
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

	repo := uow.OrderRepository()

	ord, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = ord.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, ord); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if ord.Status() == order.Confirmed {
		if outcome := h.dispatcher.SendOrderConfirmed(ctx, ord); !outcome.Success {
			h.logger.WarnContext(ctx, "Order confirmation delivery failed",
				"orderID", ord.ID().String(), "detail", outcome.ErrorDetail)
		}
	}

	return ord, nil
}
