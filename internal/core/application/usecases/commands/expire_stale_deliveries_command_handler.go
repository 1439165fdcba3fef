package commands

import (
	"context"
	"time"
)

// ExpireStaleDeliveriesCommandHandler runs the stale-delivery sweep across
// both tracked record kinds in a single transaction.
type ExpireStaleDeliveriesCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewExpireStaleDeliveriesCommandHandler creates a handler for the sweep.
func NewExpireStaleDeliveriesCommandHandler(
	uowFactory UoWFactory,
	now func() time.Time,
) ExpireStaleDeliveriesCommandHandler {
	return ExpireStaleDeliveriesCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle expires stale pending deliveries and returns how many records were
// affected across submissions and customization requests.
func (h ExpireStaleDeliveriesCommandHandler) Handle(
	ctx context.Context,
	cmd ExpireStaleDeliveriesCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := h.now().Add(-cmd.OlderThan())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	submissions, err := uow.SubmissionRepository().ExpireStalePendingDeliveries(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	requests, err := uow.CustomizationRepository().ExpireStalePendingDeliveries(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return submissions + requests, nil
}
