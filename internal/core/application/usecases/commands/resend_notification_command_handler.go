package commands

import (
	"context"
	"fmt"

	"punarvasthra/internal/core/application/notifications"
	"punarvasthra/internal/core/domain/model/notification"
)

// ResendNotificationCommandHandler retries a tracked notification on demand.
//
// Unlike the status-change handlers, a delivery failure here IS surfaced as
// an error: the caller asked for the send itself, not for a status change
// that happens to notify. The protocol guards still apply, so a record with
// an attempt already pending is rejected rather than double-sent.
type ResendNotificationCommandHandler struct {
	submissionUoWFactory    SubmissionUoWFactory
	customizationUoWFactory CustomizationUoWFactory
	dispatcher              notifications.Dispatcher
	tracker                 notifications.Tracker
}

// NewResendNotificationCommandHandler creates a handler for manual resends.
func NewResendNotificationCommandHandler(
	submissionUoWFactory SubmissionUoWFactory,
	customizationUoWFactory CustomizationUoWFactory,
	dispatcher notifications.Dispatcher,
	tracker notifications.Tracker,
) ResendNotificationCommandHandler {
	return ResendNotificationCommandHandler{
		submissionUoWFactory:    submissionUoWFactory,
		customizationUoWFactory: customizationUoWFactory,
		dispatcher:              dispatcher,
		tracker:                 tracker,
	}
}

// Handle processes the resend and returns the record's delivery state after
// the attempt. Returns notification.ErrNotEligible when the record's status
// does not warrant the notification, notification.ErrDeliveryInProgress when
// an attempt is already pending, and notifications.ErrDeliveryFailed when
// the transport call did not succeed.
func (h ResendNotificationCommandHandler) Handle(
	ctx context.Context,
	cmd ResendNotificationCommand,
) (notification.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return notification.Delivery{}, err
	}

	switch cmd.Kind() {
	case KindSubmission:
		return h.resendSubmission(ctx, cmd)
	case KindCustomizationRequest:
		return h.resendCustomization(ctx, cmd)
	default:
		return notification.Delivery{}, fmt.Errorf("unknown record kind: %q", cmd.Kind())
	}
}

func (h ResendNotificationCommandHandler) resendSubmission(
	ctx context.Context,
	cmd ResendNotificationCommand,
) (notification.Delivery, error) {
	uow := h.submissionUoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return notification.Delivery{}, err
	}

	sub, err := uow.SubmissionRepository().Get(ctx, cmd.RecordID())
	if rollbackErr := uow.Rollback(ctx); rollbackErr != nil && err == nil {
		err = rollbackErr
	}
	if err != nil {
		return notification.Delivery{}, err
	}

	outcome, err := h.tracker.AttemptAndRecord(ctx, sub,
		persistSubmission(h.submissionUoWFactory, sub),
		func(ctx context.Context) notifications.Outcome {
			return h.dispatcher.SendSubmissionApproved(ctx, sub)
		})
	if err != nil {
		return sub.Delivery(), err
	}

	if !outcome.Success {
		return sub.Delivery(), fmt.Errorf("%w: %s", notifications.ErrDeliveryFailed, outcome.ErrorDetail)
	}

	return sub.Delivery(), nil
}

func (h ResendNotificationCommandHandler) resendCustomization(
	ctx context.Context,
	cmd ResendNotificationCommand,
) (notification.Delivery, error) {
	uow := h.customizationUoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return notification.Delivery{}, err
	}

	request, err := uow.CustomizationRepository().Get(ctx, cmd.RecordID())
	if rollbackErr := uow.Rollback(ctx); rollbackErr != nil && err == nil {
		err = rollbackErr
	}
	if err != nil {
		return notification.Delivery{}, err
	}

	outcome, err := h.tracker.AttemptAndRecord(ctx, request,
		persistCustomization(h.customizationUoWFactory, request),
		func(ctx context.Context) notifications.Outcome {
			return h.dispatcher.SendCustomizationAssigned(ctx, request)
		})
	if err != nil {
		return request.Delivery(), err
	}

	if !outcome.Success {
		return request.Delivery(), fmt.Errorf("%w: %s", notifications.ErrDeliveryFailed, outcome.ErrorDetail)
	}

	return request.Delivery(), nil
}
