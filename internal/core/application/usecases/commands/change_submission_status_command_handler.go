package commands

import (
	"context"
	"log/slog"

	"punarvasthra/internal/core/application/notifications"
	"punarvasthra/internal/core/domain/model/submission"
)

// ChangeSubmissionStatusCommandHandler applies a staff decision to a resale
// submission and, on approval, runs the tracked notification protocol.
//
// The status change is committed before the notification attempt is made, so
// a mail failure can never block or roll back the decision. The attempt's
// result lives in the returned aggregate's delivery state; callers read it
// from there rather than from the error return.
type ChangeSubmissionStatusCommandHandler struct {
	uowFactory SubmissionUoWFactory
	dispatcher notifications.Dispatcher
	tracker    notifications.Tracker
	logger     *slog.Logger
}

// NewChangeSubmissionStatusCommandHandler creates a handler for submission review.
func NewChangeSubmissionStatusCommandHandler(
	uowFactory SubmissionUoWFactory,
	dispatcher notifications.Dispatcher,
	tracker notifications.Tracker,
	logger *slog.Logger,
) ChangeSubmissionStatusCommandHandler {
	return ChangeSubmissionStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		tracker:    tracker,
		logger:     logger,
	}
}

// Handle processes the review command and returns the updated submission.
// An illegal transition is rejected with an InvalidTransitionError and the
// stored record is left untouched. When the decision is an approval, the
// approval email is attempted after the status commit; its outcome is
// recorded on the submission and never surfaced as an error.
func (h ChangeSubmissionStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeSubmissionStatusCommand,
) (*submission.Submission, error) {
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

	repo := uow.SubmissionRepository()

	sub, err := repo.Get(ctx, cmd.SubmissionID())
	if err != nil {
		return nil, err
	}

	if err = sub.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, sub); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if sub.NotificationEligible() {
		h.notifyApproved(ctx, sub)
	}

	return sub, nil
}

func (h ChangeSubmissionStatusCommandHandler) notifyApproved(ctx context.Context, sub *submission.Submission) {
	outcome, err := h.tracker.AttemptAndRecord(ctx, sub,
		persistSubmission(h.uowFactory, sub),
		func(ctx context.Context) notifications.Outcome {
			return h.dispatcher.SendSubmissionApproved(ctx, sub)
		})
	if err != nil {
		h.logger.ErrorContext(ctx, "Approval notification attempt did not complete",
			"submissionID", sub.ID().String(), "error", err)
		return
	}

	if !outcome.Success {
		h.logger.WarnContext(ctx, "Approval notification delivery failed",
			"submissionID", sub.ID().String(), "detail", outcome.ErrorDetail)
	}
}
