package commands

import (
	"context"
	"time"

	"punarvasthra/internal/core/domain/model/submission"
)

// CreateSubmissionCommandHandler handles the business logic for registering
// a resale submission. New submissions start in the pending review status
// with no notification triggered.
type CreateSubmissionCommandHandler struct {
	uowFactory SubmissionUoWFactory
	now        func() time.Time
}

// NewCreateSubmissionCommandHandler creates a handler for submission registration.
func NewCreateSubmissionCommandHandler(
	uowFactory SubmissionUoWFactory,
	now func() time.Time,
) CreateSubmissionCommandHandler {
	return CreateSubmissionCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the submission registration command.
// Creates the submission in pending status within a transaction.
func (h CreateSubmissionCommandHandler) Handle(ctx context.Context, cmd CreateSubmissionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newSubmission, err := submission.NewSubmission(cmd.SubmissionID(), cmd.Details(), h.now())
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

	if err = uow.SubmissionRepository().Add(ctx, newSubmission); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
