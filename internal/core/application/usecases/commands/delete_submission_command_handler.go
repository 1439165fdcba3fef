package commands

import (
	"context"
	"log/slog"

	"punarvasthra/internal/core/ports"
)

// DeleteSubmissionCommandHandler handles withdrawal of resale submissions.
// Only submissions still awaiting review can be withdrawn; reviewed ones are
// part of the audit trail and stay.
type DeleteSubmissionCommandHandler struct {
	uowFactory SubmissionUoWFactory
	storage    ports.Storage
	logger     *slog.Logger
}

// NewDeleteSubmissionCommandHandler creates a handler for submission withdrawal.
func NewDeleteSubmissionCommandHandler(
	uowFactory SubmissionUoWFactory,
	storage ports.Storage,
	logger *slog.Logger,
) DeleteSubmissionCommandHandler {
	return DeleteSubmissionCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
		logger:     logger,
	}
}

// Handle processes the withdrawal command.
// Returns submission.ErrNotDeletable when the submission has already been
// reviewed. The uploaded saree image, when present, is removed from storage
// after the record delete commits; an image cleanup failure is logged and
// never fails the withdrawal.
func (h DeleteSubmissionCommandHandler) Handle(ctx context.Context, cmd DeleteSubmissionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SubmissionRepository()

	sub, err := repo.Get(ctx, cmd.SubmissionID())
	if err != nil {
		return err
	}

	if err = sub.EnsureDeletable(); err != nil {
		return err
	}

	if err = repo.Delete(ctx, sub.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if imagePath := sub.Details().ImagePath; imagePath != "" {
		if err = h.storage.Delete(ctx, imagePath); err != nil {
			h.logger.WarnContext(ctx, "Failed to remove submission image",
				"submissionID", sub.ID().String(), "path", imagePath, "error", err)
		}
	}

	return nil
}
