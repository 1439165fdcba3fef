package commands

import (
	"context"

	"punarvasthra/internal/core/application/notifications"
	"punarvasthra/internal/core/domain/model/customization"
	"punarvasthra/internal/core/domain/model/submission"
)

// Persistence closures for the delivery tracker. Each call commits its own
// transaction so the pending marker is durable before the transport call and
// the outcome is durable after it.

func persistSubmission(uowFactory SubmissionUoWFactory, s *submission.Submission) notifications.PersistFunc {
	return func(ctx context.Context) error {
		uow := uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		if err := uow.SubmissionRepository().Update(ctx, s); err != nil {
			return err
		}

		return uow.Commit(ctx)
	}
}

func persistCustomization(uowFactory CustomizationUoWFactory, r *customization.Request) notifications.PersistFunc {
	return func(ctx context.Context) error {
		uow := uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		if err := uow.CustomizationRepository().Update(ctx, r); err != nil {
			return err
		}

		return uow.Commit(ctx)
	}
}
