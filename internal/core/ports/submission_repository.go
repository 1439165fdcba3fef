package ports

import (
	"context"
	"time"

	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/core/domain/model/submission"
)

// SubmissionRepository defines the persistence contract for resale
// submission aggregates. Each record is exclusively owned by the store;
// callers hold no independent copy of the notification fields.
type SubmissionRepository interface {
	// Add persists a new submission aggregate to storage.
	Add(ctx context.Context, aggregate *submission.Submission) error

	// Update persists changes to an existing submission aggregate,
	// including its status and notification fields.
	Update(ctx context.Context, aggregate *submission.Submission) error

	// Get retrieves a submission aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*submission.Submission, error)

	// Delete removes a submission from storage.
	// Business rules around deletability are enforced by the aggregate.
	Delete(ctx context.Context, id kernel.UUID) error

	// ExpireStalePendingDeliveries marks pending notification deliveries last
	// touched before olderThan as failed, making them eligible for a manual
	// resend. Returns the number of affected records. Used by crash recovery.
	ExpireStalePendingDeliveries(ctx context.Context, olderThan time.Time) (int64, error)
}
