package ports

import (
	"context"
	"time"

	"punarvasthra/internal/core/domain/model/customization"
	"punarvasthra/internal/core/domain/model/kernel"
)

// CustomizationRepository defines the persistence contract for
// customization request aggregates.
type CustomizationRepository interface {
	// Add persists a new customization request aggregate to storage.
	Add(ctx context.Context, aggregate *customization.Request) error

	// Update persists changes to an existing request aggregate,
	// including its status, tailor assignment, and notification fields.
	Update(ctx context.Context, aggregate *customization.Request) error

	// Get retrieves a customization request aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customization.Request, error)

	// ExpireStalePendingDeliveries marks pending notification deliveries last
	// touched before olderThan as failed, making them eligible for a manual
	// resend. Returns the number of affected records. Used by crash recovery.
	ExpireStalePendingDeliveries(ctx context.Context, olderThan time.Time) (int64, error)
}
