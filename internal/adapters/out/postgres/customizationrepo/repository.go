package customizationrepo

import (
	"context"
	"errors"
	"time"

	"punarvasthra/internal/core/domain/model/customization"
	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/core/domain/model/notification"
	"punarvasthra/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomizationRepository implements CustomizationRepository using GORM.
type GormCustomizationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomizationRepository creates a new GORM customization repository.
func NewGormCustomizationRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomizationRepository {
	return &GormCustomizationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customization request to the database.
func (r *GormCustomizationRepository) Add(ctx context.Context, aggregate *customization.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing customization request to the database. The
// mutable columns go through a map so that a cleared sent timestamp is
// written back as NULL; a struct update would skip it as a zero value.
func (r *GormCustomizationRepository) Update(ctx context.Context, aggregate *customization.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":               dto.Status,
			"assigned_tailor_id":   dto.AssignedTailorID,
			"notification_status":  dto.NotificationStatus,
			"notification_sent_at": dto.NotificationSentAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a customization request by ID.
func (r *GormCustomizationRepository) Get(ctx context.Context, id kernel.UUID) (*customization.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customizationRequest", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExpireStalePendingDeliveries marks pending deliveries last written before
// olderThan as failed.
func (r *GormCustomizationRepository) ExpireStalePendingDeliveries(
	ctx context.Context,
	olderThan time.Time,
) (int64, error) {
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("notification_status = ? AND updated_at < ?", int(notification.Pending), olderThan).
		Updates(map[string]any{
			"notification_status":  int(notification.Failed),
			"notification_sent_at": nil,
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
