package submissionrepo

import (
	"context"
	"errors"
	"time"

	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/core/domain/model/notification"
	"punarvasthra/internal/core/domain/model/submission"
	"punarvasthra/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSubmissionRepository implements SubmissionRepository using GORM.
type GormSubmissionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSubmissionRepository creates a new GORM submission repository.
func NewGormSubmissionRepository(db *gorm.DB, tracker aggregateTracker) *GormSubmissionRepository {
	return &GormSubmissionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new submission to the database.
func (r *GormSubmissionRepository) Add(ctx context.Context, aggregate *submission.Submission) error {
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

// Update saves an existing submission to the database, including its
// notification delivery columns. The mutable columns go through a map so
// that a cleared sent timestamp is written back as NULL; a struct update
// would skip it as a zero value.
func (r *GormSubmissionRepository) Update(ctx context.Context, aggregate *submission.Submission) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SubmissionDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":               dto.Status,
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

// Get retrieves a submission by ID.
func (r *GormSubmissionRepository) Get(ctx context.Context, id kernel.UUID) (*submission.Submission, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SubmissionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("submission", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a submission from the database.
func (r *GormSubmissionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&SubmissionDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("submission", id.String())
	}

	return nil
}

// ExpireStalePendingDeliveries marks pending deliveries last written before
// olderThan as failed. The pending commit touches updated_at, so the age of
// a pending marker is measured from the moment the attempt started.
func (r *GormSubmissionRepository) ExpireStalePendingDeliveries(
	ctx context.Context,
	olderThan time.Time,
) (int64, error) {
	result := r.db.WithContext(ctx).Model(&SubmissionDTO{}).
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
