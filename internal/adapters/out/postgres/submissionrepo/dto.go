// Package submissionrepo provides data transfer objects and mapping functions
// for resale submission persistence. It implements the repository pattern for
// the submission aggregate, handling conversion between domain entities and
// database rows, including the notification delivery columns.
package submissionrepo

import (
	"time"

	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/core/domain/model/notification"
	"punarvasthra/internal/core/domain/model/submission"

	"github.com/google/uuid"
)

// SubmissionDTO represents the database structure for persisting submission
// aggregates. The business status and the notification delivery state live
// in the same row, so both commit atomically.
//
// UpdatedAt is touched by GORM on every write; the stale-delivery sweep uses
// it to judge how long a delivery has been pending.
type SubmissionDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName           string
	ContactNumber      string
	Email              string
	Address            string
	SareeCount         int
	SareeCondition     string
	MaterialType       string
	ImagePath          string
	PreferredDate      string
	PreferredTime      string
	PreferredBranch    string
	Notes              string
	SubmittedAt        time.Time
	Status             int `gorm:"index"`
	NotificationStatus int `gorm:"index"`
	NotificationSentAt *time.Time
	UpdatedAt          time.Time
}

// TableName overrides GORM's default naming to use "submissions".
func (SubmissionDTO) TableName() string {
	return "submissions"
}

// fromDomain converts a submission aggregate to its database representation.
func fromDomain(aggregate *submission.Submission) SubmissionDTO {
	details := aggregate.Details()

	return SubmissionDTO{
		ID:                 aggregate.ID().Bytes(),
		FullName:           details.FullName,
		ContactNumber:      details.ContactNumber,
		Email:              details.Email,
		Address:            details.Address,
		SareeCount:         details.SareeCount,
		SareeCondition:     details.SareeCondition,
		MaterialType:       details.MaterialType,
		ImagePath:          details.ImagePath,
		PreferredDate:      details.PreferredDate,
		PreferredTime:      details.PreferredTime,
		PreferredBranch:    details.PreferredBranch,
		Notes:              details.Notes,
		SubmittedAt:        aggregate.SubmittedAt(),
		Status:             int(aggregate.Status()),
		NotificationStatus: int(aggregate.Delivery().Status()),
		NotificationSentAt: aggregate.Delivery().SentAt(),
	}
}

// toDomain converts a database row to a submission aggregate using RestoreSubmission.
func toDomain(dto SubmissionDTO) (*submission.Submission, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	delivery, err := notification.RestoreDelivery(
		notification.Status(dto.NotificationStatus),
		dto.NotificationSentAt,
	)
	if err != nil {
		return nil, err
	}

	return submission.RestoreSubmission(
		id,
		submission.Details{
			FullName:        dto.FullName,
			ContactNumber:   dto.ContactNumber,
			Email:           dto.Email,
			Address:         dto.Address,
			SareeCount:      dto.SareeCount,
			SareeCondition:  dto.SareeCondition,
			MaterialType:    dto.MaterialType,
			ImagePath:       dto.ImagePath,
			PreferredDate:   dto.PreferredDate,
			PreferredTime:   dto.PreferredTime,
			PreferredBranch: dto.PreferredBranch,
			Notes:           dto.Notes,
		},
		dto.SubmittedAt,
		submission.Status(dto.Status),
		delivery,
	)
}
