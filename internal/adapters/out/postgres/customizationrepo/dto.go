// Package customizationrepo provides data transfer objects and mapping
// functions for customization request persistence.
package customizationrepo

import (
	"time"

	"punarvasthra/internal/core/domain/model/customization"
	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting customization
// request aggregates. Status, tailor assignment, and the notification
// delivery state live in the same row.
type RequestDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequesterName      string
	RequesterEmail     string
	Phone              string
	Address            string
	ProductType        string
	Material           string
	ColorDescription   string
	SpecialNotes       string
	CreatedAt          time.Time
	Status             int        `gorm:"index"`
	AssignedTailorID   *uuid.UUID `gorm:"type:uuid"`
	NotificationStatus int        `gorm:"index"`
	NotificationSentAt *time.Time
	UpdatedAt          time.Time
}

// TableName overrides GORM's default naming to use "customization_requests".
func (RequestDTO) TableName() string {
	return "customization_requests"
}

// fromDomain converts a request aggregate to its database representation.
func fromDomain(aggregate *customization.Request) RequestDTO {
	details := aggregate.Details()

	var tailorID *uuid.UUID
	if id := aggregate.AssignedTailor(); id != nil {
		raw := id.Bytes()
		tailorID = &raw
	}

	return RequestDTO{
		ID:                 aggregate.ID().Bytes(),
		RequesterName:      details.RequesterName,
		RequesterEmail:     details.RequesterEmail,
		Phone:              details.Phone,
		Address:            details.Address,
		ProductType:        details.ProductType,
		Material:           details.Material,
		ColorDescription:   details.ColorDescription,
		SpecialNotes:       details.SpecialNotes,
		CreatedAt:          aggregate.CreatedAt(),
		Status:             int(aggregate.Status()),
		AssignedTailorID:   tailorID,
		NotificationStatus: int(aggregate.Delivery().Status()),
		NotificationSentAt: aggregate.Delivery().SentAt(),
	}
}

// toDomain converts a database row to a request aggregate using RestoreRequest.
func toDomain(dto RequestDTO) (*customization.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var tailorID *kernel.UUID
	if dto.AssignedTailorID != nil {
		tID, tailorErr := kernel.UUIDFromBytes((*dto.AssignedTailorID)[:])
		if tailorErr != nil {
			return nil, tailorErr
		}

		tailorID = &tID
	}

	delivery, err := notification.RestoreDelivery(
		notification.Status(dto.NotificationStatus),
		dto.NotificationSentAt,
	)
	if err != nil {
		return nil, err
	}

	return customization.RestoreRequest(
		id,
		customization.Details{
			RequesterName:    dto.RequesterName,
			RequesterEmail:   dto.RequesterEmail,
			Phone:            dto.Phone,
			Address:          dto.Address,
			ProductType:      dto.ProductType,
			Material:         dto.Material,
			ColorDescription: dto.ColorDescription,
			SpecialNotes:     dto.SpecialNotes,
		},
		dto.CreatedAt,
		customization.Status(dto.Status),
		tailorID,
		delivery,
	)
}
