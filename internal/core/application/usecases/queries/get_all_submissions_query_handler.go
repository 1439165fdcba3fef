package queries

import (
	"context"
	"time"

	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/core/domain/model/notification"
	"punarvasthra/internal/core/domain/model/submission"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllSubmissionsQueryHandler reads the submission listing from the database.
type GetAllSubmissionsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllSubmissionsQueryHandler creates a handler for the submission listing.
func NewGetAllSubmissionsQueryHandler(db *gorm.DB) GetAllSubmissionsQueryHandler {
	return GetAllSubmissionsQueryHandler{db: db}
}

// Handle executes the query. Rows come back newest first.
func (h GetAllSubmissionsQueryHandler) Handle(
	ctx context.Context,
	query GetAllSubmissionsQuery,
) ([]GetAllSubmissionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	submissions := make([]GetAllSubmissionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			full_name,
			email,
			saree_count,
			material_type,
			preferred_branch,
			status,
			notification_status,
			notification_sent_at,
			submitted_at
		FROM submissions
		ORDER BY submitted_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllSubmissionsQueryResponse
		var id uuid.UUID
		var status, notificationStatus int
		var sentAt *time.Time

		err = rows.Scan(
			&id,
			&resp.FullName,
			&resp.Email,
			&resp.SareeCount,
			&resp.MaterialType,
			&resp.PreferredBranch,
			&status,
			&notificationStatus,
			&sentAt,
			&resp.SubmittedAt,
		)
		if err != nil {
			return nil, err
		}

		submissionID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = submissionID
		resp.Status = submission.Status(status).String()
		resp.NotificationStatus = notification.Status(notificationStatus).String()
		resp.NotificationSentAt = sentAt
		submissions = append(submissions, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return submissions, nil
}
