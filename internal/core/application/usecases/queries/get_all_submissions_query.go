// Package queries contains read-side operations over the store's data.
// Query handlers bypass the domain model and read projections straight from
// the database, per the CQRS split.
package queries

import (
	"errors"
	"time"

	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/pkg/guard"
)

var ErrGetAllSubmissionsQueryIsNotConstructed = errors.New(
	"GetAllSubmissionsQuery must be created via NewGetAllSubmissionsQuery constructor",
)

// GetAllSubmissionsQuery retrieves every resale submission, newest first,
// for the staff review screen.
type GetAllSubmissionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllSubmissionsQuery creates a parameterless query for the listing.
func NewGetAllSubmissionsQuery() GetAllSubmissionsQuery {
	return GetAllSubmissionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllSubmissionsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllSubmissionsQueryIsNotConstructed)
}

// GetAllSubmissionsQueryResponse is one row of the submission listing.
// Status and notification status are carried in their wire form so the
// transport layer can embed them without further mapping.
type GetAllSubmissionsQueryResponse struct {
	ID                 kernel.UUID
	FullName           string
	Email              string
	SareeCount         int
	MaterialType       string
	PreferredBranch    string
	Status             string
	NotificationStatus string
	NotificationSentAt *time.Time
	SubmittedAt        time.Time
}
