package queries

import (
	"errors"
	"time"

	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/pkg/guard"
)

var ErrGetUnfinishedOrdersQueryIsNotConstructed = errors.New(
	"GetUnfinishedOrdersQuery must be created via NewGetUnfinishedOrdersQuery constructor",
)

// GetUnfinishedOrdersQuery retrieves every order still in flight: not yet
// delivered and not cancelled. Used by the fulfilment dashboard.
type GetUnfinishedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnfinishedOrdersQuery creates a parameterless query for orders in flight.
func NewGetUnfinishedOrdersQuery() GetUnfinishedOrdersQuery {
	return GetUnfinishedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnfinishedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnfinishedOrdersQueryIsNotConstructed)
}

// GetUnfinishedOrdersQueryResponse is one row of the in-flight order listing.
type GetUnfinishedOrdersQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string
	Customer    string
	TotalAmount float64
	Status      string
	PlacedAt    time.Time
}
