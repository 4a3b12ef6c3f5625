package queries

import (
	"errors"

	"smartdelivery/internal/core/domain/model/kernel"
	"smartdelivery/internal/pkg/guard"
)

var (
	ErrGetUndeliveredParcelsQueryIsNotConstructed = errors.New(
		"GetUndeliveredParcelsQuery must be created via NewGetUndeliveredParcelsQuery constructor",
	)
)

// GetUndeliveredParcelsQuery retrieves all parcels still in transit.
// Returns parcels in "NEW" or "PENDING" status for monitoring and management.
type GetUndeliveredParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUndeliveredParcelsQuery creates a query to retrieve active parcels.
// This is a parameterless query that fetches all non-delivered parcels.
func NewGetUndeliveredParcelsQuery() GetUndeliveredParcelsQuery {
	return GetUndeliveredParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUndeliveredParcelsQueryIsNotConstructed if validation fails.
func (q GetUndeliveredParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetUndeliveredParcelsQueryIsNotConstructed)
}

// GetUndeliveredParcelsQueryResponse represents one in-transit parcel.
type GetUndeliveredParcelsQueryResponse struct {
	ID           kernel.UUID
	TrackingCode string
	Status       string
	CourierID    *kernel.UUID
}
