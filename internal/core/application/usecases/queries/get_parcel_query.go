// Package queries contains read operations that bypass the domain model.
// Implements the query side of the CQRS architecture: handlers read
// denormalized rows straight from the database and return plain responses.
package queries

import (
	"errors"
	"time"

	"smartdelivery/internal/core/domain/model/kernel"
	"smartdelivery/internal/pkg/errs"
	"smartdelivery/internal/pkg/guard"
)

var (
	ErrGetParcelQueryIsNotConstructed = errors.New(
		"GetParcelQuery must be created via NewGetParcelQuery constructor",
	)
)

// GetParcelQuery retrieves the full lifecycle state of a single parcel by its
// internal identifier.
//
// Example:
//
//	query, err := NewGetParcelQuery(parcelID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetParcelQueryHandler(db)
//
//	info, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get parcel: %w", err)
//	}
//	fmt.Printf("Parcel %s is %s\n", info.TrackingCode, info.Status)
type GetParcelQuery struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a query to retrieve a parcel by ID.
func NewGetParcelQuery(parcelID kernel.UUID) (GetParcelQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelQuery{}, errs.NewValueIsInvalidErrorWithCause("parcelID", err)
	}

	return GetParcelQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ParcelID returns the identifier of the requested parcel.
func (q GetParcelQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelQueryIsNotConstructed if validation fails.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// GetParcelQueryResponse represents the full state of a parcel.
// Optional fields are nil until the corresponding lifecycle step happened.
type GetParcelQueryResponse struct {
	ID              kernel.UUID
	TrackingCode    string
	SenderID        kernel.UUID
	CourierID       *kernel.UUID
	PickupAddress   string
	DeliveryAddress string
	WeightKg        *float64
	Status          string
	AssignedAt      *time.Time
	DeliveredAt     *time.Time
}
