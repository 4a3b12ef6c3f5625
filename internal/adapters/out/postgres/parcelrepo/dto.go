// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
// This package implements the repository pattern for the parcel domain aggregate, handling
// the conversion between domain entities and database representations.
package parcelrepo

import (
	"time"

	"smartdelivery/internal/core/domain/model/kernel"
	"smartdelivery/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The unique index on tracking_code makes the database the final arbiter of
// tracking-code uniqueness, and the version column backs the compare-and-save
// used for concurrent lifecycle updates.
type ParcelDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingCode    string     `gorm:"type:varchar(12);uniqueIndex"`
	SenderID        uuid.UUID  `gorm:"type:uuid;index"`
	CourierID       *uuid.UUID `gorm:"type:uuid;index"`
	PickupAddress   string
	DeliveryAddress string
	WeightKg        *float64
	Status          int `gorm:"index"`
	AssignedAt      *time.Time
	DeliveredAt     *time.Time
	Version         int
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(p *parcel.Parcel) ParcelDTO {
	var courierID *uuid.UUID
	if id := p.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return ParcelDTO{
		ID:              p.ID().Bytes(),
		TrackingCode:    p.TrackingCode().String(),
		SenderID:        p.SenderID().Bytes(),
		CourierID:       courierID,
		PickupAddress:   p.PickupAddress(),
		DeliveryAddress: p.DeliveryAddress(),
		WeightKg:        p.WeightKg(),
		Status:          int(p.Status()),
		AssignedAt:      p.AssignedAt(),
		DeliveredAt:     p.DeliveredAt(),
		Version:         p.Version(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
// Reconstructs the complete aggregate including lifecycle timestamps and
// version using RestoreParcel, which re-checks cross-field invariants.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := parcel.NewTrackingCode(dto.TrackingCode)
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	return parcel.RestoreParcel(
		id,
		code,
		senderID,
		dto.PickupAddress,
		dto.DeliveryAddress,
		dto.WeightKg,
		parcel.Status(dto.Status),
		courierID,
		dto.AssignedAt,
		dto.DeliveredAt,
		dto.Version,
	)
}
