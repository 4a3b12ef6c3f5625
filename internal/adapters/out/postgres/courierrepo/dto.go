// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
package courierrepo

import (
	"smartdelivery/internal/core/domain/model/courier"
	"smartdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier records.
// The manager reference is a self-join on the couriers table.
type CourierDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(255)"`
	Email     string     `gorm:"type:varchar(255);uniqueIndex"`
	ManagerID *uuid.UUID `gorm:"type:uuid;index"`
	LastLat   *float64
	LastLng   *float64
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain entity to its database representation.
func fromDomain(c *courier.Courier) CourierDTO {
	var managerID *uuid.UUID
	if id := c.Manager(); id != nil {
		raw := id.Bytes()
		managerID = &raw
	}

	lat, lng := c.LastPosition()

	return CourierDTO{
		ID:        c.ID().Bytes(),
		Name:      c.Name(),
		Email:     c.Email(),
		ManagerID: managerID,
		LastLat:   lat,
		LastLng:   lng,
	}
}

// toDomain converts a database DTO to a courier domain entity.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var managerID *kernel.UUID
	if dto.ManagerID != nil {
		mID, managerErr := kernel.UUIDFromBytes((*dto.ManagerID)[:])
		if managerErr != nil {
			return nil, managerErr
		}

		managerID = &mID
	}

	return courier.RestoreCourier(id, dto.Name, dto.Email, managerID, dto.LastLat, dto.LastLng)
}
