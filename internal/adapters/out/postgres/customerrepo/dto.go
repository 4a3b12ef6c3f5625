// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
package customerrepo

import (
	"time"

	"smartdelivery/internal/core/domain/model/customer"
	"smartdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer records.
type CustomerDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type                   int
	Name                   string `gorm:"type:varchar(255)"`
	Email                  string `gorm:"type:varchar(255)"`
	Phone                  string `gorm:"type:varchar(64)"`
	ContactPerson          string `gorm:"type:varchar(255)"`
	DefaultPickupAddress   string
	DefaultDeliveryAddress string
	CreatedAt              time.Time
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain entity to its database representation.
func fromDomain(c *customer.Customer) CustomerDTO {
	details := c.Details()

	return CustomerDTO{
		ID:                     c.ID().Bytes(),
		Type:                   int(c.Type()),
		Name:                   c.Name(),
		Email:                  details.Email,
		Phone:                  details.Phone,
		ContactPerson:          details.ContactPerson,
		DefaultPickupAddress:   details.DefaultPickupAddress,
		DefaultDeliveryAddress: details.DefaultDeliveryAddress,
		CreatedAt:              c.CreatedAt(),
	}
}

// toDomain converts a database DTO to a customer domain entity.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	details := customer.Details{
		Email:                  dto.Email,
		Phone:                  dto.Phone,
		ContactPerson:          dto.ContactPerson,
		DefaultPickupAddress:   dto.DefaultPickupAddress,
		DefaultDeliveryAddress: dto.DefaultDeliveryAddress,
	}

	return customer.RestoreCustomer(id, customer.CustomerType(dto.Type), dto.Name, details, dto.CreatedAt)
}
