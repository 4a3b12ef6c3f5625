package customer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"smartdelivery/internal/core/domain/model/kernel"
	"smartdelivery/internal/pkg/errs"
	"smartdelivery/internal/pkg/guard"
)

var (
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// CustomerType distinguishes private persons from companies.
type CustomerType int

const (
	// UnknownType represents an invalid or undefined customer type.
	UnknownType CustomerType = iota
	// Person is a private individual.
	Person
	// Company is a business customer, usually with a contact person.
	Company
)

// String returns the wire-level name of the customer type.
func (t CustomerType) String() string {
	switch t {
	case Person:
		return "PERSON"
	case Company:
		return "COMPANY"
	default:
		return "UNKNOWN"
	}
}

// Validate checks if the CustomerType value is valid.
func (t CustomerType) Validate() error {
	if t != Person && t != Company {
		return errs.NewValueIsInvalidErrorWithCause("customer type", fmt.Errorf("%d is not a valid customer type", t))
	}
	return nil
}

// Details carries the optional contact attributes of a customer. All fields
// may be empty; they exist for the directory, not for the lifecycle engine.
type Details struct {
	Email                  string
	Phone                  string
	ContactPerson          string
	DefaultPickupAddress   string
	DefaultDeliveryAddress string
}

// Customer represents a sender in the customer directory.
type Customer struct {
	id           kernel.UUID
	customerType CustomerType
	name         string
	details      Details
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer. Name and a valid type are mandatory;
// everything in Details is optional. createdAt must be non-zero.
func NewCustomer(id kernel.UUID, customerType CustomerType, name string, details Details, createdAt time.Time) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customerType.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Customer{
		id:           id,
		customerType: customerType,
		name:         name,
		details:      details,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreCustomer reconstructs a Customer from persistence.
func RestoreCustomer(id kernel.UUID, customerType CustomerType, name string, details Details, createdAt time.Time) (*Customer, error) {
	return NewCustomer(id, customerType, name, details, createdAt)
}

// Validate ensures the Customer was created through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Type returns whether the customer is a person or a company.
func (c *Customer) Type() CustomerType {
	return c.customerType
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// Details returns the customer's optional contact attributes.
func (c *Customer) Details() Details {
	return c.details
}

// CreatedAt returns when the customer record was created.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}
