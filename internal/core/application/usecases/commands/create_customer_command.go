package commands

import (
	"errors"
	"strings"

	"smartdelivery/internal/core/domain/model/customer"
	"smartdelivery/internal/pkg/errs"
	"smartdelivery/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand")

// CreateCustomerCommand registers a sender in the directory.
type CreateCustomerCommand struct {
	customerType customer.CustomerType
	name         string
	details      customer.Details

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a customer registration command.
func NewCreateCustomerCommand(customerType customer.CustomerType, name string, details customer.Details) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{}
	err := errors.Join(
		cmd.setCustomerType(customerType),
		cmd.setName(name),
	)
	if err != nil {
		return CreateCustomerCommand{}, err
	}
	cmd.details = details
	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c CreateCustomerCommand) CustomerType() customer.CustomerType {
	return c.customerType
}

func (c CreateCustomerCommand) Name() string {
	return c.name
}

func (c CreateCustomerCommand) Details() customer.Details {
	return c.details
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c *CreateCustomerCommand) setCustomerType(customerType customer.CustomerType) error {
	if err := customerType.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerType", err)
	}
	c.customerType = customerType
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
