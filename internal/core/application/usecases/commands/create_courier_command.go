package commands

import (
	"errors"
	"strings"

	"smartdelivery/internal/core/domain/model/kernel"
	"smartdelivery/internal/pkg/errs"
	"smartdelivery/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand")

// CreateCourierCommand registers a courier in the directory.
type CreateCourierCommand struct {
	name      string
	email     string
	managerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a courier registration command.
func NewCreateCourierCommand(name, email string, managerID *kernel.UUID) (CreateCourierCommand, error) {
	cmd := CreateCourierCommand{}
	err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setManagerID(managerID),
	)
	if err != nil {
		return CreateCourierCommand{}, err
	}
	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c CreateCourierCommand) Name() string {
	return c.name
}

func (c CreateCourierCommand) Email() string {
	return c.email
}

func (c CreateCourierCommand) ManagerID() *kernel.UUID {
	return c.managerID
}

func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

func (c *CreateCourierCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateCourierCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreateCourierCommand) setManagerID(managerID *kernel.UUID) error {
	if managerID != nil {
		if err := managerID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("managerID", err)
		}
	}
	c.managerID = managerID
	return nil
}
