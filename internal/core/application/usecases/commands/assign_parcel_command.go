package commands

import (
	"errors"

	"smartdelivery/internal/core/domain/model/kernel"
	"smartdelivery/internal/pkg/errs"
	"smartdelivery/internal/pkg/guard"
)

var ErrAssignParcelCommandIsNotConstructed = errors.New(
	"AssignParcelCommand must be created via NewAssignParcelCommand")

// AssignParcelCommand assigns a courier to a parcel. Re-issuing the command
// for an already assigned parcel moves it to the new courier.
type AssignParcelCommand struct {
	parcelID  kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignParcelCommand creates a courier assignment command.
func NewAssignParcelCommand(parcelID kernel.UUID, courierID kernel.UUID) (AssignParcelCommand, error) {
	cmd := AssignParcelCommand{}
	err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCourierID(courierID),
	)
	if err != nil {
		return AssignParcelCommand{}, err
	}
	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c AssignParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c AssignParcelCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c AssignParcelCommand) Validate() error {
	return c.guard.Validate(ErrAssignParcelCommandIsNotConstructed)
}

func (c *AssignParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("parcelID", err)
	}
	c.parcelID = parcelID
	return nil
}

func (c *AssignParcelCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("courierID", err)
	}
	c.courierID = courierID
	return nil
}
