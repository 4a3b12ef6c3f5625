package commands

import (
	"errors"

	"smartdelivery/internal/core/domain/model/kernel"
	"smartdelivery/internal/pkg/errs"
	"smartdelivery/internal/pkg/guard"
)

var ErrDeliverParcelCommandIsNotConstructed = errors.New(
	"DeliverParcelCommand must be created via NewDeliverParcelCommand")

// DeliverParcelCommand confirms delivery of an assigned parcel.
type DeliverParcelCommand struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverParcelCommand creates a delivery confirmation command.
func NewDeliverParcelCommand(parcelID kernel.UUID) (DeliverParcelCommand, error) {
	cmd := DeliverParcelCommand{}
	if err := cmd.setParcelID(parcelID); err != nil {
		return DeliverParcelCommand{}, err
	}
	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c DeliverParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c DeliverParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeliverParcelCommandIsNotConstructed)
}

func (c *DeliverParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("parcelID", err)
	}
	c.parcelID = parcelID
	return nil
}
