package commands

import (
	"errors"
	"strings"

	"smartdelivery/internal/core/domain/model/kernel"
	"smartdelivery/internal/pkg/errs"
	"smartdelivery/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrPickupAddressIsRequired   = errs.NewValueIsRequiredError("pickup address")
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
	ErrWeightIsInvalid           = errs.NewValueIsInvalidError("weight must not be negative")
)

// CreateParcelCommand represents a request to register a new parcel.
// The sender is mandatory; the courier is optional. When supplied, the
// parcel goes straight to the PENDING status on creation.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	cmd, err := NewCreateParcelCommand(parcelID, senderID, "12 Oak St", "7 Elm St", &weight, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewCreateParcelCommandHandler(uowFactory, generator)
//	created, err := handler.Handle(ctx, cmd)
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID        kernel.UUID
	senderID        kernel.UUID
	pickupAddress   string
	deliveryAddress string
	weightKg        *float64
	courierID       *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates that identifiers are valid, both addresses are non-blank and the
// optional weight is non-negative. Returns an error if any validation fails.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	senderID kernel.UUID,
	pickupAddress string,
	deliveryAddress string,
	weightKg *float64,
	courierID *kernel.UUID,
) (CreateParcelCommand, error) {
	parcelCommand := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcelCommand.setParcelID(parcelID),
		parcelCommand.setSenderID(senderID),
		parcelCommand.setPickupAddress(pickupAddress),
		parcelCommand.setDeliveryAddress(deliveryAddress),
		parcelCommand.setWeightKg(weightKg),
		parcelCommand.setCourierID(courierID),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return parcelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// SenderID returns the identifier of the sending customer.
func (c CreateParcelCommand) SenderID() kernel.UUID {
	return c.senderID
}

// PickupAddress returns where the parcel is collected.
func (c CreateParcelCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryAddress returns where the parcel is delivered.
func (c CreateParcelCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// WeightKg returns the optional parcel weight in kilograms.
func (c CreateParcelCommand) WeightKg() *float64 {
	return c.weightKg
}

// CourierID returns the optional courier to assign immediately, or nil.
func (c CreateParcelCommand) CourierID() *kernel.UUID {
	return c.courierID
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sender", err)
	}

	c.senderID = senderID
	return nil
}

func (c *CreateParcelCommand) setPickupAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrPickupAddressIsRequired
	}

	c.pickupAddress = address
	return nil
}

func (c *CreateParcelCommand) setDeliveryAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = address
	return nil
}

func (c *CreateParcelCommand) setWeightKg(weightKg *float64) error {
	if weightKg != nil && *weightKg < 0 {
		return ErrWeightIsInvalid
	}

	c.weightKg = weightKg
	return nil
}

func (c *CreateParcelCommand) setCourierID(courierID *kernel.UUID) error {
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
	}

	c.courierID = courierID
	return nil
}
