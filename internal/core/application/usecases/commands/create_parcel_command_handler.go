package commands

import (
	"context"
	"errors"
	"time"

	"smartdelivery/internal/core/domain/model/parcel"
	"smartdelivery/internal/core/domain/services"
	"smartdelivery/internal/pkg/errs"
)

// saveAttempts bounds how often the handler persists after a duplicate-code
// conflict: the first save plus exactly one regenerate-and-retry cycle. The
// store's unique constraint is the final arbiter of tracking-code uniqueness;
// the oracle check in the generator is only a pre-filter, so two concurrent
// creations may both draw the same code and race to the constraint.
const saveAttempts = 2

// CreateParcelCommandHandler handles the business logic for parcel creation.
// It validates the sender and optional courier against the directories,
// obtains a unique tracking code and persists the parcel in NEW status, or
// PENDING when a courier was supplied at creation.
//
// Example:
//
//	handler := NewCreateParcelCommandHandler(uowFactory, services.NewTrackingCodeGenerator(nil))
//	cmd, _ := NewCreateParcelCommand(kernel.NewUUID(), senderID, "12 Oak St", "7 Elm St", nil, nil)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("parcel creation failed: %w", err)
//	}
//	fmt.Printf("parcel %s registered", created.TrackingCode())
type CreateParcelCommandHandler struct {
	uowFactory    UoWFactory
	codeGenerator *services.TrackingCodeGenerator
}

// NewCreateParcelCommandHandler creates a handler for parcel creation operations.
// Requires a UoWFactory for transactional persistence and a code generator.
func NewCreateParcelCommandHandler(uowFactory UoWFactory, codeGenerator *services.TrackingCodeGenerator) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory:    uowFactory,
		codeGenerator: codeGenerator,
	}
}

// Handle processes the parcel creation command.
//
// Preconditions: the sender must resolve through the customer directory and
// the optional courier through the courier directory; both misses surface as
// errs.ObjectNotFoundError. Tracking-code space exhaustion surfaces as
// services.ErrTrackingCodeSpaceExhausted.
//
// A save rejected for a duplicate tracking code is treated as a collision and
// triggers one regenerate-and-retry cycle before the conflict is surfaced.
// Each attempt runs in its own transaction: after a unique violation Postgres
// aborts the transaction and rejects every further statement on it, so the
// retry cannot reuse the failed one. Either the full creation persists or
// nothing does.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for range saveAttempts {
		created, err := h.createParcel(ctx, cmd)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, errs.ErrObjectAlreadyExists) {
			return nil, err
		}
		// A concurrent creation won the race to this code; redraw and retry.
		lastErr = err
	}

	return nil, lastErr
}

// createParcel performs one full creation attempt inside a fresh unit of work.
func (h CreateParcelCommandHandler) createParcel(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcels := uow.ParcelRepository()

	senderExists, err := uow.CustomerRepository().Exists(ctx, cmd.SenderID())
	if err != nil {
		return nil, err
	}
	if !senderExists {
		return nil, errs.NewObjectNotFoundError("sender", cmd.SenderID().String())
	}

	if cmd.CourierID() != nil {
		if _, err = uow.CourierRepository().Get(ctx, *cmd.CourierID()); err != nil {
			return nil, err
		}
	}

	code, err := h.codeGenerator.GenerateUnique(ctx, parcels)
	if err != nil {
		return nil, err
	}

	p, err := parcel.NewParcel(
		cmd.ParcelID(),
		code,
		cmd.SenderID(),
		cmd.PickupAddress(),
		cmd.DeliveryAddress(),
		cmd.WeightKg(),
	)
	if err != nil {
		return nil, err
	}

	if cmd.CourierID() != nil {
		if err = p.Assign(*cmd.CourierID(), time.Now().UTC()); err != nil {
			return nil, err
		}
	}

	if err = parcels.Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
