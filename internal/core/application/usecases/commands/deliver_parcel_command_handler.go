package commands

import (
	"context"
	"errors"
	"time"

	"smartdelivery/internal/core/domain/model/parcel"
	"smartdelivery/internal/pkg/errs"
)

// DeliverParcelCommandHandler handles delivery confirmation for parcels.
type DeliverParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewDeliverParcelCommandHandler creates a handler for delivery confirmation operations.
func NewDeliverParcelCommandHandler(uowFactory ParcelUoWFactory) DeliverParcelCommandHandler {
	return DeliverParcelCommandHandler{uowFactory: uowFactory}
}

// Handle processes the delivery confirmation command.
//
// Only a parcel with an assigned courier can be delivered, and delivery is
// final. When two confirmations race, the version check makes the store
// accept exactly one; the loser re-reads the delivered parcel and fails its
// re-validation with parcel.ErrAlreadyDelivered.
func (h DeliverParcelCommandHandler) Handle(ctx context.Context, cmd DeliverParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcels := uow.ParcelRepository()

	var delivered *parcel.Parcel
	for attempt := range updateAttempts {
		p, err := parcels.Get(ctx, cmd.ParcelID())
		if err != nil {
			return nil, err
		}

		if err = p.Deliver(time.Now().UTC()); err != nil {
			return nil, err
		}

		err = parcels.Update(ctx, p)
		if err == nil {
			delivered = p
			break
		}
		if !errors.Is(err, errs.ErrVersionIsInvalid) || attempt == updateAttempts-1 {
			return nil, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return delivered, nil
}
