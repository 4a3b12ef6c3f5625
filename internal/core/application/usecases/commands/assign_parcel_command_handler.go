package commands

import (
	"context"
	"errors"
	"time"

	"smartdelivery/internal/core/domain/model/parcel"
	"smartdelivery/internal/pkg/errs"
)

// updateAttempts bounds how often a handler re-reads and retries after a lost
// update: the first save plus exactly one refresh-and-retry cycle. State rules
// are re-validated against the fresh copy on every cycle, so a transition that
// became illegal in the meantime fails with the domain error, not a stale write.
const updateAttempts = 2

// AssignParcelCommandHandler handles courier assignment for parcels.
type AssignParcelCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignParcelCommandHandler creates a handler for courier assignment operations.
func NewAssignParcelCommandHandler(uowFactory UoWFactory) AssignParcelCommandHandler {
	return AssignParcelCommandHandler{uowFactory: uowFactory}
}

// Handle processes the courier assignment command.
//
// The courier must resolve through the directory and the parcel must not be
// delivered yet. On a concurrent modification the parcel is re-read and the
// assignment re-applied once; a second conflict surfaces as
// errs.VersionIsInvalidError.
func (h AssignParcelCommandHandler) Handle(ctx context.Context, cmd AssignParcelCommand) (*parcel.Parcel, error) {
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

	if _, err := uow.CourierRepository().Get(ctx, cmd.CourierID()); err != nil {
		return nil, err
	}

	parcels := uow.ParcelRepository()

	var assigned *parcel.Parcel
	for attempt := range updateAttempts {
		p, err := parcels.Get(ctx, cmd.ParcelID())
		if err != nil {
			return nil, err
		}

		if err = p.Assign(cmd.CourierID(), time.Now().UTC()); err != nil {
			return nil, err
		}

		err = parcels.Update(ctx, p)
		if err == nil {
			assigned = p
			break
		}
		if !errors.Is(err, errs.ErrVersionIsInvalid) || attempt == updateAttempts-1 {
			return nil, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return assigned, nil
}
