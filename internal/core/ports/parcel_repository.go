package ports

import (
	"context"

	"smartdelivery/internal/core/domain/model/kernel"
	"smartdelivery/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// It is the store of record for tracking codes and lifecycle state, and the
// final arbiter of tracking-code uniqueness.
type ParcelRepository interface {
	// Add persists a new parcel aggregate.
	// Returns errs.ObjectAlreadyExistsError when the tracking code is already taken.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel using a compare-and-save
	// on the aggregate's version. Returns errs.VersionIsInvalidError when the
	// persisted version no longer matches (lost update), in which case the
	// caller must re-read and re-validate before retrying.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by its internal identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingCode retrieves a parcel by its externally visible tracking code.
	GetByTrackingCode(ctx context.Context, code parcel.TrackingCode) (*parcel.Parcel, error)

	// ExistsByTrackingCode reports whether any parcel already carries the code.
	// Serves as the uniqueness oracle for tracking code generation.
	ExistsByTrackingCode(ctx context.Context, code parcel.TrackingCode) (bool, error)

	// GetAllUndelivered retrieves all parcels that have not reached the
	// Delivered status, for monitoring and listing workflows.
	GetAllUndelivered(ctx context.Context) ([]*parcel.Parcel, error)
}
