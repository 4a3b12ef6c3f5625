// Package ports defines repository interfaces for the parcel tracking core.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"smartdelivery/internal/core/domain/model/courier"
	"smartdelivery/internal/core/domain/model/kernel"
)

// CourierRepository is the courier directory consumed by the lifecycle engine.
// The engine only resolves couriers referenced by parcels; Add and Update
// exist for directory maintenance.
type CourierRepository interface {
	// Add persists a new courier record.
	// Returns errs.ObjectAlreadyExistsError when the email is already taken.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier record.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such courier exists.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// Exists reports whether a courier with the given identifier exists.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
