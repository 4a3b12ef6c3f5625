package ports

import (
	"context"

	"smartdelivery/internal/core/domain/model/customer"
	"smartdelivery/internal/core/domain/model/kernel"
)

// CustomerRepository is the customer directory consumed by the lifecycle
// engine. The engine only performs existence checks on sender references.
type CustomerRepository interface {
	// Add persists a new customer record.
	Add(ctx context.Context, customer *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such customer exists.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// Exists reports whether a customer with the given identifier exists.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
