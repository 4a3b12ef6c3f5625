// Package parcel provides domain entities and business logic for parcel tracking.
// It implements the Parcel aggregate root with lifecycle management and state
// transitions from pickup through courier assignment to delivery.
//
// The package includes:
//   - Parcel: The aggregate root that manages parcel identity, addresses, and lifecycle
//   - Status: A state machine that enforces valid parcel status transitions
//   - TrackingCode: A value object for externally visible tracking identifiers
//
// Key business rules:
//   - Parcels must have a valid unique identifier, tracking code, sender, and addresses
//   - Parcel status follows a defined workflow: NEW -> PENDING -> DELIVERED
//   - Parcels can be reassigned to a different courier while in the PENDING status
//   - Parcels can only be delivered when in the PENDING status
//   - A parcel carries a courier reference and assignment timestamp exactly when
//     it is PENDING or DELIVERED, and a delivery timestamp exactly when DELIVERED
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package parcel
