// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the parcel tracking system. It implements
// business logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - TrackingCodeGenerator: A domain service producing unique parcel tracking codes
//
// Domain services coordinate between aggregates and external collaborators,
// following Domain-Driven Design principles.
package services
