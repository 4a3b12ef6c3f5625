package parcel

import (
	"errors"
	"fmt"

	"smartdelivery/internal/pkg/errs"
)

// Transition errors surfaced when a requested status change is not allowed
// from the parcel's current state.
var (
	// ErrAlreadyDelivered is returned when assigning or delivering a parcel
	// that has already reached the terminal DELIVERED status.
	ErrAlreadyDelivered = errors.New("parcel is already delivered")

	// ErrNotYetAssigned is returned when delivering a parcel that has never
	// been assigned to a courier.
	ErrNotYetAssigned = errors.New("parcel has not been assigned to a courier")
)

// Status represents the lifecycle state of a parcel.
// It implements a state machine with defined transitions to ensure
// parcels follow the correct delivery workflow.
//
// State transitions:
//
//	New ──┬──> Pending ──> Delivered
//	      │       │
//	      └───────┘
//	 (reassignment allowed)
//
// Transitions are monotonic: status never decreases, and Delivered is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when a parcel is registered without a courier.
	// Parcels in this status are waiting to be assigned.
	New

	// Pending indicates the parcel has been assigned to a courier and is in
	// transit. Parcels can be reassigned while in this status.
	Pending

	// Delivered indicates the parcel has reached its destination.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		New:       "NEW",
		Pending:   "PENDING",
		Delivered: "DELIVERED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "NEW",
		Pending:   "PENDING",
		Delivered: "DELIVERED",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: New, Pending, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-level name of the status: "NEW", "PENDING" or
// "DELIVERED" for valid statuses and "UNKNOWN" otherwise. Implements
// fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateAssign checks if the status allows courier assignment without
// performing the transition.
//
// Valid statuses for assignment:
//   - New (initial assignment)
//   - Pending (reassignment to a different courier)
//
// Delivered parcels can never be assigned: ErrAlreadyDelivered is returned.
// Any other status yields a validation error.
func (s Status) ValidateAssign() error {
	if s == Delivered {
		return ErrAlreadyDelivered
	}
	if s != New && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateDeliver checks if the status allows delivery confirmation without
// performing the transition.
//
// Only Pending parcels can be delivered. New parcels yield ErrNotYetAssigned,
// Delivered parcels yield ErrAlreadyDelivered, anything else a validation error.
func (s Status) ValidateDeliver() error {
	switch s {
	case Pending:
		return nil
	case New:
		return ErrNotYetAssigned
	case Delivered:
		return ErrAlreadyDelivered
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
}

// ValidateCanHaveCourier validates the consistency between parcel status and
// courier assignment.
//
// Business rules:
//   - New parcels must not have a courier assigned
//   - Pending and Delivered parcels must have a courier assigned
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != Pending && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s == Pending || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Pending.
//
// Valid transitions:
//   - New -> Pending (initial assignment)
//   - Pending -> Pending (reassignment to a different courier)
//
// Returns (0, error) if the transition is not allowed from the current status.
// This method is used by Parcel.Assign() to enforce state transitions.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Pending, nil
}

// Deliver transitions the status to Delivered.
//
// The only valid transition is Pending -> Delivered. Delivered is a final
// state with no further transitions possible.
//
// Returns (0, error) if the transition is not allowed from the current status.
// This method is used by Parcel.Deliver() to enforce state transitions.
func (s Status) Deliver() (Status, error) {
	if err := s.ValidateDeliver(); err != nil {
		return 0, err
	}

	return Delivered, nil
}
