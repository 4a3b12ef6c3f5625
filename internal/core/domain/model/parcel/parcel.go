package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"smartdelivery/internal/core/domain/model/kernel"
	"smartdelivery/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
	// through the NewParcel or RestoreParcel factory methods.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")
)

// Parcel represents a tracked package moving through pickup, courier assignment
// and delivery. It is the aggregate root that owns the lifecycle state machine.
//
// Parcel follows these invariants:
//   - Must have a valid unique identifier and tracking code
//   - Must reference a sender customer
//   - Pickup and delivery addresses must be non-blank
//   - Weight, when present, must be non-negative
//   - A courier reference and assignment timestamp are present exactly when
//     the parcel is Pending or Delivered
//   - A delivery timestamp is present exactly when the parcel is Delivered
//   - Status transitions are monotonic: New -> Pending -> Delivered
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Parcel struct {
	// id is the internal unique identifier for the parcel
	id kernel.UUID

	// trackingCode is the externally visible unique identifier, immutable once set
	trackingCode TrackingCode

	// senderID references the customer who sent the parcel
	senderID kernel.UUID

	// pickupAddress is where the parcel is collected
	pickupAddress string

	// deliveryAddress is where the parcel is delivered
	deliveryAddress string

	// weightKg is the optional parcel weight in kilograms (nil if unknown)
	weightKg *float64

	// courierID is the assigned courier's ID (nil while status is New)
	courierID *kernel.UUID

	// status represents the current state in the parcel lifecycle
	status Status

	// assignedAt is when the parcel was last assigned to a courier
	assignedAt *time.Time

	// deliveredAt is when the parcel was confirmed delivered
	deliveredAt *time.Time

	// version is the optimistic-concurrency token checked by the store on update
	version int

	// isConstructed ensures the parcel was created via a factory method
	isConstructed bool
}

// NewParcel creates a new Parcel in the New status. This is the entry point of
// the lifecycle: the tracking code is assigned here and never changes, the
// sender is mandatory, and no courier is attached yet (use Assign for that,
// including for the create-with-courier path).
//
// Parameters:
//   - id: unique identifier for the parcel
//   - trackingCode: the generated unique tracking code
//   - senderID: identifier of the sending customer
//   - pickupAddress, deliveryAddress: non-blank addresses
//   - weightKg: optional weight, must be >= 0 when present
//
// Returns a validation error if any parameter is invalid; errors for multiple
// invalid parameters are joined.
func NewParcel(
	id kernel.UUID,
	trackingCode TrackingCode,
	senderID kernel.UUID,
	pickupAddress string,
	deliveryAddress string,
	weightKg *float64,
) (*Parcel, error) {
	parcel := &Parcel{
		status:        New,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		parcel.setID(id),
		parcel.setTrackingCode(trackingCode),
		parcel.setSenderID(senderID),
		parcel.setPickupAddress(pickupAddress),
		parcel.setDeliveryAddress(deliveryAddress),
		parcel.setWeightKg(weightKg),
	); err != nil {
		return nil, err
	}

	return parcel, nil
}

// RestoreParcel reconstructs a Parcel from persistence with its full state.
// Unlike NewParcel it accepts any valid status together with the courier
// reference, timestamps and version, and re-checks cross-field invariants:
// the courier reference and assignedAt must be present exactly when the
// status is Pending or Delivered, and deliveredAt exactly when Delivered.
func RestoreParcel(
	id kernel.UUID,
	trackingCode TrackingCode,
	senderID kernel.UUID,
	pickupAddress string,
	deliveryAddress string,
	weightKg *float64,
	status Status,
	courierID *kernel.UUID,
	assignedAt *time.Time,
	deliveredAt *time.Time,
	version int,
) (*Parcel, error) {
	parcel := &Parcel{
		isConstructed: true,
	}

	if err := errors.Join(
		parcel.setID(id),
		parcel.setTrackingCode(trackingCode),
		parcel.setSenderID(senderID),
		parcel.setPickupAddress(pickupAddress),
		parcel.setDeliveryAddress(deliveryAddress),
		parcel.setWeightKg(weightKg),
		parcel.setStatus(status),
		parcel.setVersion(version),
	); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}
	if err := validateTimestamps(status, assignedAt, deliveredAt); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	parcel.courierID = courierID
	parcel.assignedAt = assignedAt
	parcel.deliveredAt = deliveredAt
	return parcel, nil
}

// validateTimestamps enforces the timestamp/status consistency invariants.
func validateTimestamps(status Status, assignedAt, deliveredAt *time.Time) error {
	assigned := status == Pending || status == Delivered
	if assigned != (assignedAt != nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"assignedAt is invalid",
			fmt.Errorf("assignedAt must be set exactly when status is PENDING or DELIVERED, status is %s", status),
		)
	}

	delivered := status == Delivered
	if delivered != (deliveredAt != nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveredAt is invalid",
			fmt.Errorf("deliveredAt must be set exactly when status is DELIVERED, status is %s", status),
		)
	}

	return nil
}

// Validate ensures the Parcel instance was properly constructed through a
// factory method. Call when reconstructing parcels from external input.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}

	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's internal unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingCode returns the parcel's externally visible tracking code.
func (p *Parcel) TrackingCode() TrackingCode {
	return p.trackingCode
}

// SenderID returns the identifier of the sending customer.
func (p *Parcel) SenderID() kernel.UUID {
	return p.senderID
}

// PickupAddress returns the pickup address.
func (p *Parcel) PickupAddress() string {
	return p.pickupAddress
}

// DeliveryAddress returns the delivery address.
func (p *Parcel) DeliveryAddress() string {
	return p.deliveryAddress
}

// WeightKg returns the parcel weight in kilograms, or nil when unknown.
func (p *Parcel) WeightKg() *float64 {
	return p.weightKg
}

// Status returns the current status of the parcel.
func (p *Parcel) Status() Status {
	return p.status
}

// CourierID returns the assigned courier's ID, or nil if no courier is assigned.
func (p *Parcel) CourierID() *kernel.UUID {
	return p.courierID
}

// AssignedAt returns when the parcel was last assigned, or nil while New.
func (p *Parcel) AssignedAt() *time.Time {
	return p.assignedAt
}

// DeliveredAt returns when the parcel was delivered, or nil until then.
func (p *Parcel) DeliveredAt() *time.Time {
	return p.deliveredAt
}

// Version returns the optimistic-concurrency token of the loaded snapshot.
// The store compares it on save and rejects the write when it no longer
// matches the persisted version.
func (p *Parcel) Version() int {
	return p.version
}

// Assign attaches the parcel to a courier and moves it to the Pending status.
//
// Business rules:
//   - The courier ID must be valid and the timestamp non-zero
//   - The parcel must be New or Pending; reassignment while Pending is allowed
//     and replaces the courier silently
//   - assignedAt is refreshed on every (re)assignment
//   - A Delivered parcel can never be assigned: ErrAlreadyDelivered
//
// On failure the parcel is left exactly as before the call.
func (p *Parcel) Assign(courierID kernel.UUID, at time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("assignment time")
	}

	newStatus, err := p.status.Assign()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.courierID = &courierID
	p.assignedAt = &at
	return nil
}

// Deliver confirms delivery of the parcel and moves it to the terminal
// Delivered status, stamping deliveredAt.
//
// Business rules:
//   - The parcel must be Pending exactly
//   - A New parcel yields ErrNotYetAssigned
//   - A Delivered parcel yields ErrAlreadyDelivered
//
// On failure the parcel is left exactly as before the call.
func (p *Parcel) Deliver(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("delivery time")
	}

	newStatus, err := p.status.Deliver()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.deliveredAt = &at
	return nil
}

// setID validates and sets the parcel's unique identifier.
func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setTrackingCode validates and sets the parcel's tracking code.
func (p *Parcel) setTrackingCode(code TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	p.trackingCode = code
	return nil
}

// setSenderID validates and sets the sender customer reference.
func (p *Parcel) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sender", err)
	}
	p.senderID = senderID
	return nil
}

// setPickupAddress validates and sets the pickup address.
func (p *Parcel) setPickupAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("pickup address")
	}
	p.pickupAddress = address
	return nil
}

// setDeliveryAddress validates and sets the delivery address.
func (p *Parcel) setDeliveryAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	p.deliveryAddress = address
	return nil
}

// setWeightKg validates and sets the optional weight.
// Weight is allowed to be absent but never negative.
func (p *Parcel) setWeightKg(weightKg *float64) error {
	if weightKg != nil && *weightKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid", fmt.Errorf("%g is negative", *weightKg))
	}
	p.weightKg = weightKg
	return nil
}

// setStatus validates and sets the restored status.
func (p *Parcel) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

// setVersion validates and sets the restored version.
func (p *Parcel) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidErrorWithCause("parcel version", fmt.Errorf("%d is not a positive version", version))
	}
	p.version = version
	return nil
}
