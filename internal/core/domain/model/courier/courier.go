package courier

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"smartdelivery/internal/core/domain/model/kernel"
	"smartdelivery/internal/pkg/errs"
	"smartdelivery/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsInvalid is returned when the contact email is missing or malformed.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// emailPattern is deliberately loose; the directory only needs a plausible address.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Courier represents a delivery courier in the directory.
//
// Business rules:
//   - Courier must have a valid UUID, non-empty name and a well-formed unique email
//   - A courier may reference another courier as manager (optional, by id only)
//   - The last reported position is optional and bounded to valid coordinates
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// email is the unique contact address
	email string
	// managerID optionally references the courier's manager
	managerID *kernel.UUID
	// lastLat/lastLng is the last reported position, nil until first report
	lastLat *float64
	lastLng *float64
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier with the given identity and contact data.
// The manager reference is optional and must be a valid UUID when present.
func NewCourier(id kernel.UUID, name, email string, managerID *kernel.UUID) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setEmail(email),
		courier.setManagerID(managerID),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier from persistence, including the
// optional last reported position.
func RestoreCourier(id kernel.UUID, name, email string, managerID *kernel.UUID, lastLat, lastLng *float64) (*Courier, error) {
	courier, err := NewCourier(id, name, email, managerID)
	if err != nil {
		return nil, err
	}

	if (lastLat == nil) != (lastLng == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"position is invalid",
			errors.New("latitude and longitude must be set together"),
		)
	}
	if lastLat != nil {
		if err = courier.ReportPosition(*lastLat, *lastLng); err != nil {
			return nil, err
		}
	}

	return courier, nil
}

// Validate ensures the Courier was created through NewCourier or RestoreCourier.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's name.
func (c *Courier) Name() string {
	return c.name
}

// Email returns the courier's contact email.
func (c *Courier) Email() string {
	return c.email
}

// Manager returns the manager's courier ID, or nil when the courier has none.
func (c *Courier) Manager() *kernel.UUID {
	return c.managerID
}

// LastPosition returns the last reported latitude and longitude, or nils
// when the courier has never reported a position.
func (c *Courier) LastPosition() (*float64, *float64) {
	return c.lastLat, c.lastLng
}

// ReportPosition records the courier's last known position.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
func (c *Courier) ReportPosition(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return errs.NewValueIsOutOfRangeError("latitude", lat, -90, 90)
	}
	if lng < -180 || lng > 180 {
		return errs.NewValueIsOutOfRangeError("longitude", lng, -180, 180)
	}

	c.lastLat = &lat
	c.lastLng = &lng
	return nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid email address", email))
	}
	c.email = email
	return nil
}

func (c *Courier) setManagerID(managerID *kernel.UUID) error {
	if managerID != nil {
		if err := managerID.Validate(); err != nil {
			return err
		}
		if managerID.IsEqual(c.id) {
			return errs.NewValueIsInvalidErrorWithCause("manager", errors.New("courier cannot manage itself"))
		}
	}
	c.managerID = managerID
	return nil
}
