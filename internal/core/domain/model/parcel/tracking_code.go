package parcel

import (
	"fmt"
	"regexp"

	"smartdelivery/internal/pkg/errs"
)

// ErrTrackingCodeIsNotConstructed indicates that a TrackingCode was not
// initialized through NewTrackingCode. Returned when validating a zero value.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError("tracking code must be created via NewTrackingCode")

// trackingCodePattern is the fixed wire format of a tracking code:
// two uppercase letters followed by ten decimal digits, e.g. "RO0481516234".
var trackingCodePattern = regexp.MustCompile(`^[A-Z]{2}\d{10}$`)

// TrackingCode is a value object representing the externally visible unique
// identifier of a parcel, distinct from its internal UUID. It is immutable
// once set and globally unique across all parcels.
//
// The zero value is invalid; construct through NewTrackingCode.
type TrackingCode struct {
	value string
}

// NewTrackingCode creates a TrackingCode from its string form, validating it
// against the fixed format `^[A-Z]{2}\d{10}$`. It is used both when generating
// fresh codes and when reconstructing parcels from persistence.
func NewTrackingCode(value string) (TrackingCode, error) {
	if value == "" {
		return TrackingCode{}, errs.NewValueIsRequiredError("tracking code")
	}
	if !trackingCodePattern.MatchString(value) {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking code",
			fmt.Errorf("%q does not match format two uppercase letters + ten digits", value),
		)
	}

	return TrackingCode{value: value}, nil
}

// String returns the tracking code in its wire form.
func (c TrackingCode) String() string {
	return c.value
}

// IsEqual compares two tracking codes for equality.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}

// Validate checks that the tracking code was properly constructed.
func (c TrackingCode) Validate() error {
	if c.value == "" {
		return ErrTrackingCodeIsNotConstructed
	}
	return nil
}
