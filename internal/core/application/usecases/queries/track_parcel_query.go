package queries

import (
	"errors"
	"time"

	"smartdelivery/internal/core/domain/model/parcel"
	"smartdelivery/internal/pkg/errs"
	"smartdelivery/internal/pkg/guard"
)

var (
	ErrTrackParcelQueryIsNotConstructed = errors.New(
		"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
	)
)

// TrackParcelQuery retrieves the public tracking view of a parcel by its
// tracking code. This is the lookup behind the customer-facing tracking page,
// so the response deliberately omits internal identifiers and addresses.
type TrackParcelQuery struct {
	trackingCode parcel.TrackingCode

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery creates a tracking lookup for the given code.
func NewTrackParcelQuery(trackingCode parcel.TrackingCode) (TrackParcelQuery, error) {
	if err := trackingCode.Validate(); err != nil {
		return TrackParcelQuery{}, errs.NewValueIsInvalidErrorWithCause("trackingCode", err)
	}

	return TrackParcelQuery{
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// TrackingCode returns the code being looked up.
func (q TrackParcelQuery) TrackingCode() parcel.TrackingCode {
	return q.trackingCode
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackParcelQueryIsNotConstructed if validation fails.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// TrackParcelQueryResponse is the externally visible tracking state.
type TrackParcelQueryResponse struct {
	TrackingCode string
	Status       string
	AssignedAt   *time.Time
	DeliveredAt  *time.Time
}
