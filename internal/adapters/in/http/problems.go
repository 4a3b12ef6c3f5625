package http

import (
	"errors"
	"net/http"

	"smartdelivery/internal/core/domain/model/parcel"
	"smartdelivery/internal/core/domain/services"
	"smartdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain and application errors to HTTP status codes.
// Validation failures are client errors; lifecycle rule violations and
// directory uniqueness violations are conflicts. Tracking-code collisions
// and lost updates only surface after the handlers already retried once,
// so they come back as service-unavailable, safe for the caller to retry.
func respondError(ctx echo.Context, err error) error {
	var duplicate *errs.ObjectAlreadyExistsError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, err)
	case errors.As(err, &duplicate) && duplicate.ParamName == "trackingCode":
		return writeError(ctx, http.StatusServiceUnavailable, err)
	case errors.Is(err, parcel.ErrAlreadyDelivered),
		errors.Is(err, parcel.ErrNotYetAssigned),
		errors.Is(err, errs.ErrObjectAlreadyExists):
		return writeError(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, services.ErrTrackingCodeSpaceExhausted):
		return writeError(ctx, http.StatusServiceUnavailable, err)
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeError(ctx, http.StatusBadRequest, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}

func writeError(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
