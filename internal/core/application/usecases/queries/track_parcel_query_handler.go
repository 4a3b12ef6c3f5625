package queries

import (
	"context"
	"database/sql"

	"smartdelivery/internal/core/domain/model/parcel"
	"smartdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackParcelQueryHandler resolves tracking codes to their public state.
type TrackParcelQueryHandler struct {
	db *gorm.DB
}

// NewTrackParcelQueryHandler creates a handler for tracking lookups.
// Requires a GORM database connection for query execution.
func NewTrackParcelQueryHandler(db *gorm.DB) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{db: db}
}

// Handle executes the tracking lookup.
// Returns errs.ObjectNotFoundError when no parcel carries the code.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context,
	query TrackParcelQuery,
) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_code,
			status,
			assigned_at,
			delivered_at
		FROM parcels
		WHERE tracking_code = ?
	`, query.TrackingCode().String()).Rows()
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TrackParcelQueryResponse{}, err
		}
		return TrackParcelQueryResponse{}, errs.NewObjectNotFoundError(
			"trackingCode", query.TrackingCode().String())
	}

	var resp TrackParcelQueryResponse
	var status int
	var assignedAt, deliveredAt sql.NullTime

	err = rows.Scan(
		&resp.TrackingCode,
		&status,
		&assignedAt,
		&deliveredAt,
	)
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	resp.Status = parcel.Status(status).String()
	if assignedAt.Valid {
		resp.AssignedAt = &assignedAt.Time
	}
	if deliveredAt.Valid {
		resp.DeliveredAt = &deliveredAt.Time
	}

	return resp, rows.Err()
}
