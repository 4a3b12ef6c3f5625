package queries

import (
	"context"
	"database/sql"

	"smartdelivery/internal/core/domain/model/kernel"
	"smartdelivery/internal/core/domain/model/parcel"
	"smartdelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelQueryHandler retrieves a single parcel row from the database.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for single-parcel queries.
// Requires a GORM database connection for query execution.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the query to retrieve one parcel by its identifier.
// Returns errs.ObjectNotFoundError when no parcel with the ID exists.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (GetParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			sender_id,
			courier_id,
			pickup_address,
			delivery_address,
			weight_kg,
			status,
			assigned_at,
			delivered_at
		FROM parcels
		WHERE id = ?
	`, query.ParcelID().Bytes()).Rows()
	if err != nil {
		return GetParcelQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetParcelQueryResponse{}, err
		}
		return GetParcelQueryResponse{}, errs.NewObjectNotFoundError("parcel", query.ParcelID().String())
	}

	resp, err := scanParcelRow(rows)
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	return resp, rows.Err()
}

// scanParcelRow maps one row of the parcels table to a response.
func scanParcelRow(rows *sql.Rows) (GetParcelQueryResponse, error) {
	var resp GetParcelQueryResponse
	var id, senderID uuid.UUID
	var courierID uuid.NullUUID
	var weightKg sql.NullFloat64
	var status int
	var assignedAt, deliveredAt sql.NullTime

	err := rows.Scan(
		&id,
		&resp.TrackingCode,
		&senderID,
		&courierID,
		&resp.PickupAddress,
		&resp.DeliveryAddress,
		&weightKg,
		&status,
		&assignedAt,
		&deliveredAt,
	)
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetParcelQueryResponse{}, err
	}
	if resp.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
		return GetParcelQueryResponse{}, err
	}
	if courierID.Valid {
		cID, cErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if cErr != nil {
			return GetParcelQueryResponse{}, cErr
		}
		resp.CourierID = &cID
	}
	if weightKg.Valid {
		resp.WeightKg = &weightKg.Float64
	}
	if assignedAt.Valid {
		resp.AssignedAt = &assignedAt.Time
	}
	if deliveredAt.Valid {
		resp.DeliveredAt = &deliveredAt.Time
	}
	resp.Status = parcel.Status(status).String()

	return resp, nil
}
