package queries

import (
	"context"

	"smartdelivery/internal/core/domain/model/kernel"
	"smartdelivery/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUndeliveredParcelsQueryHandler retrieves parcels pending delivery from the database.
// Filters out delivered parcels to provide active workload visibility.
type GetUndeliveredParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetUndeliveredParcelsQueryHandler creates a handler for active parcel queries.
// Requires a GORM database connection for query execution.
func NewGetUndeliveredParcelsQueryHandler(db *gorm.DB) GetUndeliveredParcelsQueryHandler {
	return GetUndeliveredParcelsQueryHandler{db: db}
}

// Handle executes the query to retrieve all undelivered parcels.
// Results are sorted by parcel ID for consistent output.
func (h GetUndeliveredParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetUndeliveredParcelsQuery,
) ([]GetUndeliveredParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetUndeliveredParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			status,
			courier_id
		FROM parcels
		WHERE status != ?
		ORDER BY id
	`, parcel.Delivered).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUndeliveredParcelsQueryResponse
		var id uuid.UUID
		var status int
		var courierID uuid.NullUUID

		err = rows.Scan(
			&id,
			&resp.TrackingCode,
			&status,
			&courierID,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = parcelID
		resp.Status = parcel.Status(status).String()

		if courierID.Valid {
			cID, cErr := kernel.UUIDFromBytes(courierID.UUID[:])
			if cErr != nil {
				return nil, cErr
			}
			resp.CourierID = &cID
		}

		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
