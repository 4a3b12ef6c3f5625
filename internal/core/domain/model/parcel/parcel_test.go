package parcel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartdelivery/internal/core/domain/model/kernel"
	"smartdelivery/internal/core/domain/model/parcel"
)

func mustTrackingCode(t *testing.T, value string) parcel.TrackingCode {
	t.Helper()
	code, err := parcel.NewTrackingCode(value)
	require.NoError(t, err)
	return code
}

func validParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		mustTrackingCode(t, "AB1234567890"),
		kernel.NewUUID(),
		"1 Pickup Lane",
		"2 Delivery Road",
		nil,
	)
	require.NoError(t, err)
	return p
}

func float64Ptr(v float64) *float64 {
	return &v
}

func TestNewParcel(t *testing.T) {
	t.Run("should create parcel in new status", func(t *testing.T) {
		id := kernel.NewUUID()
		senderID := kernel.NewUUID()
		code := mustTrackingCode(t, "AB1234567890")

		p, err := parcel.NewParcel(id, code, senderID, "1 Pickup Lane", "2 Delivery Road", float64Ptr(2.5))

		require.NoError(t, err)
		assert.Equal(t, id, p.ID())
		assert.True(t, code.IsEqual(p.TrackingCode()))
		assert.Equal(t, senderID, p.SenderID())
		assert.Equal(t, "1 Pickup Lane", p.PickupAddress())
		assert.Equal(t, "2 Delivery Road", p.DeliveryAddress())
		require.NotNil(t, p.WeightKg())
		assert.Equal(t, 2.5, *p.WeightKg())
		assert.Equal(t, parcel.New, p.Status())
		assert.Nil(t, p.CourierID())
		assert.Nil(t, p.AssignedAt())
		assert.Nil(t, p.DeliveredAt())
		assert.Equal(t, 1, p.Version())
		assert.NoError(t, p.Validate())
	})

	t.Run("should allow missing weight", func(t *testing.T) {
		p := validParcel(t)

		assert.Nil(t, p.WeightKg())
	})

	t.Run("should allow zero weight", func(t *testing.T) {
		p, err := parcel.NewParcel(
			kernel.NewUUID(),
			mustTrackingCode(t, "AB1234567890"),
			kernel.NewUUID(),
			"1 Pickup Lane",
			"2 Delivery Road",
			float64Ptr(0),
		)

		require.NoError(t, err)
		require.NotNil(t, p.WeightKg())
		assert.Equal(t, 0.0, *p.WeightKg())
	})

	t.Run("should fail with invalid parameters", func(t *testing.T) {
		tests := []struct {
			name        string
			id          kernel.UUID
			senderID    kernel.UUID
			pickup      string
			delivery    string
			weightKg    *float64
			expectedErr string
		}{
			{"empty id", kernel.UUID{}, kernel.NewUUID(), "1 Pickup Lane", "2 Delivery Road", nil, "UUID"},
			{"empty sender", kernel.NewUUID(), kernel.UUID{}, "1 Pickup Lane", "2 Delivery Road", nil, "sender"},
			{"blank pickup address", kernel.NewUUID(), kernel.NewUUID(), "   ", "2 Delivery Road", nil, "pickup address"},
			{"blank delivery address", kernel.NewUUID(), kernel.NewUUID(), "1 Pickup Lane", "", nil, "delivery address"},
			{"negative weight", kernel.NewUUID(), kernel.NewUUID(), "1 Pickup Lane", "2 Delivery Road", float64Ptr(-0.5), "weight is invalid"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				p, err := parcel.NewParcel(
					tt.id,
					mustTrackingCode(t, "AB1234567890"),
					tt.senderID,
					tt.pickup,
					tt.delivery,
					tt.weightKg,
				)

				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Nil(t, p)
			})
		}
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		p, err := parcel.NewParcel(
			kernel.NewUUID(),
			mustTrackingCode(t, "AB1234567890"),
			kernel.NewUUID(),
			"",
			"",
			float64Ptr(-1),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "pickup address")
		assert.Contains(t, err.Error(), "delivery address")
		assert.Contains(t, err.Error(), "weight is invalid")
		assert.Nil(t, p)
	})
}

func TestRestoreParcel(t *testing.T) {
	id := kernel.NewUUID()
	senderID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	assignedAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	deliveredAt := assignedAt.Add(2 * time.Hour)

	t.Run("should restore new parcel", func(t *testing.T) {
		p, err := parcel.RestoreParcel(id, mustTrackingCode(t, "AB1234567890"), senderID,
			"1 Pickup Lane", "2 Delivery Road", nil,
			parcel.New, nil, nil, nil, 1)

		require.NoError(t, err)
		assert.Equal(t, parcel.New, p.Status())
		assert.Equal(t, 1, p.Version())
	})

	t.Run("should restore pending parcel with courier", func(t *testing.T) {
		p, err := parcel.RestoreParcel(id, mustTrackingCode(t, "AB1234567890"), senderID,
			"1 Pickup Lane", "2 Delivery Road", nil,
			parcel.Pending, &courierID, &assignedAt, nil, 3)

		require.NoError(t, err)
		assert.Equal(t, parcel.Pending, p.Status())
		require.NotNil(t, p.CourierID())
		assert.Equal(t, courierID, *p.CourierID())
		require.NotNil(t, p.AssignedAt())
		assert.Equal(t, assignedAt, *p.AssignedAt())
		assert.Equal(t, 3, p.Version())
	})

	t.Run("should restore delivered parcel", func(t *testing.T) {
		p, err := parcel.RestoreParcel(id, mustTrackingCode(t, "AB1234567890"), senderID,
			"1 Pickup Lane", "2 Delivery Road", nil,
			parcel.Delivered, &courierID, &assignedAt, &deliveredAt, 2)

		require.NoError(t, err)
		assert.Equal(t, parcel.Delivered, p.Status())
		require.NotNil(t, p.DeliveredAt())
		assert.Equal(t, deliveredAt, *p.DeliveredAt())
	})

	t.Run("should fail when new parcel has courier", func(t *testing.T) {
		p, err := parcel.RestoreParcel(id, mustTrackingCode(t, "AB1234567890"), senderID,
			"1 Pickup Lane", "2 Delivery Road", nil,
			parcel.New, &courierID, nil, nil, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid status to have a courier")
		assert.Nil(t, p)
	})

	t.Run("should fail when pending parcel has no courier", func(t *testing.T) {
		p, err := parcel.RestoreParcel(id, mustTrackingCode(t, "AB1234567890"), senderID,
			"1 Pickup Lane", "2 Delivery Road", nil,
			parcel.Pending, nil, nil, nil, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid status to have no courier")
		assert.Nil(t, p)
	})

	t.Run("should fail when pending parcel has no assignment time", func(t *testing.T) {
		p, err := parcel.RestoreParcel(id, mustTrackingCode(t, "AB1234567890"), senderID,
			"1 Pickup Lane", "2 Delivery Road", nil,
			parcel.Pending, &courierID, nil, nil, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "assignedAt")
		assert.Nil(t, p)
	})

	t.Run("should fail when delivered parcel has no delivery time", func(t *testing.T) {
		p, err := parcel.RestoreParcel(id, mustTrackingCode(t, "AB1234567890"), senderID,
			"1 Pickup Lane", "2 Delivery Road", nil,
			parcel.Delivered, &courierID, &assignedAt, nil, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "deliveredAt")
		assert.Nil(t, p)
	})

	t.Run("should fail when new parcel has delivery time", func(t *testing.T) {
		p, err := parcel.RestoreParcel(id, mustTrackingCode(t, "AB1234567890"), senderID,
			"1 Pickup Lane", "2 Delivery Road", nil,
			parcel.New, nil, nil, &deliveredAt, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "deliveredAt")
		assert.Nil(t, p)
	})

	t.Run("should fail with non-positive version", func(t *testing.T) {
		p, err := parcel.RestoreParcel(id, mustTrackingCode(t, "AB1234567890"), senderID,
			"1 Pickup Lane", "2 Delivery Road", nil,
			parcel.New, nil, nil, nil, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a positive version")
		assert.Nil(t, p)
	})
}

func TestParcelAssign(t *testing.T) {
	t.Run("should assign courier to new parcel", func(t *testing.T) {
		p := validParcel(t)
		courierID := kernel.NewUUID()
		at := time.Now().UTC()

		err := p.Assign(courierID, at)

		require.NoError(t, err)
		assert.Equal(t, parcel.Pending, p.Status())
		require.NotNil(t, p.CourierID())
		assert.Equal(t, courierID, *p.CourierID())
		require.NotNil(t, p.AssignedAt())
		assert.Equal(t, at, *p.AssignedAt())
	})

	t.Run("should replace courier on reassignment", func(t *testing.T) {
		p := validParcel(t)
		first := time.Now().UTC()
		require.NoError(t, p.Assign(kernel.NewUUID(), first))

		newCourierID := kernel.NewUUID()
		second := first.Add(time.Minute)
		err := p.Assign(newCourierID, second)

		require.NoError(t, err)
		assert.Equal(t, parcel.Pending, p.Status())
		assert.Equal(t, newCourierID, *p.CourierID())
		assert.Equal(t, second, *p.AssignedAt())
	})

	t.Run("should fail with empty courier id", func(t *testing.T) {
		p := validParcel(t)

		err := p.Assign(kernel.UUID{}, time.Now().UTC())

		require.Error(t, err)
		assert.Equal(t, parcel.New, p.Status())
		assert.Nil(t, p.CourierID())
	})

	t.Run("should fail with zero time", func(t *testing.T) {
		p := validParcel(t)

		err := p.Assign(kernel.NewUUID(), time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "assignment time")
		assert.Equal(t, parcel.New, p.Status())
	})

	t.Run("should fail for delivered parcel", func(t *testing.T) {
		p := validParcel(t)
		winner := kernel.NewUUID()
		require.NoError(t, p.Assign(winner, time.Now().UTC()))
		require.NoError(t, p.Deliver(time.Now().UTC()))

		err := p.Assign(kernel.NewUUID(), time.Now().UTC())

		assert.ErrorIs(t, err, parcel.ErrAlreadyDelivered)
		assert.Equal(t, parcel.Delivered, p.Status())
		assert.Equal(t, winner, *p.CourierID())
	})
}

func TestParcelDeliver(t *testing.T) {
	t.Run("should deliver pending parcel", func(t *testing.T) {
		p := validParcel(t)
		require.NoError(t, p.Assign(kernel.NewUUID(), time.Now().UTC()))
		at := time.Now().UTC()

		err := p.Deliver(at)

		require.NoError(t, err)
		assert.Equal(t, parcel.Delivered, p.Status())
		require.NotNil(t, p.DeliveredAt())
		assert.Equal(t, at, *p.DeliveredAt())
	})

	t.Run("should fail for unassigned parcel", func(t *testing.T) {
		p := validParcel(t)

		err := p.Deliver(time.Now().UTC())

		assert.ErrorIs(t, err, parcel.ErrNotYetAssigned)
		assert.Equal(t, parcel.New, p.Status())
		assert.Nil(t, p.DeliveredAt())
	})

	t.Run("should fail when delivered twice", func(t *testing.T) {
		p := validParcel(t)
		require.NoError(t, p.Assign(kernel.NewUUID(), time.Now().UTC()))
		first := time.Now().UTC()
		require.NoError(t, p.Deliver(first))

		err := p.Deliver(first.Add(time.Minute))

		assert.ErrorIs(t, err, parcel.ErrAlreadyDelivered)
		assert.Equal(t, first, *p.DeliveredAt())
	})

	t.Run("should fail with zero time", func(t *testing.T) {
		p := validParcel(t)
		require.NoError(t, p.Assign(kernel.NewUUID(), time.Now().UTC()))

		err := p.Deliver(time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "delivery time")
		assert.Equal(t, parcel.Pending, p.Status())
	})
}

func TestParcelValidate(t *testing.T) {
	t.Run("should pass for constructed parcel", func(t *testing.T) {
		p := validParcel(t)

		assert.NoError(t, p.Validate())
	})

	t.Run("should fail for nil parcel", func(t *testing.T) {
		var p *parcel.Parcel

		assert.Equal(t, parcel.ErrParcelIsNotConstructed, p.Validate())
	})

	t.Run("should fail for zero value parcel", func(t *testing.T) {
		p := &parcel.Parcel{}

		assert.Equal(t, parcel.ErrParcelIsNotConstructed, p.Validate())
	})
}

func TestParcelIsEqual(t *testing.T) {
	t.Run("should compare by identifier", func(t *testing.T) {
		a := validParcel(t)
		b := validParcel(t)

		assert.True(t, a.IsEqual(a))
		assert.False(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(nil))
	})
}
