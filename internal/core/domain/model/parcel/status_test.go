package parcel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartdelivery/internal/core/domain/model/parcel"
)

func TestStatusConstants(t *testing.T) {
	t.Run("should have expected values", func(t *testing.T) {
		assert.Equal(t, 0, int(parcel.Unknown))
		assert.Equal(t, 1, int(parcel.New))
		assert.Equal(t, 2, int(parcel.Pending))
		assert.Equal(t, 3, int(parcel.Delivered))
	})
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   parcel.Status
		expected string
	}{
		{parcel.Unknown, "UNKNOWN"},
		{parcel.New, "NEW"},
		{parcel.Pending, "PENDING"},
		{parcel.Delivered, "DELIVERED"},
		{parcel.Status(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestStatusValidate(t *testing.T) {
	t.Run("should accept valid statuses", func(t *testing.T) {
		assert.NoError(t, parcel.New.Validate())
		assert.NoError(t, parcel.Pending.Validate())
		assert.NoError(t, parcel.Delivered.Validate())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		err := parcel.Unknown.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		err := parcel.Status(42).Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "42 is not a valid status")
	})
}

func TestStatusValidateAssign(t *testing.T) {
	t.Run("should allow assigning a new parcel", func(t *testing.T) {
		assert.NoError(t, parcel.New.ValidateAssign())
	})

	t.Run("should allow reassigning a pending parcel", func(t *testing.T) {
		assert.NoError(t, parcel.Pending.ValidateAssign())
	})

	t.Run("should reject assigning a delivered parcel", func(t *testing.T) {
		err := parcel.Delivered.ValidateAssign()

		assert.ErrorIs(t, err, parcel.ErrAlreadyDelivered)
	})

	t.Run("should reject assigning an unknown status", func(t *testing.T) {
		err := parcel.Unknown.ValidateAssign()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid status to assign")
	})
}

func TestStatusValidateDeliver(t *testing.T) {
	t.Run("should allow delivering a pending parcel", func(t *testing.T) {
		assert.NoError(t, parcel.Pending.ValidateDeliver())
	})

	t.Run("should reject delivering an unassigned parcel", func(t *testing.T) {
		err := parcel.New.ValidateDeliver()

		assert.ErrorIs(t, err, parcel.ErrNotYetAssigned)
	})

	t.Run("should reject delivering twice", func(t *testing.T) {
		err := parcel.Delivered.ValidateDeliver()

		assert.ErrorIs(t, err, parcel.ErrAlreadyDelivered)
	})

	t.Run("should reject delivering an unknown status", func(t *testing.T) {
		err := parcel.Unknown.ValidateDeliver()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid status to deliver")
	})
}

func TestStatusValidateCanHaveCourier(t *testing.T) {
	t.Run("should reject a courier on a new parcel", func(t *testing.T) {
		err := parcel.New.ValidateCanHaveCourier(true)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid status to have a courier")
	})

	t.Run("should allow no courier on a new parcel", func(t *testing.T) {
		assert.NoError(t, parcel.New.ValidateCanHaveCourier(false))
	})

	t.Run("should require a courier on a pending parcel", func(t *testing.T) {
		assert.NoError(t, parcel.Pending.ValidateCanHaveCourier(true))

		err := parcel.Pending.ValidateCanHaveCourier(false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid status to have no courier")
	})

	t.Run("should require a courier on a delivered parcel", func(t *testing.T) {
		assert.NoError(t, parcel.Delivered.ValidateCanHaveCourier(true))

		err := parcel.Delivered.ValidateCanHaveCourier(false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid status to have no courier")
	})
}

func TestStatusAssign(t *testing.T) {
	t.Run("should transition new to pending", func(t *testing.T) {
		next, err := parcel.New.Assign()

		require.NoError(t, err)
		assert.Equal(t, parcel.Pending, next)
	})

	t.Run("should keep pending on reassignment", func(t *testing.T) {
		next, err := parcel.Pending.Assign()

		require.NoError(t, err)
		assert.Equal(t, parcel.Pending, next)
	})

	t.Run("should fail for delivered parcel", func(t *testing.T) {
		next, err := parcel.Delivered.Assign()

		assert.ErrorIs(t, err, parcel.ErrAlreadyDelivered)
		assert.Equal(t, parcel.Status(0), next)
	})
}

func TestStatusDeliver(t *testing.T) {
	t.Run("should transition pending to delivered", func(t *testing.T) {
		next, err := parcel.Pending.Deliver()

		require.NoError(t, err)
		assert.Equal(t, parcel.Delivered, next)
	})

	t.Run("should fail for new parcel", func(t *testing.T) {
		next, err := parcel.New.Deliver()

		assert.ErrorIs(t, err, parcel.ErrNotYetAssigned)
		assert.Equal(t, parcel.Status(0), next)
	})

	t.Run("should fail for delivered parcel", func(t *testing.T) {
		next, err := parcel.Delivered.Deliver()

		assert.ErrorIs(t, err, parcel.ErrAlreadyDelivered)
		assert.Equal(t, parcel.Status(0), next)
	})
}
