package commands_test

import (
	"testing"

	"smartdelivery/internal/core/application/usecases/commands"
	"smartdelivery/internal/core/domain/model/kernel"
	"smartdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateParcelCommand_Success(t *testing.T) {
	parcelID := kernel.NewUUID()
	senderID := kernel.NewUUID()
	weight := 2.5

	cmd, err := commands.NewCreateParcelCommand(parcelID, senderID, "12 Oak St", "7 Elm St", &weight, nil)

	require.NoError(t, err)
	assert.Equal(t, parcelID, cmd.ParcelID())
	assert.Equal(t, senderID, cmd.SenderID())
	assert.Equal(t, "12 Oak St", cmd.PickupAddress())
	assert.Equal(t, "7 Elm St", cmd.DeliveryAddress())
	require.NotNil(t, cmd.WeightKg())
	assert.InDelta(t, 2.5, *cmd.WeightKg(), 1e-9)
	assert.Nil(t, cmd.CourierID())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateParcelCommand_WithCourier(t *testing.T) {
	courierID := kernel.NewUUID()

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), "12 Oak St", "7 Elm St", nil, &courierID)

	require.NoError(t, err)
	require.NotNil(t, cmd.CourierID())
	assert.Equal(t, courierID, *cmd.CourierID())
	assert.Nil(t, cmd.WeightKg())
}

func TestNewCreateParcelCommand_Errors(t *testing.T) {
	parcelID := kernel.NewUUID()
	senderID := kernel.NewUUID()
	negative := -1.0

	tests := map[string]struct {
		parcelID        kernel.UUID
		senderID        kernel.UUID
		pickupAddress   string
		deliveryAddress string
		weightKg        *float64
	}{
		"empty parcel id":         {kernel.UUID{}, senderID, "12 Oak St", "7 Elm St", nil},
		"empty sender id":         {parcelID, kernel.UUID{}, "12 Oak St", "7 Elm St", nil},
		"blank pickup address":    {parcelID, senderID, "   ", "7 Elm St", nil},
		"blank delivery address":  {parcelID, senderID, "12 Oak St", "", nil},
		"negative weight":         {parcelID, senderID, "12 Oak St", "7 Elm St", &negative},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := commands.NewCreateParcelCommand(
				tc.parcelID, tc.senderID, tc.pickupAddress, tc.deliveryAddress, tc.weightKg, nil)
			require.Error(t, err)
		})
	}
}

func TestCreateParcelCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateParcelCommand{}
	err := cmd.Validate()
	require.ErrorIs(t, err, commands.ErrCreateParcelCommandIsNotConstructed)
}

func TestNewCreateParcelCommand_ZeroWeightAllowed(t *testing.T) {
	zero := 0.0
	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), "12 Oak St", "7 Elm St", &zero, nil)
	require.NoError(t, err)
	require.NotNil(t, cmd.WeightKg())
	assert.Zero(t, *cmd.WeightKg())
	assert.NotErrorIs(t, cmd.Validate(), errs.ErrValueIsInvalid)
}
