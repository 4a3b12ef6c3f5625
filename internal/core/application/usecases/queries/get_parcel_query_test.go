package queries_test

import (
	"testing"

	"smartdelivery/internal/core/application/usecases/queries"
	"smartdelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetParcelQuery_Valid(t *testing.T) {
	parcelID := kernel.NewUUID()

	query, err := queries.NewGetParcelQuery(parcelID)

	require.NoError(t, err)
	assert.Equal(t, parcelID, query.ParcelID())
	require.NoError(t, query.Validate())
}

func TestNewGetParcelQuery_EmptyID(t *testing.T) {
	_, err := queries.NewGetParcelQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetParcelQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetParcelQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetParcelQueryIsNotConstructed)
}
