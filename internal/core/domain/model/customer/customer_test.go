package customer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartdelivery/internal/core/domain/model/customer"
	"smartdelivery/internal/core/domain/model/kernel"
)

func TestCustomerTypeString(t *testing.T) {
	tests := []struct {
		customerType customer.CustomerType
		expected     string
	}{
		{customer.UnknownType, "UNKNOWN"},
		{customer.Person, "PERSON"},
		{customer.Company, "COMPANY"},
		{customer.CustomerType(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.customerType.String())
		})
	}
}

func TestCustomerTypeValidate(t *testing.T) {
	t.Run("should accept person and company", func(t *testing.T) {
		assert.NoError(t, customer.Person.Validate())
		assert.NoError(t, customer.Company.Validate())
	})

	t.Run("should reject unknown type", func(t *testing.T) {
		err := customer.UnknownType.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer type")
	})
}

func TestNewCustomer(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("should create person customer", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := customer.NewCustomer(id, customer.Person, "Dana Miller", customer.Details{}, createdAt)

		require.NoError(t, err)
		assert.Equal(t, id, c.ID())
		assert.Equal(t, customer.Person, c.Type())
		assert.Equal(t, "Dana Miller", c.Name())
		assert.Equal(t, customer.Details{}, c.Details())
		assert.Equal(t, createdAt, c.CreatedAt())
		assert.NoError(t, c.Validate())
	})

	t.Run("should create company customer with details", func(t *testing.T) {
		details := customer.Details{
			Email:                  "office@acme.example.com",
			Phone:                  "+49 30 123456",
			ContactPerson:          "Dana Miller",
			DefaultPickupAddress:   "1 Warehouse Way",
			DefaultDeliveryAddress: "2 Office Plaza",
		}

		c, err := customer.NewCustomer(kernel.NewUUID(), customer.Company, "Acme GmbH", details, createdAt)

		require.NoError(t, err)
		assert.Equal(t, customer.Company, c.Type())
		assert.Equal(t, details, c.Details())
	})

	t.Run("should fail with empty id", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.UUID{}, customer.Person, "Dana Miller", customer.Details{}, createdAt)

		require.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("should fail with unknown type", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), customer.UnknownType, "Dana Miller", customer.Details{}, createdAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer type")
		assert.Nil(t, c)
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), customer.Person, "   ", customer.Details{}, createdAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Nil(t, c)
	})

	t.Run("should fail with zero creation time", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), customer.Person, "Dana Miller", customer.Details{}, time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "createdAt")
		assert.Nil(t, c)
	})
}

func TestRestoreCustomer(t *testing.T) {
	t.Run("should restore customer", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

		c, err := customer.RestoreCustomer(id, customer.Company, "Acme GmbH", customer.Details{Email: "office@acme.example.com"}, createdAt)

		require.NoError(t, err)
		assert.Equal(t, id, c.ID())
		assert.Equal(t, createdAt, c.CreatedAt())
		assert.NoError(t, c.Validate())
	})
}

func TestCustomerValidate(t *testing.T) {
	t.Run("should fail for nil customer", func(t *testing.T) {
		var c *customer.Customer

		assert.Equal(t, customer.ErrCustomerIsNotConstructed, c.Validate())
	})

	t.Run("should fail for zero value customer", func(t *testing.T) {
		c := &customer.Customer{}

		assert.Equal(t, customer.ErrCustomerIsNotConstructed, c.Validate())
	})
}
