package order_test

import (
	"fmt"
	"testing"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.EnRoute))
		assert.Equal(t, 3, int(order.Delivered))
		assert.Equal(t, 4, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.EnRoute,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out-of-range status", func(t *testing.T) {
		err := order.Status(42).Validate()

		require.Error(t, err)
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Unknown:    "Unknown",
		order.Pending:    "Pending",
		order.EnRoute:    "EnRoute",
		order.Delivered:  "Delivered",
		order.Cancelled:  "Cancelled",
		order.Status(99): "Unknown",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.EnRoute.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestPaymentMethod(t *testing.T) {
	t.Run("cash is the only valid method", func(t *testing.T) {
		require.NoError(t, order.Cash.Validate())
		require.Error(t, order.UnknownMethod.Validate())
		require.Error(t, order.PaymentMethod(7).Validate())
	})

	t.Run("string form", func(t *testing.T) {
		assert.Equal(t, "Cash", order.Cash.String())
		assert.Equal(t, "Unknown", order.UnknownMethod.String())
	})
}

func TestPaymentStatus(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		require.NoError(t, order.AwaitingPayment.Validate())
		require.NoError(t, order.Paid.Validate())
		require.Error(t, order.UnknownPayment.Validate())
	})

	t.Run("string form", func(t *testing.T) {
		assert.Equal(t, "AwaitingPayment", order.AwaitingPayment.String())
		assert.Equal(t, "Paid", order.Paid.String())
		assert.Equal(t, "Unknown", order.UnknownPayment.String())
	})
}
