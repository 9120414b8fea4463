package order_test

import (
	"fmt"
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNextStatus(t *testing.T) {
	tests := []struct {
		current order.Status
		next    order.Status
	}{
		{order.PaymentPending, order.PaymentConfirmed},
		{order.PaymentConfirmed, order.OrderProcessing},
		{order.OrderProcessing, order.OrderShipped},
		{order.OrderShipped, order.OrderDelivered},
		{order.OrderDelivered, order.InvoiceIssued},
		{order.InvoiceIssued, order.InvoiceSettled},
	}

	for _, tt := range tests {
		t.Run(tt.current.String(), func(t *testing.T) {
			next, ok := order.GetNextStatus(tt.current)

			assert.True(t, ok)
			assert.Equal(t, tt.next, next)
		})
	}

	t.Run("terminal status has no successor", func(t *testing.T) {
		_, ok := order.GetNextStatus(order.InvoiceSettled)

		assert.False(t, ok)
	})

	for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(8), order.Status(99)} {
		t.Run(fmt.Sprintf("unrecognized %d has no successor", int(s)), func(t *testing.T) {
			_, ok := order.GetNextStatus(s)

			assert.False(t, ok)
		})
	}
}

func TestStatus_Next(t *testing.T) {
	t.Run("wraps no transition error", func(t *testing.T) {
		_, err := order.InvoiceSettled.Next()

		require.ErrorIs(t, err, order.ErrNoTransitionAvailable)
		assert.Contains(t, err.Error(), "Invoice Settled")
	})

	t.Run("returns successor", func(t *testing.T) {
		next, err := order.OrderDelivered.Next()

		require.NoError(t, err)
		assert.Equal(t, order.InvoiceIssued, next)
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range order.Statuses() {
		require.NoError(t, s.Validate(), s.String())
	}

	err := order.Unknown.Validate()
	require.Error(t, err)
	assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	assert.Contains(t, err.Error(), "0 is not a valid status")
}

func TestParseStatus(t *testing.T) {
	tests := map[string]order.Status{
		"Payment Pending":   order.PaymentPending,
		"payment_confirmed": order.PaymentConfirmed,
		"ORDER-SHIPPED":     order.OrderShipped,
		" invoice issued ":  order.InvoiceIssued,
		"InvoiceSettled":    order.InvoiceSettled,
	}

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			s, err := order.ParseStatus(input)

			require.NoError(t, err)
			assert.Equal(t, expected, s)
		})
	}

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("Refunded")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects Unknown", func(t *testing.T) {
		_, err := order.ParseStatus("Unknown")

		require.Error(t, err)
	})
}

func TestStatuses_AreInLifecycleOrder(t *testing.T) {
	statuses := order.Statuses()

	require.Len(t, statuses, 7)
	for i := 1; i < len(statuses); i++ {
		next, ok := order.GetNextStatus(statuses[i-1])
		require.True(t, ok)
		assert.Equal(t, statuses[i], next)
	}
	assert.True(t, statuses[len(statuses)-1].IsTerminal())
}
