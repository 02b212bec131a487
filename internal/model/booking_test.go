package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusValid(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}
	assert.False(t, BookingStatus("").Valid())
	assert.False(t, BookingStatus("rejected").Valid())
}

func TestBookingStatusCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed skips confirmation", StatusPending, StatusCompleted, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed back to pending", StatusConfirmed, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusConfirmed, false},
		{"same status is a no-op", StatusCancelled, StatusCancelled, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransition(tc.to))
		})
	}
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod(PaymentBkash))
	assert.True(t, ValidPaymentMethod(PaymentBankTransfer))
	assert.False(t, ValidPaymentMethod("card"))
	assert.False(t, ValidPaymentMethod(""))
}

func TestPaymentConfigFrom(t *testing.T) {
	t.Run("nil document returns defaults", func(t *testing.T) {
		cfg := PaymentConfigFrom(nil)
		assert.Equal(t, DefaultPaymentConfig(), cfg)
	})
	t.Run("partial document keeps defaults for missing keys", func(t *testing.T) {
		cfg := PaymentConfigFrom([]byte(`{"amount": 7500}`))
		assert.Equal(t, uint32(7500), cfg.Amount)
		assert.Equal(t, DefaultPaymentConfig().BkashNumber, cfg.BkashNumber)
	})
	t.Run("malformed document returns defaults", func(t *testing.T) {
		cfg := PaymentConfigFrom([]byte(`{broken`))
		assert.Equal(t, DefaultPaymentConfig(), cfg)
	})
}
