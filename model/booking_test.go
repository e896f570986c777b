package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusValid(t *testing.T) {
	for _, s := range BookingStatuses {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, BookingStatus("shipped").Valid())
	assert.False(t, BookingStatus("").Valid())
	assert.False(t, BookingStatus("Pending").Valid(), "statuses are lowercase")
}

func TestPaymentStatusValid(t *testing.T) {
	for _, s := range PaymentStatuses {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, PaymentStatus("chargeback").Valid())
	assert.False(t, PaymentStatus("").Valid())
}

func TestStatusTransitionTableCoversEveryPair(t *testing.T) {
	for _, from := range BookingStatuses {
		for _, to := range BookingStatuses {
			assert.True(t, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestUnknownStatusCannotTransition(t *testing.T) {
	assert.False(t, BookingStatus("shipped").CanTransitionTo(BookingStatusPending))
}
