package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/travel-reservation/internal/model"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to model.ReservationStatus
		want     bool
	}{
		{model.ReservationPending, model.ReservationConfirmed, true},
		{model.ReservationPending, model.ReservationCancelled, true},
		{model.ReservationPending, model.ReservationCompleted, false},
		{model.ReservationConfirmed, model.ReservationCompleted, true},
		{model.ReservationConfirmed, model.ReservationCancelled, true},
		{model.ReservationConfirmed, model.ReservationPending, false},
		{model.ReservationCancelled, model.ReservationPending, false},
		{model.ReservationCancelled, model.ReservationConfirmed, false},
		{model.ReservationCompleted, model.ReservationCancelled, false},
		{model.ReservationPending, model.ReservationPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(model.ReservationPending))
	assert.True(t, ValidStatus(model.ReservationCompleted))
	assert.False(t, ValidStatus("refunded"))
	assert.False(t, ValidStatus(""))
}

func TestValidPaymentStatus(t *testing.T) {
	assert.True(t, ValidPaymentStatus(model.PaymentPaid))
	assert.True(t, ValidPaymentStatus(model.PaymentRefunded))
	assert.False(t, ValidPaymentStatus("cancelled"))
}
