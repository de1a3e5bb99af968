package booking

import "github.com/iliyamo/travel-reservation/internal/model"

// transitions is the legal-transition table for reservation status.
// pending -> confirmed | cancelled
// confirmed -> completed | cancelled
// cancelled and completed are terminal.
var transitions = map[model.ReservationStatus][]model.ReservationStatus{
	model.ReservationPending:   {model.ReservationConfirmed, model.ReservationCancelled},
	model.ReservationConfirmed: {model.ReservationCompleted, model.ReservationCancelled},
}

// CanTransition reports whether moving a reservation from one status
// to another is legal.  Writes that would perform an illegal
// transition must be rejected at the persistence boundary.
func CanTransition(from, to model.ReservationStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is one of the known reservation
// statuses.  Used to validate admin input before consulting the
// transition table.
func ValidStatus(s model.ReservationStatus) bool {
	switch s {
	case model.ReservationPending, model.ReservationConfirmed,
		model.ReservationCancelled, model.ReservationCompleted:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s model.PaymentStatus) bool {
	switch s {
	case model.PaymentPending, model.PaymentPaid, model.PaymentRefunded:
		return true
	}
	return false
}
