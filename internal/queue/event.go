// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"time"

	"github.com/iliyamo/travel-reservation/internal/model"
)

// ReservationQueueName is the durable queue reservation events go to.
const ReservationQueueName = "reservation.created"

// ReservationCreatedEvent is published when a reservation is successfully
// submitted. It contains enough information for downstream consumers to
// log, notify, or trigger analytics without querying the primary database.
type ReservationCreatedEvent struct {
	ReservationID string `json:"reservation_id"`
	Code          string `json:"code"`
	PackageID     string `json:"package_id"`
	PackageTitle  string `json:"package_title"`
	DepartureDate string `json:"departure_date"`
	Travelers     int    `json:"travelers"`
	TotalPrice    string `json:"total_price"`
	ContactName   string `json:"contact_name"`
	ContactEmail  string `json:"contact_email"`
	CreatedAt     string `json:"created_at"`
}

// NewReservationCreatedEvent builds the event from a created
// reservation and its package.
func NewReservationCreatedEvent(r *model.Reservation, p *model.Package) ReservationCreatedEvent {
	return ReservationCreatedEvent{
		ReservationID: r.ID,
		Code:          r.Code(),
		PackageID:     p.ID,
		PackageTitle:  p.Title,
		DepartureDate: r.DepartureDate,
		Travelers:     r.Travelers,
		TotalPrice:    r.TotalPrice,
		ContactName:   r.ContactName,
		ContactEmail:  r.ContactEmail,
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
