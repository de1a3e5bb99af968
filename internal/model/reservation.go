package model

import "time"

// ReservationStatus enumerates the lifecycle states of a reservation.
// Legal transitions are enforced by the booking package; see
// booking.CanTransition.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

// PaymentStatus enumerates the payment states of a reservation.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Reservation records a customer's booking intent against a package.
// It corresponds to a row in the `reservations` table.  Reservations
// may be anonymous, in which case UserID is nil.
//
// Fields:
//  ID              – opaque UUID identifier assigned at creation.
//  PackageID       – referenced packages.id.
//  UserID          – optional users.id of the booking customer.
//  DepartureDate   – ISO date string (YYYY-MM-DD) from the enumerated
//                    candidate set.
//  Travelers       – number of travellers, >= 1.
//  TotalPrice      – package price * travelers, stored as a decimal
//                    string.
//  Status          – reservation lifecycle state.
//  PaymentStatus   – payment state (bank transfer is confirmed manually).
//  ContactName     – last name + first name concatenation.
//  ContactEmail    – contact email address.
//  ContactPhone    – contact phone number.
//  SpecialRequests – optional free-form request text.
//  CreatedAt       – creation timestamp.
//  UpdatedAt       – last update timestamp.
type Reservation struct {
	ID              string            `json:"id"`
	PackageID       string            `json:"package_id"`
	UserID          *string           `json:"user_id,omitempty"`
	DepartureDate   string            `json:"departure_date"`
	Travelers       int               `json:"travelers"`
	TotalPrice      string            `json:"total_price"`
	Status          ReservationStatus `json:"status"`
	PaymentStatus   PaymentStatus     `json:"payment_status"`
	ContactName     string            `json:"contact_name"`
	ContactEmail    string            `json:"contact_email"`
	ContactPhone    string            `json:"contact_phone"`
	SpecialRequests *string           `json:"special_requests,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// ReservationCodePrefix prefixes the user-facing reservation code.
const ReservationCodePrefix = "TS"

// Code derives the user-facing reservation code from the record id:
// the prefix plus the first eight characters of the UUID.
func (r *Reservation) Code() string {
	id := r.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return ReservationCodePrefix + "-" + id
}
