package model

import "time"

// PropertyType selects which accommodation table a property row lives
// in.  Hotels, resorts and villas share one column layout and are
// managed by identical back-office forms, so they share one model.
type PropertyType string

const (
	PropertyHotel  PropertyType = "hotels"
	PropertyResort PropertyType = "resorts"
	PropertyVilla  PropertyType = "villas"
)

// ValidPropertyType reports whether t names one of the supported
// accommodation tables.  Handlers use it to validate the :type path
// segment before any SQL is built from it.
func ValidPropertyType(t string) bool {
	switch PropertyType(t) {
	case PropertyHotel, PropertyResort, PropertyVilla:
		return true
	}
	return false
}

// Property is an accommodation managed through the admin back-office.
// One struct backs the `hotels`, `resorts` and `villas` tables.
//
// Fields:
//  ID            – opaque UUID identifier.
//  Name          – display name.
//  Location      – location text.
//  Description   – free-form description.
//  PricePerNight – nightly price in whole KRW.
//  Rating        – average rating in [0,5].
//  Images        – image URLs, capped at MaxImages.
//  Amenities     – amenity strings (wifi, parking, ...).
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type Property struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	Description   string    `json:"description"`
	PricePerNight int64     `json:"price_per_night"`
	Rating        float64   `json:"rating"`
	Images        []string  `json:"images"`
	Amenities     []string  `json:"amenities"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
