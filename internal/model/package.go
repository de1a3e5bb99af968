package model

import "time"

// ItineraryDay is one ordered entry of a package itinerary.  Days are
// stored as a JSON array inside the `packages` row because they are
// only ever read and written together with their package.
//
// Fields:
//  Day           – 1-based day number within the trip.
//  Title         – short headline for the day.
//  Description   – free-form description of the day's activities.
//  Accommodation – where travellers sleep that night (empty on the last day).
//  Meals         – which meals are covered.
type ItineraryDay struct {
	Day           int       `json:"day"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Accommodation string    `json:"accommodation,omitempty"`
	Meals         MealFlags `json:"meals"`
}

// MealFlags marks the meals included on an itinerary day.
type MealFlags struct {
	Breakfast bool `json:"breakfast"`
	Lunch     bool `json:"lunch"`
	Dinner    bool `json:"dinner"`
}

// Package is a sellable travel product.  It corresponds to a row in
// the `packages` table.  Array-valued fields (images, highlights,
// inclusions, exclusions, itinerary) are serialized to JSON columns.
//
// Fields:
//  ID             – opaque UUID identifier.
//  Title          – display title of the package.
//  Location       – destination text (e.g. "도쿄, 일본").
//  Duration       – human-readable duration (e.g. "4박 5일").
//  Price          – base price per traveller in whole KRW.
//  OriginalPrice  – optional list price used for discount display; when
//                   present it must be >= Price.
//  Rating         – average rating in [0,5], one decimal.
//  ReviewCount    – number of reviews behind the rating.
//  Images         – image URLs; may be empty (render layer substitutes
//                   a placeholder), capped at MaxImages.
//  Highlights     – marketing highlight strings.
//  Inclusions     – what the price covers.
//  Exclusions     – what the price does not cover.
//  Itinerary      – ordered day-by-day plan.
//  AvailableSpots – remaining bookable capacity.
//  Featured       – whether the package is surfaced on the front page.
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – last update timestamp.
type Package struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Location       string         `json:"location"`
	Duration       string         `json:"duration"`
	Price          int64          `json:"price"`
	OriginalPrice  *int64         `json:"original_price,omitempty"`
	Rating         float64        `json:"rating"`
	ReviewCount    int            `json:"review_count"`
	Images         []string       `json:"images"`
	Highlights     []string       `json:"highlights"`
	Inclusions     []string       `json:"inclusions"`
	Exclusions     []string       `json:"exclusions"`
	Itinerary      []ItineraryDay `json:"itinerary"`
	AvailableSpots int            `json:"available_spots"`
	Featured       bool           `json:"featured"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// MaxImages caps the number of images an admin may attach to a
// package or property.
const MaxImages = 10

// DiscountPercent returns the rounded discount relative to the
// original price, or 0 when no original price is set.  Callers can
// rely on the result being non-negative because OriginalPrice >= Price
// is validated at write time.
func (p *Package) DiscountPercent() int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= 0 {
		return 0
	}
	if *p.OriginalPrice <= p.Price {
		return 0
	}
	return int(float64(*p.OriginalPrice-p.Price)/float64(*p.OriginalPrice)*100 + 0.5)
}
