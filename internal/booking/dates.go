package booking

import "time"

// Departure dates are not free-form: the storefront offers a flat,
// precomputed list of candidate dates at fixed 14-day intervals from
// "now" through one year out.  Validation is then a pure membership
// check with no calendar edge cases.
const (
	// DepartureInterval is the spacing between candidate dates.
	DepartureInterval = 14 * 24 * time.Hour
	// DepartureHorizon bounds how far out departures are offered.
	DepartureHorizon = 365 * 24 * time.Hour
)

// DateLayout is the wire format for departure dates (ISO date).
const DateLayout = "2006-01-02"

// DepartureDates returns the arithmetic sequence
// from, from+14d, from+28d, ... <= from+365d as ISO date strings.
// The time component of from is discarded.
func DepartureDates(from time.Time) []string {
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	last := day.Add(DepartureHorizon)

	var out []string
	for d := day; !d.After(last); d = d.Add(DepartureInterval) {
		out = append(out, d.Format(DateLayout))
	}
	return out
}

// IsSelectableDate reports whether date is a member of the candidate
// set.  The set is small (27 entries) so a linear scan is fine.
func IsSelectableDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}
