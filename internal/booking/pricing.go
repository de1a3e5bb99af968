package booking

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Traveler counts offered by the storefront select control.
const (
	MinTravelers = 1
	MaxTravelers = 8
)

// Quote computes the total price for a party: base price times
// traveler count.  Prices are whole KRW so the product is exact;
// there is no rounding step anywhere in the pipeline.
func Quote(basePrice int64, travelers int) int64 {
	return basePrice * int64(travelers)
}

// QuoteString renders a quote the way it is persisted on the
// reservation row: a plain decimal string with no formatting.
func QuoteString(basePrice int64, travelers int) string {
	return strconv.FormatInt(Quote(basePrice, travelers), 10)
}

// won is a Korean-locale printer reused across calls; message.Printer
// is safe for concurrent use.
var won = message.NewPrinter(language.Korean)

// FormatWon renders an amount for display with the won sign and
// locale grouping, e.g. 2400000 -> "₩2,400,000".
func FormatWon(amount int64) string {
	return won.Sprintf("₩%d", amount)
}
