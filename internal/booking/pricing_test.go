package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote_ScalesLinearlyWithTravelers(t *testing.T) {
	const base = int64(1200000)

	assert.Equal(t, base, Quote(base, 1))
	assert.Equal(t, int64(2400000), Quote(base, 2))
	assert.Equal(t, int64(9600000), Quote(base, 8))
	assert.Equal(t, int64(0), Quote(0, 5))
}

func TestQuoteString_PlainDecimal(t *testing.T) {
	assert.Equal(t, "2400000", QuoteString(1200000, 2))
	assert.Equal(t, "450000", QuoteString(450000, 1))
}

func TestFormatWon_KoreanGrouping(t *testing.T) {
	assert.Equal(t, "₩2,400,000", FormatWon(2400000))
	assert.Equal(t, "₩890,000", FormatWon(890000))
	assert.Equal(t, "₩0", FormatWon(0))
}

func TestPaymentMethodLabel(t *testing.T) {
	assert.Equal(t, "무통장 입금", PaymentMethodLabel(PaymentBankTransfer))
	assert.Equal(t, "card", PaymentMethodLabel("card")) // unknown methods pass through
}
