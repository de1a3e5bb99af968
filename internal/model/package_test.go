package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func orig(v int64) *int64 { return &v }

func TestDiscountPercent(t *testing.T) {
	p := Package{Price: 1200000, OriginalPrice: orig(1500000)}
	assert.Equal(t, 20, p.DiscountPercent())

	p = Package{Price: 890000, OriginalPrice: orig(1100000)}
	assert.Equal(t, 19, p.DiscountPercent()) // 19.09 rounds down

	p = Package{Price: 450000}
	assert.Equal(t, 0, p.DiscountPercent())

	// equal means no discount shown
	p = Package{Price: 450000, OriginalPrice: orig(450000)}
	assert.Equal(t, 0, p.DiscountPercent())
}

func TestReservationCode(t *testing.T) {
	r := Reservation{ID: "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"}
	assert.Equal(t, "TS-aaaaaaaa", r.Code())

	// short ids degrade gracefully rather than panic
	r = Reservation{ID: "abc"}
	assert.Equal(t, "TS-abc", r.Code())
}
