package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/travel-reservation/internal/model"
)

func int64p(v int64) *int64 { return &v }

func TestValidatePackage_AllViolationsReported(t *testing.T) {
	req := &packageReq{
		Title:          "  ",
		Location:       "",
		Price:          -1,
		Rating:         5.5,
		AvailableSpots: -3,
		Images:         make([]string, model.MaxImages+1),
		Itinerary:      []model.ItineraryDay{{Day: 0}},
	}
	errs := validatePackage(req)
	for _, key := range []string{"title", "location", "price", "rating", "available_spots", "images", "itinerary"} {
		assert.Contains(t, errs, key)
	}
}

func TestValidatePackage_OriginalPriceFloor(t *testing.T) {
	req := &packageReq{
		Title:         "스위스 알프스 7일",
		Location:      "스위스",
		Price:         3450000,
		OriginalPrice: int64p(3000000),
	}
	errs := validatePackage(req)
	require.Len(t, errs, 1)
	assert.Contains(t, errs, "original_price")

	req.OriginalPrice = int64p(3900000)
	assert.Empty(t, validatePackage(req))

	// equal prices mean no discount, still legal
	req.OriginalPrice = int64p(3450000)
	assert.Empty(t, validatePackage(req))

	req.OriginalPrice = nil
	assert.Empty(t, validatePackage(req))
}

func TestValidateProperty(t *testing.T) {
	req := &propertyReq{
		Name:          "",
		Location:      "",
		PricePerNight: -100,
		Rating:        6,
	}
	errs := validateProperty(req)
	for _, key := range []string{"name", "location", "price_per_night", "rating"} {
		assert.Contains(t, errs, key)
	}

	ok := &propertyReq{Name: "시그니엘 서울", Location: "서울", PricePerNight: 450000, Rating: 4.7}
	assert.Empty(t, validateProperty(ok))
}
