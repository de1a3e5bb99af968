package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/travel-reservation/internal/catalog"
)

func getJSON(t *testing.T, h echo.HandlerFunc, target string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	require.NoError(t, h(c))
	return rec
}

func itemsOf(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out.Items
}

func demoHandler() *PublicHandler {
	return NewPublicHandler(catalog.NewFallback(nil))
}

func TestGetPackages_SortPriceAsc(t *testing.T) {
	rec := getJSON(t, demoHandler().GetPackages, "/v1/packages?sort=price_asc")
	require.Equal(t, http.StatusOK, rec.Code)

	items := itemsOf(t, rec)
	require.Len(t, items, 4)
	var prev float64 = -1
	for _, it := range items {
		price := it["price"].(float64)
		assert.GreaterOrEqual(t, price, prev)
		prev = price
	}
}

func TestGetPackages_PriceFilter(t *testing.T) {
	rec := getJSON(t, demoHandler().GetPackages, "/v1/packages?min_price=800000&max_price=2000000")
	require.Equal(t, http.StatusOK, rec.Code)

	for _, it := range itemsOf(t, rec) {
		price := it["price"].(float64)
		assert.GreaterOrEqual(t, price, float64(800000))
		assert.LessOrEqual(t, price, float64(2000000))
	}
}

func TestGetPackage_DiscountAndQuote(t *testing.T) {
	rec := getJSON(t, demoHandler().GetPackage, "/v1/packages/pkg-1?travelers=3", "id", "pkg-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var detail PublicPackageDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))

	assert.Equal(t, "일본 도쿄 & 오사카 5일", detail.Title)
	assert.Equal(t, 20, detail.DiscountPercent) // 1500000 -> 1200000
	assert.Equal(t, 3, detail.Travelers)
	assert.Equal(t, int64(3600000), detail.TotalPrice)
	assert.Equal(t, "₩3,600,000", detail.TotalDisplay)
	assert.NotEmpty(t, detail.Itinerary)
}

func TestGetPackage_TravelersClamped(t *testing.T) {
	rec := getJSON(t, demoHandler().GetPackage, "/v1/packages/pkg-1?travelers=99", "id", "pkg-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var detail PublicPackageDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, 8, detail.Travelers)

	// missing or zero falls back to a single traveler
	rec = getJSON(t, demoHandler().GetPackage, "/v1/packages/pkg-1", "id", "pkg-1")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, 1, detail.Travelers)
}

func TestGetPackage_NotFound(t *testing.T) {
	rec := getJSON(t, demoHandler().GetPackage, "/v1/packages/missing", "id", "missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDepartures_FlatCandidateList(t *testing.T) {
	rec := getJSON(t, demoHandler().GetDepartures, "/v1/packages/pkg-1/departures", "id", "pkg-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Items []string `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out.Items, 27)
}

func TestSearchPackages(t *testing.T) {
	rec := getJSON(t, demoHandler().SearchPackages, "/v1/search/packages?q=제주")
	require.Equal(t, http.StatusOK, rec.Code)

	items := itemsOf(t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "pkg-4", items[0]["id"])
}

func TestGetPopularPackages_DefaultLimit(t *testing.T) {
	rec := getJSON(t, demoHandler().GetPopularPackages, "/v1/packages/popular")
	require.Equal(t, http.StatusOK, rec.Code)

	items := itemsOf(t, rec)
	require.NotEmpty(t, items)
	assert.LessOrEqual(t, len(items), 4)
}
