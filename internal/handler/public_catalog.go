// Package handler exposes HTTP handlers for both authenticated and public
// endpoints. This file defines handlers for the public storefront API.
// These routes let anyone browse, search and filter travel packages
// without authentication. Reads go through the catalog fallback layer,
// so they keep working from the demo dataset when the database is down.

package handler

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-reservation/internal/booking"
	"github.com/iliyamo/travel-reservation/internal/catalog"
	"github.com/iliyamo/travel-reservation/internal/model"
)

// PublicHandler aggregates the catalog provider needed for
// unauthenticated browsing.
type PublicHandler struct {
	Catalog catalog.Provider // read-side access to packages, fallback-wrapped
}

// NewPublicHandler constructs a PublicHandler.
func NewPublicHandler(p catalog.Provider) *PublicHandler {
	if p == nil {
		panic("nil catalog provider passed to NewPublicHandler")
	}
	return &PublicHandler{Catalog: p}
}

// placeholderImage is substituted when a package has no images so the
// storefront always has something to render.
const placeholderImage = "/static/placeholder-package.jpg"

// PublicPackage is the list-item shape exposed via the public API.
type PublicPackage struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Location        string  `json:"location"`
	Duration        string  `json:"duration"`
	Price           int64   `json:"price"`
	OriginalPrice   *int64  `json:"original_price,omitempty"`
	DiscountPercent int     `json:"discount_percent,omitempty"`
	Rating          float64 `json:"rating"`
	ReviewCount     int     `json:"review_count"`
	Image           string  `json:"image"`
	Featured        bool    `json:"featured"`
}

// PublicPackageDetail is the full detail-page shape, including the
// itinerary and a per-traveler quote.
type PublicPackageDetail struct {
	PublicPackage
	Images         []string             `json:"images"`
	Highlights     []string             `json:"highlights"`
	Inclusions     []string             `json:"inclusions"`
	Exclusions     []string             `json:"exclusions"`
	Itinerary      []model.ItineraryDay `json:"itinerary"`
	AvailableSpots int                  `json:"available_spots"`
	Travelers      int                  `json:"travelers"`
	TotalPrice     int64                `json:"total_price"`
	TotalDisplay   string               `json:"total_display"`
}

func toPublicPackage(p *model.Package) PublicPackage {
	img := placeholderImage
	if len(p.Images) > 0 {
		img = p.Images[0]
	}
	return PublicPackage{
		ID:              p.ID,
		Title:           p.Title,
		Location:        p.Location,
		Duration:        p.Duration,
		Price:           p.Price,
		OriginalPrice:   p.OriginalPrice,
		DiscountPercent: p.DiscountPercent(),
		Rating:          p.Rating,
		ReviewCount:     p.ReviewCount,
		Image:           img,
		Featured:        p.Featured,
	}
}

// sortPackages applies the storefront sort keys in place.  Unknown
// keys leave backend order untouched.
func sortPackages(items []*model.Package, key string) {
	switch key {
	case "popularity":
		sort.SliceStable(items, func(i, j int) bool { return items[i].ReviewCount > items[j].ReviewCount })
	case "price_asc":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case "price_desc":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case "rating":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Rating > items[j].Rating })
	}
}

// GetPackages handles GET /v1/packages.  Optional query params:
// sort (popularity|price_asc|price_desc|rating), min_price, max_price,
// duration (substring match).  Filtering mirrors the storefront's
// client-side predicates so API consumers get the same results.
func (h *PublicHandler) GetPackages(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		items []*model.Package
		err   error
	)
	minStr, maxStr := c.QueryParam("min_price"), c.QueryParam("max_price")
	if minStr != "" || maxStr != "" {
		min, _ := strconv.ParseInt(minStr, 10, 64)
		max, _ := strconv.ParseInt(maxStr, 10, 64)
		items, err = h.Catalog.GetByPriceRange(ctx, min, max)
	} else {
		items, err = h.Catalog.GetAll(ctx)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	if d := strings.ToLower(strings.TrimSpace(c.QueryParam("duration"))); d != "" {
		filtered := items[:0]
		for _, p := range items {
			if strings.Contains(strings.ToLower(p.Duration), d) {
				filtered = append(filtered, p)
			}
		}
		items = filtered
	}
	sortPackages(items, c.QueryParam("sort"))

	out := make([]PublicPackage, 0, len(items))
	for _, p := range items {
		out = append(out, toPublicPackage(p))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetPackage handles GET /v1/packages/:id.  The optional travelers
// query parameter (default 1, clamped to the offered select range)
// drives the per-traveler total shown on the detail page.
func (h *PublicHandler) GetPackage(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	p, err := h.Catalog.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	travelers, _ := strconv.Atoi(c.QueryParam("travelers"))
	if travelers < booking.MinTravelers {
		travelers = booking.MinTravelers
	}
	if travelers > booking.MaxTravelers {
		travelers = booking.MaxTravelers
	}
	total := booking.Quote(p.Price, travelers)

	detail := PublicPackageDetail{
		PublicPackage:  toPublicPackage(p),
		Images:         p.Images,
		Highlights:     p.Highlights,
		Inclusions:     p.Inclusions,
		Exclusions:     p.Exclusions,
		Itinerary:      p.Itinerary,
		AvailableSpots: p.AvailableSpots,
		Travelers:      travelers,
		TotalPrice:     total,
		TotalDisplay:   booking.FormatWon(total),
	}
	if len(detail.Images) == 0 {
		detail.Images = []string{placeholderImage}
	}
	return c.JSON(http.StatusOK, detail)
}

// GetDepartures handles GET /v1/packages/:id/departures.  The
// response is the full enumerated candidate set; the storefront
// renders it as a flat selectable list.
func (h *PublicHandler) GetDepartures(c echo.Context) error {
	ctx := c.Request().Context()
	if _, err := h.Catalog.GetByID(ctx, c.Param("id")); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": booking.DepartureDates(time.Now().UTC())})
}

// SearchPackages handles GET /v1/search/packages?q=term.
func (h *PublicHandler) SearchPackages(c echo.Context) error {
	term := strings.TrimSpace(c.QueryParam("q"))
	items, err := h.Catalog.Search(c.Request().Context(), term)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]PublicPackage, 0, len(items))
	for _, p := range items {
		out = append(out, toPublicPackage(p))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetPopularPackages handles GET /v1/packages/popular?limit=n.
func (h *PublicHandler) GetPopularPackages(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = 4
	}
	if limit > 50 {
		limit = 50
	}
	items, err := h.Catalog.GetPopular(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]PublicPackage, 0, len(items))
	for _, p := range items {
		out = append(out, toPublicPackage(p))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}
