package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-reservation/internal/catalog"
	"github.com/iliyamo/travel-reservation/internal/listedit"
	"github.com/iliyamo/travel-reservation/internal/model"
)

// packageReq is the admin create/update payload.  It mirrors
// model.Package minus the server-owned fields.
type packageReq struct {
	Title          string               `json:"title"`
	Location       string               `json:"location"`
	Duration       string               `json:"duration"`
	Price          int64                `json:"price"`
	OriginalPrice  *int64               `json:"original_price"`
	Rating         float64              `json:"rating"`
	ReviewCount    int                  `json:"review_count"`
	Images         []string             `json:"images"`
	Highlights     []string             `json:"highlights"`
	Inclusions     []string             `json:"inclusions"`
	Exclusions     []string             `json:"exclusions"`
	Itinerary      []model.ItineraryDay `json:"itinerary"`
	AvailableSpots int                  `json:"available_spots"`
	Featured       bool                 `json:"featured"`
}

// validatePackage enforces the catalog invariants at the write
// boundary.  All violations are reported together, keyed by field.
// A present original price below the base price is rejected here so
// the discount display can assume a non-negative percentage.
func validatePackage(req *packageReq) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(req.Title) == "" {
		errs["title"] = "title required"
	}
	if strings.TrimSpace(req.Location) == "" {
		errs["location"] = "location required"
	}
	if req.Price < 0 {
		errs["price"] = "price must be >= 0"
	}
	if req.OriginalPrice != nil && *req.OriginalPrice < req.Price {
		errs["original_price"] = "original price must be >= price"
	}
	if req.Rating < 0 || req.Rating > 5 {
		errs["rating"] = "rating must be between 0 and 5"
	}
	if len(req.Images) > model.MaxImages {
		errs["images"] = "at most 10 images allowed"
	}
	if req.AvailableSpots < 0 {
		errs["available_spots"] = "available spots must be >= 0"
	}
	for _, day := range req.Itinerary {
		if day.Day < 1 {
			errs["itinerary"] = "itinerary day numbers must start at 1"
			break
		}
	}
	return errs
}

func (req *packageReq) apply(p *model.Package) {
	p.Title = req.Title
	p.Location = req.Location
	p.Duration = req.Duration
	p.Price = req.Price
	p.OriginalPrice = req.OriginalPrice
	p.Rating = req.Rating
	p.ReviewCount = req.ReviewCount
	p.Images = req.Images
	p.Highlights = req.Highlights
	p.Inclusions = req.Inclusions
	p.Exclusions = req.Exclusions
	p.Itinerary = req.Itinerary
	p.AvailableSpots = req.AvailableSpots
	p.Featured = req.Featured
}

// ListPackages handles GET /v1/admin/packages?q=term.  Unlike the
// public listing it returns full rows including spots and timestamps.
func (h *AdminHandler) ListPackages(c echo.Context) error {
	ctx := c.Request().Context()
	q := strings.TrimSpace(c.QueryParam("q"))
	var (
		items []*model.Package
		err   error
	)
	if q != "" {
		items, err = h.Packages.Search(ctx, q)
	} else {
		items, err = h.Packages.GetAll(ctx)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetPackage handles GET /v1/admin/packages/:id.
func (h *AdminHandler) GetPackage(c echo.Context) error {
	p, err := h.Packages.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": p})
}

// CreatePackage handles POST /v1/admin/packages.
func (h *AdminHandler) CreatePackage(c echo.Context) error {
	var req packageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if errs := validatePackage(&req); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}
	var p model.Package
	req.apply(&p)
	if err := h.Packages.Create(c.Request().Context(), &p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": p})
}

// UpdatePackage handles PUT /v1/admin/packages/:id.
func (h *AdminHandler) UpdatePackage(c echo.Context) error {
	var req packageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if errs := validatePackage(&req); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}
	ctx := c.Request().Context()
	p, err := h.Packages.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	req.apply(p)
	if err := h.Packages.Update(ctx, p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": p})
}

// DeletePackage handles DELETE /v1/admin/packages/:id.
func (h *AdminHandler) DeletePackage(c echo.Context) error {
	if err := h.Packages.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// EditPackageImages handles PATCH /v1/admin/packages/:id/images.
// Each request applies one ordered-list operation (append, remove,
// move_up, move_down, reorder) to the image list and persists the
// result.  The list is capped at ten entries.
func (h *AdminHandler) EditPackageImages(c echo.Context) error {
	var req listOpReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx := c.Request().Context()
	p, err := h.Packages.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	l := listedit.New(p.Images, model.MaxImages)
	if err := applyListOp(l, req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	p.Images = l.Items()
	if err := h.Packages.Update(ctx, p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"images": p.Images})
}
