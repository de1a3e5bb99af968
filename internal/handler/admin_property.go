package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-reservation/internal/listedit"
	"github.com/iliyamo/travel-reservation/internal/model"
	"github.com/iliyamo/travel-reservation/internal/repository"
)

// propertyReq is the admin create/update payload for hotels, resorts
// and villas.
type propertyReq struct {
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Description   string   `json:"description"`
	PricePerNight int64    `json:"price_per_night"`
	Rating        float64  `json:"rating"`
	Images        []string `json:"images"`
	Amenities     []string `json:"amenities"`
}

func validateProperty(req *propertyReq) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "name required"
	}
	if strings.TrimSpace(req.Location) == "" {
		errs["location"] = "location required"
	}
	if req.PricePerNight < 0 {
		errs["price_per_night"] = "price must be >= 0"
	}
	if req.Rating < 0 || req.Rating > 5 {
		errs["rating"] = "rating must be between 0 and 5"
	}
	if len(req.Images) > model.MaxImages {
		errs["images"] = "at most 10 images allowed"
	}
	return errs
}

func (req *propertyReq) apply(p *model.Property) {
	p.Name = req.Name
	p.Location = req.Location
	p.Description = req.Description
	p.PricePerNight = req.PricePerNight
	p.Rating = req.Rating
	p.Images = req.Images
	p.Amenities = req.Amenities
}

// propertyRepo resolves the :type path segment to the matching
// repository, rejecting unknown types before any SQL is involved.
func (h *AdminHandler) propertyRepo(c echo.Context) (*repository.PropertyRepo, bool) {
	t := c.Param("type")
	if !model.ValidPropertyType(t) {
		return nil, false
	}
	repo, ok := h.Properties[model.PropertyType(t)]
	return repo, ok
}

// ListProperties handles GET /v1/admin/properties/:type?q=term.
func (h *AdminHandler) ListProperties(c echo.Context) error {
	repo, ok := h.propertyRepo(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown property type"})
	}
	items, err := repo.List(c.Request().Context(), strings.TrimSpace(c.QueryParam("q")))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetProperty handles GET /v1/admin/properties/:type/:id.
func (h *AdminHandler) GetProperty(c echo.Context) error {
	repo, ok := h.propertyRepo(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown property type"})
	}
	p, err := repo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": p})
}

// CreateProperty handles POST /v1/admin/properties/:type.
func (h *AdminHandler) CreateProperty(c echo.Context) error {
	repo, ok := h.propertyRepo(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown property type"})
	}
	var req propertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if errs := validateProperty(&req); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}
	var p model.Property
	req.apply(&p)
	if err := repo.Create(c.Request().Context(), &p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": p})
}

// UpdateProperty handles PUT /v1/admin/properties/:type/:id.
func (h *AdminHandler) UpdateProperty(c echo.Context) error {
	repo, ok := h.propertyRepo(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown property type"})
	}
	var req propertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if errs := validateProperty(&req); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}
	ctx := c.Request().Context()
	p, err := repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	req.apply(p)
	if err := repo.Update(ctx, p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": p})
}

// DeleteProperty handles DELETE /v1/admin/properties/:type/:id.  The
// back-office shows a confirmation prompt; the API itself deletes
// immediately.
func (h *AdminHandler) DeleteProperty(c echo.Context) error {
	repo, ok := h.propertyRepo(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown property type"})
	}
	if err := repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// EditPropertyImages handles PATCH /v1/admin/properties/:type/:id/images,
// applying one ordered-list operation to the property's image list.
func (h *AdminHandler) EditPropertyImages(c echo.Context) error {
	repo, ok := h.propertyRepo(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown property type"})
	}
	var req listOpReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx := c.Request().Context()
	p, err := repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	l := listedit.New(p.Images, model.MaxImages)
	if err := applyListOp(l, req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	p.Images = l.Items()
	if err := repo.Update(ctx, p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"images": p.Images})
}
