package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-reservation/internal/booking"
	"github.com/iliyamo/travel-reservation/internal/model"
	"github.com/iliyamo/travel-reservation/internal/repository"
)

// ListReservations handles GET /v1/admin/reservations with an
// optional ?status= filter and page/page_size pagination.
func (h *AdminHandler) ListReservations(c echo.Context) error {
	q := repository.ListQuery{Status: c.QueryParam("status")}
	if q.Status != "" && !booking.ValidStatus(model.ReservationStatus(q.Status)) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
	}
	if v := c.QueryParam("page"); v != "" {
		q.Page, _ = strconv.Atoi(v)
	}
	if v := c.QueryParam("page_size"); v != "" {
		q.PageSize, _ = strconv.Atoi(v)
	}

	items, total, err := h.Reservations.List(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "total": total})
}

// GetReservation handles GET /v1/admin/reservations/:id.
func (h *AdminHandler) GetReservation(c echo.Context) error {
	res, err := h.Reservations.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": res, "code": res.Code()})
}

// UpdateReservationStatus handles PATCH /v1/admin/reservations/:id/status.
// Moves not allowed by the lifecycle table come back as 409.
func (h *AdminHandler) UpdateReservationStatus(c echo.Context) error {
	var req struct {
		Status model.ReservationStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !booking.ValidStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
	}

	err := h.Reservations.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{"status": req.Status})
	case errors.Is(err, repository.ErrReservationNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": "illegal status transition"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
}

// UpdateReservationPayment handles PATCH /v1/admin/reservations/:id/payment.
func (h *AdminHandler) UpdateReservationPayment(c echo.Context) error {
	var req struct {
		PaymentStatus model.PaymentStatus `json:"payment_status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !booking.ValidPaymentStatus(req.PaymentStatus) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown payment status"})
	}

	err := h.Reservations.UpdatePaymentStatus(c.Request().Context(), c.Param("id"), req.PaymentStatus)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{"payment_status": req.PaymentStatus})
	case errors.Is(err, repository.ErrReservationNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
}

// DeleteReservation handles DELETE /v1/admin/reservations/:id.
func (h *AdminHandler) DeleteReservation(c echo.Context) error {
	err := h.Reservations.Delete(c.Request().Context(), c.Param("id"))
	switch {
	case err == nil:
		return c.NoContent(http.StatusNoContent)
	case errors.Is(err, repository.ErrReservationNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
}
