package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-reservation/internal/booking"
	"github.com/iliyamo/travel-reservation/internal/catalog"
	"github.com/iliyamo/travel-reservation/internal/logger"
	"github.com/iliyamo/travel-reservation/internal/model"
	"github.com/iliyamo/travel-reservation/internal/queue"
	"github.com/iliyamo/travel-reservation/internal/repository"
)

// ReservationReader is the read port used by the booking endpoints.
type ReservationReader interface {
	GetByID(ctx context.Context, id string) (*model.Reservation, error)
}

// BookingHandler drives the reservation workflow over HTTP.  The
// storefront walks the customer through the three form steps locally;
// the final submission posts the complete form here, where the same
// step guards are re-run before the single persistence write.
type BookingHandler struct {
	Catalog catalog.Provider  // resolves the package being booked
	Store   booking.Store     // single write port; nil when running without a database
	Reader  ReservationReader // reservation lookup for the confirmation page
	// Publish sends the reservation.created event after a successful
	// submission.  It is best effort: failures are logged, never
	// surfaced, and never block the response.  May be nil.
	Publish func(ctx context.Context, ev queue.ReservationCreatedEvent) error
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(cat catalog.Provider, store booking.Store, reader ReservationReader) *BookingHandler {
	if cat == nil {
		panic("nil catalog provider passed to NewBookingHandler")
	}
	return &BookingHandler{Catalog: cat, Store: store, Reader: reader}
}

// reservationReq is the complete form state posted on final submission.
type reservationReq struct {
	PackageID       string  `json:"package_id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	DepartureDate   string  `json:"departure_date"`
	Travelers       int     `json:"travelers"`
	SpecialRequests string  `json:"special_requests"`
	TermsAgreed     bool    `json:"terms_agreed"`
	UserID          *string `json:"user_id"`
}

func (r *reservationReq) form() booking.Form {
	return booking.Form{
		PackageID:       r.PackageID,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		DepartureDate:   r.DepartureDate,
		Travelers:       r.Travelers,
		SpecialRequests: r.SpecialRequests,
		TermsAgreed:     r.TermsAgreed,
		UserID:          r.UserID,
	}
}

// quoteReq asks for the running total shown while the form is edited.
type quoteReq struct {
	PackageID string `json:"package_id"`
	Travelers int    `json:"travelers"`
}

// Quote handles POST /v1/reservations/quote.  It recomputes the total
// price for the current form state: base price times traveler count.
func (h *BookingHandler) Quote(c echo.Context) error {
	var req quoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Travelers < booking.MinTravelers || req.Travelers > booking.MaxTravelers {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "travelers must be between 1 and 8"})
	}
	p, err := h.Catalog.GetByID(c.Request().Context(), req.PackageID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	total := booking.Quote(p.Price, req.Travelers)
	return c.JSON(http.StatusOK, echo.Map{
		"package_id":    p.ID,
		"travelers":     req.Travelers,
		"total_price":   booking.QuoteString(p.Price, req.Travelers),
		"total_display": booking.FormatWon(total),
	})
}

// Create handles POST /v1/reservations: the "complete reservation"
// action.  The workflow is replayed over the posted form (both step
// guards run server-side); a guard failure returns 400 with the field
// error map and no write happens.  A validated form results in
// exactly one create call.  Store failure surfaces the error text and
// leaves nothing behind; the client resubmits manually.
func (h *BookingHandler) Create(c echo.Context) error {
	var req reservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	p, err := h.Catalog.GetByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	wf := booking.NewWorkflow(req.form(), booking.DepartureDates(time.Now().UTC()))
	if !wf.Next() { // contact step guard (P1)
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": wf.Errors(), "step": wf.Step()})
	}
	if !wf.Next() { // terms guard (P2)
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": wf.Errors(), "step": wf.Step()})
	}

	if h.Store == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "reservations are temporarily unavailable"})
	}
	res, err := wf.Submit(ctx, h.Store, p)
	if err != nil {
		if errors.Is(err, repository.ErrNoCapacity) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "not enough available spots"})
		}
		logger.ErrorLogger.WithError(err).Error("reservation create failed")
		msg := err.Error()
		if msg == "" {
			msg = "reservation could not be created"
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": msg})
	}

	if h.Publish != nil {
		ev := queue.NewReservationCreatedEvent(res, p)
		if err := h.Publish(context.WithoutCancel(ctx), ev); err != nil {
			logger.ErrorLogger.WithError(err).Error("publish reservation.created failed")
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"reservation":  res,
		"confirmation": booking.Confirm(res, p, booking.PaymentBankTransfer),
	})
}

// Get handles GET /v1/reservations/:id for the confirmation page.
func (h *BookingHandler) Get(c echo.Context) error {
	if h.Reader == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "reservations are temporarily unavailable"})
	}
	res, err := h.Reader.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": res, "code": res.Code()})
}
