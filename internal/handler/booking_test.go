package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/travel-reservation/internal/booking"
	"github.com/iliyamo/travel-reservation/internal/catalog"
	"github.com/iliyamo/travel-reservation/internal/model"
	"github.com/iliyamo/travel-reservation/internal/repository"
)

// countingStore records create calls so tests can pin the single-write
// behavior of submission.
type countingStore struct {
	calls int
	err   error
}

func (s *countingStore) Create(_ context.Context, r *model.Reservation) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	r.ID = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	return nil
}

func postJSON(t *testing.T, h echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func reservationBody(t *testing.T, overrides map[string]any) string {
	t.Helper()
	dates := booking.DepartureDates(time.Now().UTC())
	body := map[string]any{
		"package_id":     "pkg-1",
		"first_name":     "길동",
		"last_name":      "홍",
		"email":          "hong@example.com",
		"phone":          "010-1234-5678",
		"departure_date": dates[0],
		"travelers":      2,
		"terms_agreed":   true,
	}
	for k, v := range overrides {
		body[k] = v
	}
	bs, err := json.Marshal(body)
	require.NoError(t, err)
	return string(bs)
}

func TestBookingCreate_WritesExactlyOnce(t *testing.T) {
	store := &countingStore{}
	h := NewBookingHandler(catalog.NewFallback(nil), store, nil)

	rec := postJSON(t, h.Create, "/v1/reservations", reservationBody(t, nil))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 1, store.calls)

	body := decodeBody(t, rec)
	conf, ok := body["confirmation"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "TS-aaaaaaaa", conf["code"])
	assert.Equal(t, "무통장 입금", conf["payment_method"])
	assert.Equal(t, "2400000", conf["total_price"]) // 1200000 x 2, server-computed
}

func TestBookingCreate_ContactErrorsReturnedTogether(t *testing.T) {
	store := &countingStore{}
	h := NewBookingHandler(catalog.NewFallback(nil), store, nil)

	body := reservationBody(t, map[string]any{
		"first_name": "",
		"email":      "bad-email",
		"travelers":  0,
	})
	rec := postJSON(t, h.Create, "/v1/reservations", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, store.calls)

	out := decodeBody(t, rec)
	errs, ok := out["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "first_name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "travelers")
}

func TestBookingCreate_TermsGuard(t *testing.T) {
	store := &countingStore{}
	h := NewBookingHandler(catalog.NewFallback(nil), store, nil)

	rec := postJSON(t, h.Create, "/v1/reservations",
		reservationBody(t, map[string]any{"terms_agreed": false}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, store.calls)

	out := decodeBody(t, rec)
	errs := out["errors"].(map[string]any)
	assert.Contains(t, errs, "terms")
}

func TestBookingCreate_ClientTotalIsIgnored(t *testing.T) {
	store := &countingStore{}
	h := NewBookingHandler(catalog.NewFallback(nil), store, nil)

	// a tampered total in the payload has no field to land in; the
	// persisted price comes from the package row
	rec := postJSON(t, h.Create, "/v1/reservations",
		reservationBody(t, map[string]any{"total_price": "1"}))
	require.Equal(t, http.StatusCreated, rec.Code)

	out := decodeBody(t, rec)
	conf := out["confirmation"].(map[string]any)
	assert.Equal(t, "2400000", conf["total_price"])
}

func TestBookingCreate_UnknownPackage(t *testing.T) {
	store := &countingStore{}
	h := NewBookingHandler(catalog.NewFallback(nil), store, nil)

	rec := postJSON(t, h.Create, "/v1/reservations",
		reservationBody(t, map[string]any{"package_id": "no-such-package"}))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, store.calls)
}

func TestBookingCreate_NoCapacity(t *testing.T) {
	store := &countingStore{err: repository.ErrNoCapacity}
	h := NewBookingHandler(catalog.NewFallback(nil), store, nil)

	rec := postJSON(t, h.Create, "/v1/reservations", reservationBody(t, nil))
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 1, store.calls)
}

func TestBookingCreate_NilStoreUnavailable(t *testing.T) {
	h := NewBookingHandler(catalog.NewFallback(nil), nil, nil)

	rec := postJSON(t, h.Create, "/v1/reservations", reservationBody(t, nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestBookingQuote(t *testing.T) {
	h := NewBookingHandler(catalog.NewFallback(nil), nil, nil)

	rec := postJSON(t, h.Quote, "/v1/reservations/quote",
		`{"package_id":"pkg-1","travelers":3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	out := decodeBody(t, rec)
	assert.Equal(t, "3600000", out["total_price"])
	assert.Equal(t, "₩3,600,000", out["total_display"])

	rec = postJSON(t, h.Quote, "/v1/reservations/quote",
		`{"package_id":"pkg-1","travelers":9}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
