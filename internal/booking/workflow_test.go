package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/travel-reservation/internal/model"
)

// fakeStore counts create calls so tests can assert the workflow
// writes exactly once.
type fakeStore struct {
	calls int
	err   error
	last  *model.Reservation
}

func (s *fakeStore) Create(_ context.Context, r *model.Reservation) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	r.ID = "11111111-2222-3333-4444-555555555555"
	s.last = r
	return nil
}

func validForm(dates []string) Form {
	return Form{
		PackageID:     "pkg-1",
		FirstName:     "길동",
		LastName:      "홍",
		Email:         "hong@example.com",
		Phone:         "010-1234-5678",
		DepartureDate: dates[0],
		Travelers:     2,
	}
}

func testPackage() *model.Package {
	return &model.Package{ID: "pkg-1", Title: "일본 도쿄 & 오사카 5일", Price: 1200000}
}

func TestWorkflow_EmptyContactReportsAllErrors(t *testing.T) {
	dates := DepartureDates(time.Now())
	wf := NewWorkflow(Form{}, dates)

	require.False(t, wf.Next())
	assert.Equal(t, StepContact, wf.Step())

	errs := wf.Errors()
	for _, key := range []string{"first_name", "last_name", "email", "phone", "departure_date", "travelers"} {
		assert.Contains(t, errs, key)
	}
}

func TestWorkflow_ContactGuardChecksFormats(t *testing.T) {
	dates := DepartureDates(time.Now())

	form := validForm(dates)
	form.Email = "not-an-email"
	wf := NewWorkflow(form, dates)
	require.False(t, wf.Next())
	assert.Equal(t, "invalid email format", wf.Errors()["email"])

	form = validForm(dates)
	form.DepartureDate = "2031-01-01" // not in the candidate set
	wf = NewWorkflow(form, dates)
	require.False(t, wf.Next())
	assert.Equal(t, "departure date not available", wf.Errors()["departure_date"])

	form = validForm(dates)
	form.Travelers = 9
	wf = NewWorkflow(form, dates)
	require.False(t, wf.Next())
	assert.Contains(t, wf.Errors(), "travelers")
}

func TestWorkflow_HappyPathReachesConfirm(t *testing.T) {
	dates := DepartureDates(time.Now())
	form := validForm(dates)
	form.TermsAgreed = true
	wf := NewWorkflow(form, dates)

	require.True(t, wf.Next())
	assert.Equal(t, StepPayment, wf.Step())
	require.True(t, wf.Next())
	assert.Equal(t, StepConfirm, wf.Step())
	assert.Empty(t, wf.Errors())

	// confirm never advances via Next; only Submit leaves it
	assert.False(t, wf.Next())
	assert.Equal(t, StepConfirm, wf.Step())
}

func TestWorkflow_TermsGuardBlocksPaymentStep(t *testing.T) {
	dates := DepartureDates(time.Now())
	wf := NewWorkflow(validForm(dates), dates)

	require.True(t, wf.Next())
	require.False(t, wf.Next())
	assert.Equal(t, StepPayment, wf.Step())
	assert.Equal(t, "terms agreement required", wf.Errors()["terms"])
}

func TestWorkflow_BackNeverValidatesOrClears(t *testing.T) {
	dates := DepartureDates(time.Now())
	form := validForm(dates)
	form.TermsAgreed = true
	wf := NewWorkflow(form, dates)

	require.True(t, wf.Next())
	require.True(t, wf.Back())
	assert.Equal(t, StepContact, wf.Step())
	assert.Equal(t, form.Email, wf.Form().Email)

	// backward from the first step is a no-op
	assert.False(t, wf.Back())
	assert.Equal(t, StepContact, wf.Step())
}

func TestWorkflow_SubmitWritesExactlyOnce(t *testing.T) {
	dates := DepartureDates(time.Now())
	form := validForm(dates)
	form.TermsAgreed = true
	form.SpecialRequests = "  창가 좌석 부탁드립니다  "
	wf := NewWorkflow(form, dates)
	require.True(t, wf.Next())
	require.True(t, wf.Next())

	store := &fakeStore{}
	r, err := wf.Submit(context.Background(), store, testPackage())
	require.NoError(t, err)
	require.Equal(t, 1, store.calls)

	assert.Equal(t, StepSubmitted, wf.Step())
	assert.Equal(t, model.ReservationPending, r.Status)
	assert.Equal(t, model.PaymentPending, r.PaymentStatus)
	assert.Equal(t, "2400000", r.TotalPrice) // 1200000 x 2, recomputed server-side
	assert.Equal(t, "홍길동", r.ContactName)
	require.NotNil(t, r.SpecialRequests)
	assert.Equal(t, "창가 좌석 부탁드립니다", *r.SpecialRequests)
}

func TestWorkflow_SubmitRequiresConfirmStep(t *testing.T) {
	dates := DepartureDates(time.Now())
	wf := NewWorkflow(validForm(dates), dates)

	store := &fakeStore{}
	_, err := wf.Submit(context.Background(), store, testPackage())
	require.ErrorIs(t, err, ErrNotConfirmable)
	assert.Zero(t, store.calls)
}

func TestWorkflow_SubmitFailureStaysAtConfirm(t *testing.T) {
	dates := DepartureDates(time.Now())
	form := validForm(dates)
	form.TermsAgreed = true
	wf := NewWorkflow(form, dates)
	require.True(t, wf.Next())
	require.True(t, wf.Next())

	store := &fakeStore{err: errors.New("connection reset")}
	_, err := wf.Submit(context.Background(), store, testPackage())
	require.Error(t, err)
	assert.Equal(t, StepConfirm, wf.Step())
	assert.Equal(t, 1, store.calls)

	// the caller may retry explicitly; each retry is one more write
	store.err = nil
	r, err := wf.Submit(context.Background(), store, testPackage())
	require.NoError(t, err)
	assert.Equal(t, 2, store.calls)
	assert.NotNil(t, r)
}

func TestConfirm_BuildsSummary(t *testing.T) {
	dates := DepartureDates(time.Now())
	form := validForm(dates)
	form.TermsAgreed = true
	wf := NewWorkflow(form, dates)
	require.True(t, wf.Next())
	require.True(t, wf.Next())

	store := &fakeStore{}
	r, err := wf.Submit(context.Background(), store, testPackage())
	require.NoError(t, err)

	c := Confirm(r, testPackage(), PaymentBankTransfer)
	assert.Equal(t, "TS-11111111", c.Code)
	assert.Equal(t, "일본 도쿄 & 오사카 5일", c.PackageTitle)
	assert.Equal(t, 2, c.Travelers)
	assert.Equal(t, "무통장 입금", c.PaymentMethod)
	assert.Equal(t, "2400000", c.TotalPrice)
	assert.Equal(t, "₩2,400,000", c.TotalDisplay)
}
