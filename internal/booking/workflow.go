// Package booking implements the reservation workflow: a three-step
// gated form (contact/date/travelers -> payment method and terms ->
// confirmation), the derived pricing calculation, the departure-date
// candidate set and the reservation status machine.  The package is
// pure except for Submit, which performs exactly one write against
// the persistence layer.
package booking

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/iliyamo/travel-reservation/internal/model"
)

// Step identifies a position in the reservation workflow.
type Step int

const (
	// StepContact collects traveler contact details and the departure date.
	StepContact Step = iota + 1
	// StepPayment shows the payment method and collects the terms agreement.
	StepPayment
	// StepConfirm is the read-only summary before submission.
	StepConfirm
	// StepSubmitted is terminal; the reservation row exists.
	StepSubmitted
)

// PaymentBankTransfer is the only payment method offered; actual
// payment processing is out of scope, customers receive manual bank
// transfer instructions.
const PaymentBankTransfer = "bank_transfer"

// PaymentMethodLabel maps a payment method to its display label.
func PaymentMethodLabel(method string) string {
	if method == PaymentBankTransfer {
		return "무통장 입금"
	}
	return method
}

// Form is the in-memory state accumulated across the workflow steps.
// Zero values are valid; fields are checked only when the step that
// owns them is left.
type Form struct {
	PackageID       string
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	DepartureDate   string
	Travelers       int
	SpecialRequests string
	PaymentMethod   string
	TermsAgreed     bool
	UserID          *string
}

// ContactName builds the persisted contact name: family name first,
// then given name, matching the Korean storefront display.
func (f *Form) ContactName() string {
	return f.LastName + f.FirstName
}

// emailRe accepts the simple text@text.text shape.  Full RFC 5322
// validation is deliberately not attempted.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateContact evaluates the step-one guard.  All failing fields
// are reported together; the returned map is keyed by field name and
// is empty when the form may advance.
func ValidateContact(f *Form, dates []string) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(f.FirstName) == "" {
		errs["first_name"] = "first name required"
	}
	if strings.TrimSpace(f.LastName) == "" {
		errs["last_name"] = "last name required"
	}
	email := strings.TrimSpace(f.Email)
	if email == "" {
		errs["email"] = "email required"
	} else if !emailRe.MatchString(email) {
		errs["email"] = "invalid email format"
	}
	if strings.TrimSpace(f.Phone) == "" {
		errs["phone"] = "phone required"
	}
	if f.DepartureDate == "" {
		errs["departure_date"] = "departure date required"
	} else if !IsSelectableDate(dates, f.DepartureDate) {
		errs["departure_date"] = "departure date not available"
	}
	if f.Travelers < MinTravelers || f.Travelers > MaxTravelers {
		errs["travelers"] = "travelers must be between 1 and 8"
	}
	return errs
}

// ValidateAgreement evaluates the step-two guard: the terms checkbox
// must be ticked.
func ValidateAgreement(f *Form) map[string]string {
	if !f.TermsAgreed {
		return map[string]string{"terms": "terms agreement required"}
	}
	return map[string]string{}
}

// Store is the single write port of the workflow.  Create must assign
// the reservation ID and perform the capacity check atomically with
// the insert.
type Store interface {
	Create(ctx context.Context, r *model.Reservation) error
}

// Workflow drives one customer through the reservation steps.  It is
// not safe for concurrent use; each instance belongs to one session.
type Workflow struct {
	step  Step
	form  Form
	dates []string
	errs  map[string]string
}

// NewWorkflow starts a workflow at the contact step.  The form may be
// pre-populated (package id, departure date, traveler count arrive as
// query parameters from the detail page); dates is the enumerated
// candidate set the departure date is validated against.
func NewWorkflow(form Form, dates []string) *Workflow {
	if form.PaymentMethod == "" {
		form.PaymentMethod = PaymentBankTransfer
	}
	return &Workflow{step: StepContact, form: form, dates: dates}
}

// Step returns the current workflow position.
func (w *Workflow) Step() Step { return w.step }

// Form returns a copy of the accumulated form state.
func (w *Workflow) Form() Form { return w.form }

// Errors returns the field errors from the last failed transition
// attempt.  It is reset on every call to Next.
func (w *Workflow) Errors() map[string]string { return w.errs }

// Update merges new form input into the workflow.  Entering data
// never triggers validation; guards run only on forward transitions.
func (w *Workflow) Update(form Form) {
	form.PaymentMethod = w.form.PaymentMethod
	if form.PaymentMethod == "" {
		form.PaymentMethod = PaymentBankTransfer
	}
	w.form = form
}

// Next attempts a forward transition and reports whether it happened.
// On guard failure the step is unchanged and Errors holds the field
// messages.  StepConfirm does not advance here: leaving it requires a
// successful Submit.
func (w *Workflow) Next() bool {
	switch w.step {
	case StepContact:
		w.errs = ValidateContact(&w.form, w.dates)
		if len(w.errs) > 0 {
			return false
		}
		w.step = StepPayment
		return true
	case StepPayment:
		w.errs = ValidateAgreement(&w.form)
		if len(w.errs) > 0 {
			return false
		}
		w.step = StepConfirm
		return true
	}
	return false
}

// Back moves one step backward.  Backward transitions are always
// allowed, never revalidate and never clear entered data.
func (w *Workflow) Back() bool {
	switch w.step {
	case StepPayment:
		w.step = StepContact
		return true
	case StepConfirm:
		w.step = StepPayment
		return true
	}
	return false
}

// Submit performs the final transition.  It must be called at
// StepConfirm; it builds the reservation payload from the form and
// the resolved package and issues exactly one create call.  The total
// price is recomputed here from the package row rather than trusted
// from the client.  On store failure the workflow stays at
// StepConfirm and the error is returned for the caller to surface;
// there is no automatic retry.
func (w *Workflow) Submit(ctx context.Context, store Store, pkg *model.Package) (*model.Reservation, error) {
	if w.step != StepConfirm {
		return nil, ErrNotConfirmable
	}
	now := time.Now().UTC()
	r := &model.Reservation{
		PackageID:     pkg.ID,
		UserID:        w.form.UserID,
		DepartureDate: w.form.DepartureDate,
		Travelers:     w.form.Travelers,
		TotalPrice:    QuoteString(pkg.Price, w.form.Travelers),
		Status:        model.ReservationPending,
		PaymentStatus: model.PaymentPending,
		ContactName:   w.form.ContactName(),
		ContactEmail:  strings.TrimSpace(w.form.Email),
		ContactPhone:  strings.TrimSpace(w.form.Phone),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if s := strings.TrimSpace(w.form.SpecialRequests); s != "" {
		r.SpecialRequests = &s
	}
	if err := store.Create(ctx, r); err != nil {
		return nil, err
	}
	w.step = StepSubmitted
	return r, nil
}

// Confirmation is the summary rendered after a successful submission.
type Confirmation struct {
	Code          string `json:"code"`
	PackageTitle  string `json:"package_title"`
	DepartureDate string `json:"departure_date"`
	Travelers     int    `json:"travelers"`
	PaymentMethod string `json:"payment_method"`
	TotalPrice    string `json:"total_price"`
	TotalDisplay  string `json:"total_display"`
}

// Confirm builds the confirmation summary for a created reservation.
func Confirm(r *model.Reservation, pkg *model.Package, paymentMethod string) Confirmation {
	total := Quote(pkg.Price, r.Travelers)
	return Confirmation{
		Code:          r.Code(),
		PackageTitle:  pkg.Title,
		DepartureDate: r.DepartureDate,
		Travelers:     r.Travelers,
		PaymentMethod: PaymentMethodLabel(paymentMethod),
		TotalPrice:    r.TotalPrice,
		TotalDisplay:  FormatWon(total),
	}
}
