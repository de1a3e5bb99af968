// This file defines repository methods for the `reservations` table.
// Creation runs inside a transaction that also reserves capacity on
// the package row: available_spots is checked and decremented in the
// same statement so concurrent submissions cannot oversell a
// departure.  Status changes go through the booking transition table
// and illegal transitions are rejected with ErrConflict.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/iliyamo/travel-reservation/internal/booking"
	"github.com/iliyamo/travel-reservation/internal/model"
)

// ReservationRepo encapsulates all database queries related to
// reservations.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo constructs a ReservationRepo with the provided
// DB handle.
func NewReservationRepo(db *sql.DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

// DB exposes the underlying pool.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

const resColumns = `id, package_id, user_id, departure_date, travelers, total_price,
	status, payment_status, contact_name, contact_email, contact_phone,
	special_requests, created_at, updated_at`

func scanReservation(row interface{ Scan(...any) error }) (*model.Reservation, error) {
	var (
		res      model.Reservation
		userID   sql.NullString
		requests sql.NullString
	)
	if err := row.Scan(&res.ID, &res.PackageID, &userID, &res.DepartureDate,
		&res.Travelers, &res.TotalPrice, &res.Status, &res.PaymentStatus,
		&res.ContactName, &res.ContactEmail, &res.ContactPhone, &requests,
		&res.CreatedAt, &res.UpdatedAt); err != nil {
		return nil, err
	}
	if userID.Valid {
		res.UserID = &userID.String
	}
	if requests.Valid {
		res.SpecialRequests = &requests.String
	}
	return &res, nil
}

// Create inserts a reservation and reserves capacity atomically.  The
// guarded UPDATE decrements available_spots only when enough spots
// remain; zero affected rows means the package is gone or sold short,
// and the transaction is rolled back with ErrNoCapacity.  On success
// the reservation's ID field is populated with a fresh UUID.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	const qSpots = `UPDATE packages
		SET available_spots = available_spots - ?
		WHERE id = ? AND available_spots >= ?`
	out, err := tx.ExecContext(ctx, qSpots, res.Travelers, res.PackageID, res.Travelers)
	if err != nil {
		return err
	}
	if n, _ := out.RowsAffected(); n == 0 {
		return ErrNoCapacity
	}

	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	var userID, requests any
	if res.UserID != nil {
		userID = *res.UserID
	}
	if res.SpecialRequests != nil {
		requests = *res.SpecialRequests
	}
	const qInsert = `INSERT INTO reservations
		(id, package_id, user_id, departure_date, travelers, total_price, status,
		 payment_status, contact_name, contact_email, contact_phone, special_requests)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`
	if _, err := tx.ExecContext(ctx, qInsert, res.ID, res.PackageID, userID,
		res.DepartureDate, res.Travelers, res.TotalPrice, res.Status,
		res.PaymentStatus, res.ContactName, res.ContactEmail, res.ContactPhone,
		requests); err != nil {
		return err
	}

	const qSelect = `SELECT created_at, updated_at FROM reservations WHERE id = ?`
	if err := tx.QueryRowContext(ctx, qSelect, res.ID).Scan(&res.CreatedAt, &res.UpdatedAt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// GetByID fetches a reservation by id.  It returns
// ErrReservationNotFound when no row exists.
func (r *ReservationRepo) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+resColumns+` FROM reservations WHERE id = ?`, id)
	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return res, nil
}

// ListQuery defines filters and pagination for the admin reservation
// listing.
type ListQuery struct {
	Status   string
	Page     int
	PageSize int
}

// List returns reservations newest-first with an optional status
// filter, plus the total row count for pagination.
func (r *ReservationRepo) List(ctx context.Context, q ListQuery) ([]*model.Reservation, int64, error) {
	cond := "1=1"
	args := []any{}
	if q.Status != "" {
		cond = "status = ?"
		args = append(args, q.Status)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reservations WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := q.PageSize
	if limit < 1 {
		limit = 20
	}
	offset := 0
	if q.Page > 1 {
		offset = (q.Page - 1) * limit
	}
	argsData := append(append([]any{}, args...), limit, offset)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+resColumns+` FROM reservations WHERE `+cond+
			` ORDER BY created_at DESC, id LIMIT ? OFFSET ?`, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*model.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// UpdateStatus moves a reservation to a new lifecycle status.  The
// current status is read under lock and the move is checked against
// the transition table; illegal moves return ErrConflict.  A
// transition into cancelled releases the reserved spots back to the
// package.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id string, to model.ReservationStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var (
		from      model.ReservationStatus
		packageID string
		travelers int
	)
	const qLock = `SELECT status, package_id, travelers FROM reservations WHERE id = ? FOR UPDATE`
	if err := tx.QueryRowContext(ctx, qLock, id).Scan(&from, &packageID, &travelers); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrReservationNotFound
		}
		return err
	}
	if !booking.CanTransition(from, to) {
		return ErrConflict
	}

	const qUpdate = `UPDATE reservations SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	if _, err := tx.ExecContext(ctx, qUpdate, to, id); err != nil {
		return err
	}
	if to == model.ReservationCancelled {
		const qRelease = `UPDATE packages SET available_spots = available_spots + ? WHERE id = ?`
		if _, err := tx.ExecContext(ctx, qRelease, travelers, packageID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// UpdatePaymentStatus sets the payment state of a reservation.
func (r *ReservationRepo) UpdatePaymentStatus(ctx context.Context, id string, to model.PaymentStatus) error {
	const q = `UPDATE reservations SET payment_status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, to, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// Delete removes a reservation.  Spots are released when the
// reservation still held capacity (pending or confirmed).
func (r *ReservationRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var (
		status    model.ReservationStatus
		packageID string
		travelers int
	)
	const qLock = `SELECT status, package_id, travelers FROM reservations WHERE id = ? FOR UPDATE`
	if err := tx.QueryRowContext(ctx, qLock, id).Scan(&status, &packageID, &travelers); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrReservationNotFound
		}
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id); err != nil {
		return err
	}
	if status == model.ReservationPending || status == model.ReservationConfirmed {
		const qRelease = `UPDATE packages SET available_spots = available_spots + ? WHERE id = ?`
		if _, err := tx.ExecContext(ctx, qRelease, travelers, packageID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
