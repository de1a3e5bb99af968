// This file defines repository methods for the `packages` table: the
// admin-side CRUD plus the read operations behind the storefront
// catalog.  PackageRepo satisfies catalog.Provider so it can be
// wrapped by the fallback layer.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/iliyamo/travel-reservation/internal/catalog"
	"github.com/iliyamo/travel-reservation/internal/model"
)

// PackageRepo encapsulates all database queries related to packages.
// It depends on a sql.DB connection which should be configured
// elsewhere.
type PackageRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewPackageRepo constructs a PackageRepo with the provided DB handle.
// This function allows dependency injection of the database in tests
// and at startup.
func NewPackageRepo(db *sql.DB) *PackageRepo {
	return &PackageRepo{db: db}
}

// DB exposes the underlying pool for handlers that need to run
// multi-repository transactions.
func (r *PackageRepo) DB() *sql.DB { return r.db }

const pkgColumns = `id, title, location, duration, price, original_price, rating,
	review_count, images, highlights, inclusions, exclusions, itinerary,
	available_spots, featured, created_at, updated_at`

// scanPackage reads one row into a model.Package.  JSON columns are
// decoded in place.
func scanPackage(row interface{ Scan(...any) error }) (*model.Package, error) {
	var (
		p                                     model.Package
		original                              sql.NullInt64
		images, highlights, incl, excl, itin  []byte
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Location, &p.Duration, &p.Price,
		&original, &p.Rating, &p.ReviewCount, &images, &highlights, &incl,
		&excl, &itin, &p.AvailableSpots, &p.Featured, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if original.Valid {
		v := original.Int64
		p.OriginalPrice = &v
	}
	if err := fromJSON(images, &p.Images); err != nil {
		return nil, err
	}
	if err := fromJSON(highlights, &p.Highlights); err != nil {
		return nil, err
	}
	if err := fromJSON(incl, &p.Inclusions); err != nil {
		return nil, err
	}
	if err := fromJSON(excl, &p.Exclusions); err != nil {
		return nil, err
	}
	if err := fromJSON(itin, &p.Itinerary); err != nil {
		return nil, err
	}
	return &p, nil
}

// pkgJSONArgs marshals the array-valued fields for insert/update.
func pkgJSONArgs(p *model.Package) (images, highlights, incl, excl, itin string, err error) {
	if images, err = toJSON(p.Images); err != nil {
		return
	}
	if highlights, err = toJSON(p.Highlights); err != nil {
		return
	}
	if incl, err = toJSON(p.Inclusions); err != nil {
		return
	}
	if excl, err = toJSON(p.Exclusions); err != nil {
		return
	}
	itin, err = toJSON(p.Itinerary)
	return
}

// Create inserts a new package.  The UUID id is assigned here when
// the caller did not provide one.  Timestamps are filled from the
// database defaults and read back so callers receive a fully
// populated record.
func (r *PackageRepo) Create(ctx context.Context, p *model.Package) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	images, highlights, incl, excl, itin, err := pkgJSONArgs(p)
	if err != nil {
		return err
	}
	const qInsert = `INSERT INTO packages
		(id, title, location, duration, price, original_price, rating, review_count,
		 images, highlights, inclusions, exclusions, itinerary, available_spots, featured)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`
	var original any
	if p.OriginalPrice != nil {
		original = *p.OriginalPrice
	}
	if _, err := r.db.ExecContext(ctx, qInsert, p.ID, p.Title, p.Location, p.Duration,
		p.Price, original, p.Rating, p.ReviewCount, images, highlights, incl, excl,
		itin, p.AvailableSpots, p.Featured); err != nil {
		return err
	}
	const qSelect = `SELECT created_at, updated_at FROM packages WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, p.ID).Scan(&p.CreatedAt, &p.UpdatedAt)
}

// Update rewrites every editable column of a package keyed by id.
// sql.ErrNoRows is returned when no row was affected.
func (r *PackageRepo) Update(ctx context.Context, p *model.Package) error {
	images, highlights, incl, excl, itin, err := pkgJSONArgs(p)
	if err != nil {
		return err
	}
	const q = `UPDATE packages SET
		title = ?, location = ?, duration = ?, price = ?, original_price = ?,
		rating = ?, review_count = ?, images = ?, highlights = ?, inclusions = ?,
		exclusions = ?, itinerary = ?, available_spots = ?, featured = ?,
		updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`
	var original any
	if p.OriginalPrice != nil {
		original = *p.OriginalPrice
	}
	res, err := r.db.ExecContext(ctx, q, p.Title, p.Location, p.Duration, p.Price,
		original, p.Rating, p.ReviewCount, images, highlights, incl, excl, itin,
		p.AvailableSpots, p.Featured, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a package.  Reservations referencing it are kept for
// record keeping; they carry their own copy of the total price.
func (r *PackageRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM packages WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetByID fetches a package by id.  It returns catalog.ErrNotFound if
// no row is found so the fallback layer can distinguish a miss from
// an infrastructure failure.
func (r *PackageRepo) GetByID(ctx context.Context, id string) (*model.Package, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+pkgColumns+` FROM packages WHERE id = ?`, id)
	p, err := scanPackage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalog.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// queryPackages runs a multi-row package query.
func (r *PackageRepo) queryPackages(ctx context.Context, q string, args ...any) ([]*model.Package, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAll returns every package in insertion order.
func (r *PackageRepo) GetAll(ctx context.Context) ([]*model.Package, error) {
	return r.queryPackages(ctx, `SELECT `+pkgColumns+` FROM packages ORDER BY created_at, id`)
}

// Search matches term against title and location, case-insensitive.
func (r *PackageRepo) Search(ctx context.Context, term string) ([]*model.Package, error) {
	like := "%" + term + "%"
	const q = `SELECT ` + pkgColumns + ` FROM packages
		WHERE LOWER(title) LIKE LOWER(?) OR LOWER(location) LIKE LOWER(?)
		ORDER BY created_at, id`
	return r.queryPackages(ctx, q, like, like)
}

// GetPopular returns up to limit packages ordered by rating desc.
func (r *PackageRepo) GetPopular(ctx context.Context, limit int) ([]*model.Package, error) {
	if limit <= 0 {
		limit = 10
	}
	const q = `SELECT ` + pkgColumns + ` FROM packages
		ORDER BY rating DESC, review_count DESC LIMIT ?`
	return r.queryPackages(ctx, q, limit)
}

// GetByPriceRange returns packages with min <= price <= max.  A max
// of zero or less means no upper bound.
func (r *PackageRepo) GetByPriceRange(ctx context.Context, min, max int64) ([]*model.Package, error) {
	if max > 0 {
		const q = `SELECT ` + pkgColumns + ` FROM packages
			WHERE price >= ? AND price <= ? ORDER BY price`
		return r.queryPackages(ctx, q, min, max)
	}
	const q = `SELECT ` + pkgColumns + ` FROM packages WHERE price >= ? ORDER BY price`
	return r.queryPackages(ctx, q, min)
}
