// This file defines repository methods for the accommodation tables.
// Hotels, resorts and villas share one column layout, so a single
// PropertyRepo is parameterized by table instead of three copies of
// the same CRUD.  The table name is taken from the PropertyType
// constants, never from raw request input.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/iliyamo/travel-reservation/internal/model"
)

// PropertyRepo encapsulates database queries for one accommodation
// table.
type PropertyRepo struct {
	db    *sql.DB
	table model.PropertyType
}

// NewPropertyRepo constructs a PropertyRepo bound to the given table.
func NewPropertyRepo(db *sql.DB, table model.PropertyType) *PropertyRepo {
	return &PropertyRepo{db: db, table: table}
}

// Table returns the table this repo operates on.
func (r *PropertyRepo) Table() model.PropertyType { return r.table }

const propColumns = `id, name, location, description, price_per_night, rating,
	images, amenities, created_at, updated_at`

func scanProperty(row interface{ Scan(...any) error }) (*model.Property, error) {
	var (
		p                 model.Property
		images, amenities []byte
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Location, &p.Description,
		&p.PricePerNight, &p.Rating, &images, &amenities,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if err := fromJSON(images, &p.Images); err != nil {
		return nil, err
	}
	if err := fromJSON(amenities, &p.Amenities); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a property row, assigning a UUID when missing.
func (r *PropertyRepo) Create(ctx context.Context, p *model.Property) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	images, err := toJSON(p.Images)
	if err != nil {
		return err
	}
	amenities, err := toJSON(p.Amenities)
	if err != nil {
		return err
	}
	q := `INSERT INTO ` + string(r.table) +
		` (id, name, location, description, price_per_night, rating, images, amenities)
		VALUES (?,?,?,?,?,?,?,?)`
	if _, err := r.db.ExecContext(ctx, q, p.ID, p.Name, p.Location, p.Description,
		p.PricePerNight, p.Rating, images, amenities); err != nil {
		return err
	}
	qSel := `SELECT created_at, updated_at FROM ` + string(r.table) + ` WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSel, p.ID).Scan(&p.CreatedAt, &p.UpdatedAt)
}

// Update rewrites every editable column keyed by id.
func (r *PropertyRepo) Update(ctx context.Context, p *model.Property) error {
	images, err := toJSON(p.Images)
	if err != nil {
		return err
	}
	amenities, err := toJSON(p.Amenities)
	if err != nil {
		return err
	}
	q := `UPDATE ` + string(r.table) + ` SET
		name = ?, location = ?, description = ?, price_per_night = ?, rating = ?,
		images = ?, amenities = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, p.Name, p.Location, p.Description,
		p.PricePerNight, p.Rating, images, amenities, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

// Delete removes a property row.
func (r *PropertyRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM `+string(r.table)+` WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

// GetByID fetches one property.
func (r *PropertyRepo) GetByID(ctx context.Context, id string) (*model.Property, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+propColumns+` FROM `+string(r.table)+` WHERE id = ?`, id)
	p, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return p, nil
}

// List returns all properties of this table ordered by name.  The
// back-office applies its own substring filter client-side; a server
// filter is offered for large tables via the q argument (empty means
// no filter).
func (r *PropertyRepo) List(ctx context.Context, q string) ([]*model.Property, error) {
	sqlQ := `SELECT ` + propColumns + ` FROM ` + string(r.table)
	args := []any{}
	if q != "" {
		sqlQ += ` WHERE LOWER(name) LIKE LOWER(?) OR LOWER(location) LIKE LOWER(?)`
		like := "%" + q + "%"
		args = append(args, like, like)
	}
	sqlQ += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, sqlQ, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Property
	for rows.Next() {
		p, err := scanProperty(rows)
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
