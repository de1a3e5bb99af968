// Package catalog defines the read-side interface over travel
// packages consumed by the storefront, plus the soft-fail fallback
// layer that keeps the storefront browsable when the database is
// unreachable.
package catalog

import (
	"context"

	"github.com/iliyamo/travel-reservation/internal/model"
)

// Provider exposes the read operations the storefront needs.  All
// implementations are read-only; the catalog is mutated exclusively
// by the admin back-office.
type Provider interface {
	// GetByID returns the package or a not-found error.
	GetByID(ctx context.Context, id string) (*model.Package, error)
	// GetAll returns every package in insertion order.
	GetAll(ctx context.Context) ([]*model.Package, error)
	// Search matches term against title and location, case-insensitive.
	Search(ctx context.Context, term string) ([]*model.Package, error)
	// GetPopular returns up to limit packages ordered by rating desc.
	GetPopular(ctx context.Context, limit int) ([]*model.Package, error)
	// GetByPriceRange returns packages with min <= price <= max.
	GetByPriceRange(ctx context.Context, min, max int64) ([]*model.Package, error)
}
