package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/iliyamo/travel-reservation/internal/logger"
	"github.com/iliyamo/travel-reservation/internal/model"
)

// Fallback decorates a Provider with the soft-fail policy: when the
// inner provider fails for any reason other than a not-found miss,
// the fixed demo dataset is served instead and the failure is logged.
// The policy lives in one visible layer instead of inline catches at
// every call site, which also makes it testable in isolation.
type Fallback struct {
	inner Provider
}

// NewFallback wraps inner with the demo-data fallback.  inner may be
// nil, in which case every read is served from the demo dataset (the
// "unconfigured backend" mode).
func NewFallback(inner Provider) *Fallback {
	return &Fallback{inner: inner}
}

func (f *Fallback) logFallback(op string, err error) {
	logger.ErrorLogger.WithError(err).WithField("op", op).
		Error("catalog read failed, serving demo dataset")
}

// GetByID returns the package from the inner provider, falling back
// to the demo dataset on infrastructure failure.  A not-found from
// the inner provider is returned as-is.
func (f *Fallback) GetByID(ctx context.Context, id string) (*model.Package, error) {
	if f.inner != nil {
		p, err := f.inner.GetByID(ctx, id)
		if err == nil {
			return p, nil
		}
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		f.logFallback("get_by_id", err)
	}
	for _, p := range demoPackages {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

// GetAll returns all packages, or the demo dataset on failure.
func (f *Fallback) GetAll(ctx context.Context) ([]*model.Package, error) {
	if f.inner != nil {
		out, err := f.inner.GetAll(ctx)
		if err == nil {
			return out, nil
		}
		f.logFallback("get_all", err)
	}
	return DemoPackages(), nil
}

// Search filters by title/location substring, demo-backed on failure.
func (f *Fallback) Search(ctx context.Context, term string) ([]*model.Package, error) {
	if f.inner != nil {
		out, err := f.inner.Search(ctx, term)
		if err == nil {
			return out, nil
		}
		f.logFallback("search", err)
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	var out []*model.Package
	for _, p := range demoPackages {
		if needle == "" ||
			strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Location), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetPopular returns the highest-rated packages, demo-backed on
// failure.
func (f *Fallback) GetPopular(ctx context.Context, limit int) ([]*model.Package, error) {
	if f.inner != nil {
		out, err := f.inner.GetPopular(ctx, limit)
		if err == nil {
			return out, nil
		}
		f.logFallback("get_popular", err)
	}
	out := DemoPackages()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// GetByPriceRange filters by base price, demo-backed on failure.
func (f *Fallback) GetByPriceRange(ctx context.Context, min, max int64) ([]*model.Package, error) {
	if f.inner != nil {
		out, err := f.inner.GetByPriceRange(ctx, min, max)
		if err == nil {
			return out, nil
		}
		f.logFallback("get_by_price_range", err)
	}
	var out []*model.Package
	for _, p := range demoPackages {
		if p.Price >= min && (max <= 0 || p.Price <= max) {
			out = append(out, p)
		}
	}
	return out, nil
}
