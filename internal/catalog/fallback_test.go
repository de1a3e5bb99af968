package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/travel-reservation/internal/model"
)

// failingProvider simulates an unreachable backend.
type failingProvider struct{ err error }

func (p *failingProvider) GetByID(context.Context, string) (*model.Package, error) {
	return nil, p.err
}
func (p *failingProvider) GetAll(context.Context) ([]*model.Package, error) { return nil, p.err }
func (p *failingProvider) Search(context.Context, string) ([]*model.Package, error) {
	return nil, p.err
}
func (p *failingProvider) GetPopular(context.Context, int) ([]*model.Package, error) {
	return nil, p.err
}
func (p *failingProvider) GetByPriceRange(context.Context, int64, int64) ([]*model.Package, error) {
	return nil, p.err
}

func TestFallback_DemoModeServesFixedDataset(t *testing.T) {
	f := NewFallback(nil)
	ctx := context.Background()

	all, err := f.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)

	p, err := f.GetByID(ctx, "pkg-1")
	require.NoError(t, err)
	assert.Equal(t, "일본 도쿄 & 오사카 5일", p.Title)
	assert.Equal(t, int64(1200000), p.Price)
}

func TestFallback_InfraErrorServesDemo(t *testing.T) {
	f := NewFallback(&failingProvider{err: errors.New("dial tcp: connection refused")})
	ctx := context.Background()

	all, err := f.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	p, err := f.GetByID(ctx, "pkg-2")
	require.NoError(t, err)
	assert.Equal(t, int64(890000), p.Price)
}

func TestFallback_NotFoundPassesThrough(t *testing.T) {
	// an inner miss is a real answer, not an infrastructure failure
	f := NewFallback(&failingProvider{err: ErrNotFound})
	_, err := f.GetByID(context.Background(), "pkg-1")
	require.ErrorIs(t, err, ErrNotFound)

	// in demo mode unknown ids also miss
	demo := NewFallback(nil)
	_, err = demo.GetByID(context.Background(), "no-such-package")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFallback_SearchMatchesTitleAndLocation(t *testing.T) {
	f := NewFallback(nil)
	ctx := context.Background()

	out, err := f.Search(ctx, "도쿄")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "pkg-1", out[0].ID)

	out, err = f.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, out, 4)

	out, err = f.Search(ctx, "화성")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFallback_PopularSortsByRating(t *testing.T) {
	f := NewFallback(nil)

	out, err := f.GetPopular(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.GreaterOrEqual(t, out[0].Rating, out[1].Rating)
	assert.Equal(t, "pkg-3", out[0].ID) // 4.9 tops the demo set
}

func TestFallback_PriceRange(t *testing.T) {
	f := NewFallback(nil)
	ctx := context.Background()

	out, err := f.GetByPriceRange(ctx, 500000, 1500000)
	require.NoError(t, err)
	for _, p := range out {
		assert.GreaterOrEqual(t, p.Price, int64(500000))
		assert.LessOrEqual(t, p.Price, int64(1500000))
	}

	// max <= 0 means unbounded above
	out, err = f.GetByPriceRange(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, out, 4)
}
