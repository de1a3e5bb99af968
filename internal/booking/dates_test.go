package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartureDates_FixedIntervalWithinHorizon(t *testing.T) {
	from := time.Date(2026, 3, 1, 17, 30, 0, 0, time.UTC)
	dates := DepartureDates(from)

	// 365/14 intervals plus the starting day itself
	require.Len(t, dates, 27)
	assert.Equal(t, "2026-03-01", dates[0])
	assert.Equal(t, "2026-03-15", dates[1])

	prev, err := time.Parse(DateLayout, dates[0])
	require.NoError(t, err)
	for _, d := range dates[1:] {
		cur, err := time.Parse(DateLayout, d)
		require.NoError(t, err)
		assert.Equal(t, 14*24*time.Hour, cur.Sub(prev))
		prev = cur
	}

	last, err := time.Parse(DateLayout, dates[len(dates)-1])
	require.NoError(t, err)
	assert.False(t, last.After(from.AddDate(1, 0, 0)))
}

func TestDepartureDates_TimeOfDayIgnored(t *testing.T) {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, DepartureDates(day), DepartureDates(evening))
}

func TestIsSelectableDate(t *testing.T) {
	dates := DepartureDates(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, IsSelectableDate(dates, "2026-03-15"))
	assert.False(t, IsSelectableDate(dates, "2026-03-16")) // off-grid day
	assert.False(t, IsSelectableDate(dates, ""))
	assert.False(t, IsSelectableDate(nil, "2026-03-15"))
}
