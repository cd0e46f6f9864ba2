package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayRange(t *testing.T) {
	in := time.Date(2025, 12, 15, 13, 45, 0, 0, time.UTC)

	start, end := DayRange(in)

	assert.Equal(t, time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 12, 15, 23, 59, 59, 999_000_000, time.UTC), end)
}

func TestDayRangeConvertsToCanonical(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*3600)
	in := time.Date(2025, 12, 15, 22, 0, 0, 0, loc) // 01:00 UTC next day

	start, _ := DayRange(in)

	assert.Equal(t, time.Date(2025, 12, 16, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, "2025-12-16", DayKey(in))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-12-18")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 18, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("18/12/2025")
	assert.Error(t, err)
}
