package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The three parse modes anchor the same civil date at different
// instants. These tests pin down the differences so a refactor cannot
// quietly merge them.

func TestParseDateLocalKeepsCivilDay(t *testing.T) {
	d, err := ParseDateLocal("2026-03-10")
	require.NoError(t, err)

	assert.Equal(t, time.Tuesday, d.Weekday())
	assert.Equal(t, "2026-03-10", FormatDate(d))
}

func TestParseDateUTCShiftsWhenFormattedLocally(t *testing.T) {
	d, err := ParseDateUTC("2026-03-10")
	require.NoError(t, err)

	// UTC midnight is still the previous evening in Sao Paulo. This is
	// exactly why the UTC mode is only for matching date columns.
	assert.Equal(t, "2026-03-09", FormatDate(d))
}

func TestDateAtStableNoonSurvivesLocalFormatting(t *testing.T) {
	d, err := DateAtStableNoon("2026-03-10")
	require.NoError(t, err)

	assert.Equal(t, "2026-03-10", FormatDate(d))

	// stepping whole days from noon never drifts a civil day
	next := d.AddDate(0, 0, 1)
	assert.Equal(t, "2026-03-11", FormatDate(next))
}

func TestWeekday(t *testing.T) {
	wd, err := Weekday("2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, wd)

	_, err = Weekday("not-a-date")
	assert.Error(t, err)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2026, time.March))
	assert.Equal(t, 28, DaysInMonth(2026, time.February))
	assert.Equal(t, 29, DaysInMonth(2028, time.February))
	assert.Equal(t, 31, DaysInMonth(2026, time.December))
}
