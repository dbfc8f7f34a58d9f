package schedule

import (
	"time"

	"github.com/studio-navalha/agenda-api/internal/timezone"
)

const dateLayout = "2006-01-02"

// Civil dates ("YYYY-MM-DD") get parsed three different ways, and the
// three are deliberately distinct operations:
//
//   - ParseDateLocal anchors the date at midnight in the business
//     timezone. Weekday and "is today" questions must use this one;
//     parsing as UTC and localizing shifts the day backwards for any
//     zone behind UTC.
//   - ParseDateUTC anchors the date at UTC midnight, which is how
//     Postgres date columns come back through the driver. Use it only
//     to build query bounds against persisted date-only values.
//   - DateAtStableNoon anchors the date at UTC noon. Adding days to a
//     noon instant can never cross a civil-day boundary when later
//     formatted in the business timezone, so calendar iteration uses
//     this form.
//
// Collapsing any two of them reintroduces off-by-one-day bugs.

// ParseDateLocal parses a civil date at midnight in the business timezone.
func ParseDateLocal(date string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, date, timezone.Location())
}

// ParseDateUTC parses a civil date at UTC midnight, matching the
// representation of persisted date-only columns.
func ParseDateUTC(date string) (time.Time, error) {
	return time.Parse(dateLayout, date)
}

// DateAtStableNoon parses a civil date at 12:00 UTC.
func DateAtStableNoon(date string) (time.Time, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(12 * time.Hour), nil
}

// FormatDate renders an instant as the civil date it falls on in the
// business timezone.
func FormatDate(t time.Time) string {
	return t.In(timezone.Location()).Format(dateLayout)
}

// FormatCivilDate renders a UTC-midnight instant, the shape date-only
// columns scan back as, into its civil date. Pair it with ParseDateUTC;
// FormatDate would shift such instants back one day.
func FormatCivilDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// Weekday reports the business-timezone weekday of a civil date.
func Weekday(date string) (time.Weekday, error) {
	d, err := ParseDateLocal(date)
	if err != nil {
		return time.Sunday, err
	}
	return d.Weekday(), nil
}

// DaysInMonth reports the number of days in a calendar month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
