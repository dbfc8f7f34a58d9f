package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// March 2026 has exactly five Mondays: 2, 9, 16, 23 and 30.
func mondayTemplate() WeeklyTemplate {
	return WeeklyTemplate{
		time.Monday: {Open: true, StartTime: "08:00", EndTime: "16:00"},
	}
}

func TestAggregateMonthlyHours_NoAbsences(t *testing.T) {
	got := AggregateMonthlyHours(2026, time.March, mondayTemplate(), nil)

	assert.Equal(t, 5*8*60, got.AvailableMinutes)
	assert.Equal(t, 0, got.ClosedMinutes)
}

func TestAggregateMonthlyHours_BreakIsNotSellable(t *testing.T) {
	template := WeeklyTemplate{
		time.Monday: {
			Open: true, StartTime: "09:00", EndTime: "18:00",
			BreakStart: "12:00", BreakEnd: "13:00",
		},
	}

	got := AggregateMonthlyHours(2026, time.March, template, nil)

	assert.Equal(t, 5*8*60, got.AvailableMinutes)
}

func TestAggregateMonthlyHours_FullDayAbsence(t *testing.T) {
	absences := []DayWindow{{Date: "2026-03-09"}}

	got := AggregateMonthlyHours(2026, time.March, mondayTemplate(), absences)

	assert.Equal(t, 4*8*60, got.AvailableMinutes)
	assert.Equal(t, 8*60, got.ClosedMinutes)
}

func TestAggregateMonthlyHours_PartialAbsenceSplitsTheDay(t *testing.T) {
	absences := []DayWindow{{
		Date:    "2026-03-09",
		Partial: &Window{StartTime: "10:00", EndTime: "12:00"},
	}}

	got := AggregateMonthlyHours(2026, time.March, mondayTemplate(), absences)

	assert.Equal(t, 5*8*60-120, got.AvailableMinutes)
	assert.Equal(t, 120, got.ClosedMinutes)
}

func TestAggregateMonthlyHours_AbsenceOverBreakNotDoubleCounted(t *testing.T) {
	template := WeeklyTemplate{
		time.Monday: {
			Open: true, StartTime: "09:00", EndTime: "18:00",
			BreakStart: "12:00", BreakEnd: "13:00",
		},
	}
	// away 11:00-14:00, but 12:00-13:00 was never sellable anyway
	absences := []DayWindow{{
		Date:    "2026-03-09",
		Partial: &Window{StartTime: "11:00", EndTime: "14:00"},
	}}

	got := AggregateMonthlyHours(2026, time.March, template, absences)

	assert.Equal(t, 120, got.ClosedMinutes)
	assert.Equal(t, 5*8*60-120, got.AvailableMinutes)
}

func TestAggregateMonthlyHours_ClosedWeekdaysContributeNothing(t *testing.T) {
	template := WeeklyTemplate{
		time.Monday:  {Open: true, StartTime: "08:00", EndTime: "16:00"},
		time.Tuesday: {Open: false, StartTime: "08:00", EndTime: "16:00"},
	}

	got := AggregateMonthlyHours(2026, time.March, template, nil)

	assert.Equal(t, 5*8*60, got.AvailableMinutes)
}

func TestMonthlyHoursAdd(t *testing.T) {
	total := MonthlyHours{AvailableMinutes: 100, ClosedMinutes: 10}
	total.Add(MonthlyHours{AvailableMinutes: 50, ClosedMinutes: 5})

	assert.Equal(t, MonthlyHours{AvailableMinutes: 150, ClosedMinutes: 15}, total)
}

func TestBuildOccupancy(t *testing.T) {
	// 8h/day over five days, 10h worked -> 25%
	hours := MonthlyHours{AvailableMinutes: 40 * 60}

	got := BuildOccupancy(hours, 10*60)

	assert.Equal(t, 25, got.OccupancyRate)
	assert.Equal(t, 30*60, got.IdleMinutes)
}

func TestBuildOccupancy_ZeroAvailable(t *testing.T) {
	got := BuildOccupancy(MonthlyHours{}, 120)

	assert.Equal(t, 0, got.OccupancyRate)
	assert.Equal(t, 0, got.IdleMinutes)
}

func TestBuildOccupancy_OverworkedClampsIdle(t *testing.T) {
	got := BuildOccupancy(MonthlyHours{AvailableMinutes: 60}, 90)

	assert.Equal(t, 0, got.IdleMinutes)
	assert.Equal(t, 150, got.OccupancyRate)
}
