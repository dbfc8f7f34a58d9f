package schedule

import (
	"math"
	"time"
)

// WorkingDay is one weekday of a weekly working-hours template.
type WorkingDay struct {
	Open       bool
	StartTime  string
	EndTime    string
	BreakStart string
	BreakEnd   string
}

// WeeklyTemplate maps weekdays to working windows. Missing weekdays
// count as closed.
type WeeklyTemplate map[time.Weekday]WorkingDay

// MonthlyHours are the minute totals for one barber over one month.
type MonthlyHours struct {
	AvailableMinutes int
	ClosedMinutes    int
}

// Add accumulates another barber's totals, for shop-wide reports.
func (m *MonthlyHours) Add(other MonthlyHours) {
	m.AvailableMinutes += other.AvailableMinutes
	m.ClosedMinutes += other.ClosedMinutes
}

// AggregateMonthlyHours walks every day of a calendar month and sums
// the minutes a barber could have sold (working window minus break)
// against the minutes lost to absences. A full-day absence moves the
// whole day's working minutes to closed; a partial absence splits the
// day by how much of the working window it covers.
//
// Iteration runs on stable UTC-noon instants so that stepping one day
// at a time can never slip a civil day when formatted back into the
// business timezone.
func AggregateMonthlyHours(year int, month time.Month, template WeeklyTemplate, absences []DayWindow) MonthlyHours {
	byDate := make(map[string]DayWindow, len(absences))
	for _, a := range absences {
		byDate[a.Date] = a
	}

	var totals MonthlyHours

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(dateLayout)
	cur, err := DateAtStableNoon(first)
	if err != nil {
		return totals
	}

	for cur.Month() == month {
		date := FormatDate(cur)
		cur = cur.AddDate(0, 0, 1)

		weekday, err := Weekday(date)
		if err != nil {
			continue
		}

		day, ok := template[weekday]
		if !ok || !day.Open || day.StartTime == "" || day.EndTime == "" {
			continue
		}

		work := NewRange(day.StartTime, day.EndTime)
		working := work.End - work.Start

		var brk TimeRange
		if day.BreakStart != "" && day.BreakEnd != "" {
			brk = NewRange(day.BreakStart, day.BreakEnd)
			working -= overlapMinutes(brk, work)
		}
		if working <= 0 {
			continue
		}

		absence, hasAbsence := byDate[date]
		if !hasAbsence {
			totals.AvailableMinutes += working
			continue
		}

		if absence.AllDay() {
			totals.ClosedMinutes += working
			continue
		}

		away := NewRange(absence.Partial.StartTime, absence.Partial.EndTime)
		blocked := overlapMinutes(away, work) - overlapMinutes(away, brk)
		if blocked < 0 {
			blocked = 0
		}
		if blocked > working {
			blocked = working
		}

		totals.ClosedMinutes += blocked
		totals.AvailableMinutes += working - blocked
	}

	return totals
}

// OccupancySummary is a barber's month in minutes, plus the derived
// occupancy figures the dashboard shows.
type OccupancySummary struct {
	AvailableMinutes int `json:"available_minutes"`
	ClosedMinutes    int `json:"closed_minutes"`
	WorkedMinutes    int `json:"worked_minutes"`
	IdleMinutes      int `json:"idle_minutes"`
	OccupancyRate    int `json:"occupancy_rate"`
}

// BuildOccupancy derives idle time and the occupancy percentage from
// aggregated hours and the actual completed-appointment minutes.
// Occupancy is 0 when nothing was available, never a division by zero.
func BuildOccupancy(hours MonthlyHours, workedMinutes int) OccupancySummary {
	idle := hours.AvailableMinutes - workedMinutes
	if idle < 0 {
		idle = 0
	}

	rate := 0
	if hours.AvailableMinutes > 0 {
		rate = int(math.Round(float64(workedMinutes) / float64(hours.AvailableMinutes) * 100))
	}

	return OccupancySummary{
		AvailableMinutes: hours.AvailableMinutes,
		ClosedMinutes:    hours.ClosedMinutes,
		WorkedMinutes:    workedMinutes,
		IdleMinutes:      idle,
		OccupancyRate:    rate,
	}
}
