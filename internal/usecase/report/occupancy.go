package report

import (
	"context"
	"time"

	domain "github.com/studio-navalha/agenda-api/internal/domain/appointment"
	"github.com/studio-navalha/agenda-api/internal/domain/schedule"
	"github.com/studio-navalha/agenda-api/internal/httperr"
	"github.com/studio-navalha/agenda-api/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type OccupancyInput struct {
	BarbershopID uint
	BarberID     *uint // nil aggregates every barber in the shop
	Year         int
	Month        time.Month
}

type BarberOccupancy struct {
	BarberID   uint   `json:"barber_id"`
	BarberName string `json:"barber_name"`
	schedule.OccupancySummary
}

type OccupancyReport struct {
	Year    int                       `json:"year"`
	Month   int                       `json:"month"`
	Barbers []BarberOccupancy         `json:"barbers"`
	Totals  schedule.OccupancySummary `json:"totals"`
}

// ======================================================
// USE CASE
// ======================================================

type Occupancy struct {
	repo domain.Repository
}

func NewOccupancy(repo domain.Repository) *Occupancy {
	return &Occupancy{repo: repo}
}

// Execute builds the month's occupancy report. Each barber is
// aggregated independently from their weekly template (falling back to
// the shop's) and their absences; the shop-wide totals are just the
// sum of the per-barber runs.
func (uc *Occupancy) Execute(
	ctx context.Context,
	in OccupancyInput,
) (*OccupancyReport, error) {

	barbers, err := uc.repo.ListBarbers(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	if in.BarberID != nil {
		var match []models.User
		for _, b := range barbers {
			if b.ID == *in.BarberID {
				match = append(match, b)
				break
			}
		}
		if len(match) == 0 {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		barbers = match
	}

	shopTemplate, err := uc.repo.GetWeeklyTemplate(ctx, models.OwnerShop, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	report := &OccupancyReport{
		Year:    in.Year,
		Month:   int(in.Month),
		Barbers: make([]BarberOccupancy, 0, len(barbers)),
	}

	var totalHours schedule.MonthlyHours
	totalWorked := 0

	for _, barber := range barbers {
		template, err := uc.repo.GetWeeklyTemplate(ctx, models.OwnerBarber, barber.ID)
		if err != nil {
			return nil, err
		}
		if len(template) == 0 {
			template = shopTemplate
		}

		absences, err := uc.repo.ListAbsencesForMonth(ctx, barber.ID, in.Year, in.Month)
		if err != nil {
			return nil, err
		}

		hours := schedule.AggregateMonthlyHours(in.Year, in.Month, template, absences)

		worked, err := uc.repo.SumCompletedMinutes(ctx, barber.ID, in.Year, in.Month)
		if err != nil {
			return nil, err
		}

		report.Barbers = append(report.Barbers, BarberOccupancy{
			BarberID:         barber.ID,
			BarberName:       barber.Name,
			OccupancySummary: schedule.BuildOccupancy(hours, worked),
		})

		totalHours.Add(hours)
		totalWorked += worked
	}

	report.Totals = schedule.BuildOccupancy(totalHours, totalWorked)

	return report, nil
}
