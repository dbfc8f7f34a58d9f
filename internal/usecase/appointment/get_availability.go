package appointment

import (
	"context"

	"github.com/studio-navalha/agenda-api/internal/cache"
	domain "github.com/studio-navalha/agenda-api/internal/domain/appointment"
	"github.com/studio-navalha/agenda-api/internal/domain/schedule"
	"github.com/studio-navalha/agenda-api/internal/httperr"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewGetAvailability(repo domain.Repository, c *cache.AvailabilityCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: c}
}

// Execute computes the bookable slot grid for one barber, date and
// service, in the fixed order: generate from the working window, mark
// off shop policy and absences, mark off confirmed appointments, then
// cut slots that already elapsed today. The cache holds the grid
// before the past-time pass, which depends on the current minute.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]schedule.TimeSlot, error) {

	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	weekday, err := schedule.Weekday(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if cached, ok := uc.cache.Get(ctx, in.BarberID, service.ID, in.Date); ok {
		return schedule.FilterPastSlots(cached, in.Date), nil
	}

	shopHours, err := uc.repo.GetShopHours(ctx, in.BarbershopID, weekday)
	if err != nil {
		return nil, err
	}

	day, err := uc.repo.GetBarberDay(ctx, in.BarberID, weekday)
	if err != nil {
		return nil, err
	}
	if day == nil && shopHours != nil {
		// barbers without their own template follow the shop's hours
		day = &schedule.WorkingDay{
			Open:       shopHours.IsOpen,
			StartTime:  shopHours.StartTime,
			EndTime:    shopHours.EndTime,
			BreakStart: shopHours.BreakStart,
			BreakEnd:   shopHours.BreakEnd,
		}
	}
	if day == nil || !day.Open || day.StartTime == "" || day.EndTime == "" {
		return []schedule.TimeSlot{}, nil
	}

	slots := schedule.GenerateTimeSlots(schedule.SlotWindow{
		StartTime:  day.StartTime,
		EndTime:    day.EndTime,
		Duration:   service.DurationMin,
		BreakStart: day.BreakStart,
		BreakEnd:   day.BreakEnd,
	})

	closures, err := uc.repo.ListClosures(ctx, in.BarbershopID, in.Date)
	if err != nil {
		return nil, err
	}

	absences, err := uc.repo.ListAbsences(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	for i := range slots {
		shopBlock := schedule.ShopSlotBlock(schedule.ShopSlotCheck{
			SlotStartTime:   slots[i].Time,
			DurationMinutes: service.DurationMin,
			Hours:           shopHours,
			Closures:        closures,
		})
		if shopBlock != schedule.BlockNone {
			slots[i].Available = false
			continue
		}

		if schedule.AbsenceSlotBlock(slots[i].Time, service.DurationMin, absences) != schedule.BlockNone {
			slots[i].Available = false
		}
	}

	existing, err := uc.repo.ListDayAppointments(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}
	slots = schedule.FilterAvailableSlots(slots, existing, service.DurationMin)

	uc.cache.Set(ctx, in.BarberID, service.ID, in.Date, slots)

	return schedule.FilterPastSlots(slots, in.Date), nil
}
