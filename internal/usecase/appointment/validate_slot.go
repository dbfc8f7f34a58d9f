package appointment

import (
	"context"

	domain "github.com/studio-navalha/agenda-api/internal/domain/appointment"
	"github.com/studio-navalha/agenda-api/internal/domain/schedule"
	"github.com/studio-navalha/agenda-api/internal/httperr"
)

type ValidateSlot struct {
	repo domain.Repository
}

func NewValidateSlot(repo domain.Repository) *ValidateSlot {
	return &ValidateSlot{repo: repo}
}

// Execute runs the policy decisions for one proposed booking in
// priority order: shop first, then the barber's absences, then the
// working-hours grid. The first non-empty reason wins; BlockNone means
// the slot may be offered (existing bookings are checked separately,
// the storage index has the final word on races).
func (uc *ValidateSlot) Execute(
	ctx context.Context,
	in domain.SlotRequest,
) (schedule.BlockReason, error) {

	weekday, err := schedule.Weekday(in.Date)
	if err != nil {
		return schedule.BlockNone, httperr.ErrBusiness("invalid_date")
	}

	shopHours, err := uc.repo.GetShopHours(ctx, in.BarbershopID, weekday)
	if err != nil {
		return schedule.BlockNone, err
	}

	closures, err := uc.repo.ListClosures(ctx, in.BarbershopID, in.Date)
	if err != nil {
		return schedule.BlockNone, err
	}

	if reason := schedule.ShopSlotBlock(schedule.ShopSlotCheck{
		SlotStartTime:   in.StartTime,
		DurationMinutes: in.DurationMin,
		Hours:           shopHours,
		Closures:        closures,
	}); reason != schedule.BlockNone {
		return reason, nil
	}

	absences, err := uc.repo.ListAbsences(ctx, in.BarberID, in.Date)
	if err != nil {
		return schedule.BlockNone, err
	}

	if reason := schedule.AbsenceSlotBlock(in.StartTime, in.DurationMin, absences); reason != schedule.BlockNone {
		return reason, nil
	}

	day, err := uc.repo.GetBarberDay(ctx, in.BarberID, weekday)
	if err != nil {
		return schedule.BlockNone, err
	}
	if day == nil && shopHours != nil {
		day = &schedule.WorkingDay{
			Open:       shopHours.IsOpen,
			StartTime:  shopHours.StartTime,
			EndTime:    shopHours.EndTime,
			BreakStart: shopHours.BreakStart,
			BreakEnd:   shopHours.BreakEnd,
		}
	}
	if day == nil || !day.Open || day.StartTime == "" || day.EndTime == "" {
		return schedule.BlockBarberUnavailable, nil
	}

	if reason := schedule.WorkingHoursSlotBlock(schedule.WorkingHoursSlotCheck{
		WorkingStartTime: day.StartTime,
		WorkingEndTime:   day.EndTime,
		BreakStart:       day.BreakStart,
		BreakEnd:         day.BreakEnd,
		StartTime:        in.StartTime,
		DurationMinutes:  in.DurationMin,
	}); reason != schedule.BlockNone {
		return reason, nil
	}

	return schedule.BlockNone, nil
}
