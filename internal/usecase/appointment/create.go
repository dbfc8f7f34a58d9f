package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/studio-navalha/agenda-api/internal/audit"
	"github.com/studio-navalha/agenda-api/internal/cache"
	domain "github.com/studio-navalha/agenda-api/internal/domain/appointment"
	"github.com/studio-navalha/agenda-api/internal/domain/schedule"
	"github.com/studio-navalha/agenda-api/internal/httperr"
	"github.com/studio-navalha/agenda-api/internal/models"
	"github.com/studio-navalha/agenda-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarbershopID uint
	BarberID     uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	validate *ValidateSlot
	audit    *audit.Dispatcher
	cache    *cache.AvailabilityCache
}

func NewCreateAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	availabilityCache *cache.AvailabilityCache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		validate: NewValidateSlot(repo),
		audit:    auditDispatcher,
		cache:    availabilityCache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	// well-formed date and time are this layer's responsibility;
	// the schedule core does not validate strings
	day, err := schedule.ParseDateLocal(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// minimum notice window
	minAdvance := shop.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	start := day.Add(time.Duration(schedule.ParseTimeToMinutes(in.Time)) * time.Minute)
	now := timezone.Now()
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// policy: shop, absences, working-hours grid
	reason, err := uc.validate.Execute(ctx, domain.SlotRequest{
		BarbershopID: in.BarbershopID,
		BarberID:     in.BarberID,
		Date:         in.Date,
		StartTime:    in.Time,
		DurationMin:  service.DurationMin,
	})
	if err != nil {
		return nil, err
	}
	if reason != schedule.BlockNone {
		return nil, httperr.ErrBusiness(string(reason))
	}

	// already-booked check against confirmed appointments
	existing, err := uc.repo.ListDayAppointments(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}
	probe := schedule.FilterAvailableSlots(
		[]schedule.TimeSlot{{Time: in.Time, Available: true}},
		existing,
		service.DurationMin,
	)
	if !probe[0].Available {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.BarbershopID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	dateCol, err := schedule.ParseDateUTC(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	ap := &models.Appointment{
		PublicCode:   uuid.NewString(),
		BarbershopID: in.BarbershopID,
		BarberID:     in.BarberID,
		ClientID:     client.ID,
		ServiceID:    service.ID,
		Date:         dateCol,
		StartTime:    in.Time,
		EndTime:      schedule.AddMinutesToTime(in.Time, service.DurationMin),
		DurationMin:  service.DurationMin,
		Status:       string(domain.InitialStatus()),
		Notes:        in.Notes,
	}

	// the partial unique index turns a lost race into slot_taken here
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.BarberID, in.Date)

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.BarberID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
