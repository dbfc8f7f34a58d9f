package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/studio-navalha/agenda-api/internal/domain/appointment"
	"github.com/studio-navalha/agenda-api/internal/domain/schedule"
	"github.com/studio-navalha/agenda-api/internal/models"
)

// fakeRepo serves canned data for every weekday so tests can use any
// future date without caring which weekday it lands on.
type fakeRepo struct {
	shop      *models.Barbershop
	service   *models.Service
	shopHours *schedule.ShopHours
	barberDay *schedule.WorkingDay
	closures  []schedule.DayWindow
	absences  []schedule.DayWindow
	existing  []schedule.ExistingAppointment
	barbers   []models.User
	template  schedule.WeeklyTemplate
	worked    int
	created   []*models.Appointment
}

func (f *fakeRepo) GetBarbershopByID(_ context.Context, _ uint) (*models.Barbershop, error) {
	return f.shop, nil
}

func (f *fakeRepo) GetService(_ context.Context, _, _ uint) (*models.Service, error) {
	return f.service, nil
}

func (f *fakeRepo) GetOrCreateClient(_ context.Context, barbershopID uint, name, phone, email string) (*models.Client, error) {
	return &models.Client{ID: 1, BarbershopID: barbershopID, Name: name, Phone: phone, Email: email}, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.created = append(f.created, ap)
	return nil
}

func (f *fakeRepo) GetAppointmentForBarber(_ context.Context, _, _ uint) (*models.Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, _ *models.Appointment) error {
	return nil
}

func (f *fakeRepo) ListAppointmentsForDate(_ context.Context, _ uint, _ string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) ListAppointmentsForMonth(_ context.Context, _ uint, _ int, _ time.Month) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) GetShopHours(_ context.Context, _ uint, _ time.Weekday) (*schedule.ShopHours, error) {
	return f.shopHours, nil
}

func (f *fakeRepo) GetBarberDay(_ context.Context, _ uint, _ time.Weekday) (*schedule.WorkingDay, error) {
	return f.barberDay, nil
}

func (f *fakeRepo) ListClosures(_ context.Context, _ uint, _ string) ([]schedule.DayWindow, error) {
	return f.closures, nil
}

func (f *fakeRepo) ListAbsences(_ context.Context, _ uint, _ string) ([]schedule.DayWindow, error) {
	return f.absences, nil
}

func (f *fakeRepo) ListDayAppointments(_ context.Context, _ uint, _ string) ([]schedule.ExistingAppointment, error) {
	return f.existing, nil
}

func (f *fakeRepo) GetWeeklyTemplate(_ context.Context, _ string, _ uint) (schedule.WeeklyTemplate, error) {
	return f.template, nil
}

func (f *fakeRepo) ListAbsencesForMonth(_ context.Context, _ uint, _ int, _ time.Month) ([]schedule.DayWindow, error) {
	return f.absences, nil
}

func (f *fakeRepo) SumCompletedMinutes(_ context.Context, _ uint, _ int, _ time.Month) (int, error) {
	return f.worked, nil
}

func (f *fakeRepo) ListBarbers(_ context.Context, _ uint) ([]models.User, error) {
	return f.barbers, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// --------------------------------------------------

// a date far enough ahead that the past-time filter stays a no-op
const futureDate = "2030-04-02"

func workingRepo() *fakeRepo {
	return &fakeRepo{
		shop:    &models.Barbershop{ID: 1, MinAdvanceMinutes: 60},
		service: &models.Service{ID: 7, DurationMin: 30},
		shopHours: &schedule.ShopHours{
			IsOpen: true, StartTime: "09:00", EndTime: "18:00",
			BreakStart: "12:00", BreakEnd: "13:00",
		},
		barberDay: &schedule.WorkingDay{
			Open: true, StartTime: "09:00", EndTime: "12:00",
		},
	}
}

func availabilityInput() domain.AvailabilityInput {
	return domain.AvailabilityInput{
		BarbershopID: 1, BarberID: 2, ServiceID: 7, Date: futureDate,
	}
}

func TestGetAvailability_GridMinusConfirmed(t *testing.T) {
	repo := workingRepo()
	repo.existing = []schedule.ExistingAppointment{
		{StartTime: "10:00", EndTime: "10:30", Status: "CONFIRMED"},
		{StartTime: "11:00", EndTime: "11:30", Status: "CANCELLED"},
	}

	uc := NewGetAvailability(repo, nil)
	slots, err := uc.Execute(context.Background(), availabilityInput())
	require.NoError(t, err)

	byTime := map[string]bool{}
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}

	assert.Len(t, slots, 6) // 09:00 .. 11:30
	assert.True(t, byTime["09:00"])
	assert.False(t, byTime["10:00"], "confirmed appointment occupies the slot")
	assert.True(t, byTime["11:00"], "cancelled appointment never blocks")
}

func TestGetAvailability_FullDayClosure(t *testing.T) {
	repo := workingRepo()
	repo.closures = []schedule.DayWindow{{Date: futureDate}}

	uc := NewGetAvailability(repo, nil)
	slots, err := uc.Execute(context.Background(), availabilityInput())
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.False(t, s.Available)
	}
}

func TestGetAvailability_PartialAbsence(t *testing.T) {
	repo := workingRepo()
	repo.absences = []schedule.DayWindow{{
		Date:    futureDate,
		Partial: &schedule.Window{StartTime: "09:00", EndTime: "10:00"},
	}}

	uc := NewGetAvailability(repo, nil)
	slots, err := uc.Execute(context.Background(), availabilityInput())
	require.NoError(t, err)

	byTime := map[string]bool{}
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}

	assert.False(t, byTime["09:00"])
	assert.False(t, byTime["09:30"])
	assert.True(t, byTime["10:00"], "touching the absence end is allowed")
}

func TestGetAvailability_FallsBackToShopHours(t *testing.T) {
	repo := workingRepo()
	repo.barberDay = nil

	uc := NewGetAvailability(repo, nil)
	slots, err := uc.Execute(context.Background(), availabilityInput())
	require.NoError(t, err)

	// shop window 09:00-18:00 with 12:00-13:00 break, 30-minute grid
	require.NotEmpty(t, slots)
	assert.Equal(t, "09:00", slots[0].Time)

	for _, s := range slots {
		cur := schedule.ParseTimeToMinutes(s.Time)
		assert.False(t, cur >= 12*60 && cur < 13*60, "slot %s inside shop break", s.Time)
	}
}

func TestGetAvailability_ClosedDayIsEmpty(t *testing.T) {
	repo := workingRepo()
	repo.barberDay = &schedule.WorkingDay{Open: false}

	uc := NewGetAvailability(repo, nil)
	slots, err := uc.Execute(context.Background(), availabilityInput())
	require.NoError(t, err)

	assert.Empty(t, slots)
}

func TestValidateSlot_ReasonPriority(t *testing.T) {
	repo := workingRepo()
	uc := NewValidateSlot(repo)

	request := func(start string) domain.SlotRequest {
		return domain.SlotRequest{
			BarbershopID: 1, BarberID: 2,
			Date: futureDate, StartTime: start, DurationMin: 30,
		}
	}

	reason, err := uc.Execute(context.Background(), request("09:30"))
	require.NoError(t, err)
	assert.Equal(t, schedule.BlockNone, reason)

	// before the shop opens: shop policy wins
	reason, err = uc.Execute(context.Background(), request("08:00"))
	require.NoError(t, err)
	assert.Equal(t, schedule.BlockShopClosed, reason)

	// shop is open but the barber's window ended at noon
	reason, err = uc.Execute(context.Background(), request("14:00"))
	require.NoError(t, err)
	assert.Equal(t, schedule.BlockBarberUnavailable, reason)

	// inside the window but off the 30-minute grid
	reason, err = uc.Execute(context.Background(), request("09:15"))
	require.NoError(t, err)
	assert.Equal(t, schedule.BlockSlotUnavailable, reason)
}

func TestValidateSlot_NoShopRecord(t *testing.T) {
	repo := workingRepo()
	repo.shopHours = nil

	uc := NewValidateSlot(repo)
	reason, err := uc.Execute(context.Background(), domain.SlotRequest{
		BarbershopID: 1, BarberID: 2,
		Date: futureDate, StartTime: "09:30", DurationMin: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, schedule.BlockShopClosed, reason)
}
