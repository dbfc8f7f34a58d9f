package appointment

import (
	"context"
	"time"

	"github.com/studio-navalha/agenda-api/internal/domain/schedule"
	"github.com/studio-navalha/agenda-api/internal/models"
)

// Repository is everything the appointment use cases need from
// storage. Schedule-facing reads come back already converted to the
// pure core's value types: "HH:MM" strings and tagged DayWindows, with
// nullable column pairs resolved at this boundary.
type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		barbershopID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Appointment (create / state change) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentForBarber(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForDate(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsForMonth(
		ctx context.Context,
		barberID uint,
		year int,
		month time.Month,
	) ([]models.Appointment, error)

	// -------- Availability inputs --------
	GetShopHours(
		ctx context.Context,
		barbershopID uint,
		weekday time.Weekday,
	) (*schedule.ShopHours, error)

	GetBarberDay(
		ctx context.Context,
		barberID uint,
		weekday time.Weekday,
	) (*schedule.WorkingDay, error)

	ListClosures(
		ctx context.Context,
		barbershopID uint,
		date string,
	) ([]schedule.DayWindow, error)

	ListAbsences(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]schedule.DayWindow, error)

	ListDayAppointments(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]schedule.ExistingAppointment, error)

	// -------- Reporting --------
	GetWeeklyTemplate(
		ctx context.Context,
		ownerType string,
		ownerID uint,
	) (schedule.WeeklyTemplate, error)

	ListAbsencesForMonth(
		ctx context.Context,
		barberID uint,
		year int,
		month time.Month,
	) ([]schedule.DayWindow, error)

	SumCompletedMinutes(
		ctx context.Context,
		barberID uint,
		year int,
		month time.Month,
	) (int, error)

	ListBarbers(
		ctx context.Context,
		barbershopID uint,
	) ([]models.User, error)
}
