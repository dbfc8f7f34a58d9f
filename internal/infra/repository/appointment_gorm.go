package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/studio-navalha/agenda-api/internal/domain/appointment"
	"github.com/studio-navalha/agenda-api/internal/domain/schedule"
	"github.com/studio-navalha/agenda-api/internal/httperr"
	"github.com/studio-navalha/agenda-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Boundary conversions
// --------------------------------------------------

// windowFromNullable resolves the storage layer's nullable pair into
// the core's tagged form. A half-set pair is treated as full-day: the
// conservative reading of a malformed row.
func windowFromNullable(date time.Time, start, end *string) schedule.DayWindow {
	w := schedule.DayWindow{Date: schedule.FormatCivilDate(date)}
	if start != nil && end != nil {
		w.Partial = &schedule.Window{StartTime: *start, EndTime: *end}
	}
	return w
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarbershopByID(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	barbershopID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ? AND active = true", serviceID, barbershopID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	barbershopID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND phone = ?", barbershopID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		BarbershopID: barbershopID,
		Name:         name,
		Phone:        phone,
		Email:        email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Create(ap).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// the partial unique index caught a concurrent booking that
		// the availability check could not have seen
		return httperr.ErrBusiness("slot_taken")
	}
	return err
}

func (r *AppointmentGormRepository) GetAppointmentForBarber(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", appointmentID, barberID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Appointment, error) {

	day, err := schedule.ParseDateUTC(date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("barber_id = ? AND date = ?", barberID, day).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForMonth(
	ctx context.Context,
	barberID uint,
	year int,
	month time.Month,
) ([]models.Appointment, error) {

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("barber_id = ? AND date >= ? AND date < ?", barberID, start, end).
		Order("date ASC, start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Availability inputs
// --------------------------------------------------

func (r *AppointmentGormRepository) GetShopHours(
	ctx context.Context,
	barbershopID uint,
	weekday time.Weekday,
) (*schedule.ShopHours, error) {

	var wh models.WorkingHours
	err := r.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ? AND weekday = ?",
			models.OwnerShop, barbershopID, int(weekday)).
		First(&wh).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &schedule.ShopHours{
		IsOpen:     wh.IsOpen,
		StartTime:  wh.StartTime,
		EndTime:    wh.EndTime,
		BreakStart: wh.BreakStart,
		BreakEnd:   wh.BreakEnd,
	}, nil
}

func (r *AppointmentGormRepository) GetBarberDay(
	ctx context.Context,
	barberID uint,
	weekday time.Weekday,
) (*schedule.WorkingDay, error) {

	var wh models.WorkingHours
	err := r.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ? AND weekday = ?",
			models.OwnerBarber, barberID, int(weekday)).
		First(&wh).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &schedule.WorkingDay{
		Open:       wh.IsOpen,
		StartTime:  wh.StartTime,
		EndTime:    wh.EndTime,
		BreakStart: wh.BreakStart,
		BreakEnd:   wh.BreakEnd,
	}, nil
}

func (r *AppointmentGormRepository) ListClosures(
	ctx context.Context,
	barbershopID uint,
	date string,
) ([]schedule.DayWindow, error) {

	day, err := schedule.ParseDateUTC(date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	var rows []models.Closure
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND date = ?", barbershopID, day).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	windows := make([]schedule.DayWindow, 0, len(rows))
	for _, row := range rows {
		windows = append(windows, windowFromNullable(row.Date, row.StartTime, row.EndTime))
	}
	return windows, nil
}

func (r *AppointmentGormRepository) ListAbsences(
	ctx context.Context,
	barberID uint,
	date string,
) ([]schedule.DayWindow, error) {

	day, err := schedule.ParseDateUTC(date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	var rows []models.Absence
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, day).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	windows := make([]schedule.DayWindow, 0, len(rows))
	for _, row := range rows {
		windows = append(windows, windowFromNullable(row.Date, row.StartTime, row.EndTime))
	}
	return windows, nil
}

func (r *AppointmentGormRepository) ListDayAppointments(
	ctx context.Context,
	barberID uint,
	date string,
) ([]schedule.ExistingAppointment, error) {

	day, err := schedule.ParseDateUTC(date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time", "status").
		Where("barber_id = ? AND date = ?", barberID, day).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	existing := make([]schedule.ExistingAppointment, 0, len(apps))
	for _, ap := range apps {
		existing = append(existing, schedule.ExistingAppointment{
			StartTime: ap.StartTime,
			EndTime:   ap.EndTime,
			Status:    ap.Status,
		})
	}
	return existing, nil
}

// --------------------------------------------------
// Reporting
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWeeklyTemplate(
	ctx context.Context,
	ownerType string,
	ownerID uint,
) (schedule.WeeklyTemplate, error) {

	var rows []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	template := make(schedule.WeeklyTemplate, len(rows))
	for _, row := range rows {
		template[time.Weekday(row.Weekday)] = schedule.WorkingDay{
			Open:       row.IsOpen,
			StartTime:  row.StartTime,
			EndTime:    row.EndTime,
			BreakStart: row.BreakStart,
			BreakEnd:   row.BreakEnd,
		}
	}
	return template, nil
}

func (r *AppointmentGormRepository) ListAbsencesForMonth(
	ctx context.Context,
	barberID uint,
	year int,
	month time.Month,
) ([]schedule.DayWindow, error) {

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var rows []models.Absence
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date >= ? AND date < ?", barberID, start, end).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	windows := make([]schedule.DayWindow, 0, len(rows))
	for _, row := range rows {
		windows = append(windows, windowFromNullable(row.Date, row.StartTime, row.EndTime))
	}
	return windows, nil
}

func (r *AppointmentGormRepository) SumCompletedMinutes(
	ctx context.Context,
	barberID uint,
	year int,
	month time.Month,
) (int, error) {

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("COALESCE(SUM(duration_min), 0)").
		Where(
			"barber_id = ? AND status = ? AND date >= ? AND date < ?",
			barberID, string(domain.StatusCompleted), start, end,
		).
		Scan(&total).Error; err != nil {
		return 0, err
	}

	return int(total), nil
}

func (r *AppointmentGormRepository) ListBarbers(
	ctx context.Context,
	barbershopID uint,
) ([]models.User, error) {

	var barbers []models.User
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", barbershopID).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
