package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// PublicCode is what clients receive on their confirmation screen.
	PublicCode string `gorm:"size:36;uniqueIndex" json:"public_code"`

	BarbershopID uint       `json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barbershop"`

	BarberID uint `gorm:"index:idx_barber_slot,unique,where:status = 'CONFIRMED',priority:1" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Civil date plus wall-clock times, matching how schedules are
	// defined. The partial unique index is the race backstop: two
	// confirmed bookings can never share a barber, date and start.
	Date      time.Time `gorm:"type:date;index:idx_barber_slot,unique,where:status = 'CONFIRMED',priority:2" json:"date"`
	StartTime string    `gorm:"size:5;index:idx_barber_slot,unique,where:status = 'CONFIRMED',priority:3" json:"start_time"`
	EndTime   string    `gorm:"size:5" json:"end_time"`

	DurationMin int `json:"duration_min"`

	Status string `gorm:"size:20;default:'CONFIRMED'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`
	NoShowAt    *time.Time `json:"no_show_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
