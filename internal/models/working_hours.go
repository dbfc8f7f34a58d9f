package models

import "time"

const (
	OwnerShop   = "shop"
	OwnerBarber = "barber"
)

// WorkingHours is one weekday of a recurring weekly template. The shop
// owns a global template (OwnerType "shop", OwnerID = barbershop id);
// individual barbers may carry their own (OwnerType "barber").
// Times are "HH:MM" wall-clock strings; empty string means unset.
type WorkingHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerType string `gorm:"size:10;not null;uniqueIndex:idx_owner_weekday,priority:1" json:"owner_type"`
	OwnerID   uint   `gorm:"not null;uniqueIndex:idx_owner_weekday,priority:2" json:"owner_id"`
	Weekday   int    `gorm:"not null;uniqueIndex:idx_owner_weekday,priority:3" json:"weekday"`

	IsOpen     bool   `json:"is_open"`
	StartTime  string `gorm:"size:5" json:"start_time"`
	EndTime    string `gorm:"size:5" json:"end_time"`
	BreakStart string `gorm:"size:5" json:"break_start"`
	BreakEnd   string `gorm:"size:5" json:"break_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
