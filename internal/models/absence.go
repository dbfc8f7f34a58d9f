package models

import "time"

// Absence blocks one barber on one calendar date. Same null-pair
// convention as Closure: null start/end means the full day.
type Absence struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index" json:"barber_id"`

	Date      time.Time `gorm:"type:date;index" json:"date"`
	StartTime *string   `gorm:"size:5" json:"start_time"`
	EndTime   *string   `gorm:"size:5" json:"end_time"`

	Reason string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
