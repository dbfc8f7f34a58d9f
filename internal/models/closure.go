package models

import "time"

// Closure blocks the whole shop on one calendar date. Null start/end
// means the full day; a set pair blocks only that window.
type Closure struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index" json:"barbershop_id"`

	Date      time.Time `gorm:"type:date;index" json:"date"`
	StartTime *string   `gorm:"size:5" json:"start_time"`
	EndTime   *string   `gorm:"size:5" json:"end_time"`

	Reason string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
