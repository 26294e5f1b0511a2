package models

import "time"

// Checkin is one check-in event keyed by the external student id. Used only in
// insert mode, where repeated check-ins produce repeated rows.
type Checkin struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StudentID   string    `json:"student_id" gorm:"size:20;index;not null"`
	CheckedInAt time.Time `json:"checked_in_at"`
}
