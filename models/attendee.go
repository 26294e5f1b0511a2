package models

import "time"

// Attendee is one registration for the event. Rows are created by the public
// form and never deleted by this service.
type Attendee struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Name           string `json:"name" gorm:"size:50;not null"`
	Grade          string `json:"grade" gorm:"size:10;not null"`
	Class          string `json:"class" gorm:"size:10;not null"`
	Number         string `json:"number" gorm:"size:10;not null"`
	StudentPhone   string `json:"student_phone" gorm:"size:20"`
	ParentPhone    string `json:"parent_phone" gorm:"size:20;not null"`
	AttendanceType string `json:"attendance_type" gorm:"size:20;not null"` // offline | online
	ExtraNotes     string `json:"extra_notes" gorm:"type:text"`

	// StudentID is the external identifier used for check-in; optional at
	// registration time.
	StudentID string `json:"student_id" gorm:"size:20;index"`
	CheckedIn bool   `json:"checked_in" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
