package models

import "time"

// Notice is an announcement shown to users. Listed pinned-first, then newest.
type Notice struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:200;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Pinned    bool      `json:"pinned" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at"`
}
