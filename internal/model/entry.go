package model

import "time"

// Entry is a journal entry. Name and Content are encrypted at rest by the
// repository layer; this struct always holds plaintext.
type Entry struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index"`
	Name      string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
