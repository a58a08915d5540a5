package model

import "time"

// Motivation is a saved link to a motivational speech, video or podcast.
type Motivation struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index"`
	Name      string
	URL       string
	CreatedAt time.Time
	UpdatedAt time.Time
}
