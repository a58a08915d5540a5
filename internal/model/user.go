package model

import "time"

// User is the identity boundary: it owns task models, tasks, entries, meals
// and motivations. Authentication itself happens outside this service; a
// request only carries the user's identifier.
type User struct {
	ID        uint `gorm:"primaryKey"`
	Name      string
	Email     string `gorm:"uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
