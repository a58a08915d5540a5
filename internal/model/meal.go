package model

import "time"

// MealType says which meal of the day a log line belongs to.
type MealType string

const (
	Breakfast      MealType = "breakfast"
	Lunch          MealType = "lunch"
	AfternoonSnack MealType = "afternoon_snack"
	Dinner         MealType = "dinner"
)

func (t MealType) Valid() bool {
	switch t {
	case Breakfast, Lunch, AfternoonSnack, Dinner:
		return true
	}
	return false
}

// Meal records what a user ate.
type Meal struct {
	ID          uint     `gorm:"primaryKey"`
	UserID      uint     `gorm:"index"`
	Type        MealType `gorm:"index"`
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
