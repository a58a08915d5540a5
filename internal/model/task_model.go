package model

import (
	"time"

	"task-planner/internal/calendar"
)

// TaskModelStatus tracks whether a recurring template is waiting to start,
// actively generating tasks, or stopped for good.
type TaskModelStatus string

const (
	TaskModelPending   TaskModelStatus = "pending"
	TaskModelStarted   TaskModelStatus = "started"
	TaskModelCompleted TaskModelStatus = "completed"
)

// TaskModel is a recurring task template. It spawns one task per matching
// weekday inside its [StartAt, EndAt] window; a nil EndAt means indefinite.
type TaskModel struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"index"`
	Name        string
	Description string
	Days        WeekdaySet      `gorm:"serializer:json"`
	Status      TaskModelStatus `gorm:"index"`
	StartAt     time.Time
	EndAt       *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Tasks       []Task `gorm:"foreignKey:TaskModelID"`
}

// PlanTasks returns one pending task candidate per day in [start, end] whose
// weekday belongs to the model's weekday set. An empty set plans nothing.
// No persistence and no duplicate checking happen here; callers are expected
// to skip days already covered before inserting.
func (m *TaskModel) PlanTasks(start, end time.Time) []Task {
	var tasks []Task
	for day := range calendar.Days(start, end) {
		if !m.Days.Contains(WeekdayOf(day)) {
			continue
		}
		tasks = append(tasks, Task{
			UserID:      m.UserID,
			TaskModelID: &m.ID,
			Status:      TaskPending,
			DueAt:       day,
		})
	}
	return tasks
}
