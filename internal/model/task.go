package model

import "time"

// TaskStatus is the lifecycle state of a single task.
type TaskStatus string

const (
	TaskPending      TaskStatus = "pending"
	TaskStarted      TaskStatus = "started"
	TaskCompleted    TaskStatus = "completed"
	TaskCanceled     TaskStatus = "canceled"
	TaskReprogrammed TaskStatus = "reprogrammed"
)

// Terminal reports whether no further transitions are allowed from s.
func (s TaskStatus) Terminal() bool {
	return s == TaskCompleted || s == TaskCanceled
}

// Task is one concrete, schedulable unit of work. It is either generated from
// a TaskModel (TaskModelID set, name/description inherited) or standalone
// (TaskModelID nil, own name required). DueAt is a calendar day at midnight
// UTC; the unique index guarantees at most one task per model and day.
type Task struct {
	ID          uint  `gorm:"primaryKey"`
	UserID      uint  `gorm:"index"`
	TaskModelID *uint `gorm:"index;uniqueIndex:idx_task_model_due"`
	Name        string
	Description string
	Status      TaskStatus `gorm:"index"`
	DueAt       time.Time  `gorm:"uniqueIndex:idx_task_model_due"`
	Comment     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Model       *TaskModel `gorm:"foreignKey:TaskModelID"`
}

// DisplayName falls back to the parent model's name for generated tasks.
func (t *Task) DisplayName() string {
	if t.Name == "" && t.Model != nil {
		return t.Model.Name
	}
	return t.Name
}

// DisplayDescription falls back to the parent model's description.
func (t *Task) DisplayDescription() string {
	if t.Description == "" && t.Model != nil {
		return t.Model.Description
	}
	return t.Description
}
