package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"task-planner/internal/calendar"
	"task-planner/internal/model"
)

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// CreateBatch inserts the given tasks in one transaction. A uniqueness
// violation on (task_model_id, due_at) fails the whole batch.
func (r *TaskRepository) CreateBatch(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&tasks).Error; err != nil {
		return fmt.Errorf("create tasks: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Preload("Model").
		Where("user_id = ? AND id = ?", userID, taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByUserAndRange returns the user's tasks due inside [from, to], oldest
// due date first, with the parent model preloaded for name fallback.
func (r *TaskRepository) ListByUserAndRange(ctx context.Context, userID uint, from, to time.Time) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Preload("Model").
		Where("user_id = ? AND due_at >= ? AND due_at <= ?", userID, from, to).
		Order("due_at ASC, created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// DueDatesByModel returns the days in [from, to] already covered by a task of
// the given model, keyed by YYYY-MM-DD. Materialization consults it before
// inserting.
func (r *TaskRepository) DueDatesByModel(ctx context.Context, modelID uint, from, to time.Time) (map[string]struct{}, error) {
	var dates []time.Time
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("task_model_id = ? AND due_at >= ? AND due_at <= ?", modelID, from, to).
		Pluck("due_at", &dates).Error; err != nil {
		return nil, err
	}
	covered := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		covered[d.UTC().Format(calendar.DayFormat)] = struct{}{}
	}
	return covered, nil
}

// MaxDueDateByModel returns the model's latest task due date, or nil when the
// model has no tasks at all.
func (r *TaskRepository) MaxDueDateByModel(ctx context.Context, modelID uint) (*time.Time, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Where("task_model_id = ?", modelID).
		Order("due_at DESC").First(&task).Error
	switch {
	case err == nil:
		due := task.DueAt.UTC()
		return &due, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("max due date: %w", err)
	}
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, task *model.Task, status model.TaskStatus) error {
	if err := r.db.WithContext(ctx).Model(task).Update("status", status).Error; err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	task.Status = status
	return nil
}

func (r *TaskRepository) UpdateDueAt(ctx context.Context, task *model.Task, dueAt time.Time) error {
	if err := r.db.WithContext(ctx).Model(task).Update("due_at", dueAt).Error; err != nil {
		return fmt.Errorf("update task due date: %w", err)
	}
	task.DueAt = dueAt
	return nil
}

func (r *TaskRepository) UpdateComment(ctx context.Context, task *model.Task, comment string) error {
	if err := r.db.WithContext(ctx).Model(task).Update("comment", comment).Error; err != nil {
		return fmt.Errorf("update task comment: %w", err)
	}
	task.Comment = comment
	return nil
}

// Delete removes a task for the given user, whatever its status.
func (r *TaskRepository) Delete(ctx context.Context, userID, taskID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).
		Delete(&model.Task{}).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// CountByModel reports how many tasks reference the given model.
func (r *TaskRepository) CountByModel(ctx context.Context, modelID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("task_model_id = ?", modelID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
