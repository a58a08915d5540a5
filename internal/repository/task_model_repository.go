package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"task-planner/internal/model"
)

// TaskModelRepository handles CRUD for recurring task models.
type TaskModelRepository struct {
	db *gorm.DB
}

func NewTaskModelRepository(db *gorm.DB) *TaskModelRepository {
	return &TaskModelRepository{db: db}
}

func (r *TaskModelRepository) Create(ctx context.Context, m *model.TaskModel) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create task model: %w", err)
	}
	return nil
}

func (r *TaskModelRepository) FindByID(ctx context.Context, userID, modelID uint) (*model.TaskModel, error) {
	var m model.TaskModel
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, modelID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *TaskModelRepository) ListByUser(ctx context.Context, userID uint) ([]model.TaskModel, error) {
	var models []model.TaskModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

// ListGenerating returns every model, across all users, that has not been
// stopped. The daily generator extends each of these by one day.
func (r *TaskModelRepository) ListGenerating(ctx context.Context) ([]model.TaskModel, error) {
	var models []model.TaskModel
	if err := r.db.WithContext(ctx).Where("status <> ?", model.TaskModelCompleted).Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

func (r *TaskModelRepository) UpdateDetails(ctx context.Context, m *model.TaskModel, name, description string) error {
	updates := map[string]interface{}{
		"name":        name,
		"description": description,
	}
	if err := r.db.WithContext(ctx).Model(m).Updates(updates).Error; err != nil {
		return fmt.Errorf("update task model: %w", err)
	}
	return nil
}

// StopAndPrune marks the model completed and deletes its tasks due strictly
// after today, in one transaction. Tasks due today or earlier stay untouched
// whatever their status.
func (r *TaskModelRepository) StopAndPrune(ctx context.Context, m *model.TaskModel, today time.Time) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(m).Update("status", model.TaskModelCompleted).Error; err != nil {
			return err
		}
		return tx.Where("task_model_id = ? AND due_at > ?", m.ID, today).
			Delete(&model.Task{}).Error
	})
	if err != nil {
		return fmt.Errorf("stop task model: %w", err)
	}
	return nil
}

// DeleteCascade removes the model and every task generated from it,
// regardless of due date or status.
func (r *TaskModelRepository) DeleteCascade(ctx context.Context, m *model.TaskModel) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_model_id = ?", m.ID).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
	if err != nil {
		return fmt.Errorf("delete task model: %w", err)
	}
	return nil
}
