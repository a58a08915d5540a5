package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"task-planner/internal/model"
)

// MealRepository handles CRUD for meal logs.
type MealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{db: db}
}

func (r *MealRepository) Create(ctx context.Context, meal *model.Meal) error {
	if err := r.db.WithContext(ctx).Create(meal).Error; err != nil {
		return fmt.Errorf("create meal: %w", err)
	}
	return nil
}

func (r *MealRepository) FindByID(ctx context.Context, userID, mealID uint) (*model.Meal, error) {
	var meal model.Meal
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, mealID).First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *MealRepository) ListByUser(ctx context.Context, userID uint) ([]model.Meal, error) {
	var meals []model.Meal
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *MealRepository) Update(ctx context.Context, meal *model.Meal, mealType model.MealType, name, description string) error {
	updates := map[string]interface{}{
		"type":        mealType,
		"name":        name,
		"description": description,
	}
	if err := r.db.WithContext(ctx).Model(meal).Updates(updates).Error; err != nil {
		return fmt.Errorf("update meal: %w", err)
	}
	return nil
}

func (r *MealRepository) Delete(ctx context.Context, userID, mealID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, mealID).
		Delete(&model.Meal{}).Error; err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	return nil
}
