package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"task-planner/internal/model"
)

// MotivationRepository handles CRUD for motivational links.
type MotivationRepository struct {
	db *gorm.DB
}

func NewMotivationRepository(db *gorm.DB) *MotivationRepository {
	return &MotivationRepository{db: db}
}

func (r *MotivationRepository) Create(ctx context.Context, motivation *model.Motivation) error {
	if err := r.db.WithContext(ctx).Create(motivation).Error; err != nil {
		return fmt.Errorf("create motivation: %w", err)
	}
	return nil
}

func (r *MotivationRepository) ListByUser(ctx context.Context, userID uint) ([]model.Motivation, error) {
	var motivations []model.Motivation
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("name ASC").Find(&motivations).Error; err != nil {
		return nil, err
	}
	return motivations, nil
}

func (r *MotivationRepository) FindByID(ctx context.Context, userID, motivationID uint) (*model.Motivation, error) {
	var motivation model.Motivation
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, motivationID).First(&motivation).Error; err != nil {
		return nil, err
	}
	return &motivation, nil
}

func (r *MotivationRepository) Delete(ctx context.Context, userID, motivationID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, motivationID).
		Delete(&model.Motivation{}).Error; err != nil {
		return fmt.Errorf("delete motivation: %w", err)
	}
	return nil
}
