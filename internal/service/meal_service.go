package service

import (
	"context"
	"fmt"

	"task-planner/internal/model"
	"task-planner/internal/repository"
)

// MealInput carries the fields of a meal log line.
type MealInput struct {
	Type        model.MealType `validate:"required"`
	Name        string         `validate:"required,max=255"`
	Description string         `validate:"max=2000"`
}

// MealService wraps meal logging.
type MealService struct {
	mealRepo *repository.MealRepository
}

func NewMealService(mealRepo *repository.MealRepository) *MealService {
	return &MealService{mealRepo: mealRepo}
}

func (s *MealService) Create(ctx context.Context, user *model.User, input MealInput) (*model.Meal, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}
	meal := &model.Meal{
		UserID:      user.ID,
		Type:        input.Type,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.mealRepo.Create(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) List(ctx context.Context, user *model.User) ([]model.Meal, error) {
	return s.mealRepo.ListByUser(ctx, user.ID)
}

func (s *MealService) Update(ctx context.Context, user *model.User, mealID uint, input MealInput) (*model.Meal, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}
	meal, err := s.mealRepo.FindByID(ctx, user.ID, mealID)
	if err != nil {
		return nil, orNotFound(err)
	}
	if err := s.mealRepo.Update(ctx, meal, input.Type, input.Name, input.Description); err != nil {
		return nil, err
	}
	meal.Type = input.Type
	meal.Name = input.Name
	meal.Description = input.Description
	return meal, nil
}

func (s *MealService) Delete(ctx context.Context, user *model.User, mealID uint) error {
	if _, err := s.mealRepo.FindByID(ctx, user.ID, mealID); err != nil {
		return orNotFound(err)
	}
	return s.mealRepo.Delete(ctx, user.ID, mealID)
}

func (s *MealService) check(input MealInput) error {
	if err := checkInput(&input); err != nil {
		return err
	}
	if !input.Type.Valid() {
		return &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown meal type %q", input.Type)}
	}
	return nil
}
