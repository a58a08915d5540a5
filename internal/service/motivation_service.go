package service

import (
	"context"

	"task-planner/internal/model"
	"task-planner/internal/repository"
)

// MotivationInput carries the fields of a motivational link.
type MotivationInput struct {
	Name string `validate:"required,max=255"`
	URL  string `validate:"required,url"`
}

// MotivationService wraps saved motivational links.
type MotivationService struct {
	motivationRepo *repository.MotivationRepository
}

func NewMotivationService(motivationRepo *repository.MotivationRepository) *MotivationService {
	return &MotivationService{motivationRepo: motivationRepo}
}

func (s *MotivationService) Create(ctx context.Context, user *model.User, input MotivationInput) (*model.Motivation, error) {
	if err := checkInput(&input); err != nil {
		return nil, err
	}
	motivation := &model.Motivation{
		UserID: user.ID,
		Name:   input.Name,
		URL:    input.URL,
	}
	if err := s.motivationRepo.Create(ctx, motivation); err != nil {
		return nil, err
	}
	return motivation, nil
}

func (s *MotivationService) List(ctx context.Context, user *model.User) ([]model.Motivation, error) {
	return s.motivationRepo.ListByUser(ctx, user.ID)
}

func (s *MotivationService) Delete(ctx context.Context, user *model.User, motivationID uint) error {
	if _, err := s.motivationRepo.FindByID(ctx, user.ID, motivationID); err != nil {
		return orNotFound(err)
	}
	return s.motivationRepo.Delete(ctx, user.ID, motivationID)
}
