package service

import (
	"context"

	"task-planner/internal/model"
	"task-planner/internal/repository"
)

// EntryInput carries the fields of a journal entry.
type EntryInput struct {
	Name    string `validate:"required,max=255"`
	Content string `validate:"required"`
}

// EntryService wraps journal entries. The repository keeps them encrypted at
// rest; everything here works with plaintext.
type EntryService struct {
	entryRepo *repository.EntryRepository
}

func NewEntryService(entryRepo *repository.EntryRepository) *EntryService {
	return &EntryService{entryRepo: entryRepo}
}

func (s *EntryService) Create(ctx context.Context, user *model.User, input EntryInput) (*model.Entry, error) {
	if err := checkInput(&input); err != nil {
		return nil, err
	}
	entry := &model.Entry{
		UserID:  user.ID,
		Name:    input.Name,
		Content: input.Content,
	}
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *EntryService) List(ctx context.Context, user *model.User) ([]model.Entry, error) {
	return s.entryRepo.ListByUser(ctx, user.ID)
}

func (s *EntryService) Update(ctx context.Context, user *model.User, entryID uint, input EntryInput) (*model.Entry, error) {
	if err := checkInput(&input); err != nil {
		return nil, err
	}
	entry, err := s.entryRepo.FindByID(ctx, user.ID, entryID)
	if err != nil {
		return nil, orNotFound(err)
	}
	if err := s.entryRepo.Update(ctx, entry, input.Name, input.Content); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *EntryService) Delete(ctx context.Context, user *model.User, entryID uint) error {
	if _, err := s.entryRepo.FindByID(ctx, user.ID, entryID); err != nil {
		return orNotFound(err)
	}
	return s.entryRepo.Delete(ctx, user.ID, entryID)
}
