package service

import (
	"context"
	"fmt"
	"time"

	"task-planner/internal/calendar"
	"task-planner/internal/model"
	"task-planner/internal/repository"
)

// StandaloneTaskInput carries the fields for an ad-hoc task with no parent
// model.
type StandaloneTaskInput struct {
	Name        string    `validate:"required,max=255"`
	Description string    `validate:"max=2000"`
	DueAt       time.Time `validate:"required"`
}

// DayBoard groups a day's tasks for display, one board per calendar day.
type DayBoard struct {
	Day   time.Time
	Tasks []model.Task
}

// TaskService drives the per-task state machine: pending tasks can be
// started, started tasks completed or canceled, and any non-terminal task can
// be reprogrammed to another day. Completed and canceled are final.
type TaskService struct {
	taskRepo *repository.TaskRepository
}

func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateStandalone stores an ad-hoc pending task carrying its own name and
// description.
func (s *TaskService) CreateStandalone(ctx context.Context, user *model.User, input StandaloneTaskInput) (*model.Task, error) {
	if err := checkInput(&input); err != nil {
		return nil, err
	}
	task := &model.Task{
		UserID:      user.ID,
		Name:        input.Name,
		Description: input.Description,
		Status:      model.TaskPending,
		DueAt:       calendar.DateOf(input.DueAt),
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, user *model.User, taskID uint) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, user.ID, taskID)
	if err != nil {
		return nil, orNotFound(err)
	}
	return task, nil
}

// Start moves a pending task to started.
func (s *TaskService) Start(ctx context.Context, user *model.User, taskID uint) (*model.Task, error) {
	task, err := s.Get(ctx, user, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status != model.TaskPending {
		return nil, fmt.Errorf("%w: cannot start a %s task", ErrInvalidTransition, task.Status)
	}
	if err := s.taskRepo.UpdateStatus(ctx, task, model.TaskStarted); err != nil {
		return nil, err
	}
	return task, nil
}

// Complete moves a started task to completed.
func (s *TaskService) Complete(ctx context.Context, user *model.User, taskID uint) (*model.Task, error) {
	return s.finish(ctx, user, taskID, model.TaskCompleted)
}

// Cancel moves a started task to canceled.
func (s *TaskService) Cancel(ctx context.Context, user *model.User, taskID uint) (*model.Task, error) {
	return s.finish(ctx, user, taskID, model.TaskCanceled)
}

func (s *TaskService) finish(ctx context.Context, user *model.User, taskID uint, status model.TaskStatus) (*model.Task, error) {
	task, err := s.Get(ctx, user, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status != model.TaskStarted {
		return nil, fmt.Errorf("%w: cannot mark a %s task %s", ErrInvalidTransition, task.Status, status)
	}
	if err := s.taskRepo.UpdateStatus(ctx, task, status); err != nil {
		return nil, err
	}
	return task, nil
}

// Reprogram moves a non-terminal task to another due date. Only the date
// changes; the status is left as it was.
func (s *TaskService) Reprogram(ctx context.Context, user *model.User, taskID uint, dueAt time.Time) (*model.Task, error) {
	task, err := s.Get(ctx, user, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status.Terminal() {
		return nil, fmt.Errorf("%w: cannot reprogram a %s task", ErrInvalidTransition, task.Status)
	}
	if err := s.taskRepo.UpdateDueAt(ctx, task, calendar.DateOf(dueAt)); err != nil {
		return nil, err
	}
	return task, nil
}

// Comment attaches or replaces the task's free-text comment, in any state.
func (s *TaskService) Comment(ctx context.Context, user *model.User, taskID uint, comment string) (*model.Task, error) {
	task, err := s.Get(ctx, user, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.taskRepo.UpdateComment(ctx, task, comment); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task in any state.
func (s *TaskService) Delete(ctx context.Context, user *model.User, taskID uint) error {
	task, err := s.Get(ctx, user, taskID)
	if err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, user.ID, task.ID)
}

// DayBoards returns one board per calendar day in [from, to] with the user's
// tasks due that day, including empty days so the caller can render gaps.
func (s *TaskService) DayBoards(ctx context.Context, user *model.User, from, to time.Time) ([]DayBoard, error) {
	start := calendar.DateOf(from)
	end := calendar.DateOf(to)
	if end.Before(start) {
		return nil, &ValidationError{Field: "to", Reason: "before from date"}
	}

	tasks, err := s.taskRepo.ListByUserAndRange(ctx, user.ID, start, end)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]model.Task)
	for _, task := range tasks {
		key := task.DueAt.UTC().Format(calendar.DayFormat)
		byDay[key] = append(byDay[key], task)
	}

	var boards []DayBoard
	for day := range calendar.Days(start, end) {
		boards = append(boards, DayBoard{
			Day:   day,
			Tasks: byDay[day.Format(calendar.DayFormat)],
		})
	}
	return boards, nil
}
