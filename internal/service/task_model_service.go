package service

import (
	"context"
	"fmt"
	"time"

	"task-planner/internal/calendar"
	"task-planner/internal/model"
	"task-planner/internal/repository"
)

// creationHorizonDays caps how far ahead tasks are generated when a model is
// created; the daily generator takes over from there.
const creationHorizonDays = 10

// CreateTaskModelInput carries the fields for a new recurring task model.
type CreateTaskModelInput struct {
	Name        string          `validate:"required,max=255"`
	Description string          `validate:"max=2000"`
	Days        []model.Weekday `validate:"required,min=1"`
	StartAt     time.Time       `validate:"required"`
	EndAt       *time.Time
}

// UpdateTaskModelInput carries the editable fields of an existing model.
// Days and dates are immutable once tasks exist.
type UpdateTaskModelInput struct {
	Name        string `validate:"required,max=255"`
	Description string `validate:"max=2000"`
}

// TaskModelService owns the recurring template lifecycle: creation with the
// capped initial horizon, materialization of date ranges into tasks, and the
// stop/delete teardown rules.
type TaskModelService struct {
	modelRepo *repository.TaskModelRepository
	taskRepo  *repository.TaskRepository
	now       func() time.Time
}

func NewTaskModelService(modelRepo *repository.TaskModelRepository, taskRepo *repository.TaskRepository) *TaskModelService {
	return &TaskModelService{
		modelRepo: modelRepo,
		taskRepo:  taskRepo,
		now:       time.Now,
	}
}

// Create validates the input, stores the model and materializes its initial
// batch of tasks over [StartAt, min(EndAt, today+10d)]. The status is set
// once: started when the start date is today or earlier, pending otherwise.
func (s *TaskModelService) Create(ctx context.Context, user *model.User, input CreateTaskModelInput) (*model.TaskModel, error) {
	if err := checkInput(&input); err != nil {
		return nil, err
	}
	for _, day := range input.Days {
		if !day.Valid() {
			return nil, &ValidationError{Field: "days", Reason: fmt.Sprintf("unknown weekday %q", day)}
		}
	}

	startAt := calendar.DateOf(input.StartAt)
	var endAt *time.Time
	if input.EndAt != nil {
		end := calendar.DateOf(*input.EndAt)
		if end.Before(startAt) {
			return nil, &ValidationError{Field: "end_at", Reason: "before start date"}
		}
		endAt = &end
	}

	today := calendar.DateOf(s.now())
	status := model.TaskModelStarted
	if startAt.After(today) {
		status = model.TaskModelPending
	}

	m := &model.TaskModel{
		UserID:      user.ID,
		Name:        input.Name,
		Description: input.Description,
		Days:        model.WeekdaySet(input.Days).Normalize(),
		Status:      status,
		StartAt:     startAt,
		EndAt:       endAt,
	}
	if err := s.modelRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	horizon := today.AddDate(0, 0, creationHorizonDays)
	if endAt != nil && !endAt.After(horizon) {
		horizon = *endAt
	}
	if _, err := s.Materialize(ctx, m, startAt, horizon); err != nil {
		return nil, err
	}
	return m, nil
}

// Materialize creates one pending task per day in [start, end] whose weekday
// is in the model's set, skipping days the model already covers. It returns
// the tasks it created; a range with no matching or uncovered day creates
// nothing and is not an error.
func (s *TaskModelService) Materialize(ctx context.Context, m *model.TaskModel, start, end time.Time) ([]model.Task, error) {
	planned := m.PlanTasks(start, end)
	if len(planned) == 0 {
		return nil, nil
	}

	covered, err := s.taskRepo.DueDatesByModel(ctx, m.ID, calendar.DateOf(start), calendar.DateOf(end))
	if err != nil {
		return nil, err
	}

	tasks := planned[:0]
	for _, task := range planned {
		if _, exists := covered[task.DueAt.Format(calendar.DayFormat)]; exists {
			continue
		}
		tasks = append(tasks, task)
	}
	if err := s.taskRepo.CreateBatch(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskModelService) List(ctx context.Context, user *model.User) ([]model.TaskModel, error) {
	return s.modelRepo.ListByUser(ctx, user.ID)
}

func (s *TaskModelService) Get(ctx context.Context, user *model.User, modelID uint) (*model.TaskModel, error) {
	m, err := s.modelRepo.FindByID(ctx, user.ID, modelID)
	if err != nil {
		return nil, orNotFound(err)
	}
	return m, nil
}

// Update edits the model's name and description only; the recurrence pattern
// and window stay fixed.
func (s *TaskModelService) Update(ctx context.Context, user *model.User, modelID uint, input UpdateTaskModelInput) (*model.TaskModel, error) {
	if err := checkInput(&input); err != nil {
		return nil, err
	}
	m, err := s.Get(ctx, user, modelID)
	if err != nil {
		return nil, err
	}
	if err := s.modelRepo.UpdateDetails(ctx, m, input.Name, input.Description); err != nil {
		return nil, err
	}
	m.Name = input.Name
	m.Description = input.Description
	return m, nil
}

// Stop freezes future generation: the model becomes completed and its tasks
// due strictly after today are deleted. Past and today's tasks are kept as
// history, finished or not. There is no resume.
func (s *TaskModelService) Stop(ctx context.Context, user *model.User, modelID uint) (*model.TaskModel, error) {
	m, err := s.Get(ctx, user, modelID)
	if err != nil {
		return nil, err
	}
	today := calendar.DateOf(s.now())
	if err := s.modelRepo.StopAndPrune(ctx, m, today); err != nil {
		return nil, err
	}
	m.Status = model.TaskModelCompleted
	return m, nil
}

// Delete removes the model and all of its tasks unconditionally.
func (s *TaskModelService) Delete(ctx context.Context, user *model.User, modelID uint) error {
	m, err := s.Get(ctx, user, modelID)
	if err != nil {
		return err
	}
	return s.modelRepo.DeleteCascade(ctx, m)
}
