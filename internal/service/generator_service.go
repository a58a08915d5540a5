package service

import (
	"context"
	"log/slog"

	"task-planner/internal/calendar"
	"task-planner/internal/model"
	"task-planner/internal/repository"
)

// GenerationSummary reports one generator cycle for operational visibility.
// Nothing downstream consumes it beyond logging.
type GenerationSummary struct {
	Processed int
	Extended  int
	Skipped   int
	Failed    int
	Created   int
}

// GeneratorService runs the daily horizon extension: for every model that has
// not been stopped it finds the day after the latest generated task and
// materializes that single day. One model's failure never aborts the batch.
type GeneratorService struct {
	modelRepo *repository.TaskModelRepository
	taskRepo  *repository.TaskRepository
	models    *TaskModelService
	log       *slog.Logger
}

func NewGeneratorService(modelRepo *repository.TaskModelRepository, taskRepo *repository.TaskRepository, models *TaskModelService, log *slog.Logger) *GeneratorService {
	return &GeneratorService{
		modelRepo: modelRepo,
		taskRepo:  taskRepo,
		models:    models,
		log:       log,
	}
}

// Run executes one extension cycle over every non-completed model.
func (s *GeneratorService) Run(ctx context.Context) (GenerationSummary, error) {
	var summary GenerationSummary

	generating, err := s.modelRepo.ListGenerating(ctx)
	if err != nil {
		return summary, err
	}

	for i := range generating {
		m := &generating[i]
		summary.Processed++

		created, extended, err := s.extend(ctx, m)
		switch {
		case err != nil:
			summary.Failed++
			s.log.Error("task model extension failed", "model_id", m.ID, "error", err)
		case extended:
			summary.Extended++
			summary.Created += created
		default:
			summary.Skipped++
		}
	}

	s.log.Info("generation cycle finished",
		"processed", summary.Processed,
		"extended", summary.Extended,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"created", summary.Created,
	)
	return summary, nil
}

func (s *GeneratorService) extend(ctx context.Context, m *model.TaskModel) (created int, extended bool, err error) {
	maxDue, err := s.taskRepo.MaxDueDateByModel(ctx, m.ID)
	if err != nil {
		return 0, false, err
	}
	if maxDue == nil {
		// Creation always materializes an initial batch, so a model without
		// any task should not exist. Skip it rather than guess a start day.
		s.log.Warn("task model has no tasks, skipping", "model_id", m.ID)
		return 0, false, nil
	}

	nextDay := calendar.DateOf(*maxDue).AddDate(0, 0, 1)

	// Skip while the declared end date lies strictly beyond nextDay. The
	// comparison direction is intentional, see DESIGN.md.
	if m.EndAt != nil && m.EndAt.After(nextDay) {
		return 0, false, nil
	}

	tasks, err := s.models.Materialize(ctx, m, nextDay, nextDay)
	if err != nil {
		return 0, false, err
	}
	return len(tasks), true, nil
}
