package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-planner/internal/model"
	"task-planner/internal/repository"
)

func newModelService(t *testing.T, now time.Time) (*TaskModelService, *repository.TaskRepository, *model.User) {
	t.Helper()
	db := newTestDB(t)
	taskRepo := repository.NewTaskRepository(db)
	svc := NewTaskModelService(repository.NewTaskModelRepository(db), taskRepo)
	svc.now = fixedNow(now)
	return svc, taskRepo, newTestUser(t, db)
}

func TestCreate_MaterializesCappedHorizon(t *testing.T) {
	// Today is Monday 2025-01-06; the initial horizon runs through 01-16.
	svc, _, user := newModelService(t, date(2025, time.January, 6))

	m, err := svc.Create(context.Background(), user, CreateTaskModelInput{
		Name:    "Morning run",
		Days:    []model.Weekday{model.Monday, model.Wednesday},
		StartAt: date(2025, time.January, 6),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.Status != model.TaskModelStarted {
		t.Errorf("status %q, want started for a start date of today", m.Status)
	}

	tasks, err := svc.taskRepo.ListByUserAndRange(context.Background(), user.ID, date(2025, time.January, 1), date(2025, time.February, 1))
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	assertDays(t, tasks, "2025-01-06", "2025-01-08", "2025-01-13", "2025-01-15")
	for _, task := range tasks {
		if task.Status != model.TaskPending {
			t.Errorf("task due %v status %q, want pending", task.DueAt, task.Status)
		}
	}
}

func TestCreate_FutureStartIsPending(t *testing.T) {
	svc, _, user := newModelService(t, date(2025, time.January, 6))

	m, err := svc.Create(context.Background(), user, CreateTaskModelInput{
		Name:    "Stretching",
		Days:    []model.Weekday{model.Tuesday},
		StartAt: date(2025, time.January, 7),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.Status != model.TaskModelPending {
		t.Errorf("status %q, want pending for a future start date", m.Status)
	}
}

func TestCreate_EndDateInsideHorizonCapsMaterialization(t *testing.T) {
	svc, _, user := newModelService(t, date(2025, time.January, 6))

	end := date(2025, time.January, 10)
	if _, err := svc.Create(context.Background(), user, CreateTaskModelInput{
		Name:    "Short model",
		Days:    []model.Weekday{model.Monday, model.Wednesday},
		StartAt: date(2025, time.January, 6),
		EndAt:   &end,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tasks, _ := svc.taskRepo.ListByUserAndRange(context.Background(), user.ID, date(2025, time.January, 1), date(2025, time.February, 1))
	assertDays(t, tasks, "2025-01-06", "2025-01-08")
}

func TestCreate_Validation(t *testing.T) {
	svc, _, user := newModelService(t, date(2025, time.January, 6))
	ctx := context.Background()

	var verr *ValidationError

	_, err := svc.Create(ctx, user, CreateTaskModelInput{Days: []model.Weekday{model.Monday}, StartAt: date(2025, time.January, 6)})
	if !errors.As(err, &verr) {
		t.Errorf("missing name: got %v, want ValidationError", err)
	}

	_, err = svc.Create(ctx, user, CreateTaskModelInput{Name: "No days", StartAt: date(2025, time.January, 6)})
	if !errors.As(err, &verr) {
		t.Errorf("missing days: got %v, want ValidationError", err)
	}

	_, err = svc.Create(ctx, user, CreateTaskModelInput{
		Name:    "Bad day",
		Days:    []model.Weekday{"funday"},
		StartAt: date(2025, time.January, 6),
	})
	if !errors.As(err, &verr) {
		t.Errorf("unknown weekday: got %v, want ValidationError", err)
	}

	badEnd := date(2025, time.January, 2)
	_, err = svc.Create(ctx, user, CreateTaskModelInput{
		Name:    "Inverted window",
		Days:    []model.Weekday{model.Monday},
		StartAt: date(2025, time.January, 6),
		EndAt:   &badEnd,
	})
	if !errors.As(err, &verr) {
		t.Errorf("end before start: got %v, want ValidationError", err)
	}

	// Nothing should have been written.
	models, err := svc.modelRepo.ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("list models: %v", err)
	}
	if len(models) != 0 {
		t.Errorf("%d models persisted after rejected input, want 0", len(models))
	}
}

func TestMaterialize_SkipsCoveredDays(t *testing.T) {
	svc, _, user := newModelService(t, date(2025, time.January, 6))
	ctx := context.Background()

	m, err := svc.Create(ctx, user, CreateTaskModelInput{
		Name:    "Idempotent",
		Days:    []model.Weekday{model.Monday, model.Wednesday},
		StartAt: date(2025, time.January, 6),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	created, err := svc.Materialize(ctx, m, date(2025, time.January, 6), date(2025, time.January, 16))
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("re-materializing a covered range created %d tasks, want 0", len(created))
	}

	// Partial overlap only fills the gap.
	created, err = svc.Materialize(ctx, m, date(2025, time.January, 15), date(2025, time.January, 20))
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	assertDays(t, created, "2025-01-20")
}

func TestStop_KeepsPastAndTodayTasks(t *testing.T) {
	svc, _, user := newModelService(t, date(2025, time.January, 6))
	ctx := context.Background()

	m, err := svc.Create(ctx, user, CreateTaskModelInput{
		Name:    "To be stopped",
		Days:    []model.Weekday{model.Monday, model.Wednesday},
		StartAt: date(2025, time.January, 6),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Two days later: 01-06 and 01-08 are history, 01-13 and 01-15 are future.
	svc.now = fixedNow(date(2025, time.January, 8))

	stopped, err := svc.Stop(ctx, user, m.ID)
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if stopped.Status != model.TaskModelCompleted {
		t.Errorf("status %q after stop, want completed", stopped.Status)
	}

	tasks, _ := svc.taskRepo.ListByUserAndRange(ctx, user.ID, date(2025, time.January, 1), date(2025, time.February, 1))
	assertDays(t, tasks, "2025-01-06", "2025-01-08")
}

func TestDelete_CascadesAllTasks(t *testing.T) {
	svc, taskRepo, user := newModelService(t, date(2025, time.January, 6))
	ctx := context.Background()

	m, err := svc.Create(ctx, user, CreateTaskModelInput{
		Name:    "To be deleted",
		Days:    []model.Weekday{model.Monday, model.Wednesday, model.Friday},
		StartAt: date(2025, time.January, 6),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, user, m.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	count, err := taskRepo.CountByModel(ctx, m.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("%d tasks still reference the deleted model, want 0", count)
	}
	if _, err := svc.Get(ctx, user, m.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete: %v, want ErrNotFound", err)
	}
}

func TestStopAndDelete_OtherUsersModelNotFound(t *testing.T) {
	svc, _, user := newModelService(t, date(2025, time.January, 6))
	ctx := context.Background()

	m, err := svc.Create(ctx, user, CreateTaskModelInput{
		Name:    "Private",
		Days:    []model.Weekday{model.Monday},
		StartAt: date(2025, time.January, 6),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	intruder := &model.User{ID: user.ID + 100}
	if _, err := svc.Stop(ctx, intruder, m.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Stop as other user: %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, intruder, m.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete as other user: %v, want ErrNotFound", err)
	}
}
