package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"task-planner/internal/model"
	"task-planner/internal/repository"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// newTestDB opens a fresh in-memory database per test, named after the test
// so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := repository.NewDB(dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

func newTestUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	user := &model.User{Name: "Ada", Email: fmt.Sprintf("%s@example.com", strings.ReplaceAll(t.Name(), "/", "_"))}
	if err := repository.NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func tasksOfModel(t *testing.T, db *gorm.DB, modelID uint) []model.Task {
	t.Helper()
	var tasks []model.Task
	if err := db.Where("task_model_id = ?", modelID).Order("due_at ASC").Find(&tasks).Error; err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	return tasks
}

func dueDays(tasks []model.Task) []string {
	days := make([]string, 0, len(tasks))
	for _, task := range tasks {
		days = append(days, task.DueAt.UTC().Format("2006-01-02"))
	}
	return days
}

func assertDays(t *testing.T, tasks []model.Task, want ...string) {
	t.Helper()
	got := dueDays(tasks)
	if len(got) != len(want) {
		t.Fatalf("due days %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("due days %v, want %v", got, want)
		}
	}
}
