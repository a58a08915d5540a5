package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"task-planner/internal/repository"
	"task-planner/internal/secret"
)

func mustEntryRepo(t *testing.T, db *gorm.DB) *repository.EntryRepository {
	t.Helper()
	enc, err := secret.NewEncryptor(bytes.Repeat([]byte{0x11}, 32))
	if err != nil {
		t.Fatalf("encryptor: %v", err)
	}
	return repository.NewEntryRepository(db, enc)
}

type row struct {
	Name    string
	Content string
}

func TestEntries_EncryptedAtRest(t *testing.T) {
	db := newTestDB(t)
	svc := NewEntryService(mustEntryRepo(t, db))
	user := newTestUser(t, db)
	ctx := context.Background()

	entry, err := svc.Create(ctx, user, EntryInput{Name: "Dear diary", Content: "today was calm"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if entry.Name != "Dear diary" || entry.Content != "today was calm" {
		t.Fatalf("returned entry lost its plaintext: %+v", entry)
	}

	var raw row
	if err := db.Table("entries").Select("name, content").Where("id = ?", entry.ID).Scan(&raw).Error; err != nil {
		t.Fatalf("raw row: %v", err)
	}
	if raw.Name == "Dear diary" || raw.Content == "today was calm" {
		t.Fatal("entry stored in plaintext")
	}

	listed, err := svc.List(ctx, user)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 || listed[0].Name != "Dear diary" || listed[0].Content != "today was calm" {
		t.Fatalf("listed entries %+v, want the decrypted original", listed)
	}
}

func TestEntries_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewEntryService(mustEntryRepo(t, db))
	user := newTestUser(t, db)
	ctx := context.Background()

	entry, err := svc.Create(ctx, user, EntryInput{Name: "v1", Content: "first draft"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, user, entry.ID, EntryInput{Name: "v2", Content: "final"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "v2" || updated.Content != "final" {
		t.Fatalf("updated entry %+v", updated)
	}

	if _, err := svc.Update(ctx, user, entry.ID+99, EntryInput{Name: "x", Content: "y"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update of unknown entry: %v, want ErrNotFound", err)
	}

	if err := svc.Delete(ctx, user, entry.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, user, entry.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete: %v, want ErrNotFound", err)
	}
}

func TestEntries_RequireNameAndContent(t *testing.T) {
	db := newTestDB(t)
	svc := NewEntryService(mustEntryRepo(t, db))
	user := newTestUser(t, db)

	var verr *ValidationError
	if _, err := svc.Create(context.Background(), user, EntryInput{Content: "no name"}); !errors.As(err, &verr) {
		t.Errorf("missing name: got %v, want ValidationError", err)
	}
}
