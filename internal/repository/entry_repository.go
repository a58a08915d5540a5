package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"task-planner/internal/model"
	"task-planner/internal/secret"
)

// EntryRepository handles CRUD for journal entries. Name and content are
// sealed before they touch the database and opened on the way out, so the
// stored rows never contain plaintext.
type EntryRepository struct {
	db  *gorm.DB
	enc *secret.Encryptor
}

func NewEntryRepository(db *gorm.DB, enc *secret.Encryptor) *EntryRepository {
	return &EntryRepository{db: db, enc: enc}
}

func (r *EntryRepository) Create(ctx context.Context, entry *model.Entry) error {
	sealed, err := r.seal(entry)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&sealed).Error; err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	entry.ID = sealed.ID
	entry.CreatedAt = sealed.CreatedAt
	entry.UpdatedAt = sealed.UpdatedAt
	return nil
}

func (r *EntryRepository) FindByID(ctx context.Context, userID, entryID uint) (*model.Entry, error) {
	var entry model.Entry
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, entryID).First(&entry).Error; err != nil {
		return nil, err
	}
	if err := r.open(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *EntryRepository) ListByUser(ctx context.Context, userID uint) ([]model.Entry, error) {
	var entries []model.Entry
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	for i := range entries {
		if err := r.open(&entries[i]); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func (r *EntryRepository) Update(ctx context.Context, entry *model.Entry, name, content string) error {
	sealedName, err := r.enc.Seal(name)
	if err != nil {
		return fmt.Errorf("seal entry: %w", err)
	}
	sealedContent, err := r.enc.Seal(content)
	if err != nil {
		return fmt.Errorf("seal entry: %w", err)
	}
	updates := map[string]interface{}{
		"name":    sealedName,
		"content": sealedContent,
	}
	if err := r.db.WithContext(ctx).Model(entry).Updates(updates).Error; err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	entry.Name = name
	entry.Content = content
	return nil
}

func (r *EntryRepository) Delete(ctx context.Context, userID, entryID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, entryID).
		Delete(&model.Entry{}).Error; err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

func (r *EntryRepository) seal(entry *model.Entry) (model.Entry, error) {
	sealed := *entry
	var err error
	if sealed.Name, err = r.enc.Seal(entry.Name); err != nil {
		return sealed, fmt.Errorf("seal entry: %w", err)
	}
	if sealed.Content, err = r.enc.Seal(entry.Content); err != nil {
		return sealed, fmt.Errorf("seal entry: %w", err)
	}
	return sealed, nil
}

func (r *EntryRepository) open(entry *model.Entry) error {
	var err error
	if entry.Name, err = r.enc.Open(entry.Name); err != nil {
		return fmt.Errorf("open entry: %w", err)
	}
	if entry.Content, err = r.enc.Open(entry.Content); err != nil {
		return fmt.Errorf("open entry: %w", err)
	}
	return nil
}
