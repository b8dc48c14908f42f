package ledger

import (
	"context"
	"fmt"

	"artifact-store/feature/artifacts"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultLimit caps List when the caller passes no limit.
const DefaultLimit = 50

var _ artifacts.Recorder = (*Repository)(nil)

// Repository stores transfer events in MySQL.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on an open connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the ledger table.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&Transfer{}); err != nil {
		return fmt.Errorf("failed to migrate transfer ledger: %w", err)
	}
	return nil
}

// Record inserts one transfer event.
func (r *Repository) Record(ctx context.Context, ev artifacts.TransferEvent) error {
	row := Transfer{
		ID:        uuid.NewString(),
		Direction: string(ev.Direction),
		Bucket:    ev.Bucket,
		Key:       ev.Key,
		LocalPath: ev.LocalPath,
		Size:      ev.Size,
		ETag:      ev.ETag,
		CreatedAt: ev.At,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to record transfer: %w", err)
	}
	return nil
}

// List returns the most recent transfers, newest first. An empty bucket lists
// every bucket.
func (r *Repository) List(ctx context.Context, bucket string, limit int) ([]Transfer, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	q := r.db.WithContext(ctx).Model(&Transfer{})
	if bucket != "" {
		q = q.Where("bucket = ?", bucket)
	}

	var out []Transfer
	if err := q.Order("created_at DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return out, nil
}
