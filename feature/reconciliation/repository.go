package reconciliation

import (
	"context"
	"errors"
	"fmt"

	"recon-manager/feature/reconciliation/models"

	"gorm.io/gorm"
)

// ErrRunNotFound is returned when a run id is not in the ledger.
var ErrRunNotFound = errors.New("run not found")

// Repository persists archived runs.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a run repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the run ledger table.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&models.Run{})
}

// Create inserts a run.
func (r *Repository) Create(ctx context.Context, run *models.Run) error {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record run %s: %w", run.ID, err)
	}
	return nil
}

// Get returns a single run.
func (r *Repository) Get(ctx context.Context, id string) (*models.Run, error) {
	var run models.Run
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// List returns runs newest first together with the total count.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]models.Run, int64, error) {
	var total int64
	db := r.db.WithContext(ctx).Model(&models.Run{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	runs := []models.Run{}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&runs).Error
	if err != nil {
		return nil, 0, err
	}
	return runs, total, nil
}
