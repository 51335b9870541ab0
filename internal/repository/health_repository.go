package repository

import (
	"context"

	"gorm.io/gorm"

	"usersvc/internal/model"
)

// HealthCheckRepository defines persistence operations for health probes.
type HealthCheckRepository interface {
	Ping(ctx context.Context) error
	Create(ctx context.Context, check *model.HealthCheck) error
	List(ctx context.Context) ([]model.HealthCheck, error)
	Count(ctx context.Context) (int64, error)
}

type healthCheckRepository struct {
	db *gorm.DB
}

// NewHealthCheckRepository builds a GORM-backed repository.
func NewHealthCheckRepository(db *gorm.DB) HealthCheckRepository {
	return &healthCheckRepository{db: db}
}

// Ping runs a trivial query to verify store connectivity.
func (r *healthCheckRepository) Ping(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("SELECT 1").Error
}

func (r *healthCheckRepository) Create(ctx context.Context, check *model.HealthCheck) error {
	return r.db.WithContext(ctx).Create(check).Error
}

// List returns recorded probes, newest first. Read for reporting only; the
// application never updates or deletes rows.
func (r *healthCheckRepository) List(ctx context.Context) ([]model.HealthCheck, error) {
	checks := make([]model.HealthCheck, 0)
	if err := r.db.WithContext(ctx).
		Order("timestamp DESC, id DESC").
		Find(&checks).Error; err != nil {
		return nil, err
	}
	return checks, nil
}

func (r *healthCheckRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.HealthCheck{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
