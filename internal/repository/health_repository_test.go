package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"usersvc/internal/model"
)

func TestHealthCheckRepository_PingAndCreate(t *testing.T) {
	repo := NewHealthCheckRepository(setupDB(t, "healthrepo_create"))
	ctx := context.Background()

	assert.NoError(t, repo.Ping(ctx))

	check := &model.HealthCheck{Status: model.StatusHealthy}
	assert.NoError(t, repo.Create(ctx, check))
	assert.NotZero(t, check.ID)
	assert.False(t, check.Timestamp.IsZero())

	count, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestHealthCheckRepository_ListNewestFirst(t *testing.T) {
	repo := NewHealthCheckRepository(setupDB(t, "healthrepo_list"))
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	older := &model.HealthCheck{Status: model.StatusHealthy, Timestamp: now.Add(-time.Hour)}
	newer := &model.HealthCheck{Status: model.StatusHealthy, Timestamp: now}
	assert.NoError(t, repo.Create(ctx, older))
	assert.NoError(t, repo.Create(ctx, newer))

	checks, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, checks, 2)
	assert.Equal(t, newer.ID, checks[0].ID)
	assert.Equal(t, older.ID, checks[1].ID)
}

func TestHealthCheckRepository_PingClosedDatabase(t *testing.T) {
	gormDB := setupDB(t, "healthrepo_closed")
	repo := NewHealthCheckRepository(gormDB)

	sqlDB, err := gormDB.DB()
	assert.NoError(t, err)
	assert.NoError(t, sqlDB.Close())

	assert.Error(t, repo.Ping(context.Background()))
}
