package db

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"usersvc/internal/model"
)

func TestOpenInMemorySQLite(t *testing.T) {
	gormDB, err := Open("sqlite://:memory:")
	assert.NoError(t, err)
	assert.NotNil(t, gormDB)
}

func TestOpenUnsupportedURL(t *testing.T) {
	_, err := Open("mysql://root@localhost/users")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database URL")
}

func TestMigrateCreatesTables(t *testing.T) {
	gormDB, err := Open("sqlite://file:db_migrate?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	assert.NoError(t, Migrate(gormDB))
	assert.True(t, gormDB.Migrator().HasTable(&model.User{}))
	assert.True(t, gormDB.Migrator().HasTable(&model.HealthCheck{}))

	// re-running against an up-to-date schema is a no-op
	assert.NoError(t, Migrate(gormDB))
}

func TestResetDropsTables(t *testing.T) {
	gormDB, err := Open("sqlite://file:db_reset?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	assert.NoError(t, Migrate(gormDB))
	assert.NoError(t, Reset(gormDB))

	assert.False(t, gormDB.Migrator().HasTable(&model.User{}))
	assert.False(t, gormDB.Migrator().HasTable(&model.HealthCheck{}))
}
