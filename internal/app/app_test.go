package app_test

import (
	"context"
	"testing"
	"time"

	"remote-jobs-api/config"
	"remote-jobs-api/internal/app"
	"remote-jobs-api/internal/gate"
	"remote-jobs-api/internal/scheduler"
	"remote-jobs-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig() *config.Config {
	return &config.Config{
		DB:        config.DBConfig{Driver: "sqlite", SQLitePath: ":memory:", Migrate: true},
		Redis:     config.RedisConfig{ApplyGateTTL: time.Hour},
		Auth:      config.AuthConfig{JWTSecret: "test-secret"},
		RateLimit: config.RateLimitConfig{ApplyPerMinute: 10, Burst: 2},
		App:       config.AppConfig{PublicURL: "https://jobs.example"},
	}
}

func TestNew_SQLiteWithMemoryGate(t *testing.T) {
	a, err := app.New(context.Background(), sqliteConfig())
	require.NoError(t, err)
	defer a.Close()

	assert.NotNil(t, a.Store)
	assert.Nil(t, a.RedisClient)
	assert.IsType(t, &gate.MemoryGate{}, a.Gate)
	assert.NotNil(t, a.RelayDoc)
	assert.NotNil(t, a.Mailer)
	assert.NotNil(t, a.ApplicationService)
	assert.Contains(t, a.Ready, "database")
	assert.NotContains(t, a.Ready, "redis")
	assert.NoError(t, a.Ready["database"].Ping(context.Background()))

	// Migrated schema is usable through the services.
	page, err := a.JobService.ListOpenJobs(context.Background(), &dto.ListOpenJobsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
}

func TestNew_UnsupportedDriver(t *testing.T) {
	cfg := sqliteConfig()
	cfg.DB.Driver = "mysql"

	a, err := app.New(context.Background(), cfg)
	assert.Nil(t, a)
	assert.ErrorContains(t, err, `unsupported database driver "mysql"`)
}

func TestHousekeeping_RegistersPruneTasks(t *testing.T) {
	a, err := app.New(context.Background(), sqliteConfig())
	require.NoError(t, err)
	defer a.Close()

	s := scheduler.New()
	require.NoError(t, a.Housekeeping(s))
	// Rate limiters plus the in-memory gate.
	assert.Equal(t, 2, s.Len())
}
