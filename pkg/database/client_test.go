package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/pkg/models"
)

// newTestClient spins up a PostgreSQL testcontainer and connects through
// NewClient, so the embedded migrations (including the partial unique
// indexes and read views) are exercised exactly as in production.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	client, err := NewClient(ctx, Config{
		Host:         host,
		Port:         port.Int(),
		User:         "test",
		Password:     "test",
		Database:     "test",
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestReadViews(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	project, err := client.Project.Create().
		SetID("proj-1").
		SetName("demo").
		SetWorkspace("/tmp/demo").
		SetSandboxPolicy(models.SandboxPolicy{Kind: models.SandboxNone}).
		Save(ctx)
	require.NoError(t, err)

	epic1, err := client.Epic.Create().
		SetID("epic-1").SetProjectID(project.ID).SetOrdinal(1).SetTitle("Foundation").
		Save(ctx)
	require.NoError(t, err)
	epic2, err := client.Epic.Create().
		SetID("epic-2").SetProjectID(project.ID).SetOrdinal(2).SetTitle("Features").
		Save(ctx)
	require.NoError(t, err)

	// epic1: one done task, one pending. epic2: one pending.
	_, err = client.Task.Create().
		SetID("task-1").SetEpicID(epic1.ID).SetOrdinal(1).SetTitle("Scaffold").
		SetStatus("done").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Task.Create().
		SetID("task-2").SetEpicID(epic1.ID).SetOrdinal(2).SetTitle("Schema").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Task.Create().
		SetID("task-3").SetEpicID(epic2.ID).SetOrdinal(1).SetTitle("Login page").
		Save(ctx)
	require.NoError(t, err)

	// Next task must be the lowest-ordinal non-done task of the
	// lowest-ordinal epic: task-2.
	row := client.DB().QueryRowContext(ctx,
		`SELECT task_id, epic_ordinal, task_ordinal FROM v_next_task WHERE project_id = $1`,
		project.ID)
	var taskID string
	var epicOrdinal, taskOrdinal int64
	require.NoError(t, row.Scan(&taskID, &epicOrdinal, &taskOrdinal))
	assert.Equal(t, "task-2", taskID)
	assert.Equal(t, int64(1), epicOrdinal)
	assert.Equal(t, int64(2), taskOrdinal)

	row = client.DB().QueryRowContext(ctx,
		`SELECT total_epics, total_tasks, completed_tasks, percent FROM v_progress WHERE project_id = $1`,
		project.ID)
	var totalEpics, totalTasks, completedTasks int64
	var percent float64
	require.NoError(t, row.Scan(&totalEpics, &totalTasks, &completedTasks, &percent))
	assert.Equal(t, int64(2), totalEpics)
	assert.Equal(t, int64(3), totalTasks)
	assert.Equal(t, int64(1), completedTasks)
	assert.InDelta(t, 33.3, percent, 0.01)
}

func TestSingleRunningSessionConstraint(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	project, err := client.Project.Create().
		SetID("proj-1").
		SetName("demo").
		SetWorkspace("/tmp/demo").
		SetSandboxPolicy(models.SandboxPolicy{Kind: models.SandboxNone}).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Session.Create().
		SetID("sess-1").SetProjectID(project.ID).SetSessionNumber(1).
		SetKind(session.KindCoding).SetModel("test-model").
		Save(ctx)
	require.NoError(t, err)

	// Second running session for the same project must violate the
	// partial unique index.
	_, err = client.Session.Create().
		SetID("sess-2").SetProjectID(project.ID).SetSessionNumber(2).
		SetKind(session.KindCoding).SetModel("test-model").
		Save(ctx)
	require.Error(t, err)

	// Completing the first frees the slot.
	err = client.Session.UpdateOneID("sess-1").
		SetStatus(session.StatusCompleted).
		SetEndedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	_, err = client.Session.Create().
		SetID("sess-3").SetProjectID(project.ID).SetSessionNumber(2).
		SetKind(session.KindCoding).SetModel("test-model").
		Save(ctx)
	require.NoError(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clearEnv := func() {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
	}

	t.Run("defaults", func(t *testing.T) {
		clearEnv()
		t.Cleanup(clearEnv)

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "ratchet", cfg.User)
		assert.Equal(t, "ratchet", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
	})

	t.Run("custom values", func(t *testing.T) {
		clearEnv()
		t.Cleanup(clearEnv)
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_USER", "admin")
		os.Setenv("DB_PASSWORD", "secret")
		os.Setenv("DB_NAME", "production")
		os.Setenv("DB_SSLMODE", "require")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "admin", cfg.User)
		assert.Equal(t, "secret", cfg.Password)
		assert.Equal(t, "production", cfg.Database)
		assert.Equal(t, "require", cfg.SSLMode)
	})

	t.Run("invalid port", func(t *testing.T) {
		clearEnv()
		t.Cleanup(clearEnv)
		os.Setenv("DB_PORT", "invalid")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		Port:     5432,
		User:     "ratchet",
		Password: "hunter2",
		Database: "ratchet",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=ratchet password=hunter2 dbname=ratchet sslmode=disable",
		cfg.DSN())
}
