package cleanup

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/pkg/config"
	"github.com/ratchet-works/ratchet/pkg/database"
	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/services"
	testdb "github.com/ratchet-works/ratchet/test/database"
)

func setupCleanupServices(t *testing.T) (*database.Client, *services.SessionService, *services.EventService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return client, services.NewSessionService(client.Client, logger), services.NewEventService(client.Client)
}

func createRunningSession(t *testing.T, client *database.Client, sessions *services.SessionService) string {
	t.Helper()
	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	projects := services.NewProjectService(client.Client, logger, t.TempDir())
	proj, err := projects.CreateProject(ctx, models.CreateProjectInput{
		Name:        "retention-" + uuid.New().String()[:8],
		SpecContent: "Build a notes app with folders and full-text search.",
		Policy: &models.SandboxPolicy{
			Kind:                  models.SandboxContainer,
			Image:                 "node:20-slim",
			Memory:                "2g",
			CPUs:                  2.0,
			Network:               "bridge",
			ExecTimeoutSeconds:    120,
			SessionTimeoutSeconds: 1800,
		},
	})
	require.NoError(t, err)

	sess, err := sessions.CreateSession(ctx, proj.ID, session.KindInitializer, "test-model", "init-v1")
	require.NoError(t, err)
	return sess.ID
}

func TestService_CancelsStaleSessions(t *testing.T) {
	client, sessionService, eventService := setupCleanupServices(t)
	ctx := context.Background()

	sessID := createRunningSession(t, client, sessionService)

	err := client.Client.Session.UpdateOneID(sessID).
		SetLastActiveAt(time.Now().Add(-2 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	cfg := &config.RetentionConfig{
		EventTTL:              1 * time.Hour,
		SweepInterval:         1 * time.Hour,
		StaleInitializerAfter: 30 * time.Minute,
		StaleCodingAfter:      10 * time.Minute,
		StaleReviewAfter:      5 * time.Minute,
	}
	svc := NewService(cfg, sessionService, eventService)
	svc.runAll(ctx)

	updated, err := sessionService.GetSession(ctx, sessID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusCancelled, updated.Status)
	require.NotNil(t, updated.FailureReason)
	assert.Contains(t, *updated.FailureReason, "stale")
}

func TestService_PreservesLiveSessions(t *testing.T) {
	client, sessionService, eventService := setupCleanupServices(t)
	ctx := context.Background()

	sessID := createRunningSession(t, client, sessionService)

	err := client.Client.Session.UpdateOneID(sessID).
		SetLastActiveAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	cfg := &config.RetentionConfig{
		EventTTL:              1 * time.Hour,
		SweepInterval:         1 * time.Hour,
		StaleInitializerAfter: 30 * time.Minute,
		StaleCodingAfter:      10 * time.Minute,
		StaleReviewAfter:      5 * time.Minute,
	}
	svc := NewService(cfg, sessionService, eventService)
	svc.runAll(ctx)

	updated, err := sessionService.GetSession(ctx, sessID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusRunning, updated.Status)
}

func TestService_PrunesExpiredEvents(t *testing.T) {
	client, sessionService, eventService := setupCleanupServices(t)
	ctx := context.Background()

	// Event rows carry no foreign key, so a bare project id is enough.
	projectID := uuid.New().String()

	// Expired event (2 hours old).
	_, err := client.Client.Event.Create().
		SetProjectID(projectID).
		SetChannel("test").
		SetPayload(map[string]any{"type": "session.started"}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// Recent event.
	_, err = client.Client.Event.Create().
		SetProjectID(projectID).
		SetChannel("test").
		SetPayload(map[string]any{"type": "session.status"}).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	cfg := &config.RetentionConfig{
		EventTTL:              1 * time.Hour,
		SweepInterval:         1 * time.Hour,
		StaleInitializerAfter: 30 * time.Minute,
		StaleCodingAfter:      10 * time.Minute,
		StaleReviewAfter:      5 * time.Minute,
	}
	svc := NewService(cfg, sessionService, eventService)
	svc.runAll(ctx)

	events, err := eventService.GetEventsSince(ctx, "test", 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1, "expired event should be deleted, recent event preserved")
}
