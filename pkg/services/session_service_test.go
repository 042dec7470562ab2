package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/pkg/models"
)

func TestSessionService_CreateSession(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	proj := createTestProject(t, svc, "sessions")

	t.Run("session zero is the initializer", func(t *testing.T) {
		_, err := svc.sessions.CreateSession(ctx, proj.ID, session.KindCoding, "claude-sonnet-4-5-20250929", "coding.v1")
		assertKind(t, err, KindPrecondition)

		sess, err := svc.sessions.CreateSession(ctx, proj.ID, session.KindInitializer, "claude-opus-4-5-20251101", "initializer.v1")
		require.NoError(t, err)
		assert.Equal(t, 0, sess.SessionNumber)
		assert.Equal(t, session.StatusRunning, sess.Status)
		assert.Equal(t, "initializer.v1", sess.PromptVersion)
		require.NotNil(t, sess.LastActiveAt)
	})

	t.Run("second running session is rejected", func(t *testing.T) {
		_, err := svc.sessions.CreateSession(ctx, proj.ID, session.KindCoding, "claude-sonnet-4-5-20250929", "")
		assertKind(t, err, KindPrecondition)
	})

	t.Run("numbers are dense and monotone", func(t *testing.T) {
		open, err := svc.sessions.ListOpenSessions(ctx, proj.ID)
		require.NoError(t, err)
		require.Len(t, open, 1)
		_, err = svc.sessions.FinalizeSession(ctx, open[0].ID, session.StatusCompleted, models.SessionCounters{}, nil, "")
		require.NoError(t, err)

		for want := 1; want <= 3; want++ {
			sess, err := svc.sessions.CreateSession(ctx, proj.ID, session.KindCoding, "claude-sonnet-4-5-20250929", "coding.v1")
			require.NoError(t, err)
			assert.Equal(t, want, sess.SessionNumber)
			_, err = svc.sessions.FinalizeSession(ctx, sess.ID, session.StatusCompleted, models.SessionCounters{}, nil, "")
			require.NoError(t, err)
		}
	})

	t.Run("initializer never runs twice", func(t *testing.T) {
		_, err := svc.sessions.CreateSession(ctx, proj.ID, session.KindInitializer, "claude-opus-4-5-20251101", "")
		assertKind(t, err, KindPrecondition)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.sessions.CreateSession(ctx, proj.ID, session.Kind("weird"), "m", "")
		assertKind(t, err, KindPrecondition)

		_, err = svc.sessions.CreateSession(ctx, proj.ID, session.KindCoding, "", "")
		assertKind(t, err, KindPrecondition)

		_, err = svc.sessions.CreateSession(ctx, "no-such-project", session.KindInitializer, "m", "")
		assertKind(t, err, KindNotFound)
	})
}

func TestSessionService_FinalizeSession(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	proj := createTestProject(t, svc, "finalize")

	sess, err := svc.sessions.CreateSession(ctx, proj.ID, session.KindInitializer, "claude-opus-4-5-20251101", "")
	require.NoError(t, err)

	counters := models.SessionCounters{
		ToolUses: 42,
		Errors:   3,
		Tokens:   models.TokenUsage{Input: 1000, Output: 2000, CacheCreation: 50, CacheRead: 9000},
	}
	metrics := map[string]interface{}{
		models.MetricDurationSeconds: 84.2,
		models.MetricWrapUpRequested: false,
	}

	final, err := svc.sessions.FinalizeSession(ctx, sess.ID, session.StatusCompleted, counters, metrics, "")
	require.NoError(t, err)
	assert.Equal(t, session.StatusCompleted, final.Status)
	assert.Equal(t, 42, final.ToolUseCount)
	assert.Equal(t, 3, final.ErrorCount)
	assert.Equal(t, int64(9000), final.TokensCacheRead)
	require.NotNil(t, final.EndedAt)
	assert.Equal(t, 84.2, final.Metrics[models.MetricDurationSeconds])

	t.Run("terminal sessions are immutable", func(t *testing.T) {
		_, err := svc.sessions.FinalizeSession(ctx, sess.ID, session.StatusFailed, models.SessionCounters{}, nil, "late failure")
		assertKind(t, err, KindPrecondition)

		// The original verdict stands.
		got, err := svc.sessions.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, session.StatusCompleted, got.Status)
		assert.Equal(t, 42, got.ToolUseCount)
	})

	t.Run("requires a terminal status", func(t *testing.T) {
		other, err := svc.sessions.CreateSession(ctx, proj.ID, session.KindCoding, "m", "")
		require.NoError(t, err)
		_, err = svc.sessions.FinalizeSession(ctx, other.ID, session.StatusRunning, models.SessionCounters{}, nil, "")
		assertKind(t, err, KindPrecondition)

		_, err = svc.sessions.FinalizeSession(ctx, other.ID, session.StatusFailed, models.SessionCounters{}, nil, "agent transport dropped")
		require.NoError(t, err)
		got, err := svc.sessions.GetSession(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, "agent transport dropped", *got.FailureReason)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := svc.sessions.FinalizeSession(ctx, "missing", session.StatusCompleted, models.SessionCounters{}, nil, "")
		assertKind(t, err, KindNotFound)
	})
}

func TestSessionService_TouchAndStale(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	proj := createTestProject(t, svc, "heartbeat")

	sess, err := svc.sessions.CreateSession(ctx, proj.ID, session.KindInitializer, "m", "")
	require.NoError(t, err)

	t.Run("touch refreshes the heartbeat", func(t *testing.T) {
		before, err := svc.sessions.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		time.Sleep(20 * time.Millisecond)
		require.NoError(t, svc.sessions.Touch(ctx, sess.ID))
		after, err := svc.sessions.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.True(t, after.LastActiveAt.After(*before.LastActiveAt))
	})

	t.Run("touch after finalize is a no-op", func(t *testing.T) {
		_, err := svc.sessions.FinalizeSession(ctx, sess.ID, session.StatusCompleted, models.SessionCounters{}, nil, "")
		require.NoError(t, err)
		require.NoError(t, svc.sessions.Touch(ctx, sess.ID))
	})

	t.Run("stale sessions are cancelled per kind threshold", func(t *testing.T) {
		stale, err := svc.sessions.CreateSession(ctx, proj.ID, session.KindCoding, "m", "")
		require.NoError(t, err)

		// Backdate the heartbeat past the coding threshold.
		_, err = svc.client.Session.UpdateOneID(stale.ID).
			SetLastActiveAt(time.Now().Add(-15 * time.Minute)).
			Save(ctx)
		require.NoError(t, err)

		count, err := svc.sessions.CleanupStaleSessions(ctx, models.StaleThresholds{
			Initializer: 30 * time.Minute,
			Coding:      10 * time.Minute,
			Review:      5 * time.Minute,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		got, err := svc.sessions.GetSession(ctx, stale.ID)
		require.NoError(t, err)
		assert.Equal(t, session.StatusCancelled, got.Status)
		require.NotNil(t, got.FailureReason)
		assert.Contains(t, *got.FailureReason, "stale")

		// A fresh heartbeat within threshold survives the sweep.
		fresh, err := svc.sessions.CreateSession(ctx, proj.ID, session.KindCoding, "m", "")
		require.NoError(t, err)
		count, err = svc.sessions.CleanupStaleSessions(ctx, models.StaleThresholds{Coding: 10 * time.Minute})
		require.NoError(t, err)
		assert.Zero(t, count)
		got, err = svc.sessions.GetSession(ctx, fresh.ID)
		require.NoError(t, err)
		assert.Equal(t, session.StatusRunning, got.Status)
	})
}

func TestSessionService_ReconcileStartup(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	projA := createTestProject(t, svc, "reconcile-a")
	projB := createTestProject(t, svc, "reconcile-b")

	sessA, err := svc.sessions.CreateSession(ctx, projA.ID, session.KindInitializer, "m", "")
	require.NoError(t, err)
	sessB, err := svc.sessions.CreateSession(ctx, projB.ID, session.KindInitializer, "m", "")
	require.NoError(t, err)

	count, err := svc.sessions.ReconcileStartup(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	for _, id := range []string{sessA.ID, sessB.ID} {
		got, err := svc.sessions.GetSession(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, session.StatusCancelled, got.Status)
		require.NotNil(t, got.FailureReason)
		assert.Equal(t, "orchestrator restart", *got.FailureReason)
	}

	// Idempotent: nothing left to reconcile.
	count, err = svc.sessions.ReconcileStartup(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
