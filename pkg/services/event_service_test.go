package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/ent"
)

func insertEvent(t *testing.T, svc *testServices, projectID, channel, eventType string) *ent.Event {
	t.Helper()
	ev, err := svc.client.Event.Create().
		SetProjectID(projectID).
		SetChannel(channel).
		SetPayload(map[string]interface{}{"type": eventType}).
		Save(context.Background())
	require.NoError(t, err)
	return ev
}

func TestEventService_GetEventsSince(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	proj := createTestProject(t, svc, "stream")
	other := createTestProject(t, svc, "other-stream")

	channel := "project:" + proj.ID
	first := insertEvent(t, svc, proj.ID, channel, "session.started")
	second := insertEvent(t, svc, proj.ID, channel, "task.status")
	third := insertEvent(t, svc, proj.ID, channel, "session.status")
	insertEvent(t, svc, other.ID, "project:"+other.ID, "session.started")

	t.Run("returns the whole channel from zero", func(t *testing.T) {
		events, err := svc.events.GetEventsSince(ctx, channel, 0, 0)
		require.NoError(t, err)
		require.Len(t, events, 3, "other channels stay out")
		assert.Equal(t, first.ID, events[0].ID)
		assert.Equal(t, second.ID, events[1].ID)
		assert.Equal(t, third.ID, events[2].ID)
		assert.Equal(t, "session.started", events[0].Payload["type"])
	})

	t.Run("resumes after the last seen id", func(t *testing.T) {
		events, err := svc.events.GetEventsSince(ctx, channel, second.ID, 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, third.ID, events[0].ID)
	})

	t.Run("limit caps the page", func(t *testing.T) {
		events, err := svc.events.GetEventsSince(ctx, channel, 0, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, first.ID, events[0].ID, "oldest first even when capped")
	})

	t.Run("caught up means empty", func(t *testing.T) {
		events, err := svc.events.GetEventsSince(ctx, channel, third.ID, 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventService_Cleanup(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	proj := createTestProject(t, svc, "prune")
	other := createTestProject(t, svc, "keep")

	insertEvent(t, svc, proj.ID, "project:"+proj.ID, "a")
	insertEvent(t, svc, proj.ID, "project:"+proj.ID, "b")
	kept := insertEvent(t, svc, other.ID, "project:"+other.ID, "c")

	t.Run("project cleanup only touches its rows", func(t *testing.T) {
		n, err := svc.events.CleanupProjectEvents(ctx, proj.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		left, err := svc.client.Event.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, left, 1)
		assert.Equal(t, kept.ID, left[0].ID)
	})

	t.Run("expired cleanup honors the ttl cutoff", func(t *testing.T) {
		// created_at is immutable, so the stale row is backdated at insert.
		_, err := svc.client.Event.Create().
			SetProjectID(other.ID).
			SetChannel("project:" + other.ID).
			SetPayload(map[string]interface{}{"type": "old"}).
			SetCreatedAt(time.Now().Add(-2 * time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		n, err := svc.events.CleanupExpiredEvents(ctx, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 1, n, "only the backdated row expires")

		count, err := svc.client.Event.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("non-positive ttl is an error", func(t *testing.T) {
		_, err := svc.events.CleanupExpiredEvents(ctx, 0)
		require.Error(t, err)
	})
}
