package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/ent/task"
	"github.com/ratchet-works/ratchet/pkg/database"
	"github.com/ratchet-works/ratchet/pkg/services"
	testdb "github.com/ratchet-works/ratchet/test/database"
	"github.com/ratchet-works/ratchet/test/util"
)

// observerTestEnv wires publisher, listener and broker against a real
// PostgreSQL database (testcontainers locally, service container in CI).
type observerTestEnv struct {
	dbClient     *database.Client
	publisher    *EventPublisher
	eventService *services.EventService
	broker       *Broker
	listener     *NotifyListener
	projectID    string
	channel      string // project:<projectID>
}

func setupObserverTest(t *testing.T) *observerTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	projectID := uuid.New().String()

	publisher := NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	broker := NewBroker(NewEventServiceAdapter(eventService))

	// The listener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	listener := NewNotifyListener(util.GetBaseConnectionString(t), broker)
	require.NoError(t, listener.Start(ctx))
	broker.SetListener(listener)
	t.Cleanup(func() { listener.Stop(context.Background()) })

	return &observerTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		broker:       broker,
		listener:     listener,
		projectID:    projectID,
		channel:      ProjectChannel(projectID),
	}
}

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupObserverTest(t)
	ctx := context.Background()

	err := env.publisher.PublishSessionStarted(ctx, env.projectID, SessionStartedPayload{
		BasePayload:   NewBase(EventTypeSessionStarted, env.projectID),
		SessionNumber: 0,
		Kind:          session.KindInitializer,
		Model:         "claude-opus-4-5-20251101",
	})
	require.NoError(t, err)

	err = env.publisher.PublishTaskStatus(ctx, env.projectID, TaskStatusPayload{
		BasePayload: NewBase(EventTypeTaskStatus, env.projectID),
		EpicID:      "epic-1",
		TaskID:      "task-1",
		Status:      task.StatusInProgress,
	})
	require.NoError(t, err)

	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, env.projectID, events[0].ProjectID)
	assert.Equal(t, env.channel, events[0].Channel)
	assert.Equal(t, EventTypeSessionStarted, events[0].Payload["type"])
	assert.Equal(t, "claude-opus-4-5-20251101", events[0].Payload["model"])

	assert.Equal(t, EventTypeTaskStatus, events[1].Payload["type"])
	assert.Equal(t, "in_progress", events[1].Payload["status"])

	assert.Greater(t, events[1].ID, events[0].ID, "ids increment in publish order")
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupObserverTest(t)
	ctx := context.Background()

	err := env.publisher.PublishAgentActivity(ctx, env.projectID, AgentActivityPayload{
		BasePayload:  NewBase(EventTypeAgentActivity, env.projectID),
		ToolName:     "exec",
		ToolUseCount: 12,
	})
	require.NoError(t, err)

	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events never reach the store")
}

func TestIntegration_EndToEndDelivery(t *testing.T) {
	env := setupObserverTest(t)
	ctx := context.Background()

	sub, err := env.broker.Subscribe(ctx, env.channel, 0)
	require.NoError(t, err)
	defer sub.Close()
	require.True(t, env.listener.isListening(env.channel), "Subscribe returns with LISTEN active")

	err = env.publisher.PublishQualityAttached(ctx, env.projectID, QualityAttachedPayload{
		BasePayload: NewBase(EventTypeQualityAttached, env.projectID),
		CheckType:   "quick",
		Rating:      7,
	})
	require.NoError(t, err)

	// pg_notify → listener → broker → subscription.
	msg := recvTimeout(t, sub)
	assert.Equal(t, EventTypeQualityAttached, msg["type"])
	assert.Equal(t, float64(7), msg["rating"])
	assert.Equal(t, env.projectID, msg["project_id"])
	assert.NotNil(t, msg["db_event_id"], "persistent events carry the row id")
}

func TestIntegration_TransientDelivery(t *testing.T) {
	env := setupObserverTest(t)
	ctx := context.Background()

	sub, err := env.broker.Subscribe(ctx, env.channel, 0)
	require.NoError(t, err)
	defer sub.Close()

	err = env.publisher.PublishAgentActivity(ctx, env.projectID, AgentActivityPayload{
		BasePayload:  NewBase(EventTypeAgentActivity, env.projectID),
		ToolName:     "mcp__playwright__browser_navigate",
		ToolUseCount: 3,
	})
	require.NoError(t, err)

	msg := recvTimeout(t, sub)
	assert.Equal(t, EventTypeAgentActivity, msg["type"])
	assert.Equal(t, "mcp__playwright__browser_navigate", msg["tool_name"])
	assert.Nil(t, msg["db_event_id"], "transient events have no row behind them")
}

func TestIntegration_CatchupFromStore(t *testing.T) {
	env := setupObserverTest(t)
	ctx := context.Background()

	// Pre-populate the store before anyone subscribes.
	for i := 1; i <= 3; i++ {
		err := env.publisher.PublishTaskStatus(ctx, env.projectID, TaskStatusPayload{
			BasePayload: NewBase(EventTypeTaskStatus, env.projectID),
			TaskID:      uuid.New().String(),
			EpicID:      "epic-1",
			Status:      task.StatusDone,
		})
		require.NoError(t, err)
	}

	all, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// A late subscriber from zero gets everything it missed.
	sub, err := env.broker.Subscribe(ctx, env.channel, 0)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		msg := recvTimeout(t, sub)
		assert.Equal(t, EventTypeTaskStatus, msg["type"])
		assert.Equal(t, float64(all[i].ID), msg["db_event_id"])
	}
	sub.Close()

	// Resuming from the first id replays only the remainder.
	resumed, err := env.broker.Subscribe(ctx, env.channel, all[0].ID)
	require.NoError(t, err)
	defer resumed.Close()
	for i := 1; i < 3; i++ {
		msg := recvTimeout(t, resumed)
		assert.Equal(t, float64(all[i].ID), msg["db_event_id"])
	}
}

// TestIntegration_IndependentObserverPools reproduces the watch topology:
// the publisher and the observer run on separate connection pools with
// separate broker/listener stacks, sharing nothing but the database. The
// observer replays history it missed and then follows live notifications.
func TestIntegration_IndependentObserverPools(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	ctx := context.Background()

	projectID := uuid.New().String()
	channel := ProjectChannel(projectID)

	// Publisher side: its own pool, no broker at all.
	pubClient := shared.NewClient(t)
	publisher := NewEventPublisher(pubClient.DB())

	// Two persistent events land before the observer exists.
	for _, status := range []task.Status{task.StatusInProgress, task.StatusDone} {
		err := publisher.PublishTaskStatus(ctx, projectID, TaskStatusPayload{
			BasePayload: NewBase(EventTypeTaskStatus, projectID),
			EpicID:      "epic-1",
			TaskID:      "task-1",
			Status:      status,
		})
		require.NoError(t, err)
	}

	// Observer side: independent pool, own broker, own listener.
	obsClient := shared.NewClient(t)
	obsBroker := NewBroker(NewEventServiceAdapter(services.NewEventService(obsClient.Client)))
	obsListener := NewNotifyListener(shared.ConnString(), obsBroker)
	require.NoError(t, obsListener.Start(ctx))
	obsBroker.SetListener(obsListener)
	t.Cleanup(func() { obsListener.Stop(context.Background()) })

	sub, err := obsBroker.Subscribe(ctx, channel, 0)
	require.NoError(t, err)
	defer sub.Close()

	first := recvTimeout(t, sub)
	second := recvTimeout(t, sub)
	assert.Equal(t, "in_progress", first["status"])
	assert.Equal(t, "done", second["status"])
	assert.Greater(t, second["db_event_id"], first["db_event_id"])

	// A live publish crosses pools via pg_notify alone.
	err = publisher.PublishSessionStatus(ctx, projectID, SessionStatusPayload{
		BasePayload:   NewBase(EventTypeSessionStatus, projectID),
		SessionNumber: 2,
		Status:        session.StatusCompleted,
	})
	require.NoError(t, err)

	live := recvTimeout(t, sub)
	assert.Equal(t, EventTypeSessionStatus, live["type"])
	assert.Equal(t, "completed", live["status"])
	assert.Greater(t, live["db_event_id"], second["db_event_id"])
}

func TestIntegration_GlobalMirror(t *testing.T) {
	env := setupObserverTest(t)
	ctx := context.Background()

	// The global channel is shared by every test run against this database,
	// so filter for our project instead of asserting on the first message.
	sub, err := env.broker.Subscribe(ctx, GlobalChannel, 0)
	require.NoError(t, err)
	defer sub.Close()

	err = env.publisher.PublishSessionStatus(ctx, env.projectID, SessionStatusPayload{
		BasePayload:   NewBase(EventTypeSessionStatus, env.projectID),
		SessionNumber: 4,
		Status:        session.StatusCompleted,
	})
	require.NoError(t, err)

	var msg map[string]interface{}
	deadline := time.After(5 * time.Second)
	for msg == nil {
		select {
		case payload, ok := <-sub.Events():
			require.True(t, ok)
			var candidate map[string]interface{}
			require.NoError(t, json.Unmarshal(payload, &candidate))
			if candidate["project_id"] == env.projectID {
				msg = candidate
			}
		case <-deadline:
			t.Fatal("global mirror never arrived")
		}
	}
	assert.Equal(t, EventTypeSessionStatus, msg["type"])
	assert.Equal(t, "completed", msg["status"])

	// The persistent copy lives on the project channel only.
	projectEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, projectEvents, 1)
	globalEvents, err := env.eventService.GetEventsSince(ctx, GlobalChannel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, globalEvents)
}
