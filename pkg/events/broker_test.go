package events

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/ent"
)

// mockCatchupQuerier returns canned catch-up events.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) GetCatchupEvents(_ context.Context, _ string, sinceID, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []CatchupEvent
	for _, evt := range m.events {
		if evt.ID > sinceID {
			out = append(out, evt)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// recvTimeout reads one payload from a subscription or fails the test.
func recvTimeout(t *testing.T, sub *Subscription) map[string]interface{} {
	t.Helper()
	select {
	case payload, ok := <-sub.Events():
		require.True(t, ok, "subscription closed unexpectedly")
		var msg map[string]interface{}
		require.NoError(t, json.Unmarshal(payload, &msg))
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestBroker_BroadcastFanOut(t *testing.T) {
	broker := NewBroker(nil)
	ctx := context.Background()

	sub1, err := broker.Subscribe(ctx, "project:a", 0)
	require.NoError(t, err)
	defer sub1.Close()
	sub2, err := broker.Subscribe(ctx, "project:a", 0)
	require.NoError(t, err)
	defer sub2.Close()
	other, err := broker.Subscribe(ctx, "project:b", 0)
	require.NoError(t, err)
	defer other.Close()

	broker.Broadcast("project:a", []byte(`{"type":"task.status","task_id":"t1"}`))

	for _, sub := range []*Subscription{sub1, sub2} {
		msg := recvTimeout(t, sub)
		assert.Equal(t, "task.status", msg["type"])
	}

	select {
	case payload := <-other.Events():
		t.Fatalf("subscriber on another channel received %s", payload)
	default:
	}
}

func TestBroker_CloseStopsDelivery(t *testing.T) {
	broker := NewBroker(nil)
	sub, err := broker.Subscribe(context.Background(), "project:a", 0)
	require.NoError(t, err)
	require.Equal(t, 1, broker.subscriberCount("project:a"))

	sub.Close()
	assert.Equal(t, 0, broker.subscriberCount("project:a"))

	_, ok := <-sub.Events()
	assert.False(t, ok, "channel is closed after Close")

	// Closing twice is fine; broadcasting to the dead channel is a no-op.
	sub.Close()
	broker.Broadcast("project:a", []byte(`{}`))
}

func TestBroker_SlowSubscriberLosesEvents(t *testing.T) {
	broker := NewBroker(nil)
	sub, err := broker.Subscribe(context.Background(), "project:a", 0)
	require.NoError(t, err)
	defer sub.Close()

	// Overrun the buffer without draining. The overflow must not block.
	for i := 0; i < subscriberBuffer+50; i++ {
		broker.Broadcast("project:a", []byte(fmt.Sprintf(`{"seq":%d}`, i)))
	}

	received := 0
	for {
		select {
		case <-sub.Events():
			received++
			continue
		default:
		}
		break
	}
	assert.Equal(t, subscriberBuffer, received, "buffer holds the first events, the rest drop")
}

func TestBroker_CatchupDelivery(t *testing.T) {
	querier := &mockCatchupQuerier{
		events: []CatchupEvent{
			{ID: 1, Payload: map[string]interface{}{"type": "session.started", "seq": float64(1)}},
			{ID: 2, Payload: map[string]interface{}{"type": "task.status", "seq": float64(2)}},
			{ID: 3, Payload: map[string]interface{}{"type": "session.status", "seq": float64(3)}},
		},
	}
	broker := NewBroker(querier)

	t.Run("from zero delivers everything with db_event_id", func(t *testing.T) {
		sub, err := broker.Subscribe(context.Background(), "project:a", 0)
		require.NoError(t, err)
		defer sub.Close()

		for i := 1; i <= 3; i++ {
			msg := recvTimeout(t, sub)
			assert.Equal(t, float64(i), msg["seq"])
			assert.Equal(t, float64(i), msg["db_event_id"], "catch-up injects the row id")
		}
	})

	t.Run("resumes after the last seen id", func(t *testing.T) {
		sub, err := broker.Subscribe(context.Background(), "project:a", 2)
		require.NoError(t, err)
		defer sub.Close()

		msg := recvTimeout(t, sub)
		assert.Equal(t, float64(3), msg["seq"])

		select {
		case payload := <-sub.Events():
			t.Fatalf("unexpected extra event %s", payload)
		default:
		}
	})
}

func TestBroker_CatchupOverflow(t *testing.T) {
	var evts []CatchupEvent
	for i := 1; i <= catchupLimit+10; i++ {
		evts = append(evts, CatchupEvent{ID: i, Payload: map[string]interface{}{"seq": float64(i)}})
	}
	broker := NewBroker(&mockCatchupQuerier{events: evts})

	sub, err := broker.Subscribe(context.Background(), "project:a", 0)
	require.NoError(t, err)
	defer sub.Close()

	for i := 1; i <= catchupLimit; i++ {
		msg := recvTimeout(t, sub)
		require.Equal(t, float64(i), msg["seq"])
	}

	overflow := recvTimeout(t, sub)
	assert.Equal(t, "catchup.overflow", overflow["type"])
	assert.Equal(t, true, overflow["has_more"])
}

func TestBroker_CatchupFailureKeepsLiveSubscription(t *testing.T) {
	broker := NewBroker(&mockCatchupQuerier{err: fmt.Errorf("database connection lost")})

	sub, err := broker.Subscribe(context.Background(), "project:a", 0)
	require.NoError(t, err, "catch-up failure is logged, not fatal")
	defer sub.Close()

	broker.Broadcast("project:a", []byte(`{"type":"task.status"}`))
	msg := recvTimeout(t, sub)
	assert.Equal(t, "task.status", msg["type"])
}

func TestEventServiceAdapter_MapsRows(t *testing.T) {
	adapter := NewEventServiceAdapter(&stubEventQuerier{
		events: []*ent.Event{
			{ID: 10, Payload: map[string]interface{}{"type": "session.started", "seq": float64(1)}},
			{ID: 20, Payload: map[string]interface{}{"type": "task.status", "seq": float64(2)}},
		},
	})

	events, err := adapter.GetCatchupEvents(context.Background(), "project:test", 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 10, events[0].ID)
	assert.Equal(t, "session.started", events[0].Payload["type"])
	assert.Equal(t, 20, events[1].ID)
	assert.Equal(t, float64(2), events[1].Payload["seq"])
}

func TestEventServiceAdapter_PropagatesError(t *testing.T) {
	adapter := NewEventServiceAdapter(&stubEventQuerier{err: fmt.Errorf("database connection lost")})
	events, err := adapter.GetCatchupEvents(context.Background(), "project:test", 0, 10)
	assert.Error(t, err)
	assert.Nil(t, events)
}

// stubEventQuerier implements eventQuerier for adapter tests.
type stubEventQuerier struct {
	events []*ent.Event
	err    error
}

func (s *stubEventQuerier) GetEventsSince(_ context.Context, _ string, _ int, limit int) ([]*ent.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit > 0 && len(s.events) > limit {
		return s.events[:limit], nil
	}
	return s.events, nil
}

func TestNewNotifyListener(t *testing.T) {
	broker := NewBroker(nil)
	listener := NewNotifyListener("host=localhost dbname=test", broker)

	assert.NotNil(t, listener)
	assert.Equal(t, "host=localhost dbname=test", listener.connString)
	assert.NotNil(t, listener.channels)
	assert.Equal(t, broker, listener.broker)
}

func TestNotifyListener_ChannelTrackingWithoutConnection(t *testing.T) {
	// Without Start() the listener has no connection; Subscribe must fail
	// cleanly and Unsubscribe must be a no-op.
	listener := NewNotifyListener("host=localhost dbname=test", NewBroker(nil))

	t.Run("subscribe without connection returns error", func(t *testing.T) {
		err := listener.Subscribe(t.Context(), "test-channel")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not established")
	})

	t.Run("unsubscribe without connection is a no-op", func(t *testing.T) {
		err := listener.Unsubscribe(t.Context(), "test-channel")
		assert.NoError(t, err)
	})
}
