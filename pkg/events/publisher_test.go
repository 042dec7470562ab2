package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/ent/session"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(SessionStartedPayload{
			BasePayload: BasePayload{
				Type:      EventTypeSessionStarted,
				ProjectID: "proj-123",
			},
			SessionNumber: 3,
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeSessionStarted)
		assert.Contains(t, result, "proj-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		long := make([]byte, 8000)
		for i := range long {
			long[i] = 'a'
		}
		payload, _ := json.Marshal(SessionStatusPayload{
			BasePayload: BasePayload{
				Type:      EventTypeSessionStatus,
				ProjectID: "proj-123",
				SessionID: "sess-456",
			},
			Status:        session.StatusFailed,
			FailureReason: string(long),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Less(t, len(result), 8000)

		// Routing fields survive, the oversized body does not.
		assert.Contains(t, result, EventTypeSessionStatus)
		assert.Contains(t, result, "proj-123")
		assert.Contains(t, result, "sess-456")
		assert.NotContains(t, result, "aaaa")
	})

	t.Run("payload without session_id omits it from the envelope", func(t *testing.T) {
		long := make([]byte, 8000)
		for i := range long {
			long[i] = 'x'
		}
		raw, _ := json.Marshal(map[string]string{
			"type":       EventTypeTaskStatus,
			"project_id": "proj-9",
			"title":      string(long),
		})

		result, err := truncateIfNeeded(string(raw))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "session_id")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(QualityAttachedPayload{
			BasePayload: BasePayload{
				Type:      EventTypeQualityAttached,
				ProjectID: "proj-1",
				SessionID: "sess-1",
			},
			CheckType: "quick",
			Rating:    8,
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, `"rating":8`)
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		long := make([]byte, 8000)
		for i := range long {
			long[i] = 'x'
		}
		payload, _ := json.Marshal(SessionStatusPayload{
			BasePayload: BasePayload{
				Type:      EventTypeSessionStatus,
				ProjectID: "proj-789",
				SessionID: "sess-789",
			},
			FailureReason: string(long),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "sess-789")
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestSessionStatusPayload_JSON(t *testing.T) {
	payload := SessionStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeSessionStatus,
			ProjectID: "proj-123",
			SessionID: "sess-123",
			Timestamp: "2026-08-25T12:00:00Z",
		},
		SessionNumber: 7,
		Status:        session.StatusCompleted,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded SessionStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeSessionStatus, decoded.Type)
	assert.Equal(t, "proj-123", decoded.ProjectID)
	assert.Equal(t, "sess-123", decoded.SessionID)
	assert.Equal(t, 7, decoded.SessionNumber)
	assert.Equal(t, session.StatusCompleted, decoded.Status)
	assert.Equal(t, "2026-08-25T12:00:00Z", decoded.Timestamp)

	// failure_reason omitted when empty
	assert.NotContains(t, string(data), "failure_reason")
}

func TestNewBase_StampsTimestamp(t *testing.T) {
	base := NewBase(EventTypeTaskStatus, "proj-1")
	assert.Equal(t, EventTypeTaskStatus, base.Type)
	assert.Equal(t, "proj-1", base.ProjectID)
	assert.NotEmpty(t, base.Timestamp)
	assert.Empty(t, base.SessionID)
}
