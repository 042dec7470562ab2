package events

import (
	"time"

	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/ent/task"
)

// BasePayload carries the fields every event shares. Type routes the event
// on the consumer side; Timestamp is RFC3339Nano.
type BasePayload struct {
	Type      string `json:"type"`
	ProjectID string `json:"project_id"`
	SessionID string `json:"session_id,omitempty"`
	Timestamp string `json:"timestamp"`
}

// NewBase stamps a BasePayload with the current time.
func NewBase(eventType, projectID string) BasePayload {
	return BasePayload{
		Type:      eventType,
		ProjectID: projectID,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// SessionStartedPayload is the payload for session.started events.
// Published right after the session row is created.
type SessionStartedPayload struct {
	BasePayload
	SessionNumber int          `json:"session_number"`
	Kind          session.Kind `json:"kind"`
	Model         string       `json:"model"`
}

// SessionStatusPayload is the payload for session.status events.
// Published when a session reaches a terminal status.
type SessionStatusPayload struct {
	BasePayload
	SessionNumber int            `json:"session_number"`
	Status        session.Status `json:"status"`
	FailureReason string         `json:"failure_reason,omitempty"`
}

// TaskStatusPayload is the payload for task.status events. Published on
// every task transition the bridge performs (start, done, re-open).
type TaskStatusPayload struct {
	BasePayload
	EpicID string      `json:"epic_id"`
	TaskID string      `json:"task_id"`
	Status task.Status `json:"status"`
}

// QualityAttachedPayload is the payload for quality.attached events.
// Published after a quick or deep check lands on a finalized session.
type QualityAttachedPayload struct {
	BasePayload
	CheckType string `json:"check_type"`
	Rating    int    `json:"rating"`
}

// AgentActivityPayload is the payload for agent.activity transient events.
// One per tool call — high frequency, ephemeral.
type AgentActivityPayload struct {
	BasePayload
	ToolName     string `json:"tool_name"`
	ToolUseCount int    `json:"tool_use_count"`
}
