package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes events for observer delivery.
// Persistent events are stored in the events table then broadcast via NOTIFY.
// Transient events (agent activity) are broadcast via NOTIFY only.
//
// Each public method accepts a specific typed payload struct — see
// payloads.go. Payloads are marshaled to JSON and routed to the project's
// channel via persistAndNotify or notifyOnly.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Typed public methods ---

// PublishSessionStarted persists and broadcasts a session.started event.
func (p *EventPublisher) PublishSessionStarted(ctx context.Context, projectID string, payload SessionStartedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SessionStartedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, projectID, ProjectChannel(projectID), payloadJSON)
}

// PublishSessionStatus persists a session status event to the project
// channel and broadcasts a transient copy to the global channel. Both
// publishes are best-effort: if the persistent one fails, the transient one
// is still attempted. Returns the first error encountered (if any).
func (p *EventPublisher) PublishSessionStatus(ctx context.Context, projectID string, payload SessionStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SessionStatusPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, projectID, ProjectChannel(projectID), payloadJSON); err != nil {
		slog.Warn("Failed to publish session status to project channel",
			"project_id", projectID, "status", payload.Status, "error", err)
		firstErr = err
	}

	// Global mirror for dashboards following every project (transient).
	if err := p.notifyOnly(ctx, GlobalChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish session status to global channel",
			"project_id", projectID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// PublishTaskStatus persists and broadcasts a task.status event.
func (p *EventPublisher) PublishTaskStatus(ctx context.Context, projectID string, payload TaskStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TaskStatusPayload: %w", err)
	}
	return p.persistAndNotify(ctx, projectID, ProjectChannel(projectID), payloadJSON)
}

// PublishQualityAttached persists and broadcasts a quality.attached event.
func (p *EventPublisher) PublishQualityAttached(ctx context.Context, projectID string, payload QualityAttachedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal QualityAttachedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, projectID, ProjectChannel(projectID), payloadJSON)
}

// PublishAgentActivity broadcasts an agent.activity transient event (no DB
// persistence). One per tool call — ephemeral, lost on disconnect.
func (p *EventPublisher) PublishAgentActivity(ctx context.Context, projectID string, payload AgentActivityPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal AgentActivityPayload: %w", err)
	}
	return p.notifyOnly(ctx, ProjectChannel(projectID), payloadJSON)
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and
// broadcasts via NOTIFY in a single transaction (pg_notify is transactional,
// held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, projectID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (project_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		projectID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build the NOTIFY payload with db_event_id for catch-up tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// pg_notify within the same transaction — held until COMMIT.
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// Commit — INSERT is persisted and NOTIFY fires atomically.
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the observer needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		ProjectID string `json:"project_id"`
		SessionID string `json:"session_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":       routing.Type,
		"project_id": routing.ProjectID,
		"truncated":  true,
	}
	if routing.SessionID != "" {
		truncated["session_id"] = routing.SessionID
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
