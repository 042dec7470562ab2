// Package events provides live event delivery to in-process observers via
// PostgreSQL NOTIFY/LISTEN, with an events-table catch-up store.
//
// Two delivery patterns exist. Clients tell them apart by whether the
// payload carries a db_event_id.
//
// Pattern 1 — PERSISTENT (stored in DB, then NOTIFY):
//
//	session.started, session.status, task.status, quality.attached
//
//	The row is inserted and pg_notify fires in one transaction, so a
//	notification implies the row is durably visible. The NOTIFY payload
//	carries db_event_id; subscribers that reconnect ask for everything
//	after the last id they saw and miss nothing.
//
// Pattern 2 — TRANSIENT (NOTIFY only, never persisted):
//
//	agent.activity
//
//	High-frequency tool-by-tool progress. Lost on disconnect by design;
//	the sessionlog artifact is the durable record of agent activity.
//
// Delivery to a live subscriber is at-least-once: an event published in
// the window between LISTEN starting and the catch-up query running is
// delivered twice. Consumers deduplicate on db_event_id.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Session lifecycle.
	EventTypeSessionStarted = "session.started"
	EventTypeSessionStatus  = "session.status"

	// Roadmap progress. One event type for every task status transition.
	EventTypeTaskStatus = "task.status"

	// Quality check attached to a finalized session.
	EventTypeQualityAttached = "quality.attached"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Per-tool-call progress while an agent session runs.
	EventTypeAgentActivity = "agent.activity"
)

// GlobalChannel carries transient session.status mirrors for every project.
// A dashboard listing all projects subscribes here instead of one channel
// per project.
const GlobalChannel = "projects"

// ProjectChannel returns the channel name for one project's events.
// Format: "project:{project_id}"
func ProjectChannel(projectID string) string {
	return "project:" + projectID
}
