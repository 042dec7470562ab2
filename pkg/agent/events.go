package agent

import (
	"time"

	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/services"
)

// EventType identifies the kind of event flowing out of a running agent.
// The names match the session log record types so the orchestrator can
// forward events to the log writer without translation.
type EventType string

const (
	EventTypeStart      EventType = "session_start"
	EventTypeText       EventType = "assistant_text"
	EventTypeToolUse    EventType = "tool_use"
	EventTypeToolResult EventType = "tool_result"
	EventTypeError      EventType = "error"
	EventTypeNotice     EventType = "system_notice"
	EventTypeCompaction EventType = "compaction_boundary"
	EventTypeEnd        EventType = "session_end"
)

// Event is one item in the stream produced by Client.Run. The concrete
// types below form a closed set; consumers switch on the dynamic type.
// Errors are delivered as ErrorEvent values on the channel, never as a
// channel of errors. The stream always terminates with exactly one
// EndEvent, after which the channel is closed.
type Event interface {
	eventType() EventType
}

// StartEvent is emitted once when the agent process reports readiness.
type StartEvent struct {
	// AgentSessionID is the agent's own conversation identifier, useful
	// for resuming or debugging against the agent vendor's tooling.
	AgentSessionID string
	Model          string
}

// TextEvent carries one assistant text block.
type TextEvent struct {
	Text string
}

// ToolUseEvent is emitted when the agent requests a tool invocation.
type ToolUseEvent struct {
	// ID correlates the eventual ToolResultEvent with this request.
	ID    string
	Name  string
	Input string // compact JSON of the tool arguments
}

// ToolResultEvent carries the outcome of an earlier ToolUseEvent.
type ToolResultEvent struct {
	ToolUseID string
	// Name is resolved from the pending tool-use table; empty when the
	// agent reports a result for an unknown request id.
	Name     string
	Content  string
	IsError  bool
	Duration time.Duration
}

// ErrorEvent reports a recoverable fault in the agent stream. The run
// continues unless an EndEvent follows.
type ErrorEvent struct {
	Kind    services.ErrorKind
	Message string
}

// NoticeEvent carries agent system messages that do not map to any
// other event type.
type NoticeEvent struct {
	Subtype string
	Content string
}

// CompactionEvent marks a context compaction boundary inside the agent
// conversation. Quality analysis treats tool errors before and after a
// boundary as separate streaks.
type CompactionEvent struct {
	Content string
}

// EndEvent is the terminal event of every run.
type EndEvent struct {
	// Status is one of "completed", "failed" or "cancelled".
	Status   string
	Duration time.Duration
	Tokens   models.TokenUsage
}

// Terminal statuses carried by EndEvent.
const (
	EndCompleted = "completed"
	EndFailed    = "failed"
	EndCancelled = "cancelled"
)

func (StartEvent) eventType() EventType      { return EventTypeStart }
func (TextEvent) eventType() EventType       { return EventTypeText }
func (ToolUseEvent) eventType() EventType    { return EventTypeToolUse }
func (ToolResultEvent) eventType() EventType { return EventTypeToolResult }
func (ErrorEvent) eventType() EventType      { return EventTypeError }
func (NoticeEvent) eventType() EventType     { return EventTypeNotice }
func (CompactionEvent) eventType() EventType { return EventTypeCompaction }
func (EndEvent) eventType() EventType        { return EventTypeEnd }
