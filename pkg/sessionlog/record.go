// Package sessionlog writes the per-session append-only log artifacts:
// a structured JSONL stream and a human-readable narrative. It also keeps
// running counters consumed live by the orchestrator and post hoc by the
// quality analyzer.
package sessionlog

import (
	"strings"
	"time"

	"github.com/ratchet-works/ratchet/pkg/models"
)

// Event kinds appearing in the structured stream.
const (
	EventSessionStart       = "session_start"
	EventSessionEnd         = "session_end"
	EventAssistantText      = "assistant_text"
	EventToolUse            = "tool_use"
	EventToolResult         = "tool_result"
	EventError              = "error"
	EventSystemNotice       = "system_notice"
	EventCompactionBoundary = "compaction_boundary"
)

// SubtypeCompactBoundary marks context-compaction notices.
const SubtypeCompactBoundary = "compact_boundary"

// Record is one self-describing line of the structured stream. Only the
// fields relevant to the event kind are populated.
type Record struct {
	TS        time.Time `json:"ts"`
	Event     string    `json:"event"`
	SessionID string    `json:"session_id"`

	// session_start
	Kind  string `json:"kind,omitempty"`
	Model string `json:"model,omitempty"`

	// assistant_text, tool_use, tool_result, error, system_notice
	ToolName   string `json:"tool_name,omitempty"`
	Content    string `json:"content,omitempty"`
	IsError    bool   `json:"is_error,omitempty"`
	DurationMS int64  `json:"duration_ms,omitempty"`
	ErrorKind  string `json:"kind_of_error,omitempty"`
	Subtype    string `json:"subtype,omitempty"`

	// session_end footer
	Status          string             `json:"status,omitempty"`
	DurationSeconds float64            `json:"duration_seconds,omitempty"`
	ToolUseCount    int                `json:"tool_use_count,omitempty"`
	ErrorCount      int                `json:"error_count,omitempty"`
	Tokens          *models.TokenUsage `json:"tokens,omitempty"`
}

// Snapshot is a point-in-time copy of the writer's running counters.
type Snapshot struct {
	ToolUses          int
	Errors            int
	ConsecutiveErrors int
	PerTool           map[string]int
	BrowserCalls      int
	ScreenshotCalls   int
	WrapUpRequested   bool
}

// IsBrowserTool reports whether a tool name denotes browser automation.
func IsBrowserTool(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "playwright") || strings.HasPrefix(lower, "browser_")
}

// IsScreenshotTool reports whether a tool name denotes a screenshot capture.
func IsScreenshotTool(name string) bool {
	return strings.Contains(strings.ToLower(name), "screenshot")
}
