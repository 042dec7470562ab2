package models

import "time"

// SessionKind selects the prompt, model and lifecycle rules for a session.
type SessionKind string

// Session kinds. Session 0 is always the initializer; review sessions are
// created only by the deep-review path and never auto-chain. The constants
// stay untyped so they satisfy both SessionKind and plain string parameters.
const (
	SessionKindInitializer = "initializer"
	SessionKindCoding      = "coding"
	SessionKindReview      = "review"
)

// Terminal and non-terminal session statuses.
const (
	SessionStatusRunning   = "running"
	SessionStatusCompleted = "completed"
	SessionStatusFailed    = "failed"
	SessionStatusCancelled = "cancelled"
)

// TokenUsage aggregates token counters reported by the agent transport.
type TokenUsage struct {
	Input         int64 `json:"input"`
	Output        int64 `json:"output"`
	CacheCreation int64 `json:"cache_creation"`
	CacheRead     int64 `json:"cache_read"`
}

// Add accumulates u into t.
func (t *TokenUsage) Add(u TokenUsage) {
	t.Input += u.Input
	t.Output += u.Output
	t.CacheCreation += u.CacheCreation
	t.CacheRead += u.CacheRead
}

// SessionCounters are the aggregate counters written at finalization.
type SessionCounters struct {
	ToolUses int
	Errors   int
	Tokens   TokenUsage
}

// Metrics bag keys recorded on every finalized session.
const (
	MetricDurationSeconds      = "duration_seconds"
	MetricToolCallsCount       = "tool_calls_count"
	MetricErrorsCount          = "errors_count"
	MetricBrowserVerifications = "browser_verifications"
	MetricWrapUpRequested      = "wrap_up_requested"
)

// StaleThresholds is the per-kind heartbeat age after which a running
// session is presumed dead and reconciled to cancelled. Initializer
// sessions get the longest leash because roadmap generation is one long
// uninterrupted turn.
type StaleThresholds struct {
	Initializer time.Duration
	Coding      time.Duration
	Review      time.Duration
}

// RecordReviewSessionInput describes a finished deep-review invocation,
// recorded as an already-terminal session row.
type RecordReviewSessionInput struct {
	Model         string
	PromptVersion string
	Status        string
	StartedAt     time.Time
	Counters      SessionCounters
	Metrics       map[string]interface{}
	FailureReason string
}
