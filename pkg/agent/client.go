// Package agent drives the external code-generation agent for one session
// at a time. It spawns the agent binary, feeds it the session prompt,
// decodes its streamed JSON output into typed events, and guarantees the
// event channel terminates with a single EndEvent.
//
// The package knows nothing about roadmap state or sandboxes; it only
// speaks the agent's process protocol. The orchestrator consumes the
// event stream and fans it out to the session log, counters and quality
// analysis.
package agent

import (
	"context"
)

// Invocation describes one agent run. The orchestrator fills it from the
// session row, the rendered prompt and the bridge's MCP wiring.
type Invocation struct {
	// SessionID is the orchestrator's session identifier, used only for
	// log correlation. The agent's own conversation id arrives later via
	// StartEvent.
	SessionID string
	Kind      string // initializer, coding or review
	Model     string

	// Prompt is the fully rendered session prompt, written to the agent's
	// stdin.
	Prompt string

	// MCPConfig is the JSON document pointing the agent at the in-process
	// tool bridge. Empty disables tool access (review sessions).
	MCPConfig string

	// AllowedTools restricts the agent to the named tools. Empty means no
	// restriction is passed to the binary.
	AllowedTools []string

	// Workspace is the working directory for the agent process.
	Workspace string

	// MaxTurns caps the agent's internal tool-use loop. Zero means the
	// binary's default.
	MaxTurns int

	// Env holds extra KEY=VALUE pairs appended to the inherited
	// environment.
	Env []string
}

// Client runs agent sessions. Implementations must return a channel that
// is eventually closed after exactly one EndEvent, regardless of how the
// process dies.
type Client interface {
	// Run starts the agent and returns its event stream. A non-nil error
	// means the process never started and nothing was consumed. Once the
	// channel is returned, all failures are reported in-band as
	// ErrorEvent values followed by a terminal EndEvent.
	Run(ctx context.Context, inv Invocation) (<-chan Event, error)
}
