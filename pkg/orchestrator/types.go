package orchestrator

import (
	"context"
	"time"

	"github.com/ratchet-works/ratchet/ent"
	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/pkg/agent"
	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/sandbox"
)

// SandboxProvider hands out per-project sandboxes. *sandbox.Manager is the
// production implementation.
type SandboxProvider interface {
	Acquire(ctx context.Context, ref sandbox.ProjectRef, fresh bool) (sandbox.Sandbox, error)
}

// RunOptions tune a single RunProject invocation.
type RunOptions struct {
	// Iterations caps the coding sessions run by this invocation. Zero
	// falls back to the configured project default; both zero means
	// unlimited.
	Iterations int

	// FreshSandbox recreates the environment before the invocation's first
	// session instead of adopting a surviving container.
	FreshSandbox bool
}

// HaltReason explains why a project loop stopped chaining sessions.
type HaltReason string

const (
	// HaltInitializer: session zero finished and the plan awaits review
	// before coding starts.
	HaltInitializer HaltReason = "initializer_complete"
	// HaltRoadmapDone: every task is done and every test passes.
	HaltRoadmapDone HaltReason = "roadmap_complete"
	// HaltBudget: the invocation used up its coding-session allowance.
	HaltBudget HaltReason = "iteration_budget"
	// HaltStopRequested: a stop-after-current request was honored.
	HaltStopRequested HaltReason = "stop_requested"
	// HaltWrapUp: the agent signalled wrap-up through the session log tool.
	HaltWrapUp HaltReason = "wrap_up_requested"
	// HaltFailures: too many sessions failed back to back.
	HaltFailures HaltReason = "consecutive_failures"
	// HaltCancelled: the loop context was cancelled.
	HaltCancelled HaltReason = "cancelled"
)

// RunResult summarizes one RunProject invocation.
type RunResult struct {
	Halt        HaltReason
	SessionsRun int
	CodingRuns  int
	LastSession *ent.Session     // nil when no session ran
	Progress    *models.Progress // roadmap snapshot at exit, nil if unavailable
}

// sessionResult is what one finished session reports back to the loop.
type sessionResult struct {
	session *ent.Session
	status  session.Status
	wrapUp  bool
}

// agentOutcome aggregates what the agent event stream reported before the
// session is finalized.
type agentOutcome struct {
	end        *agent.EndEvent // nil when the stream never produced one
	tokens     models.TokenUsage
	started    time.Time
	eventsSeen int
	earlyStop  bool
	lastError  string
	transport  bool
}
