// Package sandbox provides per-project isolated execution environments for
// agent commands. Three backends implement the same capability: a Docker
// container bound to the project workspace, direct host execution for
// policy "none", and a recognized-but-unprovisioned cloud kind.
//
// The Manager enforces the single-live-sandbox invariant: acquiring a
// sandbox for a project supersedes any previously issued handle, whose
// operations then fail instead of racing the new one.
package sandbox

import (
	"context"
	"time"

	"github.com/ratchet-works/ratchet/pkg/models"
)

// MountPath is the canonical in-sandbox location of the project workspace.
const MountPath = "/workspace"

// ExecResult carries the outcome of one command execution.
type ExecResult struct {
	Stdout   string
	Stderr   string
	ExitCode int

	// Killed reports that the command was terminated by the timeout rather
	// than exiting on its own.
	Killed bool
}

// Sandbox is the execution capability handed to the tool bridge. All
// methods are safe for concurrent use; Exec calls may run while the
// orchestrator is stopping the sandbox, in which case they fail.
type Sandbox interface {
	// Start makes the sandbox ready, adopting a healthy existing
	// environment when possible. Idempotent.
	Start(ctx context.Context) error

	// Exec runs a shell command in the workspace. A non-positive timeout
	// falls back to the policy's exec timeout. The in-sandbox process tree
	// is killed when the timeout fires; the partial output collected so far
	// is returned together with a timeout error.
	Exec(ctx context.Context, command string, timeout time.Duration) (*ExecResult, error)

	// Stop shuts the sandbox down. With remove=false the environment is
	// kept for reuse by the next session; with remove=true it is deleted.
	Stop(ctx context.Context, remove bool) error

	// Destroy stops and removes the sandbox unconditionally. The workspace
	// bind mount survives: destroying a sandbox never touches project files.
	Destroy(ctx context.Context) error

	// Health reports nil while the sandbox can accept Exec calls.
	Health(ctx context.Context) error

	// Kind identifies the backing variant.
	Kind() models.SandboxKind
}

// ProjectRef identifies the project a sandbox serves. The sandbox layer
// deliberately depends on plain identifiers, not persistence types.
type ProjectRef struct {
	ID        string
	Workspace string
	Policy    models.SandboxPolicy
}

// ContainerName returns the stable container name for a project, used both
// to adopt an existing sandbox and to guarantee at most one per project at
// the container-runtime level.
func ContainerName(projectID string) string {
	return "project-" + projectID
}
