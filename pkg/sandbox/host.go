package sandbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/ratchet-works/ratchet/pkg/guard"
	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/services"
)

// hostSandbox executes directly on the host in the project workspace.
// Nothing contains these commands, so every one of them passes the full
// host denylist before running.
type hostSandbox struct {
	gate   *guard.Gate
	ref    ProjectRef
	policy models.SandboxPolicy
	logger *slog.Logger
}

func newHostSandbox(gate *guard.Gate, ref ProjectRef, logger *slog.Logger) *hostSandbox {
	return &hostSandbox{
		gate:   gate,
		ref:    ref,
		policy: ref.Policy,
		logger: logger.With("component", "sandbox", "project_id", ref.ID, "kind", "none"),
	}
}

func (s *hostSandbox) Kind() models.SandboxKind { return models.SandboxNone }

// Start only guarantees the workspace directory exists.
func (s *hostSandbox) Start(ctx context.Context) error {
	if err := os.MkdirAll(s.ref.Workspace, 0o755); err != nil {
		return services.NewSandboxUnavailableError(fmt.Errorf("create workspace %s: %w", s.ref.Workspace, err))
	}
	return nil
}

// Exec runs the command through the host shell with the workspace as the
// working directory. The child becomes its own process group leader so a
// timeout can kill the whole tree, not just the shell.
func (s *hostSandbox) Exec(ctx context.Context, command string, timeout time.Duration) (*ExecResult, error) {
	if err := s.gate.CheckHost(command); err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = time.Duration(s.policy.ExecTimeoutSeconds) * time.Second
	}

	cmd := exec.Command("sh", "-lc", command)
	cmd.Dir = s.ref.Workspace
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdout := newCappedBuffer(maxStreamBytes)
	stderr := newCappedBuffer(maxStreamBytes)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return nil, services.NewSandboxUnavailableError(fmt.Errorf("start host command: %w", err))
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	killed := false
	var waitErr error
	select {
	case waitErr = <-done:
	case <-timer.C:
		killed = true
		s.killGroup(cmd.Process.Pid)
		waitErr = <-done
	case <-ctx.Done():
		s.killGroup(cmd.Process.Pid)
		<-done
		return &ExecResult{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: -1, Killed: true}, ctx.Err()
	}

	exitCode := 0
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else if !killed {
			return nil, services.NewSandboxUnavailableError(fmt.Errorf("host exec: %w", waitErr))
		}
	}

	result := &ExecResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
		Killed:   killed,
	}
	if killed {
		return result, services.NewTimeoutError("command killed after %s", timeout)
	}
	return result, nil
}

// killGroup signals the whole process group. The negative pid addresses the
// group created by Setpgid.
func (s *hostSandbox) killGroup(pid int) {
	if err := syscall.Kill(-pid, syscall.SIGKILL); err != nil && !errors.Is(err, syscall.ESRCH) {
		s.logger.Warn("Failed to kill host process group", "pid", pid, "error", err)
	}
}

// Stop is a no-op: nothing outlives the individual commands.
func (s *hostSandbox) Stop(ctx context.Context, remove bool) error { return nil }

// Destroy is a no-op for the same reason. The workspace is never removed.
func (s *hostSandbox) Destroy(ctx context.Context) error { return nil }

// Health verifies the workspace directory is still reachable.
func (s *hostSandbox) Health(ctx context.Context) error {
	if _, err := os.Stat(s.ref.Workspace); err != nil {
		return services.NewSandboxUnavailableError(fmt.Errorf("workspace %s: %w", s.ref.Workspace, err))
	}
	return nil
}
