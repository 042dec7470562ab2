package sandbox

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	units "github.com/docker/go-units"

	"github.com/ratchet-works/ratchet/pkg/guard"
	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/services"
)

// Sandbox lifecycle phases, tracked for logging and health reporting.
const (
	stateNotCreated = "not_created"
	stateStarting   = "starting"
	stateReady      = "ready"
	stateStopping   = "stopping"
	stateGone       = "gone"
)

// Container labels marking sandboxes this process manages. Startup
// reconciliation leaves unlabeled containers untouched.
const (
	labelManaged = "ratchet.managed"
	labelProject = "ratchet.project_id"
)

// timeoutExitCode is what timeout(1) returns when the command overran.
const timeoutExitCode = 124

// maxStreamBytes caps captured stdout/stderr per exec so a runaway command
// cannot exhaust memory. The tail is dropped, not buffered.
const maxStreamBytes = 256 * 1024

// setupTimeout bounds each policy setup command during provisioning.
const setupTimeout = 5 * time.Minute

// containerSandbox runs commands in a long-lived Docker container with the
// project workspace bind-mounted at MountPath. The container outlives
// sessions; files persist through the bind mount, not the container.
type containerSandbox struct {
	api    dockerAPI
	gate   *guard.Gate
	ref    ProjectRef
	policy models.SandboxPolicy
	logger *slog.Logger

	mu    sync.Mutex
	state string
}

func newContainerSandbox(api dockerAPI, gate *guard.Gate, ref ProjectRef, logger *slog.Logger) *containerSandbox {
	return &containerSandbox{
		api:    api,
		gate:   gate,
		ref:    ref,
		policy: ref.Policy,
		logger: logger.With("component", "sandbox", "project_id", ref.ID),
		state:  stateNotCreated,
	}
}

func (s *containerSandbox) Kind() models.SandboxKind { return models.SandboxContainer }

func (s *containerSandbox) setState(state string) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Start adopts a healthy container named after the project, restarts a
// stopped one, or creates a fresh one. Setup commands run only on the
// create path; an adopted container already ran them.
func (s *containerSandbox) Start(ctx context.Context) error {
	s.setState(stateStarting)
	name := ContainerName(s.ref.ID)

	info, err := s.api.ContainerInspect(ctx, name)
	switch {
	case err == nil && info.State != nil && info.State.Running:
		s.logger.Info("Adopting running sandbox container", "container", name)
		s.setState(stateReady)
		return nil
	case err == nil:
		if startErr := s.api.ContainerStart(ctx, name, container.StartOptions{}); startErr != nil {
			s.setState(stateNotCreated)
			return services.NewSandboxUnavailableError(fmt.Errorf("restart container %s: %w", name, startErr))
		}
		s.logger.Info("Restarted stopped sandbox container", "container", name)
		s.setState(stateReady)
		return nil
	case !client.IsErrNotFound(err):
		s.setState(stateNotCreated)
		return services.NewSandboxUnavailableError(fmt.Errorf("inspect container %s: %w", name, err))
	}

	if err := s.create(ctx, name); err != nil {
		s.setState(stateNotCreated)
		return err
	}
	s.setState(stateReady)
	s.runSetup(ctx)
	return nil
}

func (s *containerSandbox) create(ctx context.Context, name string) error {
	var memory int64
	if s.policy.Memory != "" {
		parsed, err := units.RAMInBytes(s.policy.Memory)
		if err != nil {
			return services.NewSandboxUnavailableError(fmt.Errorf("invalid memory limit %q: %w", s.policy.Memory, err))
		}
		memory = parsed
	}

	cfg := &container.Config{
		Image:      s.policy.Image,
		Cmd:        []string{"sleep", "infinity"},
		WorkingDir: MountPath,
		Labels: map[string]string{
			labelManaged: "true",
			labelProject: s.ref.ID,
		},
	}
	hostCfg := &container.HostConfig{
		Binds:       []string{s.ref.Workspace + ":" + MountPath},
		NetworkMode: container.NetworkMode(s.policy.Network),
		Resources: container.Resources{
			Memory:   memory,
			NanoCPUs: int64(s.policy.CPUs * 1e9),
		},
	}

	created, err := s.api.ContainerCreate(ctx, cfg, hostCfg, nil, nil, name)
	if client.IsErrNotFound(err) {
		if pullErr := s.pullImage(ctx); pullErr != nil {
			return services.NewSandboxUnavailableError(fmt.Errorf("pull image %s: %w", s.policy.Image, pullErr))
		}
		created, err = s.api.ContainerCreate(ctx, cfg, hostCfg, nil, nil, name)
	}
	if err != nil {
		return services.NewSandboxUnavailableError(fmt.Errorf("create container %s: %w", name, err))
	}
	if err := s.api.ContainerStart(ctx, created.ID, container.StartOptions{}); err != nil {
		return services.NewSandboxUnavailableError(fmt.Errorf("start container %s: %w", name, err))
	}

	s.logger.Info("Created sandbox container",
		"container", name,
		"image", s.policy.Image,
		"memory", s.policy.Memory,
		"cpus", s.policy.CPUs,
		"network", s.policy.Network)
	return nil
}

func (s *containerSandbox) pullImage(ctx context.Context) error {
	s.logger.Info("Pulling sandbox image", "image", s.policy.Image)
	rc, err := s.api.ImagePull(ctx, s.policy.Image, image.PullOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	// The pull completes only once the progress stream is drained.
	_, err = io.Copy(io.Discard, rc)
	return err
}

// runSetup executes the policy's setup commands. Failures are logged but do
// not abort provisioning; a missing dev tool surfaces later as a tool error
// the agent can react to.
func (s *containerSandbox) runSetup(ctx context.Context) {
	for _, cmd := range s.policy.Setup {
		if err := s.gate.Check(cmd); err != nil {
			s.logger.Warn("Sandbox setup command blocked", "error", err)
			continue
		}
		result, err := s.Exec(ctx, cmd, setupTimeout)
		if err != nil {
			s.logger.Warn("Sandbox setup command failed", "command", cmd, "error", err)
			continue
		}
		if result.ExitCode != 0 {
			s.logger.Warn("Sandbox setup command exited non-zero",
				"command", cmd, "exit_code", result.ExitCode, "stderr", result.Stderr)
		}
	}
}

// Exec runs a shell command inside the container. The command is wrapped in
// timeout(1) so the whole in-container process tree dies when the limit is
// reached; -k escalates to SIGKILL five seconds after the TERM.
func (s *containerSandbox) Exec(ctx context.Context, command string, timeout time.Duration) (*ExecResult, error) {
	if timeout <= 0 {
		timeout = time.Duration(s.policy.ExecTimeoutSeconds) * time.Second
	}
	secs := int(timeout / time.Second)
	if secs < 1 {
		secs = 1
	}

	name := ContainerName(s.ref.ID)
	argv := []string{"timeout", "-k", "5", strconv.Itoa(secs), "sh", "-lc", command}

	// Grace on top of the in-container timeout covers attach overhead and a
	// stalled daemon; normally timeout(1) fires first and yields exit 124.
	execCtx, cancel := context.WithTimeout(ctx, timeout+15*time.Second)
	defer cancel()

	created, err := s.api.ContainerExecCreate(execCtx, name, container.ExecOptions{
		Cmd:          argv,
		WorkingDir:   MountPath,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return nil, services.NewSandboxUnavailableError(fmt.Errorf("exec create in %s: %w", name, err))
	}

	attach, err := s.api.ContainerExecAttach(execCtx, created.ID, container.ExecStartOptions{})
	if err != nil {
		return nil, services.NewSandboxUnavailableError(fmt.Errorf("exec attach in %s: %w", name, err))
	}
	defer attach.Close()

	stdout := newCappedBuffer(maxStreamBytes)
	stderr := newCappedBuffer(maxStreamBytes)
	if _, err := stdcopy.StdCopy(stdout, stderr, attach.Reader); err != nil && execCtx.Err() == nil {
		return nil, services.NewSandboxUnavailableError(fmt.Errorf("exec stream from %s: %w", name, err))
	}

	if execCtx.Err() != nil {
		partial := &ExecResult{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: -1, Killed: true}
		if ctx.Err() != nil {
			return partial, ctx.Err()
		}
		return partial, services.NewTimeoutError("command did not finish within %s", timeout)
	}

	inspect, err := s.api.ContainerExecInspect(execCtx, created.ID)
	if err != nil {
		return nil, services.NewSandboxUnavailableError(fmt.Errorf("exec inspect in %s: %w", name, err))
	}

	result := &ExecResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: inspect.ExitCode,
	}
	if inspect.ExitCode == timeoutExitCode {
		result.Killed = true
		return result, services.NewTimeoutError("command killed after %s", timeout)
	}
	return result, nil
}

// Stop shuts the container down. With remove=false it stays adoptable by
// the next Start, preserving installed tools and warm caches.
func (s *containerSandbox) Stop(ctx context.Context, remove bool) error {
	s.setState(stateStopping)
	name := ContainerName(s.ref.ID)

	stopSecs := 10
	if err := s.api.ContainerStop(ctx, name, container.StopOptions{Timeout: &stopSecs}); err != nil && !client.IsErrNotFound(err) {
		return fmt.Errorf("stop container %s: %w", name, err)
	}
	if remove {
		if err := s.api.ContainerRemove(ctx, name, container.RemoveOptions{Force: true}); err != nil && !client.IsErrNotFound(err) {
			return fmt.Errorf("remove container %s: %w", name, err)
		}
	}
	s.setState(stateGone)
	s.logger.Info("Stopped sandbox container", "container", name, "removed", remove)
	return nil
}

// Destroy removes the container unconditionally. The workspace survives:
// only the bind mount point disappears, never its contents.
func (s *containerSandbox) Destroy(ctx context.Context) error {
	s.setState(stateStopping)
	name := ContainerName(s.ref.ID)

	stopSecs := 5
	if err := s.api.ContainerStop(ctx, name, container.StopOptions{Timeout: &stopSecs}); err != nil && !client.IsErrNotFound(err) {
		s.logger.Warn("Failed to stop container before removal", "container", name, "error", err)
	}
	if err := s.api.ContainerRemove(ctx, name, container.RemoveOptions{Force: true}); err != nil && !client.IsErrNotFound(err) {
		return fmt.Errorf("remove container %s: %w", name, err)
	}
	s.setState(stateGone)
	s.logger.Info("Destroyed sandbox container", "container", name)
	return nil
}

// Health reports nil while the container is running.
func (s *containerSandbox) Health(ctx context.Context) error {
	info, err := s.api.ContainerInspect(ctx, ContainerName(s.ref.ID))
	if err != nil {
		return services.NewSandboxUnavailableError(err)
	}
	if info.State == nil || !info.State.Running {
		return services.NewSandboxUnavailableError(fmt.Errorf("container %s is not running", ContainerName(s.ref.ID)))
	}
	return nil
}

// cappedBuffer keeps at most max bytes and drops the rest, recording that
// truncation happened. Write never fails so stream demuxing always drains.
type cappedBuffer struct {
	buf       bytes.Buffer
	max       int
	truncated bool
}

func newCappedBuffer(max int) *cappedBuffer {
	return &cappedBuffer{max: max}
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if remaining := b.max - b.buf.Len(); remaining > 0 {
		if len(p) > remaining {
			p = p[:remaining]
			b.truncated = true
		}
		b.buf.Write(p)
	} else if len(p) > 0 {
		b.truncated = true
	}
	return n, nil
}

func (b *cappedBuffer) String() string {
	if b.truncated {
		return b.buf.String() + "\n... [output truncated]"
	}
	return b.buf.String()
}
