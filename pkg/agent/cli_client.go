package agent

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/ratchet-works/ratchet/pkg/config"
	"github.com/ratchet-works/ratchet/pkg/services"
)

const (
	// termGracePeriod is how long a cancelled agent gets between SIGTERM
	// and SIGKILL of its process group.
	termGracePeriod = 5 * time.Second

	// stderrTailBytes bounds the captured stderr kept for diagnostics.
	stderrTailBytes = 8 * 1024

	// stdoutBufBytes is the reader buffer; lines longer than this are
	// still assembled up to the configured line cap.
	stdoutBufBytes = 64 * 1024
)

// CLIClient runs sessions by spawning the external agent binary and
// decoding its stream-JSON stdout. One CLIClient is shared across
// sessions; every Run spawns a fresh process.
type CLIClient struct {
	binary       string
	maxLineBytes int
	extraArgs    []string
	authToken    string
	logger       *slog.Logger

	// lookPath and startCmd are test seams.
	lookPath func(string) (string, error)
}

// NewCLIClient builds a client from the agent section of the config.
// authToken is handed to the subprocess via AGENT_AUTH_TOKEN so the
// agent can authenticate against the loopback tool bridge.
func NewCLIClient(cfg *config.AgentConfig, authToken string, logger *slog.Logger) *CLIClient {
	maxLine := cfg.MaxLineBytes
	if maxLine <= 0 {
		maxLine = config.DefaultAgentConfig().MaxLineBytes
	}
	return &CLIClient{
		binary:       cfg.Binary,
		maxLineBytes: maxLine,
		extraArgs:    cfg.ExtraArgs,
		authToken:    authToken,
		logger:       logger.With(slog.String("component", "agent_cli")),
		lookPath:     exec.LookPath,
	}
}

// Run spawns the agent and returns its event stream. The caller must
// drain the channel until it closes; the final event is always an
// EndEvent. Cancelling ctx terminates the process group.
func (c *CLIClient) Run(ctx context.Context, inv Invocation) (<-chan Event, error) {
	if _, err := c.lookPath(c.binary); err != nil {
		return nil, services.NewAgentTransportError("agent binary %q not found on PATH: %v", c.binary, err)
	}

	cmd := exec.Command(c.binary, c.buildArgs(inv)...)
	cmd.Dir = inv.Workspace
	cmd.Stdin = strings.NewReader(inv.Prompt)
	cmd.Env = c.buildEnv(inv)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stderr := &tailBuffer{max: stderrTailBytes}
	cmd.Stderr = stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, services.NewAgentTransportError("attach agent stdout: %v", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, services.NewAgentTransportError("start agent %q: %v", c.binary, err)
	}

	c.logger.Info("Agent process started",
		slog.String("session_id", inv.SessionID),
		slog.String("kind", inv.Kind),
		slog.String("model", inv.Model),
		slog.Int("pid", cmd.Process.Pid))

	events := make(chan Event, 64)
	go c.consume(ctx, cmd, stdout, stderr, events)
	return events, nil
}

func (c *CLIClient) buildArgs(inv Invocation) []string {
	args := []string{
		"-p",
		"--verbose",
		"--output-format", "stream-json",
		"--dangerously-skip-permissions",
	}
	if inv.Model != "" {
		args = append(args, "--model", inv.Model)
	}
	if inv.MCPConfig != "" {
		args = append(args, "--mcp-config", inv.MCPConfig)
	}
	if len(inv.AllowedTools) > 0 {
		args = append(args, "--allowedTools", strings.Join(inv.AllowedTools, ","))
	}
	if inv.MaxTurns > 0 {
		args = append(args, "--max-turns", strconv.Itoa(inv.MaxTurns))
	}
	return append(args, c.extraArgs...)
}

func (c *CLIClient) buildEnv(inv Invocation) []string {
	env := os.Environ()
	if c.authToken != "" {
		env = append(env, "AGENT_AUTH_TOKEN="+c.authToken)
	}
	return append(env, inv.Env...)
}

// consume owns the process from start to finish: it decodes stdout,
// forwards events, reaps the process and closes the channel after the
// terminal EndEvent.
func (c *CLIClient) consume(ctx context.Context, cmd *exec.Cmd, stdout io.Reader, stderr *tailBuffer, events chan<- Event) {
	defer close(events)
	start := time.Now()

	procDone := make(chan struct{})
	var killOnce sync.Once
	go func() {
		select {
		case <-ctx.Done():
			killOnce.Do(func() { c.terminate(cmd, procDone) })
		case <-procDone:
		}
	}()

	decoder := newStreamDecoder(c.logger)
	reader := bufio.NewReaderSize(stdout, stdoutBufBytes)
	for {
		line, overflow, err := readBoundedLine(reader, c.maxLineBytes)
		if err != nil {
			// EOF is the normal exit; anything else while the context is
			// still live is a transport fault.
			if !errors.Is(err, io.EOF) && ctx.Err() == nil {
				events <- ErrorEvent{
					Kind:    services.KindAgentTransport,
					Message: fmt.Sprintf("reading agent output: %v", err),
				}
			}
			break
		}
		if overflow {
			events <- ErrorEvent{
				Kind:    services.KindAgentTransport,
				Message: fmt.Sprintf("agent output line exceeded %d bytes and was discarded", c.maxLineBytes),
			}
			continue
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		for _, ev := range decoder.decode(line) {
			events <- ev
		}
	}

	waitErr := cmd.Wait()
	close(procDone)

	errEv, end := c.finalEvents(ctx, decoder, waitErr, stderr, time.Since(start))
	if errEv != nil {
		events <- *errEv
	}
	events <- end
}

// finalEvents decides the terminal EndEvent and an optional preceding
// ErrorEvent. Order matters: caller cancellation wins over everything,
// then the agent's own result line, then process failure.
func (c *CLIClient) finalEvents(ctx context.Context, decoder *streamDecoder, waitErr error, stderr *tailBuffer, elapsed time.Duration) (*ErrorEvent, EndEvent) {
	if ctx.Err() != nil {
		return nil, EndEvent{
			Status:   EndCancelled,
			Duration: elapsed,
			Tokens:   decoder.accumulatedTokens(),
		}
	}

	if end := decoder.result(); end != nil {
		if waitErr != nil {
			c.logger.Warn("Agent exited non-zero after reporting a result",
				slog.String("status", end.Status),
				slog.String("error", waitErr.Error()))
		}
		return nil, *end
	}

	msg := "agent stream ended without a result line"
	if waitErr != nil {
		msg = fmt.Sprintf("agent process failed: %v", waitErr)
		if tail := stderr.String(); tail != "" {
			msg += "; stderr: " + tail
		}
	}
	errEv := &ErrorEvent{Kind: services.KindAgentTransport, Message: msg}
	return errEv, EndEvent{
		Status:   EndFailed,
		Duration: elapsed,
		Tokens:   decoder.accumulatedTokens(),
	}
}

// terminate asks the process group to exit and escalates to SIGKILL
// after the grace period. The negative pid addresses the whole group
// created by Setpgid.
func (c *CLIClient) terminate(cmd *exec.Cmd, procDone <-chan struct{}) {
	if cmd.Process == nil {
		return
	}
	pgid := -cmd.Process.Pid
	if err := syscall.Kill(pgid, syscall.SIGTERM); err != nil && err != syscall.ESRCH {
		c.logger.Warn("SIGTERM to agent process group failed", slog.String("error", err.Error()))
	}
	select {
	case <-procDone:
		return
	case <-time.After(termGracePeriod):
	}
	if err := syscall.Kill(pgid, syscall.SIGKILL); err != nil && err != syscall.ESRCH {
		c.logger.Warn("SIGKILL to agent process group failed", slog.String("error", err.Error()))
	}
}

// tailBuffer keeps the trailing max bytes written to it. Older output is
// dropped; diagnostics care about how a process died, not how it began.
type tailBuffer struct {
	mu  sync.Mutex
	max int
	buf []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf = append(t.buf, p...)
	if len(t.buf) > t.max {
		t.buf = t.buf[len(t.buf)-t.max:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.TrimSpace(string(t.buf))
}
