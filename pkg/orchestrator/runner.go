package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ratchet-works/ratchet/ent"
	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/pkg/agent"
	"github.com/ratchet-works/ratchet/pkg/bridge"
	"github.com/ratchet-works/ratchet/pkg/events"
	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/sandbox"
	"github.com/ratchet-works/ratchet/pkg/services"
	"github.com/ratchet-works/ratchet/pkg/sessionlog"
)

const (
	// heartbeatInterval paces last_active_at refreshes; the stale sweeper
	// thresholds are all comfortably larger.
	heartbeatInterval = 30 * time.Second

	// sandboxStopTimeout bounds the post-session container stop.
	sandboxStopTimeout = 30 * time.Second
)

// runSession executes one full session: fail-fast preconditions, sandbox
// provisioning, session row, log artifacts, tool bridge, agent run, finalize,
// quality analysis. The sandbox is stopped but kept afterwards so the next
// session can adopt it.
//
// progress is the pre-fetched roadmap snapshot for coding sessions, nil for
// the initializer.
func (o *Orchestrator) runSession(ctx context.Context, proj *ent.Project, kind session.Kind, fresh bool, progress *models.Progress) (*sessionResult, error) {
	log := o.logger.With("project_id", proj.ID, "kind", kind)
	policy := proj.SandboxPolicy.Merge(o.cfg.SandboxDefaults)

	// Preconditions are checked before paying for a sandbox start. A coding
	// session needs the initializer's outputs; the initializer needs a spec.
	var specText string
	switch kind {
	case session.KindInitializer:
		text, err := readSpecText(proj.Workspace)
		if err != nil {
			return nil, err
		}
		specText = text
	case session.KindCoding:
		if _, err := os.Stat(proj.Workspace); err != nil {
			return nil, services.NewPreconditionError("project workspace %s is missing", proj.Workspace)
		}
		if progress == nil || progress.TotalTasks == 0 {
			return nil, services.NewPreconditionError("project %s has no roadmap yet; run the initializer first", proj.Name)
		}
	}

	// One retry on sandbox start, then the attempt is fatal.
	ref := sandbox.ProjectRef{ID: proj.ID, Workspace: proj.Workspace, Policy: proj.SandboxPolicy}
	sb, err := o.sandboxes.Acquire(ctx, ref, fresh)
	if err != nil {
		log.Warn("Sandbox start failed, retrying once", "error", err)
		if sb, err = o.sandboxes.Acquire(ctx, ref, fresh); err != nil {
			return nil, err
		}
	}
	defer o.stopSandbox(sb, log)

	model := o.cfg.ModelFor(models.SessionKind(kind))
	sess, err := o.sessions.CreateSession(ctx, proj.ID, kind, model, agent.PromptVersionFor(string(kind)))
	if err != nil {
		return nil, err
	}
	log = log.With("session_id", sess.ID, "session_number", sess.SessionNumber)
	o.publishStarted(ctx, sess)

	writer, err := sessionlog.Open(sessionlog.LogsDir(proj.Workspace), sess.SessionNumber, string(kind), sess.ID, model)
	if err != nil {
		return o.bail(sess, nil, err)
	}

	br, err := bridge.New(bridge.Config{
		ProjectID: proj.ID,
		SessionID: sess.ID,
		Roadmap:   o.roadmap,
		Sink:      writer,
		Exec:      sb,
		Publisher: o.publisher,
		Policy:    policy,
		Logger:    o.logger,
	})
	if err != nil {
		return o.bail(sess, writer, err)
	}
	token := o.host.Register(br)
	defer o.host.Unregister(token)

	mcpConfig, err := o.host.MCPConfig(token)
	if err != nil {
		return o.bail(sess, writer, err)
	}

	input := agent.PromptInput{
		ProjectName:   proj.Name,
		SessionNumber: sess.SessionNumber,
		SpecText:      specText,
		SandboxKind:   policy.Kind,
	}
	if kind == session.KindCoding {
		input.Progress = o.renderProgress(ctx, proj.ID, progress)
	}
	prompt, _, err := agent.RenderPrompt(string(kind), input)
	if err != nil {
		return o.bail(sess, writer, err)
	}

	timeout := o.cfg.Orchestrator.SessionTimeout
	if policy.SessionTimeoutSeconds > 0 {
		timeout = time.Duration(policy.SessionTimeoutSeconds) * time.Second
	}
	sessionCtx, cancelSession := context.WithTimeout(ctx, timeout)
	defer cancelSession()

	heartbeatCtx, cancelHeartbeat := context.WithCancel(sessionCtx)
	defer cancelHeartbeat()
	go o.runHeartbeat(heartbeatCtx, sess.ID)

	log.Info("Session starting", "model", model, "sandbox", policy.Kind, "timeout", timeout)
	out := o.driveAgent(sessionCtx, sess, agent.Invocation{
		SessionID:    sess.ID,
		Kind:         string(kind),
		Model:        model,
		Prompt:       prompt,
		MCPConfig:    mcpConfig,
		AllowedTools: bridge.AllowedTools(),
		Workspace:    proj.Workspace,
	}, writer)
	cancelHeartbeat()

	snap := writer.Snapshot()
	status, failureReason := o.resolveStatus(ctx, sessionCtx, out)
	if err := writer.Close(string(status), out.tokens); err != nil {
		log.Warn("Failed to close session log", "error", err)
	}

	duration := time.Since(out.started)
	finalized, err := o.sessions.FinalizeSession(ctx, sess.ID, status,
		models.SessionCounters{ToolUses: snap.ToolUses, Errors: snap.Errors, Tokens: out.tokens},
		map[string]interface{}{
			models.MetricDurationSeconds:      duration.Seconds(),
			models.MetricToolCallsCount:       snap.ToolUses,
			models.MetricErrorsCount:          snap.Errors,
			models.MetricBrowserVerifications: snap.BrowserCalls,
			models.MetricWrapUpRequested:      snap.WrapUpRequested,
		},
		failureReason)
	if err != nil {
		return nil, err
	}
	o.publishStatus(finalized)

	log.Info("Session finalized",
		"status", status,
		"duration", duration.Round(time.Millisecond),
		"tool_uses", snap.ToolUses,
		"errors", snap.Errors,
		"tokens_in", out.tokens.Input,
		"tokens_out", out.tokens.Output)

	if o.analyzer != nil {
		if _, err := o.analyzer.ProcessSession(ctx, finalized, proj.Name, proj.Workspace); err != nil {
			log.Warn("Quality analysis failed", "error", err)
		}
	}

	return &sessionResult{session: finalized, status: status, wrapUp: snap.WrapUpRequested}, nil
}

// driveAgent runs the agent and forwards its event stream into the session
// log. A transport abort inside the leading event window is retried once
// within the same session; crossing the consecutive-tool-error threshold
// cancels the run cooperatively while the stream drains.
func (o *Orchestrator) driveAgent(ctx context.Context, sess *ent.Session, inv agent.Invocation, writer *sessionlog.Writer) agentOutcome {
	out := agentOutcome{started: time.Now()}
	log := o.logger.With("session_id", sess.ID)
	maxStreak := o.cfg.Orchestrator.MaxConsecutiveToolErrors
	window := o.cfg.Orchestrator.TransportRetryWindow
	retried := false
	toolUses := 0

	for {
		runCtx, cancelRun := context.WithCancel(ctx)
		stream, err := o.agent.Run(runCtx, inv)
		if err != nil {
			cancelRun()
			logAppend(log, writer.Error(string(services.KindAgentTransport), err.Error()))
			out.lastError = err.Error()
			out.transport = true
			if !retried && out.eventsSeen <= window && ctx.Err() == nil {
				retried = true
				log.Warn("Agent process failed to start, retrying once", "error", err)
				continue
			}
			return out
		}

		for ev := range stream {
			out.eventsSeen++
			switch e := ev.(type) {
			case agent.StartEvent:
				logAppend(log, writer.Notice("agent_session", e.AgentSessionID))
			case agent.TextEvent:
				logAppend(log, writer.AssistantText(e.Text))
			case agent.ToolUseEvent:
				toolUses++
				logAppend(log, writer.ToolUse(e.Name, e.Input))
				o.publishActivity(ctx, sess, e.Name, toolUses)
			case agent.ToolResultEvent:
				logAppend(log, writer.ToolResult(e.Name, e.Content, e.IsError, e.Duration))
				if e.IsError && !out.earlyStop && maxStreak > 0 &&
					writer.Snapshot().ConsecutiveErrors >= maxStreak {
					out.earlyStop = true
					log.Warn("Consecutive tool errors hit the limit, ending session early", "limit", maxStreak)
					cancelRun()
				}
			case agent.ErrorEvent:
				logAppend(log, writer.Error(string(e.Kind), e.Message))
				out.lastError = e.Message
				out.transport = e.Kind == services.KindAgentTransport
			case agent.NoticeEvent:
				logAppend(log, writer.Notice(e.Subtype, e.Content))
			case agent.CompactionEvent:
				logAppend(log, writer.CompactionBoundary(e.Content))
			case agent.EndEvent:
				end := e
				out.end = &end
				out.tokens.Add(e.Tokens)
			}
		}
		cancelRun()

		aborted := out.end != nil && out.end.Status == agent.EndFailed && out.transport
		if aborted && !retried && out.eventsSeen <= window && ctx.Err() == nil {
			retried = true
			log.Warn("Agent transport aborted early, retrying once", "events_seen", out.eventsSeen)
			out.end = nil
			out.lastError = ""
			out.transport = false
			continue
		}
		return out
	}
}

// resolveStatus maps the agent outcome onto the terminal session status.
// Tool-error early termination is a failure, not a cancellation: it must
// count toward the consecutive-failure stop.
func (o *Orchestrator) resolveStatus(loopCtx, sessionCtx context.Context, out agentOutcome) (session.Status, string) {
	switch {
	case out.earlyStop:
		return session.StatusFailed,
			fmt.Sprintf("terminated after %d consecutive tool errors", o.cfg.Orchestrator.MaxConsecutiveToolErrors)
	case loopCtx.Err() != nil:
		return session.StatusCancelled, ""
	case errors.Is(sessionCtx.Err(), context.DeadlineExceeded):
		return session.StatusCancelled, "session exceeded its wall-clock cap"
	case out.end == nil:
		reason := out.lastError
		if reason == "" {
			reason = "agent stream ended without a result"
		}
		return session.StatusFailed, reason
	}

	switch out.end.Status {
	case agent.EndCompleted:
		return session.StatusCompleted, ""
	case agent.EndCancelled:
		return session.StatusCancelled, out.lastError
	default:
		reason := out.lastError
		if reason == "" {
			reason = "agent run failed"
		}
		return session.StatusFailed, reason
	}
}

// bail finalizes a session whose setup failed before the agent ran.
func (o *Orchestrator) bail(sess *ent.Session, writer *sessionlog.Writer, cause error) (*sessionResult, error) {
	reason := cause.Error()
	if writer != nil {
		logAppend(o.logger, writer.Error(string(services.KindOf(cause)), reason))
		if err := writer.Close(models.SessionStatusFailed, models.TokenUsage{}); err != nil {
			o.logger.Warn("Failed to close session log", "session_id", sess.ID, "error", err)
		}
	}
	finalized, err := o.sessions.FinalizeSession(context.Background(), sess.ID,
		session.StatusFailed, models.SessionCounters{}, nil, reason)
	if err != nil {
		return nil, err
	}
	o.publishStatus(finalized)
	return &sessionResult{session: finalized, status: session.StatusFailed}, nil
}

// runHeartbeat refreshes last_active_at so the stale sweeper can tell a
// live session from a dead process.
func (o *Orchestrator) runHeartbeat(ctx context.Context, sessionID string) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := o.sessions.Touch(ctx, sessionID); err != nil {
				o.logger.Warn("Session heartbeat failed", "session_id", sessionID, "error", err)
			}
		}
	}
}

// stopSandbox halts the container after a session but keeps it around for
// the next session to adopt. Only Destroy removes environments.
func (o *Orchestrator) stopSandbox(sb sandbox.Sandbox, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), sandboxStopTimeout)
	defer cancel()
	if err := sb.Stop(ctx, false); err != nil {
		log.Warn("Failed to stop sandbox after session", "error", err)
	}
}

func (o *Orchestrator) publishStarted(ctx context.Context, sess *ent.Session) {
	if o.publisher == nil {
		return
	}
	payload := events.SessionStartedPayload{
		BasePayload:   events.NewBase(events.EventTypeSessionStarted, sess.ProjectID),
		SessionNumber: sess.SessionNumber,
		Kind:          sess.Kind,
		Model:         sess.Model,
	}
	payload.SessionID = sess.ID
	if err := o.publisher.PublishSessionStarted(ctx, sess.ProjectID, payload); err != nil {
		o.logger.Warn("Failed to publish session started event", "session_id", sess.ID, "error", err)
	}
}

// publishStatus announces a terminal status. Runs on a background context:
// terminal events must go out even when the loop is being cancelled.
func (o *Orchestrator) publishStatus(sess *ent.Session) {
	if o.publisher == nil {
		return
	}
	payload := events.SessionStatusPayload{
		BasePayload:   events.NewBase(events.EventTypeSessionStatus, sess.ProjectID),
		SessionNumber: sess.SessionNumber,
		Status:        sess.Status,
	}
	if sess.FailureReason != nil {
		payload.FailureReason = *sess.FailureReason
	}
	payload.SessionID = sess.ID
	if err := o.publisher.PublishSessionStatus(context.Background(), sess.ProjectID, payload); err != nil {
		o.logger.Warn("Failed to publish session status event", "session_id", sess.ID, "error", err)
	}
}

func (o *Orchestrator) publishActivity(ctx context.Context, sess *ent.Session, toolName string, count int) {
	if o.publisher == nil {
		return
	}
	payload := events.AgentActivityPayload{
		BasePayload:  events.NewBase(events.EventTypeAgentActivity, sess.ProjectID),
		ToolName:     toolName,
		ToolUseCount: count,
	}
	payload.SessionID = sess.ID
	if err := o.publisher.PublishAgentActivity(ctx, sess.ProjectID, payload); err != nil {
		o.logger.Debug("Failed to publish agent activity event", "session_id", sess.ID, "error", err)
	}
}

func logAppend(log *slog.Logger, err error) {
	if err != nil {
		log.Warn("Failed to append session log record", "error", err)
	}
}
