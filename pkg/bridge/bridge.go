// Package bridge exposes the per-session "task-manager" MCP server the
// external agent calls back into. Every session gets its own Bridge bound
// to one project, one session log and one sandbox handle; handlers scope
// every read and mutation to that project, so an agent holding a foreign
// id gets a structured error instead of data.
//
// Tool failures never travel as protocol errors: handlers return a
// CallToolResult with IsError set and a JSON body of the form
// {"error":{"kind":...,"message":...}} so the agent can react to the
// taxonomy instead of an opaque transport fault.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ratchet-works/ratchet/ent"
	"github.com/ratchet-works/ratchet/pkg/events"
	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/sandbox"
	"github.com/ratchet-works/ratchet/pkg/services"
	"github.com/ratchet-works/ratchet/pkg/version"
)

// ServerName is the MCP server identity the agent addresses tools under.
const ServerName = "task-manager"

// Input bounds. Oversized inputs are rejected with a precondition error
// before any service call.
const (
	maxCommandBytes = 64 * 1024
	maxTextBytes    = 16 * 1024
)

// Executor runs a shell command inside the session's sandbox.
type Executor interface {
	Exec(ctx context.Context, command string, timeout time.Duration) (*sandbox.ExecResult, error)
}

// LogSink receives the session-log records the bridge produces directly
// (log_session notices and wrap-up markers). *sessionlog.Writer satisfies it.
type LogSink interface {
	Notice(subtype, content string) error
	MarkWrapUp(reason string) error
}

// Config wires one Bridge to its session.
type Config struct {
	ProjectID string
	SessionID string

	Roadmap *services.RoadmapService
	Sink    LogSink
	Exec    Executor

	// Publisher is optional; task transitions are announced best-effort.
	Publisher *events.EventPublisher

	// Policy caps exec timeouts. Zero ExecTimeoutSeconds defers to the
	// sandbox backend default.
	Policy models.SandboxPolicy

	Logger *slog.Logger
}

// Bridge is the per-session tool surface.
type Bridge struct {
	projectID string
	sessionID string
	roadmap   *services.RoadmapService
	sink      LogSink
	exec      Executor
	publisher *events.EventPublisher
	policy    models.SandboxPolicy
	logger    *slog.Logger
	server    *mcpsdk.Server
}

// New validates the wiring and builds the MCP server with the full tool
// catalog registered.
func New(cfg Config) (*Bridge, error) {
	if cfg.ProjectID == "" || cfg.SessionID == "" {
		return nil, fmt.Errorf("bridge requires project and session ids")
	}
	if cfg.Roadmap == nil {
		return nil, fmt.Errorf("bridge requires a roadmap service")
	}
	if cfg.Sink == nil {
		return nil, fmt.Errorf("bridge requires a log sink")
	}
	if cfg.Exec == nil {
		return nil, fmt.Errorf("bridge requires a sandbox executor")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	b := &Bridge{
		projectID: cfg.ProjectID,
		sessionID: cfg.SessionID,
		roadmap:   cfg.Roadmap,
		sink:      cfg.Sink,
		exec:      cfg.Exec,
		publisher: cfg.Publisher,
		policy:    cfg.Policy,
		logger: cfg.Logger.With(
			slog.String("component", "bridge"),
			slog.String("session_id", cfg.SessionID)),
	}

	b.server = mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    ServerName,
		Version: version.GitCommit,
	}, nil)
	for _, def := range b.toolDefs() {
		b.server.AddTool(&mcpsdk.Tool{
			Name:        def.name,
			Description: def.description,
			InputSchema: def.schema,
		}, b.handle(def.name, def.fn))
	}
	return b, nil
}

// Server returns the underlying MCP server for transport binding.
func (b *Bridge) Server() *mcpsdk.Server {
	return b.server
}

// SessionID reports the session this bridge is bound to.
func (b *Bridge) SessionID() string {
	return b.sessionID
}

// toolFunc is the uniform handler shape: decode arguments yourself,
// return any JSON-marshalable payload or a taxonomy error.
type toolFunc func(ctx context.Context, args json.RawMessage) (any, error)

type toolDef struct {
	name        string
	description string
	schema      json.RawMessage
	fn          toolFunc
}

// handle adapts a toolFunc to the SDK handler contract. Errors become
// structured tool results; the transport never sees a Go error from us.
func (b *Bridge) handle(name string, fn toolFunc) mcpsdk.ToolHandler {
	return func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		out, err := fn(ctx, req.Params.Arguments)
		if err != nil {
			b.logger.Warn("Tool call failed",
				slog.String("tool", name),
				slog.String("kind", string(services.KindOf(err))),
				slog.String("error", err.Error()))
			return toolError(err), nil
		}
		return toolSuccess(out)
	}
}

// toolErrorBody is the wire shape of a failed tool call.
type toolErrorBody struct {
	Error struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

func toolError(err error) *mcpsdk.CallToolResult {
	var body toolErrorBody
	body.Error.Kind = string(services.KindOf(err))
	if e, ok := services.AsError(err); ok {
		body.Error.Message = e.Message
	} else {
		body.Error.Message = err.Error()
	}
	raw, merr := json.Marshal(body)
	if merr != nil {
		raw = []byte(`{"error":{"kind":"storage","message":"failed to encode error"}}`)
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(raw)}},
		IsError: true,
	}
}

func toolSuccess(out any) (*mcpsdk.CallToolResult, error) {
	raw, err := json.Marshal(out)
	if err != nil {
		return toolError(services.NewStorageError(fmt.Errorf("encode tool result: %w", err))), nil
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(raw)}},
	}, nil
}

// decodeArgs unmarshals tool arguments, tolerating an absent body for
// zero-argument tools.
func decodeArgs(raw json.RawMessage, into any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return services.NewPreconditionError("invalid tool arguments: %v", err)
	}
	return nil
}

// boundedText enforces the text input cap on one field.
func boundedText(field, value string) error {
	if len(value) > maxTextBytes {
		return services.NewPreconditionError("%s exceeds %d bytes", field, maxTextBytes)
	}
	return nil
}

// publishTaskStatus announces a task transition; failures are logged and
// swallowed because event delivery must never fail a mutation the agent
// already committed.
func (b *Bridge) publishTaskStatus(ctx context.Context, t *ent.Task) {
	if b.publisher == nil || t == nil {
		return
	}
	payload := events.TaskStatusPayload{
		BasePayload: events.NewBase(events.EventTypeTaskStatus, b.projectID),
		EpicID:      t.EpicID,
		TaskID:      t.ID,
		Status:      t.Status,
	}
	payload.SessionID = b.sessionID
	if err := b.publisher.PublishTaskStatus(ctx, b.projectID, payload); err != nil {
		b.logger.Warn("Failed to publish task status event",
			slog.String("task_id", t.ID),
			slog.String("error", err.Error()))
	}
}

// --- response views ---
// Tool responses use stable lightweight views instead of raw rows so the
// agent-facing shape does not drift with schema internals.

type epicView struct {
	ID          string `json:"id"`
	Ordinal     int    `json:"ordinal"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}

func newEpicView(e *ent.Epic) epicView {
	return epicView{
		ID:          e.ID,
		Ordinal:     e.Ordinal,
		Title:       e.Title,
		Description: e.Description,
		Status:      string(e.Status),
	}
}

type taskView struct {
	ID          string `json:"id"`
	EpicID      string `json:"epic_id"`
	Ordinal     int    `json:"ordinal"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}

func newTaskView(t *ent.Task) taskView {
	return taskView{
		ID:          t.ID,
		EpicID:      t.EpicID,
		Ordinal:     t.Ordinal,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
	}
}

type testView struct {
	ID               string `json:"id"`
	TaskID           string `json:"task_id"`
	Description      string `json:"description"`
	Outcome          string `json:"outcome"`
	VerificationNote string `json:"verification_note,omitempty"`
}

func newTestView(tt *ent.TaskTest) testView {
	return testView{
		ID:               tt.ID,
		TaskID:           tt.TaskID,
		Description:      tt.Description,
		Outcome:          string(tt.Outcome),
		VerificationNote: deref(tt.VerificationNote),
	}
}

// deref safely dereferences a *string, returning "" if nil.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
