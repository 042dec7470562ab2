package bridge

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/sandbox"
	"github.com/ratchet-works/ratchet/pkg/services"
	testdb "github.com/ratchet-works/ratchet/test/database"
)

type fakeExec struct {
	mu          sync.Mutex
	lastCommand string
	lastTimeout time.Duration
	calls       int
	result      *sandbox.ExecResult
	err         error
}

func (f *fakeExec) Exec(_ context.Context, command string, timeout time.Duration) (*sandbox.ExecResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastCommand = command
	f.lastTimeout = timeout
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &sandbox.ExecResult{Stdout: "ok"}, nil
}

type fakeSink struct {
	mu      sync.Mutex
	notices []string
	wrapUp  bool
}

func (f *fakeSink) Notice(subtype, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, subtype+": "+content)
	return nil
}

func (f *fakeSink) MarkWrapUp(reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.wrapUp = true
	f.notices = append(f.notices, "wrap_up: "+reason)
	return nil
}

type bridgeFixture struct {
	projectID string
	otherID   string
	roadmap   *services.RoadmapService
	sink      *fakeSink
	exec      *fakeExec
	bridge    *Bridge
	session   *mcpsdk.ClientSession
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newBridgeFixture stands up a DB-backed bridge plus a second project for
// ownership checks. The bridge is built but not yet connected.
func newBridgeFixture(t *testing.T) *bridgeFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	logger := testLogger()

	projects := services.NewProjectService(client.Client, logger, t.TempDir())
	roadmap := services.NewRoadmapService(client.Client, logger)

	proj, err := projects.CreateProject(context.Background(), models.CreateProjectInput{
		Name:        "bridge-project",
		SpecContent: "Build a notes app.",
	})
	require.NoError(t, err)
	other, err := projects.CreateProject(context.Background(), models.CreateProjectInput{
		Name:        "other-project",
		SpecContent: "Build something else.",
	})
	require.NoError(t, err)

	f := &bridgeFixture{
		projectID: proj.ID,
		otherID:   other.ID,
		roadmap:   roadmap,
		sink:      &fakeSink{},
		exec:      &fakeExec{},
	}

	f.bridge, err = New(Config{
		ProjectID: proj.ID,
		SessionID: "sess-test-1",
		Roadmap:   roadmap,
		Sink:      f.sink,
		Exec:      f.exec,
		Policy:    models.SandboxPolicy{Kind: models.SandboxContainer, ExecTimeoutSeconds: 60},
		Logger:    logger,
	})
	require.NoError(t, err)

	return f
}

// setupBridge connects the fixture's bridge over in-memory transports.
func setupBridge(t *testing.T) *bridgeFixture {
	t.Helper()
	f := newBridgeFixture(t)

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = f.bridge.Server().Run(ctx, serverTransport) }()

	sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "bridge-test", Version: "test"}, nil)
	session, err := sdkClient.Connect(context.Background(), clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	f.session = session

	return f
}

// call invokes a tool and returns its decoded JSON body plus the IsError flag.
func (f *bridgeFixture) call(t *testing.T, name string, args map[string]any) (map[string]any, bool) {
	t.Helper()
	res, err := f.session.CallTool(context.Background(), &mcpsdk.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err, "tool %s must not fail at the protocol level", name)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &body), "tool %s returned non-JSON: %s", name, text.Text)
	return body, res.IsError
}

// errorKind digs the taxonomy kind out of a failed call body.
func errorKind(t *testing.T, body map[string]any) string {
	t.Helper()
	e, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected an error body, got %v", body)
	kind, _ := e["kind"].(string)
	return kind
}

func TestBridgeToolCatalog(t *testing.T) {
	f := setupBridge(t)

	res, err := f.session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, len(res.Tools))
	for i, tool := range res.Tools {
		names[i] = tool.Name
	}
	expected := []string{
		"task_status", "get_next_task", "list_epics", "get_epic",
		"list_tasks", "get_task", "list_tests", "update_task_status",
		"start_task", "update_test_result", "create_epic", "create_task",
		"create_test", "expand_epic", "log_session", "exec",
	}
	assert.ElementsMatch(t, expected, names)
}

func TestBridgeRoadmapFlow(t *testing.T) {
	f := setupBridge(t)

	body, isErr := f.call(t, "create_epic", map[string]any{"ordinal": 1, "title": "Foundation"})
	require.False(t, isErr, "create_epic: %v", body)
	epicID := body["epic"].(map[string]any)["id"].(string)

	body, isErr = f.call(t, "create_task", map[string]any{"epic_id": epicID, "ordinal": 1, "title": "Scaffold app"})
	require.False(t, isErr, "create_task: %v", body)
	taskID := body["task"].(map[string]any)["id"].(string)

	body, isErr = f.call(t, "create_test", map[string]any{"task_id": taskID, "description": "app boots"})
	require.False(t, isErr, "create_test: %v", body)
	testID := body["test"].(map[string]any)["id"].(string)

	body, isErr = f.call(t, "task_status", nil)
	require.False(t, isErr)
	assert.Equal(t, float64(1), body["total_tasks"])
	assert.Equal(t, false, body["complete"])

	body, isErr = f.call(t, "get_next_task", nil)
	require.False(t, isErr)
	next := body["task"].(map[string]any)
	assert.Equal(t, taskID, next["task_id"])

	body, isErr = f.call(t, "start_task", map[string]any{"task_id": taskID})
	require.False(t, isErr)
	assert.Equal(t, "in_progress", body["task"].(map[string]any)["status"])

	body, isErr = f.call(t, "update_test_result", map[string]any{
		"test_id": testID, "outcome": "pass", "note": "verified in browser",
	})
	require.False(t, isErr)
	assert.Equal(t, "pass", body["test"].(map[string]any)["outcome"])

	body, isErr = f.call(t, "update_task_status", map[string]any{"task_id": taskID, "done": true})
	require.False(t, isErr)
	assert.Equal(t, "done", body["task"].(map[string]any)["status"])

	body, isErr = f.call(t, "task_status", nil)
	require.False(t, isErr)
	assert.Equal(t, true, body["complete"])

	body, isErr = f.call(t, "get_next_task", nil)
	require.False(t, isErr)
	assert.Nil(t, body["task"], "completed roadmap has no next task")
}

func TestBridgeCascadeEnforcement(t *testing.T) {
	f := setupBridge(t)

	body, _ := f.call(t, "create_epic", map[string]any{"ordinal": 1, "title": "Core"})
	epicID := body["epic"].(map[string]any)["id"].(string)
	body, _ = f.call(t, "create_task", map[string]any{"epic_id": epicID, "ordinal": 1, "title": "Login"})
	taskID := body["task"].(map[string]any)["id"].(string)
	body, _ = f.call(t, "create_test", map[string]any{"task_id": taskID, "description": "valid login works"})
	test1 := body["test"].(map[string]any)["id"].(string)
	body, _ = f.call(t, "create_test", map[string]any{"task_id": taskID, "description": "bad password rejected"})
	test2 := body["test"].(map[string]any)["id"].(string)

	// Both tests unknown: marking done must fail without changing the task.
	body, isErr := f.call(t, "update_task_status", map[string]any{"task_id": taskID, "done": true})
	require.True(t, isErr)
	assert.Equal(t, "precondition", errorKind(t, body))

	body, _ = f.call(t, "get_task", map[string]any{"task_id": taskID})
	assert.Equal(t, "pending", body["task"].(map[string]any)["status"])

	for _, id := range []string{test1, test2} {
		_, isErr = f.call(t, "update_test_result", map[string]any{"test_id": id, "outcome": "pass", "note": "checked"})
		require.False(t, isErr)
	}
	body, isErr = f.call(t, "update_task_status", map[string]any{"task_id": taskID, "done": true})
	require.False(t, isErr)
	assert.Equal(t, "done", body["task"].(map[string]any)["status"])

	// A late failure re-opens the task.
	body, isErr = f.call(t, "update_test_result", map[string]any{"test_id": test1, "outcome": "fail", "note": "regression"})
	require.False(t, isErr)
	assert.Equal(t, "in_progress", body["task"].(map[string]any)["status"])
}

func TestBridgeOwnershipScoping(t *testing.T) {
	f := setupBridge(t)

	// Build a roadmap under the OTHER project directly via the service.
	otherEpic, err := f.roadmap.CreateEpic(context.Background(), f.otherID,
		models.CreateEpicInput{Ordinal: 1, Title: "Foreign"})
	require.NoError(t, err)
	otherTask, err := f.roadmap.CreateTask(context.Background(), f.otherID,
		models.CreateTaskInput{EpicID: otherEpic.ID, Ordinal: 1, Title: "Foreign task"})
	require.NoError(t, err)

	body, isErr := f.call(t, "get_epic", map[string]any{"epic_id": otherEpic.ID})
	require.True(t, isErr)
	assert.Equal(t, "forbidden", errorKind(t, body))

	body, isErr = f.call(t, "start_task", map[string]any{"task_id": otherTask.ID})
	require.True(t, isErr)
	assert.Equal(t, "forbidden", errorKind(t, body))

	body, isErr = f.call(t, "get_task", map[string]any{"task_id": "no-such-task"})
	require.True(t, isErr)
	assert.Equal(t, "not_found", errorKind(t, body))
}

func TestBridgeExpandEpic(t *testing.T) {
	f := setupBridge(t)

	body, _ := f.call(t, "create_epic", map[string]any{"ordinal": 1, "title": "Payments"})
	epicID := body["epic"].(map[string]any)["id"].(string)

	body, isErr := f.call(t, "expand_epic", map[string]any{
		"epic_id": epicID,
		"tasks": []map[string]any{
			{"ordinal": 1, "title": "Checkout form", "tests": []string{"form renders", "submit charges card"}},
			{"ordinal": 2, "title": "Receipts", "description": "email receipts", "tests": []string{"receipt sent"}},
		},
	})
	require.False(t, isErr, "expand_epic: %v", body)
	assert.Equal(t, float64(2), body["created"])

	tasks := body["tasks"].([]any)
	firstID := tasks[0].(map[string]any)["id"].(string)
	body, isErr = f.call(t, "list_tests", map[string]any{"task_id": firstID})
	require.False(t, isErr)
	assert.Len(t, body["tests"].([]any), 2)
}

func TestBridgeExecTool(t *testing.T) {
	f := setupBridge(t)
	f.exec.result = &sandbox.ExecResult{Stdout: "hello\n", Stderr: "warn\n", ExitCode: 2}

	body, isErr := f.call(t, "exec", map[string]any{"command": "npm test"})
	require.False(t, isErr, "non-zero exit is a result, not a tool error")
	assert.Equal(t, "hello\n", body["stdout"])
	assert.Equal(t, "warn\n", body["stderr"])
	assert.Equal(t, float64(2), body["exit_code"])
	assert.Equal(t, false, body["killed"])

	assert.Equal(t, "npm test", f.exec.lastCommand)
	assert.Equal(t, 60*time.Second, f.exec.lastTimeout, "no explicit timeout defers to the policy cap")
}

func TestBridgeExecTimeoutClamp(t *testing.T) {
	f := setupBridge(t)

	_, isErr := f.call(t, "exec", map[string]any{"command": "sleep 1", "timeout_seconds": 9999})
	require.False(t, isErr)
	assert.Equal(t, 60*time.Second, f.exec.lastTimeout, "requests beyond the policy cap are clamped")

	_, isErr = f.call(t, "exec", map[string]any{"command": "sleep 1", "timeout_seconds": 5})
	require.False(t, isErr)
	assert.Equal(t, 5*time.Second, f.exec.lastTimeout)
}

func TestBridgeExecDenied(t *testing.T) {
	f := setupBridge(t)
	f.exec.err = services.NewSecurityDeniedError("command blocked: sudo")

	body, isErr := f.call(t, "exec", map[string]any{"command": "sudo rm -rf /"})
	require.True(t, isErr)
	assert.Equal(t, "security_denied", errorKind(t, body))
}

func TestBridgeExecCommandBound(t *testing.T) {
	f := setupBridge(t)

	long := strings.Repeat("x", maxCommandBytes+1)
	body, isErr := f.call(t, "exec", map[string]any{"command": long})
	require.True(t, isErr)
	assert.Equal(t, "precondition", errorKind(t, body))
	assert.Zero(t, f.exec.calls, "oversized commands must never reach the sandbox")
}

func TestBridgeTextBound(t *testing.T) {
	f := setupBridge(t)

	long := strings.Repeat("d", maxTextBytes+1)
	body, isErr := f.call(t, "create_epic", map[string]any{"ordinal": 1, "title": "ok", "description": long})
	require.True(t, isErr)
	assert.Equal(t, "precondition", errorKind(t, body))
}

func TestBridgeLogSession(t *testing.T) {
	f := setupBridge(t)

	body, isErr := f.call(t, "log_session", map[string]any{"message": "finished the login flow"})
	require.False(t, isErr)
	assert.Equal(t, false, body["wrap_up"])
	assert.False(t, f.sink.wrapUp)
	require.Len(t, f.sink.notices, 1)
	assert.Equal(t, "session_log: finished the login flow", f.sink.notices[0])

	body, isErr = f.call(t, "log_session", map[string]any{"message": "roadmap done, stop here", "wrap_up": true})
	require.False(t, isErr)
	assert.Equal(t, true, body["wrap_up"])
	assert.True(t, f.sink.wrapUp)
}

func TestBridgeMissingArguments(t *testing.T) {
	f := setupBridge(t)

	body, isErr := f.call(t, "get_epic", map[string]any{"epic_id": ""})
	require.True(t, isErr)
	assert.Equal(t, "precondition", errorKind(t, body))

	body, isErr = f.call(t, "log_session", map[string]any{"message": ""})
	require.True(t, isErr)
	assert.Equal(t, "precondition", errorKind(t, body))
}

func TestBridgeConfigValidation(t *testing.T) {
	_, err := New(Config{SessionID: "s"})
	require.Error(t, err)

	_, err = New(Config{ProjectID: "p", SessionID: "s"})
	require.Error(t, err, "roadmap service is required")
}

func TestAllowedToolsNaming(t *testing.T) {
	tools := AllowedTools()
	assert.Len(t, tools, 16)
	for _, name := range tools {
		assert.True(t, strings.HasPrefix(name, "mcp__task-manager__"), name)
	}
	assert.Contains(t, tools, "mcp__task-manager__exec")
	assert.Contains(t, tools, "mcp__task-manager__get_next_task")
}
