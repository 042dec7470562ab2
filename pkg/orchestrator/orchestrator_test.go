package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/ent"
	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/pkg/agent"
	"github.com/ratchet-works/ratchet/pkg/bridge"
	"github.com/ratchet-works/ratchet/pkg/config"
	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/review"
	"github.com/ratchet-works/ratchet/pkg/sandbox"
	"github.com/ratchet-works/ratchet/pkg/services"
	"github.com/ratchet-works/ratchet/pkg/sessionlog"
	testdb "github.com/ratchet-works/ratchet/test/database"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// scriptStep drives one Client.Run call of the scripted agent.
type scriptStep struct {
	// startErr fails the Run call itself, before any event is produced.
	startErr error
	// action runs synchronously before the events are streamed, standing in
	// for the state changes a real agent would make through the bridge.
	action func(ctx context.Context, inv agent.Invocation)
	events []agent.Event
	// hangUntilCancel blocks after the listed events until the run context
	// is cancelled, then emits a cancelled end event.
	hangUntilCancel bool
}

// scriptedClient replays queued steps, one per Run call. An exhausted queue
// yields an immediately completed run.
type scriptedClient struct {
	mu    sync.Mutex
	steps []scriptStep
	calls []agent.Invocation
}

func (c *scriptedClient) enqueue(steps ...scriptStep) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.steps = append(c.steps, steps...)
}

func (c *scriptedClient) invocations() []agent.Invocation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]agent.Invocation(nil), c.calls...)
}

func (c *scriptedClient) Run(ctx context.Context, inv agent.Invocation) (<-chan agent.Event, error) {
	c.mu.Lock()
	c.calls = append(c.calls, inv)
	step := scriptStep{events: []agent.Event{endCompleted()}}
	if len(c.steps) > 0 {
		step = c.steps[0]
		c.steps = c.steps[1:]
	}
	c.mu.Unlock()

	if step.startErr != nil {
		return nil, step.startErr
	}
	if step.action != nil {
		step.action(ctx, inv)
	}

	ch := make(chan agent.Event)
	go func() {
		defer close(ch)
		for _, ev := range step.events {
			select {
			case ch <- ev:
			case <-ctx.Done():
				ch <- agent.EndEvent{Status: agent.EndCancelled}
				return
			}
		}
		if step.hangUntilCancel {
			<-ctx.Done()
			ch <- agent.EndEvent{Status: agent.EndCancelled, Duration: time.Second}
		}
	}()
	return ch, nil
}

// fakeSandbox satisfies sandbox.Sandbox without a container runtime.
type fakeSandbox struct {
	mu    sync.Mutex
	stops int
}

func (s *fakeSandbox) Start(context.Context) error { return nil }

func (s *fakeSandbox) Exec(_ context.Context, command string, _ time.Duration) (*sandbox.ExecResult, error) {
	return &sandbox.ExecResult{Stdout: "ok", ExitCode: 0}, nil
}

func (s *fakeSandbox) Stop(_ context.Context, _ bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stops++
	return nil
}

func (s *fakeSandbox) Destroy(context.Context) error { return nil }
func (s *fakeSandbox) Health(context.Context) error  { return nil }
func (s *fakeSandbox) Kind() models.SandboxKind      { return models.SandboxContainer }

func (s *fakeSandbox) stopCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stops
}

// fakeProvider hands out the shared fakeSandbox, optionally failing the
// first acquisitions.
type fakeProvider struct {
	mu       sync.Mutex
	box      *fakeSandbox
	failures int
	acquires []bool
}

func (p *fakeProvider) Acquire(_ context.Context, _ sandbox.ProjectRef, fresh bool) (sandbox.Sandbox, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.acquires = append(p.acquires, fresh)
	if p.failures > 0 {
		p.failures--
		return nil, services.NewSandboxUnavailableError(fmt.Errorf("container runtime unavailable"))
	}
	return p.box, nil
}

func (p *fakeProvider) freshFlags() []bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]bool(nil), p.acquires...)
}

type orchFixture struct {
	cfg       *config.Config
	orch      *Orchestrator
	agent     *scriptedClient
	sandboxes *fakeProvider
	projects  *services.ProjectService
	sessions  *services.SessionService
	roadmap   *services.RoadmapService
	quality   *services.QualityService
}

func setupOrchestrator(t *testing.T) *orchFixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	logger := testLogger()

	projects := services.NewProjectService(db.Client, logger, t.TempDir())
	sessions := services.NewSessionService(db.Client, logger)
	roadmap := services.NewRoadmapService(db.Client, logger)
	quality := services.NewQualityService(db.Client, logger)

	host := bridge.NewHost(logger)
	require.NoError(t, host.Start())
	t.Cleanup(func() { _ = host.Close(context.Background()) })

	cfg := &config.Config{
		Project:         config.DefaultProjectConfig(),
		Models:          config.DefaultModelsConfig(),
		Agent:           config.DefaultAgentConfig(),
		SandboxDefaults: config.DefaultSandboxPolicy(),
		Orchestrator:    config.DefaultOrchestratorConfig(),
		Review:          config.DefaultReviewConfig(),
		Guard:           config.DefaultGuardConfig(),
		Retention:       config.DefaultRetentionConfig(),
	}
	cfg.Orchestrator.AutoContinueDelay = 5 * time.Millisecond
	cfg.Orchestrator.StorageBackoffInitial = 5 * time.Millisecond
	cfg.Orchestrator.StorageBackoffCap = 20 * time.Millisecond

	agentClient := &scriptedClient{}
	provider := &fakeProvider{box: &fakeSandbox{}}
	analyzer := review.NewAnalyzer(cfg.Review, cfg.Models.Review, quality, sessions, nil, nil, logger)

	f := &orchFixture{
		cfg:       cfg,
		agent:     agentClient,
		sandboxes: provider,
		projects:  projects,
		sessions:  sessions,
		roadmap:   roadmap,
		quality:   quality,
	}
	f.orch = New(cfg, projects, sessions, roadmap, provider, host, agentClient, analyzer, nil, logger)
	return f
}

func (f *orchFixture) createProject(t *testing.T, name string) *ent.Project {
	t.Helper()
	return f.createProjectWithPolicy(t, name, &models.SandboxPolicy{Kind: models.SandboxContainer})
}

func (f *orchFixture) createProjectWithPolicy(t *testing.T, name string, policy *models.SandboxPolicy) *ent.Project {
	t.Helper()
	proj, err := f.projects.CreateProject(context.Background(), models.CreateProjectInput{
		Name:        name,
		SpecContent: "Build a recipe box app with search, tagging and weekly meal plans.",
		Policy:      policy,
	})
	require.NoError(t, err)
	return proj
}

// seedRoadmap lays down one epic with taskCount tasks, one test each.
func (f *orchFixture) seedRoadmap(t *testing.T, projectID string, taskCount int) {
	t.Helper()
	ctx := context.Background()
	epic, err := f.roadmap.CreateEpic(ctx, projectID, models.CreateEpicInput{Ordinal: 1, Title: "Core features"})
	require.NoError(t, err)
	for i := 1; i <= taskCount; i++ {
		task, err := f.roadmap.CreateTask(ctx, projectID, models.CreateTaskInput{
			EpicID: epic.ID, Ordinal: i, Title: fmt.Sprintf("Feature %d", i),
		})
		require.NoError(t, err)
		_, err = f.roadmap.CreateTest(ctx, projectID, models.CreateTestInput{
			TaskID: task.ID, Description: "works when clicked through in the browser",
		})
		require.NoError(t, err)
	}
}

// seedSessionZero records a finished initializer so the next session is a
// coding one.
func (f *orchFixture) seedSessionZero(t *testing.T, projectID string) {
	t.Helper()
	ctx := context.Background()
	sess, err := f.sessions.CreateSession(ctx, projectID, session.KindInitializer, "test-model", "init-v1")
	require.NoError(t, err)
	_, err = f.sessions.FinalizeSession(ctx, sess.ID, session.StatusCompleted, models.SessionCounters{}, nil, "")
	require.NoError(t, err)
}

func (f *orchFixture) seedInitialized(t *testing.T, name string, taskCount int) *ent.Project {
	t.Helper()
	proj := f.createProject(t, name)
	f.seedRoadmap(t, proj.ID, taskCount)
	f.seedSessionZero(t, proj.ID)
	return proj
}

// completeNextTask performs, through the services, the mutations a real
// agent would make over the bridge: claim the next task, pass its tests,
// mark it done.
func (f *orchFixture) completeNextTask(t *testing.T, projectID string) func(context.Context, agent.Invocation) {
	return func(ctx context.Context, _ agent.Invocation) {
		next, err := f.roadmap.GetNextTask(ctx, projectID)
		require.NoError(t, err)
		require.NotNil(t, next)
		_, err = f.roadmap.StartTask(ctx, projectID, next.TaskID)
		require.NoError(t, err)
		tests, err := f.roadmap.ListTests(ctx, projectID, next.TaskID)
		require.NoError(t, err)
		for _, tc := range tests {
			_, err = f.roadmap.UpdateTestResult(ctx, projectID, tc.ID, models.TestOutcomePass, "clicked through the flow")
			require.NoError(t, err)
		}
		_, err = f.roadmap.UpdateTaskStatus(ctx, projectID, next.TaskID, true)
		require.NoError(t, err)
	}
}

func endCompleted() agent.EndEvent {
	return agent.EndEvent{
		Status:   agent.EndCompleted,
		Duration: 2 * time.Second,
		Tokens:   models.TokenUsage{Input: 1500, Output: 600},
	}
}

func toolOK(name string) []agent.Event {
	return []agent.Event{
		agent.ToolUseEvent{ID: "tu-" + name, Name: name, Input: `{}`},
		agent.ToolResultEvent{ToolUseID: "tu-" + name, Name: name, Content: `{"ok":true}`, Duration: 40 * time.Millisecond},
	}
}

func toolFail(name string, i int) []agent.Event {
	id := fmt.Sprintf("tu-%s-%d", name, i)
	return []agent.Event{
		agent.ToolUseEvent{ID: id, Name: name, Input: `{}`},
		agent.ToolResultEvent{ToolUseID: id, Name: name, Content: "command failed", IsError: true, Duration: 40 * time.Millisecond},
	}
}

// goodSessionEvents is a plausible productive session: some text, a bridge
// call, a browser verification, a clean end.
func goodSessionEvents() []agent.Event {
	evs := []agent.Event{
		agent.StartEvent{AgentSessionID: "conv-0001", Model: "test-model"},
		agent.TextEvent{Text: "Picking up the next task."},
	}
	evs = append(evs, toolOK("mcp__task-manager__get_next_task")...)
	evs = append(evs, toolOK("mcp__playwright__browser_navigate")...)
	return append(evs, endCompleted())
}

func TestRunProjectInitializerHaltsForReview(t *testing.T) {
	f := setupOrchestrator(t)
	proj := f.createProject(t, "recipe-box")

	f.agent.enqueue(scriptStep{
		action: func(ctx context.Context, _ agent.Invocation) {
			epic, err := f.roadmap.CreateEpic(ctx, proj.ID, models.CreateEpicInput{Ordinal: 1, Title: "Foundation"})
			require.NoError(t, err)
			task, err := f.roadmap.CreateTask(ctx, proj.ID, models.CreateTaskInput{EpicID: epic.ID, Ordinal: 1, Title: "Scaffold the app"})
			require.NoError(t, err)
			_, err = f.roadmap.CreateTest(ctx, proj.ID, models.CreateTestInput{TaskID: task.ID, Description: "app boots"})
			require.NoError(t, err)
		},
		events: goodSessionEvents(),
	})

	res, err := f.orch.RunProject(context.Background(), proj.ID, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, HaltInitializer, res.Halt)
	assert.Equal(t, 1, res.SessionsRun)
	assert.Equal(t, 0, res.CodingRuns)
	require.NotNil(t, res.LastSession)
	assert.Equal(t, 0, res.LastSession.SessionNumber)
	assert.Equal(t, session.KindInitializer, res.LastSession.Kind)
	assert.Equal(t, session.StatusCompleted, res.LastSession.Status)

	// The invocation carried the spec, the bridge config and the catalog.
	calls := f.agent.invocations()
	require.Len(t, calls, 1)
	assert.Equal(t, "initializer", calls[0].Kind)
	assert.Contains(t, calls[0].Prompt, "recipe box app")
	assert.Contains(t, calls[0].MCPConfig, bridge.ServerName)
	assert.Len(t, calls[0].AllowedTools, 16)

	// First session provisions fresh; the container is stopped but kept.
	assert.Equal(t, []bool{true}, f.sandboxes.freshFlags())
	assert.Equal(t, 1, f.sandboxes.box.stopCount())

	// The structured log is complete: header first, footer last.
	logPath := filepath.Join(sessionlog.LogsDir(proj.Workspace), sessionlog.JSONLName(0, "initializer"))
	records, err := sessionlog.ParseFile(logPath)
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, sessionlog.EventSessionStart, records[0].Event)
	footer := records[len(records)-1]
	assert.Equal(t, sessionlog.EventSessionEnd, footer.Event)
	assert.Equal(t, "completed", footer.Status)

	// The quick quality check landed synchronously.
	check, err := f.quality.GetQualityCheck(context.Background(), res.LastSession.ID, models.CheckTypeQuick)
	require.NoError(t, err)
	assert.Equal(t, 10, check.Rating)
}

func TestRunProjectChainsUntilRoadmapDone(t *testing.T) {
	f := setupOrchestrator(t)
	proj := f.seedInitialized(t, "chaining", 2)

	f.agent.enqueue(
		scriptStep{action: f.completeNextTask(t, proj.ID), events: goodSessionEvents()},
		scriptStep{action: f.completeNextTask(t, proj.ID), events: goodSessionEvents()},
	)

	res, err := f.orch.RunProject(context.Background(), proj.ID, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, HaltRoadmapDone, res.Halt)
	assert.Equal(t, 2, res.SessionsRun)
	assert.Equal(t, 2, res.CodingRuns)
	require.NotNil(t, res.Progress)
	assert.True(t, res.Progress.Done())

	all, err := f.sessions.ListSessions(context.Background(), proj.ID)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, session.KindInitializer, all[0].Kind)
	for i, s := range all[1:] {
		assert.Equal(t, i+1, s.SessionNumber)
		assert.Equal(t, session.KindCoding, s.Kind)
		assert.Equal(t, session.StatusCompleted, s.Status)
	}

	// Each coding prompt carries the current roadmap state.
	calls := f.agent.invocations()
	require.Len(t, calls, 2)
	assert.Contains(t, calls[0].Prompt, "Tasks: 0/2")
	assert.Contains(t, calls[0].Prompt, "Next up")
	assert.Contains(t, calls[1].Prompt, "Tasks: 1/2")

	// The surviving environment is adopted, never recreated mid-run.
	assert.Equal(t, []bool{false, false}, f.sandboxes.freshFlags())
}

func TestRunProjectHaltsAfterConsecutiveFailures(t *testing.T) {
	f := setupOrchestrator(t)
	proj := f.seedInitialized(t, "flaky", 3)

	failing := scriptStep{events: []agent.Event{
		agent.TextEvent{Text: "Something is off with the build."},
		agent.EndEvent{Status: agent.EndFailed, Duration: time.Second},
	}}
	f.agent.enqueue(failing, failing)

	res, err := f.orch.RunProject(context.Background(), proj.ID, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, HaltFailures, res.Halt)
	assert.Equal(t, 2, res.SessionsRun)
	require.NotNil(t, res.LastSession)
	assert.Equal(t, session.StatusFailed, res.LastSession.Status)
	require.NotNil(t, res.LastSession.FailureReason)
	assert.Equal(t, "agent run failed", *res.LastSession.FailureReason)
}

func TestRunProjectIterationBudget(t *testing.T) {
	f := setupOrchestrator(t)
	proj := f.seedInitialized(t, "budgeted", 3)

	// Two sessions that finish cleanly without moving the roadmap.
	f.agent.enqueue(
		scriptStep{events: goodSessionEvents()},
		scriptStep{events: goodSessionEvents()},
	)

	res, err := f.orch.RunProject(context.Background(), proj.ID, RunOptions{Iterations: 2})
	require.NoError(t, err)

	assert.Equal(t, HaltBudget, res.Halt)
	assert.Equal(t, 2, res.CodingRuns)
	require.NotNil(t, res.Progress)
	assert.False(t, res.Progress.Done())
}

func TestStopAfterCurrentFinishesSessionFirst(t *testing.T) {
	f := setupOrchestrator(t)
	proj := f.seedInitialized(t, "stoppable", 3)

	assert.False(t, f.orch.StopAfterCurrent(proj.ID), "no loop in flight yet")

	f.agent.enqueue(scriptStep{
		action: func(context.Context, agent.Invocation) {
			require.True(t, f.orch.StopAfterCurrent(proj.ID))
		},
		events: goodSessionEvents(),
	})

	res, err := f.orch.RunProject(context.Background(), proj.ID, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, HaltStopRequested, res.Halt)
	assert.Equal(t, 1, res.SessionsRun)
	assert.Equal(t, session.StatusCompleted, res.LastSession.Status)
}

func TestCancelInterruptsInFlightSession(t *testing.T) {
	f := setupOrchestrator(t)
	proj := f.seedInitialized(t, "cancellable", 3)

	f.agent.enqueue(scriptStep{
		events:          []agent.Event{agent.TextEvent{Text: "working..."}},
		hangUntilCancel: true,
	})

	type outcome struct {
		res *RunResult
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := f.orch.RunProject(context.Background(), proj.ID, RunOptions{})
		done <- outcome{res, err}
	}()

	require.Eventually(t, func() bool {
		open, err := f.sessions.ListOpenSessions(context.Background(), proj.ID)
		return err == nil && len(open) == 1
	}, 10*time.Second, 10*time.Millisecond)

	require.True(t, f.orch.Cancel(proj.ID))

	var out outcome
	select {
	case out = <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("project loop did not halt after cancel")
	}
	require.NoError(t, out.err)
	assert.Equal(t, HaltCancelled, out.res.Halt)
	require.NotNil(t, out.res.LastSession)
	assert.Equal(t, session.StatusCancelled, out.res.LastSession.Status)

	// The registry slot is freed once the loop returns.
	assert.False(t, f.orch.Cancel(proj.ID))
}

// bearerRoundTripper injects the bridge token the way the agent CLI does.
type bearerRoundTripper struct {
	token string
}

func (rt *bearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+rt.token)
	return http.DefaultTransport.RoundTrip(req)
}

func TestRunProjectWrapUpHaltsLoop(t *testing.T) {
	f := setupOrchestrator(t)
	proj := f.seedInitialized(t, "wrapping", 3)

	// The scripted agent connects to the rendered MCP endpoint and asks to
	// wrap up, exercising the full host and bridge path.
	f.agent.enqueue(scriptStep{
		action: func(ctx context.Context, inv agent.Invocation) {
			var cfg struct {
				Servers map[string]struct {
					URL     string            `json:"url"`
					Headers map[string]string `json:"headers"`
				} `json:"mcpServers"`
			}
			require.NoError(t, json.Unmarshal([]byte(inv.MCPConfig), &cfg))
			entry, ok := cfg.Servers[bridge.ServerName]
			require.True(t, ok)
			token := strings.TrimPrefix(entry.Headers["Authorization"], "Bearer ")

			transport := &mcpsdk.StreamableClientTransport{
				Endpoint:   entry.URL,
				HTTPClient: &http.Client{Transport: &bearerRoundTripper{token: token}},
			}
			client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "loop-test", Version: "test"}, nil)
			mcpSession, err := client.Connect(ctx, transport, nil)
			require.NoError(t, err)
			defer mcpSession.Close()

			res, err := mcpSession.CallTool(ctx, &mcpsdk.CallToolParams{
				Name:      "log_session",
				Arguments: map[string]any{"message": "auth flow works; good stopping point", "wrap_up": true},
			})
			require.NoError(t, err)
			require.False(t, res.IsError)
		},
		events: goodSessionEvents(),
	})

	res, err := f.orch.RunProject(context.Background(), proj.ID, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, HaltWrapUp, res.Halt)
	assert.Equal(t, 1, res.SessionsRun)
	assert.Equal(t, session.StatusCompleted, res.LastSession.Status)
	require.NotNil(t, res.LastSession.Metrics)
	assert.Equal(t, true, res.LastSession.Metrics[models.MetricWrapUpRequested])
}

func TestRunProjectCodingWithoutRoadmapFailsFast(t *testing.T) {
	f := setupOrchestrator(t)
	proj := f.createProject(t, "no-roadmap")
	ctx := context.Background()

	// A cancelled initializer left no roadmap behind.
	sess, err := f.sessions.CreateSession(ctx, proj.ID, session.KindInitializer, "test-model", "init-v1")
	require.NoError(t, err)
	_, err = f.sessions.FinalizeSession(ctx, sess.ID, session.StatusCancelled, models.SessionCounters{}, nil, "operator interrupt")
	require.NoError(t, err)

	_, err = f.orch.RunProject(ctx, proj.ID, RunOptions{})
	require.Error(t, err)
	e, ok := services.AsError(err)
	require.True(t, ok)
	assert.Equal(t, services.KindPrecondition, e.Kind)

	// No agent launch, no sandbox start, no new session row.
	assert.Empty(t, f.agent.invocations())
	assert.Empty(t, f.sandboxes.freshFlags())
	all, err := f.sessions.ListSessions(ctx, proj.ID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRecoverStartupCancelsOrphans(t *testing.T) {
	f := setupOrchestrator(t)
	proj := f.createProject(t, "recovered")
	f.seedRoadmap(t, proj.ID, 1)
	ctx := context.Background()

	orphan, err := f.sessions.CreateSession(ctx, proj.ID, session.KindInitializer, "test-model", "init-v1")
	require.NoError(t, err)

	require.NoError(t, f.orch.RecoverStartup(ctx))

	got, err := f.sessions.GetSession(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusCancelled, got.Status)
	require.NotNil(t, got.FailureReason)
	assert.Contains(t, *got.FailureReason, "restart")

	// The project resumes with the next dense number.
	f.agent.enqueue(scriptStep{action: f.completeNextTask(t, proj.ID), events: goodSessionEvents()})
	res, err := f.orch.RunProject(ctx, proj.ID, RunOptions{Iterations: 1})
	require.NoError(t, err)
	require.NotNil(t, res.LastSession)
	assert.Equal(t, 1, res.LastSession.SessionNumber)
	assert.Equal(t, session.KindCoding, res.LastSession.Kind)
}

func TestRunProjectRejectsConcurrentLoops(t *testing.T) {
	f := setupOrchestrator(t)
	proj := f.seedInitialized(t, "exclusive", 2)

	f.agent.enqueue(scriptStep{hangUntilCancel: true})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = f.orch.RunProject(context.Background(), proj.ID, RunOptions{})
	}()

	require.Eventually(t, func() bool {
		open, err := f.sessions.ListOpenSessions(context.Background(), proj.ID)
		return err == nil && len(open) == 1
	}, 10*time.Second, 10*time.Millisecond)

	assert.Contains(t, f.orch.Active(), proj.ID)

	_, err := f.orch.RunProject(context.Background(), proj.ID, RunOptions{})
	require.Error(t, err)
	e, ok := services.AsError(err)
	require.True(t, ok)
	assert.Equal(t, services.KindPrecondition, e.Kind)

	require.True(t, f.orch.Cancel(proj.ID))
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("first loop did not exit")
	}
	assert.Empty(t, f.orch.Active())
}
