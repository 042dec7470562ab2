package orchestrator

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/pkg/agent"
	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/services"
)

func TestSandboxStartRetryRecovers(t *testing.T) {
	f := setupOrchestrator(t)
	proj := f.createProject(t, "retry-sandbox")
	f.sandboxes.failures = 1

	f.agent.enqueue(scriptStep{events: goodSessionEvents()})

	res, err := f.orch.RunProject(context.Background(), proj.ID, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, HaltInitializer, res.Halt)
	assert.Equal(t, session.StatusCompleted, res.LastSession.Status)
	// Two acquisition attempts for one session.
	assert.Equal(t, []bool{true, true}, f.sandboxes.freshFlags())
}

func TestSandboxStartFailureAbortsBeforeSession(t *testing.T) {
	f := setupOrchestrator(t)
	proj := f.createProject(t, "dead-sandbox")
	f.sandboxes.failures = 2

	_, err := f.orch.RunProject(context.Background(), proj.ID, RunOptions{})
	require.Error(t, err)
	assert.Equal(t, services.KindSandboxUnavailable, services.KindOf(err))

	// The failure happened before any session row was written.
	all, lerr := f.sessions.ListSessions(context.Background(), proj.ID)
	require.NoError(t, lerr)
	assert.Empty(t, all)
	assert.Empty(t, f.agent.invocations())
}

func TestTransportDropRetriesWithinWindow(t *testing.T) {
	f := setupOrchestrator(t)
	proj := f.seedInitialized(t, "retry-transport", 1)

	f.agent.enqueue(
		scriptStep{events: []agent.Event{
			agent.ErrorEvent{Kind: services.KindAgentTransport, Message: "stdout closed unexpectedly"},
			agent.EndEvent{Status: agent.EndFailed},
		}},
		scriptStep{action: f.completeNextTask(t, proj.ID), events: goodSessionEvents()},
	)

	res, err := f.orch.RunProject(context.Background(), proj.ID, RunOptions{})
	require.NoError(t, err)

	// One session, two agent attempts, a clean outcome.
	assert.Equal(t, HaltRoadmapDone, res.Halt)
	assert.Equal(t, 1, res.SessionsRun)
	require.Len(t, f.agent.invocations(), 2)
	assert.Equal(t, session.StatusCompleted, res.LastSession.Status)

	all, err := f.sessions.ListSessions(context.Background(), proj.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTransportDropPastWindowFailsSession(t *testing.T) {
	f := setupOrchestrator(t)
	proj := f.seedInitialized(t, "late-transport", 2)

	// Eleven narration events push the drop past the retry window.
	var evs []agent.Event
	for i := 0; i < 11; i++ {
		evs = append(evs, agent.TextEvent{Text: fmt.Sprintf("step %d", i)})
	}
	evs = append(evs,
		agent.ErrorEvent{Kind: services.KindAgentTransport, Message: "stdout closed unexpectedly"},
		agent.EndEvent{Status: agent.EndFailed},
	)
	f.agent.enqueue(scriptStep{events: evs})

	res, err := f.orch.RunProject(context.Background(), proj.ID, RunOptions{Iterations: 1})
	require.NoError(t, err)

	assert.Equal(t, HaltBudget, res.Halt)
	require.Len(t, f.agent.invocations(), 1, "no retry outside the leading window")
	assert.Equal(t, session.StatusFailed, res.LastSession.Status)
	require.NotNil(t, res.LastSession.FailureReason)
	assert.Contains(t, *res.LastSession.FailureReason, "stdout closed")
}

func TestAgentSpawnFailureRetriesOnce(t *testing.T) {
	f := setupOrchestrator(t)
	proj := f.seedInitialized(t, "spawn-retry", 1)

	f.agent.enqueue(
		scriptStep{startErr: fmt.Errorf("agent binary not found in PATH")},
		scriptStep{action: f.completeNextTask(t, proj.ID), events: goodSessionEvents()},
	)

	res, err := f.orch.RunProject(context.Background(), proj.ID, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, HaltRoadmapDone, res.Halt)
	require.Len(t, f.agent.invocations(), 2)
	assert.Equal(t, session.StatusCompleted, res.LastSession.Status)
}

func TestAgentSpawnFailureTwiceFailsSession(t *testing.T) {
	f := setupOrchestrator(t)
	proj := f.seedInitialized(t, "spawn-dead", 2)

	f.agent.enqueue(
		scriptStep{startErr: fmt.Errorf("agent binary not found in PATH")},
		scriptStep{startErr: fmt.Errorf("agent binary not found in PATH")},
	)

	res, err := f.orch.RunProject(context.Background(), proj.ID, RunOptions{Iterations: 1})
	require.NoError(t, err)

	assert.Equal(t, session.StatusFailed, res.LastSession.Status)
	require.NotNil(t, res.LastSession.FailureReason)
	assert.Contains(t, *res.LastSession.FailureReason, "not found in PATH")
	require.Len(t, f.agent.invocations(), 2)
}

func TestConsecutiveToolErrorsFailSessionEarly(t *testing.T) {
	f := setupOrchestrator(t)
	proj := f.seedInitialized(t, "error-streak", 2)

	evs := []agent.Event{agent.StartEvent{AgentSessionID: "conv-err", Model: "test-model"}}
	for i := 0; i < f.cfg.Orchestrator.MaxConsecutiveToolErrors; i++ {
		evs = append(evs, toolFail("mcp__task-manager__exec", i)...)
	}
	// The stream only ends once the early stop cancels the run.
	f.agent.enqueue(scriptStep{events: evs, hangUntilCancel: true})

	res, err := f.orch.RunProject(context.Background(), proj.ID, RunOptions{Iterations: 1})
	require.NoError(t, err)

	last := res.LastSession
	require.NotNil(t, last)
	assert.Equal(t, session.StatusFailed, last.Status)
	require.NotNil(t, last.FailureReason)
	assert.Contains(t, *last.FailureReason, "consecutive tool errors")
	assert.Equal(t, f.cfg.Orchestrator.MaxConsecutiveToolErrors, last.ErrorCount)
	assert.Equal(t, f.cfg.Orchestrator.MaxConsecutiveToolErrors, last.ToolUseCount)
}

func TestSessionWallClockCapCancels(t *testing.T) {
	f := setupOrchestrator(t)
	proj := f.createProjectWithPolicy(t, "slowpoke", &models.SandboxPolicy{
		Kind:                  models.SandboxContainer,
		SessionTimeoutSeconds: 1,
	})
	f.seedRoadmap(t, proj.ID, 2)
	f.seedSessionZero(t, proj.ID)

	f.agent.enqueue(scriptStep{
		events:          []agent.Event{agent.TextEvent{Text: "stalling on a flaky install"}},
		hangUntilCancel: true,
	})

	start := time.Now()
	res, err := f.orch.RunProject(context.Background(), proj.ID, RunOptions{Iterations: 1})
	require.NoError(t, err)
	require.Less(t, time.Since(start), 30*time.Second)

	last := res.LastSession
	require.NotNil(t, last)
	assert.Equal(t, session.StatusCancelled, last.Status)
	require.NotNil(t, last.FailureReason)
	assert.Contains(t, *last.FailureReason, "wall-clock")

	// A timed-out session neither fails the loop nor counts as a failure.
	assert.Equal(t, HaltBudget, res.Halt)
}

func TestFinalizedSessionCarriesCountersAndMetrics(t *testing.T) {
	f := setupOrchestrator(t)
	proj := f.seedInitialized(t, "metrics", 1)

	f.agent.enqueue(scriptStep{action: f.completeNextTask(t, proj.ID), events: goodSessionEvents()})

	res, err := f.orch.RunProject(context.Background(), proj.ID, RunOptions{})
	require.NoError(t, err)

	last := res.LastSession
	require.NotNil(t, last)
	assert.Equal(t, 2, last.ToolUseCount)
	assert.Equal(t, 0, last.ErrorCount)
	assert.Equal(t, int64(1500), last.TokensInput)
	assert.Equal(t, int64(600), last.TokensOutput)

	require.NotNil(t, last.Metrics)
	assert.EqualValues(t, 2, last.Metrics[models.MetricToolCallsCount])
	assert.EqualValues(t, 0, last.Metrics[models.MetricErrorsCount])
	assert.EqualValues(t, 1, last.Metrics[models.MetricBrowserVerifications])
	assert.Equal(t, false, last.Metrics[models.MetricWrapUpRequested])
	dur, ok := last.Metrics[models.MetricDurationSeconds].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, dur, 0.0)
}
