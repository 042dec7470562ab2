package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/ent/epic"
	"github.com/ratchet-works/ratchet/ent/task"
	"github.com/ratchet-works/ratchet/ent/tasktest"
	"github.com/ratchet-works/ratchet/pkg/models"
)

func TestRoadmapService_CreateHierarchy(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	proj := createTestProject(t, svc, "todo-app")

	t.Run("creates epics, tasks and tests", func(t *testing.T) {
		rm := createTestRoadmap(t, svc, proj.ID)

		epics, err := svc.roadmap.ListEpics(ctx, proj.ID)
		require.NoError(t, err)
		require.Len(t, epics, 2)
		assert.Equal(t, "Foundation", epics[0].Title)
		assert.Equal(t, epic.StatusPending, epics[0].Status)

		tasks, err := svc.roadmap.ListTasks(ctx, proj.ID, rm.epic1.ID)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, task.StatusPending, tasks[0].Status)

		tests, err := svc.roadmap.ListTests(ctx, proj.ID, rm.task21.ID)
		require.NoError(t, err)
		require.Len(t, tests, 2)
		assert.Equal(t, tasktest.OutcomeUnknown, tests[0].Outcome)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := svc.roadmap.CreateEpic(ctx, proj.ID, models.CreateEpicInput{Ordinal: 1})
		assertKind(t, err, KindPrecondition)

		_, err = svc.roadmap.CreateEpic(ctx, proj.ID, models.CreateEpicInput{Ordinal: -1, Title: "x"})
		assertKind(t, err, KindPrecondition)

		_, err = svc.roadmap.CreateTask(ctx, proj.ID, models.CreateTaskInput{EpicID: "nope", Ordinal: 1, Title: "x"})
		assertKind(t, err, KindNotFound)
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := svc.roadmap.CreateEpic(ctx, "no-such-project", models.CreateEpicInput{Ordinal: 1, Title: "x"})
		assertKind(t, err, KindNotFound)
	})
}

func TestRoadmapService_OwnershipChecks(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	projA := createTestProject(t, svc, "project-a")
	projB := createTestProject(t, svc, "project-b")
	rmA := createTestRoadmap(t, svc, projA.ID)

	_, err := svc.roadmap.GetEpic(ctx, projB.ID, rmA.epic1.ID)
	assertKind(t, err, KindForbidden)

	_, err = svc.roadmap.GetTask(ctx, projB.ID, rmA.task11.ID)
	assertKind(t, err, KindForbidden)

	_, err = svc.roadmap.StartTask(ctx, projB.ID, rmA.task11.ID)
	assertKind(t, err, KindForbidden)

	_, err = svc.roadmap.UpdateTestResult(ctx, projB.ID, rmA.test111.ID, models.TestOutcomePass, "")
	assertKind(t, err, KindForbidden)

	// The same ids resolve fine under the owning project.
	_, err = svc.roadmap.GetTask(ctx, projA.ID, rmA.task11.ID)
	require.NoError(t, err)
}

func TestRoadmapService_NextTaskOrder(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	proj := createTestProject(t, svc, "next-task")
	rm := createTestRoadmap(t, svc, proj.ID)

	next, err := svc.roadmap.GetNextTask(ctx, proj.ID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, rm.task11.ID, next.TaskID, "lowest epic ordinal, lowest task ordinal")
	assert.Equal(t, 1, next.EpicOrdinal)
	assert.Equal(t, 1, next.TaskOrdinal)

	// Completing task 1.1 moves the pointer to 1.2.
	passAllTests(t, svc, proj.ID, rm.task11.ID)
	_, err = svc.roadmap.UpdateTaskStatus(ctx, proj.ID, rm.task11.ID, true)
	require.NoError(t, err)

	next, err = svc.roadmap.GetNextTask(ctx, proj.ID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, rm.task12.ID, next.TaskID)

	// An in_progress task is still the next task until done.
	_, err = svc.roadmap.StartTask(ctx, proj.ID, rm.task12.ID)
	require.NoError(t, err)
	next, err = svc.roadmap.GetNextTask(ctx, proj.ID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, rm.task12.ID, next.TaskID)
	assert.Equal(t, string(task.StatusInProgress), next.Status)

	// Exhausting epic 1 moves the pointer into epic 2.
	_, err = svc.roadmap.UpdateTaskStatus(ctx, proj.ID, rm.task12.ID, true)
	require.NoError(t, err)
	next, err = svc.roadmap.GetNextTask(ctx, proj.ID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, rm.task21.ID, next.TaskID)

	// Roadmap complete: no next task.
	passAllTests(t, svc, proj.ID, rm.task21.ID)
	_, err = svc.roadmap.UpdateTaskStatus(ctx, proj.ID, rm.task21.ID, true)
	require.NoError(t, err)
	next, err = svc.roadmap.GetNextTask(ctx, proj.ID)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestRoadmapService_StartTask(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	proj := createTestProject(t, svc, "start-task")
	rm := createTestRoadmap(t, svc, proj.ID)

	started, err := svc.roadmap.StartTask(ctx, proj.ID, rm.task11.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, started.Status)
	require.NotNil(t, started.StartedAt)

	// Losers of the claim race get a precondition error.
	_, err = svc.roadmap.StartTask(ctx, proj.ID, rm.task11.ID)
	assertKind(t, err, KindPrecondition)

	// The parent epic follows into in_progress.
	e, err := svc.roadmap.GetEpic(ctx, proj.ID, rm.epic1.ID)
	require.NoError(t, err)
	assert.Equal(t, epic.StatusInProgress, e.Status)
}

func TestRoadmapService_DoneRequiresPassingTests(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	proj := createTestProject(t, svc, "done-gate")
	rm := createTestRoadmap(t, svc, proj.ID)

	// task21 has two unknown tests: done is rejected.
	_, err := svc.roadmap.UpdateTaskStatus(ctx, proj.ID, rm.task21.ID, true)
	assertKind(t, err, KindPrecondition)

	// One passing is not enough.
	_, err = svc.roadmap.UpdateTestResult(ctx, proj.ID, rm.test211.ID, models.TestOutcomePass, "")
	require.NoError(t, err)
	_, err = svc.roadmap.UpdateTaskStatus(ctx, proj.ID, rm.task21.ID, true)
	assertKind(t, err, KindPrecondition)

	// All passing unlocks done.
	_, err = svc.roadmap.UpdateTestResult(ctx, proj.ID, rm.test212.ID, models.TestOutcomePass, "")
	require.NoError(t, err)
	done, err := svc.roadmap.UpdateTaskStatus(ctx, proj.ID, rm.task21.ID, true)
	require.NoError(t, err)
	assert.Equal(t, task.StatusDone, done.Status)
	require.NotNil(t, done.CompletedAt)

	// A task without tests is vacuously done-able.
	done, err = svc.roadmap.UpdateTaskStatus(ctx, proj.ID, rm.task12.ID, true)
	require.NoError(t, err)
	assert.Equal(t, task.StatusDone, done.Status)
}

func TestRoadmapService_TestFailureCascades(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	proj := createTestProject(t, svc, "cascade")
	rm := createTestRoadmap(t, svc, proj.ID)

	// Complete the whole of epic 1.
	_, err := svc.roadmap.StartTask(ctx, proj.ID, rm.task11.ID)
	require.NoError(t, err)
	passAllTests(t, svc, proj.ID, rm.task11.ID)
	_, err = svc.roadmap.UpdateTaskStatus(ctx, proj.ID, rm.task11.ID, true)
	require.NoError(t, err)
	_, err = svc.roadmap.UpdateTaskStatus(ctx, proj.ID, rm.task12.ID, true)
	require.NoError(t, err)

	e, err := svc.roadmap.GetEpic(ctx, proj.ID, rm.epic1.ID)
	require.NoError(t, err)
	assert.Equal(t, epic.StatusDone, e.Status)

	t.Run("failing a test demotes the done task and reopens the epic", func(t *testing.T) {
		_, err := svc.roadmap.UpdateTestResult(ctx, proj.ID, rm.test111.ID, models.TestOutcomeFail, "regression in login flow")
		require.NoError(t, err)

		demoted, err := svc.roadmap.GetTask(ctx, proj.ID, rm.task11.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusInProgress, demoted.Status, "started task falls back to in_progress")
		assert.Nil(t, demoted.CompletedAt)

		e, err := svc.roadmap.GetEpic(ctx, proj.ID, rm.epic1.ID)
		require.NoError(t, err)
		assert.Equal(t, epic.StatusInProgress, e.Status)
	})

	t.Run("untouched done task falls back to pending", func(t *testing.T) {
		// task12 was marked done without ever being started; a new unknown
		// test shows it is not actually finished.
		_, err := svc.roadmap.CreateTest(ctx, proj.ID, models.CreateTestInput{TaskID: rm.task12.ID, Description: "migrations are reversible"})
		require.NoError(t, err)

		reopened, err := svc.roadmap.GetTask(ctx, proj.ID, rm.task12.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusPending, reopened.Status)
	})

	t.Run("reopen via update_task_status", func(t *testing.T) {
		passAllTests(t, svc, proj.ID, rm.task11.ID)
		done, err := svc.roadmap.UpdateTaskStatus(ctx, proj.ID, rm.task11.ID, true)
		require.NoError(t, err)
		assert.Equal(t, task.StatusDone, done.Status)

		reopened, err := svc.roadmap.UpdateTaskStatus(ctx, proj.ID, rm.task11.ID, false)
		require.NoError(t, err)
		assert.Equal(t, task.StatusInProgress, reopened.Status)
		assert.Nil(t, reopened.CompletedAt)
	})
}

func TestRoadmapService_ExpandEpic(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	proj := createTestProject(t, svc, "expand")
	e, err := svc.roadmap.CreateEpic(ctx, proj.ID, models.CreateEpicInput{Ordinal: 1, Title: "API"})
	require.NoError(t, err)

	tasks, err := svc.roadmap.ExpandEpic(ctx, proj.ID, e.ID, []models.TaskExpansion{
		{Ordinal: 1, Title: "CRUD endpoints", Tests: []string{"GET returns 200", "POST validates body"}},
		{Ordinal: 2, Title: "Auth middleware", Tests: []string{"rejects missing token"}},
		{Ordinal: 3, Title: "Rate limiting"},
	})
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	tests, err := svc.roadmap.ListTests(ctx, proj.ID, tasks[0].ID)
	require.NoError(t, err)
	assert.Len(t, tests, 2)

	tests, err = svc.roadmap.ListTests(ctx, proj.ID, tasks[2].ID)
	require.NoError(t, err)
	assert.Empty(t, tests)

	t.Run("empty expansion rejected", func(t *testing.T) {
		_, err := svc.roadmap.ExpandEpic(ctx, proj.ID, e.ID, nil)
		assertKind(t, err, KindPrecondition)
	})

	t.Run("all-or-nothing on invalid row", func(t *testing.T) {
		before, err := svc.roadmap.ListTasks(ctx, proj.ID, e.ID)
		require.NoError(t, err)

		_, err = svc.roadmap.ExpandEpic(ctx, proj.ID, e.ID, []models.TaskExpansion{
			{Ordinal: 4, Title: "Valid"},
			{Ordinal: 5, Title: ""},
		})
		assertKind(t, err, KindPrecondition)

		after, err := svc.roadmap.ListTasks(ctx, proj.ID, e.ID)
		require.NoError(t, err)
		assert.Len(t, after, len(before), "failed expansion must not leave partial rows")
	})
}

func TestRoadmapService_Progress(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	proj := createTestProject(t, svc, "progress")
	rm := createTestRoadmap(t, svc, proj.ID)

	p, err := svc.roadmap.Progress(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, p.TotalEpics)
	assert.Equal(t, 3, p.TotalTasks)
	assert.Equal(t, 3, p.TotalTests)
	assert.Equal(t, 0, p.CompletedTasks)
	assert.Zero(t, p.Percent)
	assert.False(t, p.Done())

	passAllTests(t, svc, proj.ID, rm.task11.ID)
	_, err = svc.roadmap.UpdateTaskStatus(ctx, proj.ID, rm.task11.ID, true)
	require.NoError(t, err)

	p, err = svc.roadmap.Progress(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, p.CompletedTasks)
	assert.Equal(t, 1, p.PassedTests)
	assert.InDelta(t, 33.3, p.Percent, 0.05)

	t.Run("empty project reports zero", func(t *testing.T) {
		empty := createTestProject(t, svc, "progress-empty")
		p, err := svc.roadmap.Progress(ctx, empty.ID)
		require.NoError(t, err)
		assert.Zero(t, p.TotalTasks)
		assert.Zero(t, p.Percent)
		assert.False(t, p.Done())
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := svc.roadmap.Progress(ctx, "no-such-project")
		assertKind(t, err, KindNotFound)
	})
}
