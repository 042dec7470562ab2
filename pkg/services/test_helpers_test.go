package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/ent"
	"github.com/ratchet-works/ratchet/pkg/models"
	testdb "github.com/ratchet-works/ratchet/test/database"
)

// testServices bundles all services over one isolated test schema.
type testServices struct {
	client   *ent.Client
	projects *ProjectService
	roadmap  *RoadmapService
	sessions *SessionService
	quality  *QualityService
	events   *EventService
}

func setupTestServices(t *testing.T) *testServices {
	t.Helper()
	client := testdb.NewTestClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &testServices{
		client:   client.Client,
		projects: NewProjectService(client.Client, logger, t.TempDir()),
		roadmap:  NewRoadmapService(client.Client, logger),
		sessions: NewSessionService(client.Client, logger),
		quality:  NewQualityService(client.Client, logger),
		events:   NewEventService(client.Client),
	}
}

func testPolicy() *models.SandboxPolicy {
	return &models.SandboxPolicy{
		Kind:                  models.SandboxContainer,
		Image:                 "node:20-slim",
		Memory:                "2g",
		CPUs:                  2.0,
		Network:               "bridge",
		ExecTimeoutSeconds:    120,
		SessionTimeoutSeconds: 1800,
	}
}

// createTestProject inserts a project with inline spec content.
func createTestProject(t *testing.T, svc *testServices, name string) *ent.Project {
	t.Helper()
	proj, err := svc.projects.CreateProject(context.Background(), models.CreateProjectInput{
		Name:        name,
		SpecContent: "Build a todo app with auth and a dashboard.",
		Policy:      testPolicy(),
	})
	require.NoError(t, err)
	return proj
}

// createTestRoadmap lays down two epics with tasks and tests:
//
//	epic 1 "Foundation": task 1 (one test), task 2 (no tests)
//	epic 2 "Features":   task 1 (two tests)
//
// Returned in a flat struct for convenient assertions.
type testRoadmap struct {
	epic1, epic2           *ent.Epic
	task11, task12, task21 *ent.Task
	test111                *ent.TaskTest
	test211, test212       *ent.TaskTest
}

func createTestRoadmap(t *testing.T, svc *testServices, projectID string) *testRoadmap {
	t.Helper()
	ctx := context.Background()
	rm := &testRoadmap{}
	var err error

	rm.epic1, err = svc.roadmap.CreateEpic(ctx, projectID, models.CreateEpicInput{Ordinal: 1, Title: "Foundation"})
	require.NoError(t, err)
	rm.epic2, err = svc.roadmap.CreateEpic(ctx, projectID, models.CreateEpicInput{Ordinal: 2, Title: "Features"})
	require.NoError(t, err)

	rm.task11, err = svc.roadmap.CreateTask(ctx, projectID, models.CreateTaskInput{EpicID: rm.epic1.ID, Ordinal: 1, Title: "Scaffold app"})
	require.NoError(t, err)
	rm.task12, err = svc.roadmap.CreateTask(ctx, projectID, models.CreateTaskInput{EpicID: rm.epic1.ID, Ordinal: 2, Title: "Set up database"})
	require.NoError(t, err)
	rm.task21, err = svc.roadmap.CreateTask(ctx, projectID, models.CreateTaskInput{EpicID: rm.epic2.ID, Ordinal: 1, Title: "Implement login"})
	require.NoError(t, err)

	rm.test111, err = svc.roadmap.CreateTest(ctx, projectID, models.CreateTestInput{TaskID: rm.task11.ID, Description: "app boots"})
	require.NoError(t, err)
	rm.test211, err = svc.roadmap.CreateTest(ctx, projectID, models.CreateTestInput{TaskID: rm.task21.ID, Description: "login succeeds with valid credentials"})
	require.NoError(t, err)
	rm.test212, err = svc.roadmap.CreateTest(ctx, projectID, models.CreateTestInput{TaskID: rm.task21.ID, Description: "login rejects bad password"})
	require.NoError(t, err)

	return rm
}

// assertKind asserts that err carries the given taxonomy kind.
func assertKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	require.Error(t, err)
	e, ok := AsError(err)
	require.True(t, ok, "expected a typed service error, got %v", err)
	assert.Equal(t, kind, e.Kind)
}

// passAllTests marks every test of a task as passing.
func passAllTests(t *testing.T, svc *testServices, projectID, taskID string) {
	t.Helper()
	ctx := context.Background()
	tests, err := svc.roadmap.ListTests(ctx, projectID, taskID)
	require.NoError(t, err)
	for _, tt := range tests {
		_, err := svc.roadmap.UpdateTestResult(ctx, projectID, tt.ID, models.TestOutcomePass, "verified in browser")
		require.NoError(t, err)
	}
}
