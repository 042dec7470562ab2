package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/ent/event"
	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/pkg/models"
)

func TestProjectService_CreateProject(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()

	t.Run("creates project with workspace and spec file", func(t *testing.T) {
		proj, err := svc.projects.CreateProject(ctx, models.CreateProjectInput{
			Name:        "todo-app",
			SpecContent: "Build a todo app with login.",
			Policy:      testPolicy(),
		})
		require.NoError(t, err)
		assert.Equal(t, "todo-app", proj.Name)
		assert.Equal(t, filepath.Base(proj.Workspace), "todo-app",
			"default workspace is named after the project")

		data, err := os.ReadFile(filepath.Join(proj.Workspace, "app_spec.txt"))
		require.NoError(t, err)
		assert.Equal(t, "Build a todo app with login.", string(data))
	})

	t.Run("single markdown source keeps its extension", func(t *testing.T) {
		specPath := filepath.Join(t.TempDir(), "spec.md")
		require.NoError(t, os.WriteFile(specPath, []byte("# Chat App\n\nBuild it."), 0o644))

		proj, err := svc.projects.CreateProject(ctx, models.CreateProjectInput{
			Name:      "chat-app",
			SpecPaths: []string{specPath},
			Policy:    testPolicy(),
		})
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(proj.Workspace, "app_spec.md"))
		require.NoError(t, err)
		assert.Equal(t, "# Chat App\n\nBuild it.", string(data))
	})

	t.Run("directory source concatenates with file headings", func(t *testing.T) {
		specDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(specDir, "02-api.md"), []byte("API docs"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(specDir, "01-intro.md"), []byte("Intro"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(specDir, "notes.txt"), []byte("Notes"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(specDir, "ignored.json"), []byte("{}"), 0o644))

		proj, err := svc.projects.CreateProject(ctx, models.CreateProjectInput{
			Name:      "doc-app",
			SpecPaths: []string{specDir},
			Policy:    testPolicy(),
		})
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(proj.Workspace, "app_spec.txt"))
		require.NoError(t, err)
		content := string(data)
		assert.Contains(t, content, "# 01-intro.md\n\nIntro")
		assert.Contains(t, content, "# 02-api.md\n\nAPI docs")
		assert.Contains(t, content, "# notes.txt\n\nNotes")
		assert.NotContains(t, content, "ignored.json")
		assert.Less(t, strings.Index(content, "01-intro"), strings.Index(content, "02-api"),
			"directory files concatenate in name order")
	})

	t.Run("duplicate name is rejected without force", func(t *testing.T) {
		_, err := svc.projects.CreateProject(ctx, models.CreateProjectInput{
			Name:        "todo-app",
			SpecContent: "another spec",
			Policy:      testPolicy(),
		})
		assertKind(t, err, KindPrecondition)
	})

	t.Run("force replaces the row and rewrites the spec", func(t *testing.T) {
		old, err := svc.projects.GetProjectByName(ctx, "todo-app")
		require.NoError(t, err)
		_, err = svc.client.Event.Create().
			SetProjectID(old.ID).
			SetChannel("project:" + old.ID).
			SetPayload(map[string]interface{}{"type": "session.started"}).
			Save(ctx)
		require.NoError(t, err)

		proj, err := svc.projects.CreateProject(ctx, models.CreateProjectInput{
			Name:        "todo-app",
			SpecContent: "Build a todo app, second attempt.",
			Policy:      testPolicy(),
			Force:       true,
		})
		require.NoError(t, err)
		assert.NotEqual(t, old.ID, proj.ID, "replacement gets a fresh id")

		_, err = svc.projects.GetProject(ctx, old.ID)
		assertKind(t, err, KindNotFound)

		left, err := svc.client.Event.Query().Where(event.ProjectIDEQ(old.ID)).Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, left, "events of the replaced project are dropped")

		data, err := os.ReadFile(filepath.Join(proj.Workspace, "app_spec.txt"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "second attempt")
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name  string
			input models.CreateProjectInput
		}{
			{"empty name", models.CreateProjectInput{SpecContent: "x", Policy: testPolicy()}},
			{"path separator in name", models.CreateProjectInput{Name: "a/b", SpecContent: "x", Policy: testPolicy()}},
			{"dot-dot in name", models.CreateProjectInput{Name: "..", SpecContent: "x", Policy: testPolicy()}},
			{"no spec source", models.CreateProjectInput{Name: "bare", Policy: testPolicy()}},
			{"nil policy", models.CreateProjectInput{Name: "nopol", SpecContent: "x"}},
			{"missing spec path", models.CreateProjectInput{Name: "ghost", SpecPaths: []string{"/does/not/exist"}, Policy: testPolicy()}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.projects.CreateProject(ctx, tc.input)
				assertKind(t, err, KindPrecondition)
			})
		}
	})
}

func TestProjectService_DeleteProject(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	proj := createTestProject(t, svc, "doomed")
	createTestRoadmap(t, svc, proj.ID)

	sess, err := svc.sessions.CreateSession(ctx, proj.ID, session.KindInitializer, "m", "")
	require.NoError(t, err)
	_, err = svc.sessions.FinalizeSession(ctx, sess.ID, session.StatusCompleted, models.SessionCounters{}, nil, "")
	require.NoError(t, err)
	_, err = svc.quality.AttachQualityCheck(ctx, models.AttachQualityCheckInput{
		SessionID: sess.ID, CheckType: models.CheckTypeQuick, Rating: 7,
	})
	require.NoError(t, err)
	_, err = svc.client.Event.Create().
		SetProjectID(proj.ID).
		SetChannel("project:" + proj.ID).
		SetPayload(map[string]interface{}{"type": "session.status"}).
		Save(ctx)
	require.NoError(t, err)

	workspace := proj.Workspace
	require.NoError(t, svc.projects.DeleteProject(ctx, proj.ID))

	_, err = svc.projects.GetProject(ctx, proj.ID)
	assertKind(t, err, KindNotFound)

	// Cascades take the roadmap, sessions and checks with the project row.
	epics, err := svc.client.Epic.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, epics)
	tasks, err := svc.client.Task.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, tasks)
	tests, err := svc.client.TaskTest.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, tests)
	sessions, err := svc.client.Session.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, sessions)
	checks, err := svc.client.QualityCheck.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, checks)
	events, err := svc.client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, events)

	_, err = os.Stat(workspace)
	assert.NoError(t, err, "workspace directory survives project deletion")

	assertKind(t, svc.projects.DeleteProject(ctx, proj.ID), KindNotFound)
}

func TestProjectService_ListAndLookup(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	first := createTestProject(t, svc, "alpha")
	second := createTestProject(t, svc, "beta")

	list, err := svc.projects.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID, "oldest first")
	assert.Equal(t, second.ID, list[1].ID)

	byName, err := svc.projects.GetProjectByName(ctx, "beta")
	require.NoError(t, err)
	assert.Equal(t, second.ID, byName.ID)

	_, err = svc.projects.GetProjectByName(ctx, "gamma")
	assertKind(t, err, KindNotFound)
}

func TestProjectService_UpdateSandboxPolicy(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	proj := createTestProject(t, svc, "policy")

	policy := *testPolicy()
	policy.Memory = "4g"
	updated, err := svc.projects.UpdateSandboxPolicy(ctx, proj.ID, policy)
	require.NoError(t, err)
	assert.Equal(t, "4g", updated.SandboxPolicy.Memory)

	_, err = svc.projects.UpdateSandboxPolicy(ctx, proj.ID, models.SandboxPolicy{})
	assertKind(t, err, KindPrecondition)

	_, err = svc.projects.UpdateSandboxPolicy(ctx, "missing", policy)
	assertKind(t, err, KindNotFound)
}
