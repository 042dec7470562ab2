package review

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/ent"
	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/pkg/agent"
	"github.com/ratchet-works/ratchet/pkg/config"
	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/services"
	"github.com/ratchet-works/ratchet/pkg/sessionlog"
	testdb "github.com/ratchet-works/ratchet/test/database"
)

// scriptedAgent plays back a fixed event sequence for every invocation.
type scriptedAgent struct {
	mu          sync.Mutex
	events      []agent.Event
	err         error
	invocations []agent.Invocation
}

func (s *scriptedAgent) Run(_ context.Context, inv agent.Invocation) (<-chan agent.Event, error) {
	s.mu.Lock()
	s.invocations = append(s.invocations, inv)
	events := s.events
	err := s.err
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	ch := make(chan agent.Event, len(events))
	for _, ev := range events {
		ch <- ev
	}
	close(ch)
	return ch, nil
}

func (s *scriptedAgent) calls() []agent.Invocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]agent.Invocation(nil), s.invocations...)
}

type analyzerFixture struct {
	project  *ent.Project
	sessions *services.SessionService
	quality  *services.QualityService
	agent    *scriptedAgent
	analyzer *Analyzer
}

func setupAnalyzer(t *testing.T) *analyzerFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	projects := services.NewProjectService(client.Client, logger, t.TempDir())
	sessions := services.NewSessionService(client.Client, logger)
	quality := services.NewQualityService(client.Client, logger)

	proj, err := projects.CreateProject(context.Background(), models.CreateProjectInput{
		Name:        "review-project",
		SpecContent: "Build a notes app.",
	})
	require.NoError(t, err)

	scripted := &scriptedAgent{}
	analyzer := NewAnalyzer(config.DefaultReviewConfig(), "review-model",
		quality, sessions, scripted, nil, logger)

	return &analyzerFixture{
		project:  proj,
		sessions: sessions,
		quality:  quality,
		agent:    scripted,
		analyzer: analyzer,
	}
}

// finishedSession creates a session and immediately finalizes it, because
// quality checks only attach to terminal sessions.
func (f *analyzerFixture) finishedSession(t *testing.T, kind session.Kind) *ent.Session {
	t.Helper()
	sess, err := f.sessions.CreateSession(context.Background(), f.project.ID, kind, "coding-model", "v1")
	require.NoError(t, err)
	done, err := f.sessions.FinalizeSession(context.Background(), sess.ID,
		session.StatusCompleted, models.SessionCounters{}, nil, "")
	require.NoError(t, err)
	return done
}

// writeLog produces a real session log through the writer so the analyzer
// parses exactly what a live session would leave behind.
func (f *analyzerFixture) writeLog(t *testing.T, sess *ent.Session, withBrowser bool) {
	t.Helper()
	w, err := sessionlog.Open(sessionlog.LogsDir(f.project.Workspace),
		sess.SessionNumber, string(sess.Kind), sess.ID, "coding-model")
	require.NoError(t, err)
	require.NoError(t, w.AssistantText("picking up the next task"))
	require.NoError(t, w.ToolUse("mcp__task-manager__get_next_task", "{}"))
	require.NoError(t, w.ToolResult("mcp__task-manager__get_next_task", `{"task":{"task_id":"t-1"}}`, false, time.Second))
	if withBrowser {
		require.NoError(t, w.ToolUse("mcp__playwright__browser_navigate", `{"url":"http://localhost:3000"}`))
		require.NoError(t, w.ToolResult("mcp__playwright__browser_navigate", "ok", false, time.Second))
	}
	require.NoError(t, w.Close(models.SessionStatusCompleted, models.TokenUsage{Input: 100, Output: 40}))
}

func TestProcessSessionAttachesQuick(t *testing.T) {
	f := setupAnalyzer(t)
	sess := f.finishedSession(t, session.KindInitializer)
	f.writeLog(t, sess, false)

	check, err := f.analyzer.ProcessSession(context.Background(), sess, f.project.Name, f.project.Workspace)
	require.NoError(t, err)
	require.NotNil(t, check)
	assert.Equal(t, 10, check.Rating, "initializers are exempt from browser verification")
	assert.Equal(t, 1, check.ToolUses)

	stored, err := f.quality.GetQualityCheck(context.Background(), sess.ID, models.CheckTypeQuick)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Rating)

	f.analyzer.Wait()
	assert.Empty(t, f.agent.calls(), "session 0 never triggers a deep review")
}

func TestProcessSessionMissingLogSkips(t *testing.T) {
	f := setupAnalyzer(t)
	sess := f.finishedSession(t, session.KindInitializer)

	check, err := f.analyzer.ProcessSession(context.Background(), sess, f.project.Name, f.project.Workspace)
	require.NoError(t, err)
	assert.Nil(t, check)

	_, err = f.quality.GetQualityCheck(context.Background(), sess.ID, models.CheckTypeQuick)
	require.Error(t, err)
}

func TestLowQuickRatingTriggersDeepReview(t *testing.T) {
	f := setupAnalyzer(t)
	f.finishedSession(t, session.KindInitializer)
	sess := f.finishedSession(t, session.KindCoding)
	f.writeLog(t, sess, false)

	f.agent.events = []agent.Event{
		agent.TextEvent{Text: "## Summary\nSolid progress, weak verification.\n\nRating: 8/10"},
		agent.EndEvent{Status: agent.EndCompleted, Duration: 2 * time.Second,
			Tokens: models.TokenUsage{Input: 500, Output: 200}},
	}

	check, err := f.analyzer.ProcessSession(context.Background(), sess, f.project.Name, f.project.Workspace)
	require.NoError(t, err)
	assert.Equal(t, 6, check.Rating, "no browser in a coding session costs 4")

	f.analyzer.Wait()

	deep, err := f.quality.GetQualityCheck(context.Background(), sess.ID, models.CheckTypeDeep)
	require.NoError(t, err)
	assert.Equal(t, 8, deep.Rating, "rating is re-extracted from the review text")
	require.NotNil(t, deep.ReviewText)
	assert.Contains(t, *deep.ReviewText, "Rating: 8/10")

	artifact := filepath.Join(sessionlog.LogsDir(f.project.Workspace), sessionlog.ReviewName(sess.SessionNumber))
	data, err := os.ReadFile(artifact)
	require.NoError(t, err)
	assert.Equal(t, *deep.ReviewText, string(data))

	all, err := f.sessions.ListSessions(context.Background(), f.project.ID)
	require.NoError(t, err)
	last := all[len(all)-1]
	assert.Equal(t, session.KindReview, last.Kind)
	assert.Equal(t, session.StatusCompleted, last.Status)
	assert.Equal(t, sess.SessionNumber+1, last.SessionNumber)
	assert.Equal(t, int64(500), last.TokensInput)

	calls := f.agent.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.SessionKindReview, calls[0].Kind)
	assert.Equal(t, "review-model", calls[0].Model)
	assert.Contains(t, calls[0].Prompt, "picking up the next task",
		"the reviewer is fed the session narrative")
	assert.Empty(t, calls[0].AllowedTools, "reviews run without tool access")
}

func TestDeepFailureRecordsReviewError(t *testing.T) {
	f := setupAnalyzer(t)
	f.finishedSession(t, session.KindInitializer)
	sess := f.finishedSession(t, session.KindCoding)
	f.writeLog(t, sess, false)

	f.agent.events = []agent.Event{
		agent.ErrorEvent{Kind: services.KindAgentTransport, Message: "agent exploded"},
		agent.EndEvent{Status: agent.EndFailed, Duration: time.Second},
	}

	check, err := f.analyzer.ProcessSession(context.Background(), sess, f.project.Name, f.project.Workspace)
	require.NoError(t, err)
	f.analyzer.Wait()

	deep, err := f.quality.GetQualityCheck(context.Background(), sess.ID, models.CheckTypeDeep)
	require.NoError(t, err)
	assert.Equal(t, check.Rating, deep.Rating, "failed reviews fall back to the quick rating")
	require.Len(t, deep.CriticalIssues, 1)
	assert.Equal(t, models.IssueReviewError, deep.CriticalIssues[0].Tag)
	assert.Contains(t, deep.CriticalIssues[0].Message, "agent exploded")

	all, err := f.sessions.ListSessions(context.Background(), f.project.ID)
	require.NoError(t, err)
	last := all[len(all)-1]
	assert.Equal(t, session.KindReview, last.Kind)
	assert.Equal(t, session.StatusFailed, last.Status)
}

func TestHealthySessionSkipsDeepReview(t *testing.T) {
	f := setupAnalyzer(t)
	f.finishedSession(t, session.KindInitializer)
	sess := f.finishedSession(t, session.KindCoding)
	f.writeLog(t, sess, true)

	check, err := f.analyzer.ProcessSession(context.Background(), sess, f.project.Name, f.project.Workspace)
	require.NoError(t, err)
	assert.Equal(t, 10, check.Rating)

	f.analyzer.Wait()
	assert.Empty(t, f.agent.calls())
	_, err = f.quality.GetQualityCheck(context.Background(), sess.ID, models.CheckTypeDeep)
	require.Error(t, err, "no deep check for a healthy early session")
}

func TestEveryNthSessionTriggersDeep(t *testing.T) {
	f := setupAnalyzer(t)
	f.finishedSession(t, session.KindInitializer)
	var fifth *ent.Session
	for i := 1; i <= 5; i++ {
		fifth = f.finishedSession(t, session.KindCoding)
	}
	require.Equal(t, 5, fifth.SessionNumber)
	f.writeLog(t, fifth, true)

	f.agent.events = []agent.Event{
		agent.TextEvent{Text: "Periodic look.\n\nRating: 9/10"},
		agent.EndEvent{Status: agent.EndCompleted},
	}

	check, err := f.analyzer.ProcessSession(context.Background(), fifth, f.project.Name, f.project.Workspace)
	require.NoError(t, err)
	assert.Equal(t, 10, check.Rating, "the cadence trigger fires even when quality is fine")

	f.analyzer.Wait()
	deep, err := f.quality.GetQualityCheck(context.Background(), fifth.ID, models.CheckTypeDeep)
	require.NoError(t, err)
	assert.Equal(t, 9, deep.Rating)
}

func TestExtractRating(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
		ok   bool
	}{
		{"plain", "Rating: 8/10", 8, true},
		{"trailing newline", "review body\nRating: 9/10\n", 9, true},
		{"last match wins", "Rating: 3/10\nmore text\nRating: 7/10", 7, true},
		{"case insensitive", "rating: 5/10", 5, true},
		{"spaced", "Rating: 8 / 10", 8, true},
		{"out of range", "Rating: 15/10", 0, false},
		{"zero", "Rating: 0/10", 0, false},
		{"absent", "no verdict here", 0, false},
		{"empty", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractRating(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
