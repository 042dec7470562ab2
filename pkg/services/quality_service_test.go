package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/ent"
	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/pkg/models"
)

// finalizedSession creates and immediately finalizes a session so quality
// checks can attach to it.
func finalizedSession(t *testing.T, svc *testServices, projectID string, kind session.Kind) *ent.Session {
	t.Helper()
	ctx := context.Background()
	sess, err := svc.sessions.CreateSession(ctx, projectID, kind, "claude-sonnet-4-5-20250929", "")
	require.NoError(t, err)
	sess, err = svc.sessions.FinalizeSession(ctx, sess.ID, session.StatusCompleted, models.SessionCounters{}, nil, "")
	require.NoError(t, err)
	return sess
}

func TestQualityService_AttachQualityCheck(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	proj := createTestProject(t, svc, "quality")
	sess := finalizedSession(t, svc, proj.ID, session.KindInitializer)

	t.Run("attach and read back", func(t *testing.T) {
		check, err := svc.quality.AttachQualityCheck(ctx, models.AttachQualityCheckInput{
			SessionID:            sess.ID,
			CheckType:            models.CheckTypeQuick,
			Rating:               6,
			ToolUses:             40,
			Errors:               2,
			BrowserVerifications: 0,
			CriticalIssues: []models.Issue{
				{Tag: models.IssueNoBrowserVerification, Message: "no browser automation observed"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 6, check.Rating)
		assert.Equal(t, 40, check.ToolUses)
		require.Len(t, check.CriticalIssues, 1)
		assert.Equal(t, models.IssueNoBrowserVerification, check.CriticalIssues[0].Tag)
	})

	t.Run("upsert replaces the previous verdict", func(t *testing.T) {
		first, err := svc.quality.GetQualityCheck(ctx, sess.ID, models.CheckTypeQuick)
		require.NoError(t, err)

		check, err := svc.quality.AttachQualityCheck(ctx, models.AttachQualityCheckInput{
			SessionID: sess.ID,
			CheckType: models.CheckTypeQuick,
			Rating:    9,
			ToolUses:  41,
		})
		require.NoError(t, err)
		assert.Equal(t, 9, check.Rating)
		assert.Equal(t, first.ID, check.ID, "conflict keeps the original row")

		all, err := svc.client.QualityCheck.Query().All(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1, "no second quick row for the same session")
	})

	t.Run("deep check carries review text", func(t *testing.T) {
		check, err := svc.quality.AttachQualityCheck(ctx, models.AttachQualityCheckInput{
			SessionID:  sess.ID,
			CheckType:  models.CheckTypeDeep,
			Rating:     7,
			ReviewText: "## Review\nSolid session; login flow still lacks e2e coverage.",
		})
		require.NoError(t, err)
		require.NotNil(t, check.ReviewText)
		assert.Contains(t, *check.ReviewText, "login flow")
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.quality.AttachQualityCheck(ctx, models.AttachQualityCheckInput{
			SessionID: sess.ID, CheckType: "audit", Rating: 5,
		})
		assertKind(t, err, KindPrecondition)

		_, err = svc.quality.AttachQualityCheck(ctx, models.AttachQualityCheckInput{
			SessionID: sess.ID, CheckType: models.CheckTypeQuick, Rating: 11,
		})
		assertKind(t, err, KindPrecondition)

		_, err = svc.quality.AttachQualityCheck(ctx, models.AttachQualityCheckInput{
			SessionID: sess.ID, CheckType: models.CheckTypeQuick, Rating: 5, ReviewText: "text on quick",
		})
		assertKind(t, err, KindPrecondition)

		_, err = svc.quality.AttachQualityCheck(ctx, models.AttachQualityCheckInput{
			SessionID: "missing", CheckType: models.CheckTypeQuick, Rating: 5,
		})
		assertKind(t, err, KindNotFound)
	})

	t.Run("running session rejects checks", func(t *testing.T) {
		running, err := svc.sessions.CreateSession(ctx, proj.ID, session.KindCoding, "m", "")
		require.NoError(t, err)
		_, err = svc.quality.AttachQualityCheck(ctx, models.AttachQualityCheckInput{
			SessionID: running.ID, CheckType: models.CheckTypeQuick, Rating: 5,
		})
		assertKind(t, err, KindPrecondition)
	})
}

func TestQualityService_TrendAndCadence(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	proj := createTestProject(t, svc, "trend")

	attach := func(sessID, kind string, rating int) {
		t.Helper()
		_, err := svc.quality.AttachQualityCheck(ctx, models.AttachQualityCheckInput{
			SessionID: sessID, CheckType: kind, Rating: rating,
		})
		require.NoError(t, err)
	}

	init := finalizedSession(t, svc, proj.ID, session.KindInitializer)
	attach(init.ID, models.CheckTypeQuick, 8)

	coding1 := finalizedSession(t, svc, proj.ID, session.KindCoding)
	attach(coding1.ID, models.CheckTypeQuick, 5)
	attach(coding1.ID, models.CheckTypeDeep, 6)

	coding2 := finalizedSession(t, svc, proj.ID, session.KindCoding)
	attach(coding2.ID, models.CheckTypeQuick, 7)

	coding3 := finalizedSession(t, svc, proj.ID, session.KindCoding)
	attach(coding3.ID, models.CheckTypeQuick, 9)

	t.Run("trend is ordered by session number", func(t *testing.T) {
		points, err := svc.quality.QualityTrend(ctx, proj.ID, 0)
		require.NoError(t, err)
		require.Len(t, points, 5)
		assert.Equal(t, 0, points[0].SessionNumber)
		assert.Equal(t, 3, points[len(points)-1].SessionNumber)
		assert.Equal(t, 9, points[len(points)-1].Rating)

		limited, err := svc.quality.QualityTrend(ctx, proj.ID, 2)
		require.NoError(t, err)
		require.Len(t, limited, 2, "limit bounds sessions, newest kept")
		assert.Equal(t, 2, limited[0].SessionNumber)
		assert.Equal(t, 3, limited[1].SessionNumber)
	})

	t.Run("sessions since last deep", func(t *testing.T) {
		n, err := svc.quality.SessionsSinceLastDeep(ctx, proj.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, n, "coding2 and coding3 ran after the deep check on coding1")
	})

	t.Run("no deep check counts every coding session", func(t *testing.T) {
		other := createTestProject(t, svc, "trend-no-deep")
		finalizedSession(t, svc, other.ID, session.KindInitializer)
		finalizedSession(t, svc, other.ID, session.KindCoding)
		finalizedSession(t, svc, other.ID, session.KindCoding)

		n, err := svc.quality.SessionsSinceLastDeep(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}
