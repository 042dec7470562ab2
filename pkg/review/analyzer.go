package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/ratchet-works/ratchet/ent"
	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/pkg/agent"
	"github.com/ratchet-works/ratchet/pkg/config"
	"github.com/ratchet-works/ratchet/pkg/events"
	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/services"
	"github.com/ratchet-works/ratchet/pkg/sessionlog"
)

// maxReviewLogBytes caps how much of the session log a deep review is fed.
// The tail is kept: the end of a session is where it went wrong.
const maxReviewLogBytes = 256 * 1024

// ratingRegex matches a "Rating: N/10" line in the review text. The
// reviewer is instructed to end with one; the last match wins.
var ratingRegex = regexp.MustCompile(`(?mi)^\s*Rating:\s*(\d{1,2})\s*/\s*10\s*$`)

// Analyzer attaches quality checks to finalized sessions.
type Analyzer struct {
	cfg       *config.ReviewConfig
	model     string
	quality   *services.QualityService
	sessions  *services.SessionService
	agent     agent.Client
	publisher *events.EventPublisher
	logger    *slog.Logger

	sem *semaphore.Weighted
	wg  sync.WaitGroup
}

// NewAnalyzer creates a quality analyzer. model is the id used for deep
// review invocations. publisher may be nil (event streaming disabled);
// agentClient may be nil, which disables the deep path entirely.
func NewAnalyzer(cfg *config.ReviewConfig, model string, quality *services.QualityService, sessions *services.SessionService, agentClient agent.Client, publisher *events.EventPublisher, logger *slog.Logger) *Analyzer {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Analyzer{
		cfg:       cfg,
		model:     model,
		quality:   quality,
		sessions:  sessions,
		agent:     agentClient,
		publisher: publisher,
		logger:    logger.With("component", "review"),
		sem:       semaphore.NewWeighted(int64(workers)),
	}
}

// ProcessSession runs the quick check on a finalized session and schedules
// a deep review when the trigger conditions hold. A missing or unreadable
// log skips the check rather than failing: quality analysis never breaks
// the session flow.
func (a *Analyzer) ProcessSession(ctx context.Context, sess *ent.Session, projectName, workspace string) (*ent.QualityCheck, error) {
	logsDir := sessionlog.LogsDir(workspace)
	path := filepath.Join(logsDir, sessionlog.JSONLName(sess.SessionNumber, string(sess.Kind)))
	records, err := sessionlog.ParseFile(path)
	if err != nil {
		a.logger.Warn("Quick check skipped: session log unreadable",
			"session_id", sess.ID, "path", path, "error", err)
		return nil, nil
	}

	verdict := Evaluate(records, string(sess.Kind))
	check, err := a.quality.AttachQualityCheck(ctx, models.AttachQualityCheckInput{
		SessionID:            sess.ID,
		CheckType:            models.CheckTypeQuick,
		Rating:               verdict.Rating,
		ToolUses:             verdict.Metrics.ToolUses,
		Errors:               verdict.Metrics.Errors,
		BrowserVerifications: verdict.Metrics.BrowserCalls,
		CriticalIssues:       verdict.Critical,
		Warnings:             verdict.Warnings,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to attach quick check: %w", err)
	}
	a.publishAttached(ctx, sess, models.CheckTypeQuick, verdict.Rating)

	if a.shouldRunDeep(ctx, sess, verdict.Rating) {
		a.scheduleDeep(deepInput{
			session:     sess,
			projectName: projectName,
			workspace:   workspace,
			quick:       verdict,
		})
	}
	return check, nil
}

// Wait blocks until every scheduled deep review has finished. Called on
// shutdown so in-flight reviews land their rows.
func (a *Analyzer) Wait() {
	a.wg.Wait()
}

// shouldRunDeep applies the deep-review trigger: every Nth coding session,
// a weak quick rating, or too long since the last deep look. Session 0
// never triggers.
func (a *Analyzer) shouldRunDeep(ctx context.Context, sess *ent.Session, quickRating int) bool {
	if a.agent == nil {
		return false
	}
	if sess.SessionNumber == 0 || sess.Kind != session.KindCoding {
		return false
	}
	if a.cfg.DeepEvery > 0 && sess.SessionNumber%a.cfg.DeepEvery == 0 {
		return true
	}
	if quickRating < a.cfg.QuickRatingThreshold {
		return true
	}
	since, err := a.quality.SessionsSinceLastDeep(ctx, sess.ProjectID)
	if err != nil {
		a.logger.Warn("Deep-review trigger check failed",
			"project_id", sess.ProjectID, "error", err)
		return false
	}
	return a.cfg.MaxQuickSinceDeep > 0 && since >= a.cfg.MaxQuickSinceDeep
}

type deepInput struct {
	session     *ent.Session
	projectName string
	workspace   string
	quick       Verdict
}

// scheduleDeep hands the review to the background pool and returns
// immediately; auto-chaining never waits on a deep review. The review runs
// detached from the caller's context so a cancelled project loop does not
// abort it.
func (a *Analyzer) scheduleDeep(in deepInput) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.sem.Acquire(context.Background(), 1); err != nil {
			return
		}
		defer a.sem.Release(1)
		a.runDeep(in)
	}()
	a.logger.Info("Deep review scheduled",
		"session_id", in.session.ID, "session_number", in.session.SessionNumber,
		"quick_rating", in.quick.Rating)
}

func (a *Analyzer) runDeep(in deepInput) {
	started := time.Now()
	runCtx, cancel := context.WithTimeout(context.Background(), a.cfg.DeepTimeout)
	defer cancel()

	text, counters, runErr := a.invokeReviewer(runCtx, in)

	rating := in.quick.Rating
	if r, ok := extractRating(text); ok && runErr == nil {
		rating = r
	}

	input := models.AttachQualityCheckInput{
		SessionID:            in.session.ID,
		CheckType:            models.CheckTypeDeep,
		Rating:               rating,
		ToolUses:             in.quick.Metrics.ToolUses,
		Errors:               in.quick.Metrics.Errors,
		BrowserVerifications: in.quick.Metrics.BrowserCalls,
		ReviewText:           text,
	}
	status := models.SessionStatusCompleted
	failureReason := ""
	if runErr != nil {
		status = models.SessionStatusFailed
		failureReason = runErr.Error()
		input.CriticalIssues = []models.Issue{{
			Tag:     models.IssueReviewError,
			Message: runErr.Error(),
		}}
	} else if err := a.writeArtifact(in, text); err != nil {
		a.logger.Warn("Failed to write review artifact",
			"session_id", in.session.ID, "error", err)
	}

	attachCtx, attachCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer attachCancel()
	if _, err := a.quality.AttachQualityCheck(attachCtx, input); err != nil {
		a.logger.Error("Failed to attach deep check",
			"session_id", in.session.ID, "error", err)
	} else {
		a.publishAttached(attachCtx, in.session, models.CheckTypeDeep, rating)
	}

	if _, err := a.sessions.RecordReviewSession(attachCtx, in.session.ProjectID, models.RecordReviewSessionInput{
		Model:         a.model,
		PromptVersion: agent.PromptVersionFor(models.SessionKindReview),
		Status:        status,
		StartedAt:     started,
		Counters:      counters,
		Metrics: map[string]interface{}{
			models.MetricDurationSeconds: time.Since(started).Seconds(),
			"reviewed_session_id":        in.session.ID,
			"reviewed_session_number":    in.session.SessionNumber,
			"rating":                     rating,
		},
		FailureReason: failureReason,
	}); err != nil {
		a.logger.Error("Failed to record review session",
			"project_id", in.session.ProjectID, "error", err)
	}

	if runErr != nil {
		a.logger.Warn("Deep review failed",
			"session_id", in.session.ID, "error", runErr,
			"fallback_rating", rating)
		return
	}
	a.logger.Info("Deep review complete",
		"session_id", in.session.ID, "rating", rating,
		"duration", time.Since(started))
}

// invokeReviewer renders the review prompt over the session's log and runs
// one agent invocation with no tool access, collecting the emitted text.
func (a *Analyzer) invokeReviewer(ctx context.Context, in deepInput) (string, models.SessionCounters, error) {
	var counters models.SessionCounters

	logText, err := a.readSessionLog(in)
	if err != nil {
		return "", counters, err
	}

	prompt, _, err := agent.RenderPrompt(models.SessionKindReview, agent.PromptInput{
		ProjectName:   in.projectName,
		SessionNumber: in.session.SessionNumber,
		SessionLog:    logText,
	})
	if err != nil {
		return "", counters, err
	}

	eventCh, err := a.agent.Run(ctx, agent.Invocation{
		SessionID: in.session.ID,
		Kind:      models.SessionKindReview,
		Model:     a.model,
		Prompt:    prompt,
		Workspace: in.workspace,
	})
	if err != nil {
		return "", counters, err
	}

	var (
		text    strings.Builder
		lastErr string
		end     *agent.EndEvent
	)
	for ev := range eventCh {
		switch e := ev.(type) {
		case agent.TextEvent:
			if text.Len() > 0 {
				text.WriteString("\n\n")
			}
			text.WriteString(e.Text)
		case agent.ToolUseEvent:
			counters.ToolUses++
		case agent.ErrorEvent:
			counters.Errors++
			lastErr = e.Message
		case agent.EndEvent:
			end = &e
		}
	}
	if end == nil {
		return text.String(), counters, errors.New("review stream ended without a result")
	}
	counters.Tokens = end.Tokens

	switch end.Status {
	case agent.EndCompleted:
	case agent.EndCancelled:
		return text.String(), counters, fmt.Errorf("review cancelled after %s", end.Duration)
	default:
		if lastErr == "" {
			lastErr = "review invocation failed"
		}
		return text.String(), counters, errors.New(lastErr)
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", counters, errors.New("review produced no text")
	}
	return text.String(), counters, nil
}

// readSessionLog loads the reviewed session's narrative log, falling back
// to the structured stream, keeping at most maxReviewLogBytes of the tail.
func (a *Analyzer) readSessionLog(in deepInput) (string, error) {
	logsDir := sessionlog.LogsDir(in.workspace)
	kind := string(in.session.Kind)
	data, err := os.ReadFile(filepath.Join(logsDir, sessionlog.TextName(in.session.SessionNumber, kind)))
	if err != nil {
		data, err = os.ReadFile(filepath.Join(logsDir, sessionlog.JSONLName(in.session.SessionNumber, kind)))
		if err != nil {
			return "", fmt.Errorf("failed to read session log: %w", err)
		}
	}
	if len(data) > maxReviewLogBytes {
		data = data[len(data)-maxReviewLogBytes:]
	}
	return string(data), nil
}

// writeArtifact stores the verbatim review text next to the session logs.
func (a *Analyzer) writeArtifact(in deepInput, text string) error {
	path := filepath.Join(sessionlog.LogsDir(in.workspace), sessionlog.ReviewName(in.session.SessionNumber))
	return os.WriteFile(path, []byte(text), 0o644)
}

func (a *Analyzer) publishAttached(ctx context.Context, sess *ent.Session, checkType string, rating int) {
	if a.publisher == nil {
		return
	}
	payload := events.QualityAttachedPayload{
		BasePayload: events.NewBase(events.EventTypeQualityAttached, sess.ProjectID),
		CheckType:   checkType,
		Rating:      rating,
	}
	payload.SessionID = sess.ID
	if err := a.publisher.PublishQualityAttached(ctx, sess.ProjectID, payload); err != nil {
		a.logger.Warn("Failed to publish quality event",
			"session_id", sess.ID, "error", err)
	}
}

// extractRating pulls the terminal rating line out of review text.
func extractRating(text string) (int, bool) {
	matches := ratingRegex.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(matches[len(matches)-1][1])
	if err != nil || n < 1 || n > 10 {
		return 0, false
	}
	return n, true
}
