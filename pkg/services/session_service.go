package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ratchet-works/ratchet/ent"
	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/pkg/models"
)

// SessionService manages session rows: dense numbering, the single-running
// invariant, terminal finalization and stale-session reconciliation.
type SessionService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client, logger *slog.Logger) *SessionService {
	return &SessionService{client: client, logger: logger.With("service", "session")}
}

// CreateSession allocates the next dense session number under the project
// row lock and inserts the row as running. Session 0 must be the
// initializer and the initializer never runs twice; a second running
// session is rejected.
func (s *SessionService) CreateSession(callerCtx context.Context, projectID string, kind session.Kind, model, promptVersion string) (*ent.Session, error) {
	switch kind {
	case session.KindInitializer, session.KindCoding, session.KindReview:
	default:
		return nil, NewPreconditionError("invalid session kind %q", kind)
	}
	if model == "" {
		return nil, NewPreconditionError("session model is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := lockProject(ctx, tx, projectID); err != nil {
		return nil, err
	}

	number := 0
	last, err := tx.Session.Query().
		Where(session.ProjectIDEQ(projectID)).
		Order(ent.Desc(session.FieldSessionNumber)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query last session: %w", err)
	}
	if last != nil {
		number = last.SessionNumber + 1
	}

	if number == 0 && kind != session.KindInitializer {
		return nil, NewPreconditionError("session 0 must be the initializer, got %q", kind)
	}
	if number > 0 && kind == session.KindInitializer {
		return nil, NewPreconditionError("project %q already ran its initializer", projectID)
	}

	builder := tx.Session.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetSessionNumber(number).
		SetKind(kind).
		SetModel(model).
		SetLastActiveAt(time.Now())
	if promptVersion != "" {
		builder.SetPromptVersion(promptVersion)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewPreconditionError("project %q already has a running session", projectID)
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit session creation: %w", err)
	}

	s.logger.Info("Session created",
		"project_id", projectID, "session_id", created.ID,
		"session_number", number, "kind", kind, "model", model)
	return created, nil
}

// FinalizeSession transitions a running session to a terminal status and
// writes its aggregate counters. Terminal sessions are immutable: a second
// finalization attempt fails with a precondition error.
func (s *SessionService) FinalizeSession(callerCtx context.Context, sessionID string, status session.Status, counters models.SessionCounters, metrics map[string]interface{}, failureReason string) (*ent.Session, error) {
	switch status {
	case session.StatusCompleted, session.StatusFailed, session.StatusCancelled:
	default:
		return nil, NewPreconditionError("finalize requires a terminal status, got %q", status)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	sess, err := tx.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewNotFoundError("session", sessionID)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if _, err := lockProject(ctx, tx, sess.ProjectID); err != nil {
		return nil, err
	}
	// Re-read under the lock; the first read may predate a concurrent finalize.
	sess, err = tx.Session.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read session: %w", err)
	}
	if sess.Status != session.StatusRunning {
		return nil, NewPreconditionError("session %q is already %s", sessionID, sess.Status)
	}

	now := time.Now()
	update := sess.Update().
		SetStatus(status).
		SetEndedAt(now).
		SetLastActiveAt(now).
		SetToolUseCount(counters.ToolUses).
		SetErrorCount(counters.Errors).
		SetTokensInput(counters.Tokens.Input).
		SetTokensOutput(counters.Tokens.Output).
		SetTokensCacheCreation(counters.Tokens.CacheCreation).
		SetTokensCacheRead(counters.Tokens.CacheRead)
	if metrics != nil {
		update.SetMetrics(metrics)
	}
	if failureReason != "" {
		update.SetFailureReason(failureReason)
	}
	sess, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit session finalization: %w", err)
	}

	s.logger.Info("Session finalized",
		"session_id", sessionID, "status", status,
		"tool_uses", counters.ToolUses, "errors", counters.Errors)
	return sess, nil
}

// RecordReviewSession inserts a review session row that is terminal from
// birth. Deep reviews run detached on a background pool, so holding a
// running row for their duration would collide with the single-running
// index while the next coding session executes; the number is allocated
// and the row finalized in one transaction instead.
func (s *SessionService) RecordReviewSession(callerCtx context.Context, projectID string, input models.RecordReviewSessionInput) (*ent.Session, error) {
	switch input.Status {
	case models.SessionStatusCompleted, models.SessionStatusFailed, models.SessionStatusCancelled:
	default:
		return nil, NewPreconditionError("review sessions are recorded terminal, got status %q", input.Status)
	}
	if input.Model == "" {
		return nil, NewPreconditionError("session model is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := lockProject(ctx, tx, projectID); err != nil {
		return nil, err
	}

	last, err := tx.Session.Query().
		Where(session.ProjectIDEQ(projectID)).
		Order(ent.Desc(session.FieldSessionNumber)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewPreconditionError("project %q has no sessions to review", projectID)
		}
		return nil, fmt.Errorf("failed to query last session: %w", err)
	}

	now := time.Now()
	startedAt := input.StartedAt
	if startedAt.IsZero() {
		startedAt = now
	}
	builder := tx.Session.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetSessionNumber(last.SessionNumber + 1).
		SetKind(session.KindReview).
		SetStatus(session.Status(input.Status)).
		SetModel(input.Model).
		SetStartedAt(startedAt).
		SetEndedAt(now).
		SetLastActiveAt(now).
		SetToolUseCount(input.Counters.ToolUses).
		SetErrorCount(input.Counters.Errors).
		SetTokensInput(input.Counters.Tokens.Input).
		SetTokensOutput(input.Counters.Tokens.Output).
		SetTokensCacheCreation(input.Counters.Tokens.CacheCreation).
		SetTokensCacheRead(input.Counters.Tokens.CacheRead)
	if input.PromptVersion != "" {
		builder.SetPromptVersion(input.PromptVersion)
	}
	if input.Metrics != nil {
		builder.SetMetrics(input.Metrics)
	}
	if input.FailureReason != "" {
		builder.SetFailureReason(input.FailureReason)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record review session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit review session: %w", err)
	}

	s.logger.Info("Review session recorded",
		"project_id", projectID, "session_id", created.ID,
		"session_number", created.SessionNumber, "status", input.Status)
	return created, nil
}

// Touch refreshes the stale-detection heartbeat. Touching a session that
// already reached a terminal status is a harmless no-op; the heartbeat
// races session teardown by design.
func (s *SessionService) Touch(callerCtx context.Context, sessionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID), session.StatusEQ(session.StatusRunning)).
		SetLastActiveAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by id.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	sess, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewNotFoundError("session", sessionID)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

// ListSessions returns a project's sessions in session-number order.
func (s *SessionService) ListSessions(ctx context.Context, projectID string) ([]*ent.Session, error) {
	sessions, err := s.client.Session.Query().
		Where(session.ProjectIDEQ(projectID)).
		Order(ent.Asc(session.FieldSessionNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// ListOpenSessions returns the project's running sessions. At most one
// exists by design; the slice form keeps crash recovery honest when the
// invariant was violated by an older binary.
func (s *SessionService) ListOpenSessions(ctx context.Context, projectID string) ([]*ent.Session, error) {
	sessions, err := s.client.Session.Query().
		Where(session.ProjectIDEQ(projectID), session.StatusEQ(session.StatusRunning)).
		Order(ent.Asc(session.FieldSessionNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open sessions: %w", err)
	}
	return sessions, nil
}

// CleanupStaleSessions cancels running sessions whose heartbeat is older
// than the per-kind threshold. Returns how many sessions were reconciled.
func (s *SessionService) CleanupStaleSessions(callerCtx context.Context, thresholds models.StaleThresholds) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	kinds := []struct {
		kind      session.Kind
		threshold time.Duration
	}{
		{session.KindInitializer, thresholds.Initializer},
		{session.KindCoding, thresholds.Coding},
		{session.KindReview, thresholds.Review},
	}

	total := 0
	now := time.Now()
	for _, k := range kinds {
		if k.threshold <= 0 {
			continue
		}
		cutoff := now.Add(-k.threshold)
		count, err := s.client.Session.Update().
			Where(
				session.KindEQ(k.kind),
				session.StatusEQ(session.StatusRunning),
				session.LastActiveAtLT(cutoff),
			).
			SetStatus(session.StatusCancelled).
			SetEndedAt(now).
			SetFailureReason(fmt.Sprintf("stale: no heartbeat for more than %s", k.threshold)).
			Save(ctx)
		if err != nil {
			return total, fmt.Errorf("failed to cancel stale %s sessions: %w", k.kind, err)
		}
		if count > 0 {
			s.logger.Warn("Cancelled stale sessions", "kind", k.kind, "count", count, "threshold", k.threshold)
		}
		total += count
	}
	return total, nil
}

// ReconcileStartup cancels every session left running by a previous
// process. Called once before the orchestrator accepts work.
func (s *SessionService) ReconcileStartup(callerCtx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	count, err := s.client.Session.Update().
		Where(session.StatusEQ(session.StatusRunning)).
		SetStatus(session.StatusCancelled).
		SetEndedAt(now).
		SetFailureReason("orchestrator restart").
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reconcile running sessions: %w", err)
	}
	if count > 0 {
		s.logger.Warn("Reconciled sessions from previous run", "count", count)
	}
	return count, nil
}
