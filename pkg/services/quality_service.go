package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ratchet-works/ratchet/ent"
	"github.com/ratchet-works/ratchet/ent/qualitycheck"
	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/pkg/models"
)

// QualityService manages derived quality checks attached to finalized
// sessions.
type QualityService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewQualityService creates a new QualityService.
func NewQualityService(client *ent.Client, logger *slog.Logger) *QualityService {
	return &QualityService{client: client, logger: logger.With("service", "quality")}
}

// AttachQualityCheck upserts the check keyed by (session, check_type): a
// re-run of the analyzer replaces its previous verdict instead of stacking
// a second row. The session must already be terminal.
func (s *QualityService) AttachQualityCheck(callerCtx context.Context, input models.AttachQualityCheckInput) (*ent.QualityCheck, error) {
	switch input.CheckType {
	case models.CheckTypeQuick, models.CheckTypeDeep:
	default:
		return nil, NewPreconditionError("invalid check type %q (want quick or deep)", input.CheckType)
	}
	if input.Rating < 1 || input.Rating > 10 {
		return nil, NewPreconditionError("rating %d out of range [1,10]", input.Rating)
	}
	if input.ReviewText != "" && input.CheckType != models.CheckTypeDeep {
		return nil, NewPreconditionError("review text is only valid on deep checks")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sess, err := s.client.Session.Get(ctx, input.SessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewNotFoundError("session", input.SessionID)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if sess.Status == session.StatusRunning {
		return nil, NewPreconditionError("session %q is still running; quality checks attach after finalization", input.SessionID)
	}

	builder := s.client.QualityCheck.Create().
		SetID(uuid.New().String()).
		SetSessionID(input.SessionID).
		SetCheckType(qualitycheck.CheckType(input.CheckType)).
		SetRating(input.Rating).
		SetToolUses(input.ToolUses).
		SetErrors(input.Errors).
		SetBrowserVerifications(input.BrowserVerifications)
	if input.CriticalIssues != nil {
		builder.SetCriticalIssues(input.CriticalIssues)
	}
	if input.Warnings != nil {
		builder.SetWarnings(input.Warnings)
	}
	if input.ReviewText != "" {
		builder.SetReviewText(input.ReviewText)
	}

	id, err := builder.
		OnConflictColumns(qualitycheck.FieldSessionID, qualitycheck.FieldCheckType).
		UpdateNewValues().
		ID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert quality check: %w", err)
	}

	check, err := s.client.QualityCheck.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read back quality check: %w", err)
	}

	s.logger.Info("Quality check attached",
		"session_id", input.SessionID, "check_type", input.CheckType,
		"rating", input.Rating)
	return check, nil
}

// GetQualityCheck returns one check by session and type, if present.
func (s *QualityService) GetQualityCheck(ctx context.Context, sessionID, checkType string) (*ent.QualityCheck, error) {
	check, err := s.client.QualityCheck.Query().
		Where(
			qualitycheck.SessionIDEQ(sessionID),
			qualitycheck.CheckTypeEQ(qualitycheck.CheckType(checkType)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewNotFoundError("quality check", sessionID+"/"+checkType)
		}
		return nil, fmt.Errorf("failed to get quality check: %w", err)
	}
	return check, nil
}

// QualityTrend returns the project's checks ordered by session number,
// oldest first. limit bounds the number of sessions considered; zero means
// all of them.
func (s *QualityService) QualityTrend(ctx context.Context, projectID string, limit int) ([]models.QualityPoint, error) {
	query := s.client.Session.Query().
		Where(
			session.ProjectIDEQ(projectID),
			session.HasQualityChecks(),
		).
		Order(ent.Desc(session.FieldSessionNumber)).
		WithQualityChecks()
	if limit > 0 {
		query = query.Limit(limit)
	}
	sessions, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query quality trend: %w", err)
	}

	// Reverse into ascending session order.
	var points []models.QualityPoint
	for i := len(sessions) - 1; i >= 0; i-- {
		sess := sessions[i]
		for _, check := range sess.Edges.QualityChecks {
			points = append(points, models.QualityPoint{
				SessionID:     sess.ID,
				SessionNumber: sess.SessionNumber,
				SessionKind:   string(sess.Kind),
				CheckType:     string(check.CheckType),
				Rating:        check.Rating,
			})
		}
	}
	return points, nil
}

// SessionsSinceLastDeep counts terminal coding sessions that ran after the
// most recent deep-checked session. With no deep check yet, every terminal
// coding session counts.
func (s *QualityService) SessionsSinceLastDeep(ctx context.Context, projectID string) (int, error) {
	lastDeep, err := s.client.Session.Query().
		Where(
			session.ProjectIDEQ(projectID),
			session.HasQualityChecksWith(qualitycheck.CheckTypeEQ(qualitycheck.CheckTypeDeep)),
		).
		Order(ent.Desc(session.FieldSessionNumber)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return 0, fmt.Errorf("failed to find last deep-checked session: %w", err)
	}

	query := s.client.Session.Query().
		Where(
			session.ProjectIDEQ(projectID),
			session.KindEQ(session.KindCoding),
			session.StatusNEQ(session.StatusRunning),
		)
	if lastDeep != nil {
		query = query.Where(session.SessionNumberGT(lastDeep.SessionNumber))
	}
	count, err := query.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions since last deep check: %w", err)
	}
	return count, nil
}
