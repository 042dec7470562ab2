// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/ratchet-works/ratchet/pkg/config"
	"github.com/ratchet-works/ratchet/pkg/models"
	"github.com/ratchet-works/ratchet/pkg/services"
)

// Service periodically enforces retention policies:
//   - Cancels running sessions whose heartbeat went silent
//   - Removes persisted stream events past their TTL
//
// All operations are idempotent and safe to run from multiple processes.
type Service struct {
	config         *config.RetentionConfig
	sessionService *services.SessionService
	eventService   *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	sessionService *services.SessionService,
	eventService *services.EventService,
) *Service {
	return &Service{
		config:         cfg,
		sessionService: sessionService,
		eventService:   eventService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_ttl", s.config.EventTTL,
		"interval", s.config.SweepInterval,
		"stale_initializer_after", s.config.StaleInitializerAfter,
		"stale_coding_after", s.config.StaleCodingAfter,
		"stale_review_after", s.config.StaleReviewAfter)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.cancelStaleSessions(ctx)
	s.pruneExpiredEvents(ctx)
}

func (s *Service) cancelStaleSessions(_ context.Context) {
	count, err := s.sessionService.CleanupStaleSessions(context.Background(), models.StaleThresholds{
		Initializer: s.config.StaleInitializerAfter,
		Coding:      s.config.StaleCodingAfter,
		Review:      s.config.StaleReviewAfter,
	})
	if err != nil {
		slog.Error("Retention: stale session sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cancelled stale sessions", "count", count)
	}
}

func (s *Service) pruneExpiredEvents(_ context.Context) {
	count, err := s.eventService.CleanupExpiredEvents(context.Background(), s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned expired events", "count", count)
	}
}
