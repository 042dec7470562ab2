package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ratchet-works/ratchet/ent"
	"github.com/ratchet-works/ratchet/ent/event"
)

// EventService reads and prunes the persisted event stream. Writes happen
// in pkg/events, which inserts and notifies in one transaction; this
// service covers the catch-up and retention paths.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves a channel's events with id greater than sinceID,
// oldest first. Used by subscribers to close the gap after (re)connecting.
// limit caps the result when positive.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	query := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID))
	if limit > 0 {
		query = query.Limit(limit)
	}
	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// CleanupProjectEvents removes all events for a project. Called on project
// deletion; event rows carry no foreign key so the cascade cannot do it.
func (s *EventService) CleanupProjectEvents(callerCtx context.Context, projectID string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.ProjectIDEQ(projectID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup project events: %w", err)
	}
	return count, nil
}

// CleanupExpiredEvents removes events older than the retention TTL,
// including rows orphaned by projects deleted while the service was down.
func (s *EventService) CleanupExpiredEvents(callerCtx context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, fmt.Errorf("event ttl must be positive, got %s", ttl)
	}
	cutoff := time.Now().Add(-ttl)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup expired events: %w", err)
	}
	return count, nil
}
