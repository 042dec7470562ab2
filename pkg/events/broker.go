package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// catchupLimit is the maximum number of events delivered in a catch-up pass.
// If more events were missed, a catchup.overflow message tells the observer
// to re-read project state instead of paginating catch-up requests.
const catchupLimit = 200

// subscriberBuffer sizes each subscription's delivery channel. It must hold
// a full catch-up pass (catchupLimit plus the overflow marker) with headroom
// for live events arriving during it.
const subscriberBuffer = 256

// listenTimeout bounds how long a LISTEN command may block when subscribing
// to a new PG channel. Without this, a stalled connection would block the
// subscribing goroutine indefinitely.
const listenTimeout = 10 * time.Second

// CatchupEvent holds the data returned by the catch-up query.
type CatchupEvent struct {
	ID      int
	Payload map[string]interface{}
}

// CatchupQuerier queries events for catch-up. Implemented by EventService
// via EventServiceAdapter.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// Broker fans NOTIFY payloads out to in-process subscribers. Each subscriber
// owns a buffered channel; a subscriber that stops draining loses events
// rather than stalling the dispatch path. Consumers needing a complete
// record resubscribe from their last db_event_id.
type Broker struct {
	// Channel subscriptions: channel → subscription id → subscription.
	subs   map[string]map[int]*Subscription
	nextID int
	mu     sync.Mutex

	// catchupQuerier closes the gap between a subscriber's last seen event
	// and the live stream. May be nil (live-only delivery).
	catchupQuerier CatchupQuerier

	// NotifyListener for dynamic LISTEN/UNLISTEN (set after construction).
	listener   *NotifyListener
	listenerMu sync.RWMutex
}

// Subscription is one observer's view of a channel. Events() yields raw
// JSON payloads as published; the channel is closed on Close or when the
// broker drops the subscription after a LISTEN failure.
type Subscription struct {
	Channel string

	id     int
	ch     chan []byte
	broker *Broker
}

// Events returns the delivery channel.
func (s *Subscription) Events() <-chan []byte {
	return s.ch
}

// Close unregisters the subscription and closes its delivery channel.
// Safe to call more than once.
func (s *Subscription) Close() {
	s.broker.unsubscribe(s)
}

// NewBroker creates a new Broker. catchupQuerier may be nil to disable
// catch-up delivery.
func NewBroker(catchupQuerier CatchupQuerier) *Broker {
	return &Broker{
		subs:           make(map[string]map[int]*Subscription),
		catchupQuerier: catchupQuerier,
	}
}

// SetListener sets the NotifyListener for dynamic LISTEN/UNLISTEN.
// Called once during startup after both Broker and NotifyListener exist.
func (b *Broker) SetListener(l *NotifyListener) {
	b.listenerMu.Lock()
	defer b.listenerMu.Unlock()
	b.listener = l
}

// Subscribe registers an observer on a channel and returns its subscription.
// The first subscriber of a channel starts LISTEN synchronously, so by the
// time Subscribe returns, live delivery is active. Events with id greater
// than sinceID are then delivered from the catch-up store; an event
// published between LISTEN and the catch-up query arrives twice, so
// consumers deduplicate on db_event_id.
func (b *Broker) Subscribe(ctx context.Context, channel string, sinceID int) (*Subscription, error) {
	b.mu.Lock()
	needsListen := false
	if _, exists := b.subs[channel]; !exists {
		b.subs[channel] = make(map[int]*Subscription)
		needsListen = true
	}
	b.nextID++
	sub := &Subscription{
		Channel: channel,
		id:      b.nextID,
		ch:      make(chan []byte, subscriberBuffer),
		broker:  b,
	}
	b.subs[channel][sub.id] = sub
	b.mu.Unlock()

	if needsListen {
		b.listenerMu.RLock()
		l := b.listener
		b.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(ctx, listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				b.dropFailedChannel(channel)
				return nil, fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	if err := b.deliverCatchup(ctx, sub, sinceID); err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
	}
	return sub, nil
}

// Broadcast sends an event payload to every subscription on the channel.
// Sends never block: a subscriber with a full buffer loses the event.
func (b *Broker) Broadcast(channel string, payload []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.subs[channel] {
		b.deliver(sub, payload)
	}
}

// subscriberCount returns the number of subscribers for a channel.
// Unexported — used by tests to poll instead of sleeping.
func (b *Broker) subscriberCount(channel string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[channel])
}

// deliver performs the non-blocking send. Callers hold b.mu, which also
// excludes unsubscribe from closing the channel mid-send.
func (b *Broker) deliver(sub *Subscription, payload []byte) {
	select {
	case sub.ch <- payload:
	default:
		slog.Warn("Dropping event for slow subscriber",
			"channel", sub.Channel, "subscription_id", sub.id)
	}
}

// deliverCatchup queries missed events since sinceID and feeds them to one
// subscription, injecting db_event_id from the row id (the stored payload
// does not contain it; it is only added to the NOTIFY copy at publish time).
func (b *Broker) deliverCatchup(ctx context.Context, sub *Subscription, sinceID int) error {
	if b.catchupQuerier == nil {
		return nil
	}

	// Query one event past the limit to detect overflow.
	evts, err := b.catchupQuerier.GetCatchupEvents(ctx, sub.Channel, sinceID, catchupLimit+1)
	if err != nil {
		return err
	}
	hasMore := len(evts) > catchupLimit
	if hasMore {
		evts = evts[:catchupLimit]
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub.Channel][sub.id]; !ok {
		return nil // closed while the query ran
	}
	for _, evt := range evts {
		evt.Payload["db_event_id"] = evt.ID
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		b.deliver(sub, payload)
	}
	if hasMore {
		marker, err := json.Marshal(map[string]interface{}{
			"type":     "catchup.overflow",
			"channel":  sub.Channel,
			"has_more": true,
		})
		if err == nil {
			b.deliver(sub, marker)
		}
	}
	return nil
}

// unsubscribe removes a subscription and stops LISTEN if it was the last
// one on its channel.
func (b *Broker) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	channelSubs, exists := b.subs[sub.Channel]
	if !exists {
		b.mu.Unlock()
		return
	}
	if _, ok := channelSubs[sub.id]; !ok {
		b.mu.Unlock()
		return // already closed
	}
	delete(channelSubs, sub.id)
	close(sub.ch)
	last := len(channelSubs) == 0
	if last {
		delete(b.subs, sub.Channel)
	}
	b.mu.Unlock()

	if !last {
		return
	}

	// Last subscriber left — stop LISTEN. The goroutine re-checks b.subs
	// before issuing UNLISTEN so a rapid unsubscribe/resubscribe cycle does
	// not drop a LISTEN the new subscriber relies on.
	b.listenerMu.RLock()
	l := b.listener
	b.listenerMu.RUnlock()
	if l == nil {
		return
	}
	go func() {
		b.mu.Lock()
		_, resubscribed := b.subs[sub.Channel]
		b.mu.Unlock()
		if resubscribed {
			return
		}
		if err := l.Unsubscribe(context.Background(), sub.Channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", sub.Channel, "error", err)
		}
	}()
}

// dropFailedChannel removes ALL subscriptions from a channel after a LISTEN
// failure, closing their delivery channels.
//
// Between registering the channel entry and LISTEN completing, other
// goroutines may have subscribed to the same channel; they saw it already
// existed, skipped LISTEN, and got a live subscription backed by nothing.
// Closing their channels is the signal to resubscribe with back-off.
func (b *Broker) dropFailedChannel(channel string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.subs[channel] {
		slog.Warn("Removing orphaned subscriber after LISTEN failure",
			"channel", channel, "subscription_id", sub.id)
		close(sub.ch)
	}
	delete(b.subs, channel)
}
