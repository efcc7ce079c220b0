// Package events delivers auction events to viewers. Publishing is fire and
// forget: a failed delivery is logged and never reaches the caller.
package events

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
	"github.com/GlebRadaev/auctionhouse/pkg/clients"
)

type Sink interface {
	Publish(ctx context.Context, event domain.Event)
}

// Room is the broadcast channel of a single auction.
func Room(auctionID int) string {
	return "auction:" + strconv.Itoa(auctionID)
}

type LogSink struct{}

func (LogSink) Publish(_ context.Context, event domain.Event) {
	zap.L().Info("auction event",
		zap.String("room", Room(event.AuctionID)),
		zap.String("event", string(event.Type)),
		zap.Any("payload", event.Payload),
	)
}

type message struct {
	Room    string           `json:"room"`
	Event   domain.EventType `json:"event"`
	Payload any              `json:"payload"`
}

// WebhookSink posts each event to a broadcaster that owns the viewer
// connections. Events are queued and sent in order by one background sender,
// so Publish never waits on the network. When the queue is full the event is
// dropped.
type WebhookSink struct {
	url    string
	client clients.HTTPClientI

	mu     sync.RWMutex
	closed bool
	queue  chan []byte
	done   chan struct{}
}

const DefaultWebhookQueue = 256

func NewWebhookSink(url string, client clients.HTTPClientI, queueSize int) *WebhookSink {
	if queueSize <= 0 {
		queueSize = DefaultWebhookQueue
	}
	s := &WebhookSink{
		url:    url,
		client: client,
		queue:  make(chan []byte, queueSize),
		done:   make(chan struct{}),
	}
	go s.send()
	return s
}

func (s *WebhookSink) Publish(_ context.Context, event domain.Event) {
	body, err := json.Marshal(message{
		Room:    Room(event.AuctionID),
		Event:   event.Type,
		Payload: event.Payload,
	})
	if err != nil {
		zap.L().Error("can't encode event", zap.String("event", string(event.Type)), zap.Error(err))
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		zap.L().Warn("event sink closed, event dropped", zap.String("event", string(event.Type)))
		return
	}
	select {
	case s.queue <- body:
	default:
		zap.L().Warn("event queue full, event dropped", zap.String("event", string(event.Type)))
	}
}

func (s *WebhookSink) send() {
	defer close(s.done)
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	for body := range s.queue {
		status, _, err := s.client.Post(context.Background(), s.url, headers, body)
		if err != nil {
			zap.L().Warn("event delivery failed", zap.Error(err))
			continue
		}
		if status >= http.StatusMultipleChoices {
			zap.L().Warn("event rejected by broadcaster", zap.Int("status", status))
		}
	}
}

// Close stops accepting events and waits until the queued ones are sent.
func (s *WebhookSink) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()
	<-s.done
}

// Multi publishes to every sink in order.
type Multi []Sink

func (m Multi) Publish(ctx context.Context, event domain.Event) {
	for _, s := range m {
		s.Publish(ctx, event)
	}
}

// Batch holds events raised inside a transaction until it commits.
// Collected events are dropped if Flush is never called.
type Batch struct {
	mu     sync.Mutex
	events []domain.Event
}

func (b *Batch) Add(event domain.Event) {
	b.mu.Lock()
	b.events = append(b.events, event)
	b.mu.Unlock()
}

func (b *Batch) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}

func (b *Batch) Flush(ctx context.Context, sink Sink) {
	b.mu.Lock()
	pending := b.events
	b.events = nil
	b.mu.Unlock()

	for _, event := range pending {
		sink.Publish(ctx, event)
	}
}

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *Recorder) Publish(_ context.Context, event domain.Event) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()
}

func (r *Recorder) Events() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Event, len(r.events))
	copy(out, r.events)
	return out
}
