// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	natsgo "github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/matchbox/internal/metrics"
	"github.com/tomtom215/matchbox/internal/resilience"
)

// ErrPublisherClosed is returned by Publish after Close.
var ErrPublisherClosed = errors.New("event publisher is closed")

// ErrPublisherUnavailable is returned while the publish circuit breaker is open.
var ErrPublisherUnavailable = errors.New("event publisher unavailable")

// PublisherConfig configures a Publisher.
type PublisherConfig struct {
	// Rate is the sustained publish rate in messages per second. Zero disables limiting.
	Rate  float64
	Burst int

	BreakerThreshold uint32
	BreakerTimeout   time.Duration
}

// DefaultPublisherConfig returns production defaults.
func DefaultPublisherConfig() PublisherConfig {
	return PublisherConfig{
		Rate:             50,
		Burst:            10,
		BreakerThreshold: 5,
		BreakerTimeout:   30 * time.Second,
	}
}

// Publisher sends matchmaking events over a Watermill publisher.
type Publisher struct {
	publisher message.Publisher
	cb        *resilience.Breaker
	limiter   *rate.Limiter
	logger    zerolog.Logger

	mu     sync.RWMutex
	closed bool
}

// NewPublisher wraps pub. The Publisher owns pub and closes it on Close.
func NewPublisher(pub message.Publisher, cfg PublisherConfig, logger zerolog.Logger) *Publisher {
	limit := rate.Inf
	if cfg.Rate > 0 {
		limit = rate.Limit(cfg.Rate)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = 30 * time.Second
	}

	return &Publisher{
		publisher: pub,
		cb: resilience.NewBreaker(resilience.BreakerConfig{
			Name:             "event-publisher",
			FailureThreshold: cfg.BreakerThreshold,
			Timeout:          cfg.BreakerTimeout,
		}),
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger.With().Str("component", "events").Logger(),
	}
}

// PublishCirclesFormed publishes ev on TopicCirclesFormed.
func (p *Publisher) PublishCirclesFormed(ctx context.Context, ev CirclesFormed) error {
	return p.publishJSON(ctx, TopicCirclesFormed, ev.EventID, ev)
}

// PublishMatchesFound publishes ev on TopicMatchesFound.
func (p *Publisher) PublishMatchesFound(ctx context.Context, ev MatchesFound) error {
	return p.publishJSON(ctx, TopicMatchesFound, ev.EventID, ev)
}

func (p *Publisher) publishJSON(ctx context.Context, topic, eventID string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("serialize %s event: %w", topic, err)
	}

	msg := message.NewMessage(eventID, data)
	msg.Metadata.Set("content_type", "application/json")
	msg.SetContext(ctx)

	return p.Publish(ctx, topic, msg)
}

// Publish sends msg to topic after waiting for the rate limiter.
// The message UUID is used as Nats-Msg-Id unless already set.
func (p *Publisher) Publish(ctx context.Context, topic string, msg *message.Message) error {
	p.mu.RLock()
	closed := p.closed
	p.mu.RUnlock()
	if closed {
		return ErrPublisherClosed
	}

	if err := p.limiter.Wait(ctx); err != nil {
		metrics.RecordEventPublish(topic, err)
		return fmt.Errorf("publish rate limit: %w", err)
	}

	if msg.Metadata.Get(natsgo.MsgIdHdr) == "" {
		msg.Metadata.Set(natsgo.MsgIdHdr, msg.UUID)
	}

	_, err := p.cb.Execute(func() (any, error) {
		return nil, p.publisher.Publish(topic, msg)
	})
	metrics.RecordEventPublish(topic, err)

	if resilience.IsRejected(err) {
		return fmt.Errorf("%w: %s", ErrPublisherUnavailable, err)
	}
	if err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}

	p.logger.Debug().Str("topic", topic).Str("message_id", msg.UUID).Msg("Event published")
	return nil
}

// BreakerState returns "closed", "half-open" or "open".
func (p *Publisher) BreakerState() string {
	return resilience.StateName(p.cb.State())
}

// Close closes the underlying publisher. Close is idempotent.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.publisher.Close()
}
