// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package events

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	natsgo "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// StreamName is the JetStream stream holding every matchbox topic.
const StreamName = "MATCHBOX"

// NATSConfig configures the NATS JetStream transport.
type NATSConfig struct {
	URL           string
	ClientName    string
	MaxReconnects int
	ReconnectWait time.Duration

	// StreamMaxAge bounds retention of published events. Zero keeps them forever.
	StreamMaxAge time.Duration
}

// DefaultNATSConfig returns defaults for url.
func DefaultNATSConfig(url string) NATSConfig {
	return NATSConfig{
		URL:           url,
		ClientName:    "matchbox",
		MaxReconnects: -1,
		ReconnectWait: 2 * time.Second,
		StreamMaxAge:  7 * 24 * time.Hour,
	}
}

func natsOptions(cfg NATSConfig, logger watermill.LoggerAdapter) []natsgo.Option {
	return []natsgo.Option{
		natsgo.Name(cfg.ClientName),
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(cfg.MaxReconnects),
		natsgo.ReconnectWait(cfg.ReconnectWait),
		natsgo.DisconnectErrHandler(func(_ *natsgo.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", err, nil)
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info("NATS reconnected", watermill.LogFields{"url": nc.ConnectedUrl()})
		}),
	}
}

// EnsureStream creates or updates the JetStream stream for matchbox topics.
func EnsureStream(ctx context.Context, cfg NATSConfig, logger watermill.LoggerAdapter) (jetstream.StreamInfo, error) {
	nc, err := natsgo.Connect(cfg.URL, natsOptions(cfg, logger)...)
	if err != nil {
		return jetstream.StreamInfo{}, fmt.Errorf("connect to NATS: %w", err)
	}
	defer nc.Close()

	js, err := jetstream.New(nc)
	if err != nil {
		return jetstream.StreamInfo{}, fmt.Errorf("create JetStream context: %w", err)
	}

	stream, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:       StreamName,
		Subjects:   []string{StreamSubjects},
		Storage:    jetstream.FileStorage,
		Retention:  jetstream.LimitsPolicy,
		MaxAge:     cfg.StreamMaxAge,
		Duplicates: 2 * time.Minute,
	})
	if err != nil {
		return jetstream.StreamInfo{}, fmt.Errorf("ensure stream %s: %w", StreamName, err)
	}
	return *stream.CachedInfo(), nil
}

// NewNATSPublisher creates a Watermill publisher on NATS JetStream.
// The stream must exist; call EnsureStream first.
func NewNATSPublisher(cfg NATSConfig, logger watermill.LoggerAdapter) (message.Publisher, error) {
	wmConfig := wmNats.PublisherConfig{
		URL:         cfg.URL,
		NatsOptions: natsOptions(cfg, logger),
		Marshaler:   &wmNats.NATSMarshaler{},
		JetStream: wmNats.JetStreamConfig{
			Disabled:      false,
			AutoProvision: false,
			TrackMsgId:    true,
			PublishOptions: []natsgo.PubOpt{
				natsgo.RetryAttempts(3),
				natsgo.RetryWait(100 * time.Millisecond),
			},
		},
	}

	pub, err := wmNats.NewPublisher(wmConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("create watermill NATS publisher: %w", err)
	}
	return pub, nil
}

// NewGoChannelPublisher creates an in-process pub/sub. The returned value is
// also a message.Subscriber, which tests use to observe published events.
func NewGoChannelPublisher(logger watermill.LoggerAdapter) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
	}, logger)
}
