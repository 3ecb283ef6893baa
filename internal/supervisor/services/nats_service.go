// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// ErrNATSServerStopped is returned when the embedded server is found stopped.
var ErrNATSServerStopped = errors.New("embedded NATS server is not running")

// EmbeddedNATS is the lifecycle surface of *events.EmbeddedServer.
type EmbeddedNATS interface {
	ClientURL() string
	IsRunning() bool
	Shutdown(ctx context.Context) error
}

// EventSink is closed when the messaging layer stops.
// Satisfied by *events.Publisher.
type EventSink interface {
	Close() error
}

// NATSService owns the messaging components: the optional embedded NATS
// server and the event publisher. The server is started before the tree
// so publishers can connect during wiring; this service keeps it under
// supervision and shuts everything down in order on cancellation.
type NATSService struct {
	server          EmbeddedNATS
	sink            EventSink
	shutdownTimeout time.Duration
	checkInterval   time.Duration
	logger          zerolog.Logger
	name            string
}

// NewNATSService creates the messaging service. server and sink may be nil.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewNATSService(server EmbeddedNATS, sink EventSink, shutdownTimeout time.Duration, logger zerolog.Logger) *NATSService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	return &NATSService{
		server:          server,
		sink:            sink,
		shutdownTimeout: shutdownTimeout,
		checkInterval:   5 * time.Second,
		logger:          logger.With().Str("service", "nats").Logger(),
		name:            "nats",
	}
}

// Serve implements suture.Service.
//
// It blocks until ctx is cancelled, then closes the publisher before the
// server so in-flight publishes drain. A server that stops on its own
// cannot be restarted in place; Serve reports it and asks not to be
// restarted.
func (s *NATSService) Serve(ctx context.Context) error {
	if s.server != nil {
		s.logger.Info().Str("url", s.server.ClientURL()).Msg("Embedded NATS server supervised")
	}

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.shutdown()
			return ctx.Err()
		case <-ticker.C:
			if s.server != nil && !s.server.IsRunning() {
				s.logger.Error().Msg("Embedded NATS server stopped unexpectedly")
				return fmt.Errorf("%w: %w", ErrNATSServerStopped, suture.ErrDoNotRestart)
			}
		}
	}
}

func (s *NATSService) shutdown() {
	if s.sink != nil {
		if err := s.sink.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to close event publisher")
		}
	}
	if s.server == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Embedded NATS server shutdown incomplete")
		return
	}
	s.logger.Info().Msg("Embedded NATS server stopped")
}

// String identifies the service in supervisor events.
func (s *NATSService) String() string {
	return s.name
}
