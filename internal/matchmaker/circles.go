// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package matchmaker

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/tomtom215/matchbox/internal/events"
	"github.com/tomtom215/matchbox/internal/matching"
	"github.com/tomtom215/matchbox/internal/metrics"
)

// CircleSizeError reports a circle size outside the allowed range.
type CircleSizeError struct {
	Size, Min, Max int
}

func (e *CircleSizeError) Error() string {
	return fmt.Sprintf("circle size must be between %d and %d", e.Min, e.Max)
}

// Unwrap lets errors.Is match ErrInvalidCircleSize.
func (e *CircleSizeError) Unwrap() error {
	return ErrInvalidCircleSize
}

// ResolveCircleSize maps 0 to the default size and range checks the result.
func (e *Engine) ResolveCircleSize(size int) (int, error) {
	if size == 0 {
		size = e.cfg.DefaultCircleSize
	}
	if size < e.cfg.MinCircleSize || size > e.cfg.MaxCircleSize {
		return 0, &CircleSizeError{Size: size, Min: e.cfg.MinCircleSize, Max: e.cfg.MaxCircleSize}
	}
	return size, nil
}

// FormCircles partitions the directory into circles of circleSize members.
// A circleSize of 0 selects DefaultCircleSize.
func (e *Engine) FormCircles(ctx context.Context, circleSize int) ([]matching.MatchCircle, error) {
	size, err := e.ResolveCircleSize(circleSize)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	population, err := e.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load circle population: %w", err)
	}

	circles := matching.FormCircles(population, size)
	if circles == nil {
		circles = []matching.MatchCircle{}
	}
	duration := time.Since(start)

	ev := events.NewCirclesFormed(size, population, circles, e.now())
	metrics.RecordCircleFormation(strconv.Itoa(size), duration, len(population), len(circles), len(ev.Unassigned))

	e.log(ctx).Info().
		Int("circle_size", size).
		Int("population", len(population)).
		Int("circles", len(circles)).
		Int("unassigned", len(ev.Unassigned)).
		Dur("duration", duration).
		Msg("Match circles formed")

	// A fresh directory snapshot was just taken; rankings computed from an
	// older one are dropped.
	e.cache.Clear()

	if e.sink != nil {
		if err := e.sink.PublishCirclesFormed(ctx, ev); err != nil {
			e.log(ctx).Warn().Err(err).Msg("Failed to publish circles formed event")
		}
	}

	return circles, nil
}
