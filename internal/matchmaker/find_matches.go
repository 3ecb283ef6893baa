// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package matchmaker

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/matchbox/internal/cache"
	"github.com/tomtom215/matchbox/internal/events"
	"github.com/tomtom215/matchbox/internal/matching"
	"github.com/tomtom215/matchbox/internal/metrics"
)

// FindMatches ranks every other profile in the directory for seeker.
//
// Candidates whose composite score strictly exceeds MatchThreshold are kept,
// sorted by AI score descending (ties keep directory order) and truncated to
// MaxResults. The seeker is excluded by ID. A MatchesFound event is
// published once per ranking pass; cache hits publish nothing.
func (e *Engine) FindMatches(ctx context.Context, seeker matching.UserProfile) ([]matching.CompatibilityResult, error) {
	if seeker.ID == "" || seeker.Interests == nil {
		return nil, ErrInvalidProfile
	}

	key := cache.GenerateKey("find-matches", seeker)
	results, hit, err := e.cache.GetOrLoad(ctx, key, func(ctx context.Context) ([]matching.CompatibilityResult, error) {
		ctx, cancel := context.WithTimeout(ctx, e.cfg.rankTimeout())
		defer cancel()

		ranked, err := e.rank(ctx, seeker)
		if err != nil {
			return nil, err
		}
		e.publishMatches(ctx, seeker.ID, ranked)
		return ranked, nil
	})
	if e.cache.Enabled() {
		metrics.RecordCacheLookup(hit)
	}
	if err != nil {
		return nil, err
	}
	return slices.Clone(results), nil
}

func (e *Engine) rank(ctx context.Context, seeker matching.UserProfile) ([]matching.CompatibilityResult, error) {
	start := time.Now()

	population, err := e.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidate pool: %w", err)
	}

	candidates := make([]matching.UserProfile, 0, len(population))
	for _, p := range population {
		if p.ID != seeker.ID {
			candidates = append(candidates, p)
		}
	}

	scored, err := e.scoreAll(ctx, seeker, candidates)
	if err != nil {
		return nil, err
	}

	kept := make([]matching.CompatibilityResult, 0, len(scored))
	for _, r := range scored {
		if r != nil {
			kept = append(kept, *r)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].AIScore > kept[j].AIScore
	})
	if len(kept) > e.cfg.MaxResults {
		kept = kept[:e.cfg.MaxResults]
	}

	metrics.RecordFindMatches(time.Since(start), len(candidates), len(kept))
	e.log(ctx).Debug().
		Str("seeker_id", seeker.ID).
		Int("candidates", len(candidates)).
		Int("matches", len(kept)).
		Dur("duration", time.Since(start)).
		Msg("Matches ranked")

	return kept, nil
}

// scoreAll evaluates candidates in parallel. The result is index-aligned
// with candidates; nil marks a candidate at or below the threshold.
func (e *Engine) scoreAll(ctx context.Context, seeker matching.UserProfile, candidates []matching.UserProfile) ([]*matching.CompatibilityResult, error) {
	out := make([]*matching.CompatibilityResult, len(candidates))
	if len(candidates) == 0 {
		return out, nil
	}

	workers := min(e.cfg.workers(), len(candidates))
	chunk := (len(candidates) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for from := 0; from < len(candidates); from += chunk {
		to := min(from+chunk, len(candidates))
		g.Go(func() error {
			for i := from; i < to; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				c := candidates[i]
				distance := matching.DistanceBetween(seeker, c, e.cfg.DefaultDistance)
				score := matching.CompositeScore(seeker, c, distance)
				metrics.RecordCompositeScore(score)
				if score <= e.cfg.MatchThreshold {
					continue
				}
				r := matching.Evaluate(seeker, c, distance)
				out[i] = &r
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("score candidates: %w", err)
	}
	return out, nil
}

func (e *Engine) publishMatches(ctx context.Context, seekerID string, results []matching.CompatibilityResult) {
	if e.sink == nil {
		return
	}
	ev := events.NewMatchesFound(seekerID, results, e.now())
	if err := e.sink.PublishMatchesFound(ctx, ev); err != nil {
		e.log(ctx).Warn().Err(err).Str("seeker_id", seekerID).Msg("Failed to publish matches found event")
	}
}
