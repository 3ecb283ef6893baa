// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/tomtom215/matchbox/internal/matching"
)

// Topics.
const (
	TopicCirclesFormed = "matchbox.circles.formed"
	TopicMatchesFound  = "matchbox.matches.found"
)

// StreamSubjects covers every topic published by this package.
const StreamSubjects = "matchbox.>"

// CirclesFormed records one circle formation run. Circles holds member IDs,
// anchor first.
type CirclesFormed struct {
	EventID    string     `json:"event_id"`
	CircleSize int        `json:"circle_size"`
	Population int        `json:"population"`
	Circles    [][]string `json:"circles"`
	Unassigned []string   `json:"unassigned"`
	FormedAt   time.Time  `json:"formed_at"`
}

// MatchesFound records the ranked result of one find-matches request.
type MatchesFound struct {
	EventID  string    `json:"event_id"`
	SeekerID string    `json:"seeker_id"`
	MatchIDs []string  `json:"match_ids"`
	Scores   []float64 `json:"scores"`
	AIScores []float64 `json:"ai_scores"`
	FoundAt  time.Time `json:"found_at"`
}

// NewCirclesFormed builds the event for circles formed from population.
func NewCirclesFormed(circleSize int, population []matching.UserProfile, circles []matching.MatchCircle, at time.Time) CirclesFormed {
	assigned := make(map[string]struct{})
	ids := make([][]string, 0, len(circles))
	for _, c := range circles {
		members := c.IDs()
		for _, id := range members {
			assigned[id] = struct{}{}
		}
		ids = append(ids, members)
	}

	unassigned := lo.Uniq(lo.FilterMap(population, func(p matching.UserProfile, _ int) (string, bool) {
		_, ok := assigned[p.ID]
		return p.ID, !ok
	}))

	return CirclesFormed{
		EventID:    uuid.NewString(),
		CircleSize: circleSize,
		Population: len(population),
		Circles:    ids,
		Unassigned: unassigned,
		FormedAt:   at.UTC(),
	}
}

// NewMatchesFound builds the event for a ranked find-matches result.
func NewMatchesFound(seekerID string, results []matching.CompatibilityResult, at time.Time) MatchesFound {
	ev := MatchesFound{
		EventID:  uuid.NewString(),
		SeekerID: seekerID,
		MatchIDs: make([]string, len(results)),
		Scores:   make([]float64, len(results)),
		AIScores: make([]float64, len(results)),
		FoundAt:  at.UTC(),
	}
	for i, r := range results {
		ev.MatchIDs[i] = r.User.ID
		ev.Scores[i] = r.Score
		ev.AIScores[i] = r.AIScore
	}
	return ev
}
