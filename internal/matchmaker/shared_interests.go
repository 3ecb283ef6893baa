// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package matchmaker

import (
	"context"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/tomtom215/matchbox/internal/profiles"
)

// SharedInterestMatch is a user ranked by interest overlap with the seeker.
type SharedInterestMatch struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name,omitempty"`
	Email              string   `json:"email,omitempty"`
	Bio                string   `json:"bio,omitempty"`
	ProfileImage       string   `json:"profileImage,omitempty"`
	Interests          []string `json:"interests"`
	SharedInterests    int      `json:"sharedInterests"`
	CompatibilityScore float64  `json:"compatibilityScore"`
}

// BestSharedInterestMatches ranks other users by the percentage of the
// seeker's interests they share:
//
//	compatibilityScore = |distinct shared interests| / len(seeker.Interests) * 100
//
// Users sharing nothing are excluded. limit <= 0 selects BestMatchLimit.
// An unknown email returns profiles.ErrNotFound; a seeker without interests
// gets an empty result.
func (e *Engine) BestSharedInterestMatches(ctx context.Context, email string, limit int) ([]SharedInterestMatch, error) {
	if limit <= 0 {
		limit = e.cfg.BestMatchLimit
	}

	seeker, err := e.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("look up %s: %w", email, err)
	}
	if len(seeker.Interests) == 0 {
		return []SharedInterestMatch{}, nil
	}

	candidates, err := profiles.ListByInterests(ctx, e.store, seeker.Interests)
	if err != nil {
		return nil, fmt.Errorf("load shared-interest candidates: %w", err)
	}

	seekerInterests := lo.Uniq(seeker.Interests)
	matches := make([]SharedInterestMatch, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == seeker.ID {
			continue
		}
		shared := len(lo.Intersect(seekerInterests, lo.Uniq(c.Interests)))
		if shared == 0 {
			continue
		}
		matches = append(matches, SharedInterestMatch{
			ID:                 c.ID,
			Name:               c.Name,
			Email:              c.Email,
			Bio:                c.Bio,
			ProfileImage:       c.ProfileImage,
			Interests:          c.Interests,
			SharedInterests:    shared,
			CompatibilityScore: float64(shared) / float64(len(seeker.Interests)) * 100,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CompatibilityScore > matches[j].CompatibilityScore
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}
