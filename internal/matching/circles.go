// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package matching

import "sort"

// scoredCandidate is a circle candidate with its score from the anchor.
type scoredCandidate struct {
	profile UserProfile
	score   float64
}

// FormCircles greedily partitions profiles into disjoint circles of exactly
// circleSize members.
//
// Profiles are visited in order. Each unused profile becomes an anchor and
// collects every other unused profile that passes its dealbreaker gate,
// scored with CompositeScore at distance 0. The best circleSize-1 candidates
// (ties keep population order) join the anchor. An anchor without enough
// candidates forms no circle and stays available to later anchors.
//
// The result depends on population order. Profiles are identified by ID;
// a repeated ID is only considered once.
// circleSize is not range checked beyond requiring at least one member.
func FormCircles(profiles []UserProfile, circleSize int) []MatchCircle {
	if circleSize < 1 {
		return nil
	}

	used := make(map[string]struct{}, len(profiles))
	isUsed := func(id string) bool {
		_, ok := used[id]
		return ok
	}

	var circles []MatchCircle
	for _, anchor := range profiles {
		if isUsed(anchor.ID) {
			continue
		}

		candidates := make([]scoredCandidate, 0, len(profiles))
		seen := make(map[string]struct{})
		for _, p := range profiles {
			if p.ID == anchor.ID || isUsed(p.ID) || !PassesDealbreakerGate(anchor, p) {
				continue
			}
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			candidates = append(candidates, scoredCandidate{
				profile: p,
				score:   CompositeScore(anchor, p, 0),
			})
		}

		need := circleSize - 1
		if len(candidates) < need {
			continue
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].score > candidates[j].score
		})

		circle := make(MatchCircle, 0, circleSize)
		circle = append(circle, anchor)
		used[anchor.ID] = struct{}{}
		for _, c := range candidates[:need] {
			circle = append(circle, c.profile)
			used[c.profile.ID] = struct{}{}
		}
		circles = append(circles, circle)
	}

	return circles
}
