// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package matching

import "math"

// earthRadiusMiles is the mean Earth radius.
const earthRadiusMiles = 3958.8

// HaversineMiles returns the great-circle distance between p and q in miles.
func HaversineMiles(p, q GeoPoint) float64 {
	lat1 := p.Latitude * math.Pi / 180
	lat2 := q.Latitude * math.Pi / 180
	dLat := (q.Latitude - p.Latitude) * math.Pi / 180
	dLon := (q.Longitude - p.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMiles * math.Asin(math.Min(1, math.Sqrt(h)))
}

// DistanceBetween returns the haversine distance when both profiles carry a
// location, and fallback otherwise.
func DistanceBetween(a, b UserProfile, fallback float64) float64 {
	if a.Location == nil || b.Location == nil {
		return fallback
	}
	return HaversineMiles(*a.Location, *b.Location)
}
