// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

/*
Package middleware provides HTTP instrumentation shared by the API router.

PrometheusMetrics records request counts, latency and in-flight requests
for every route. The endpoint label is the chi route pattern when one
matched (for example "/api/profiles/{id}"), so path parameters do not
create new series. Unmatched requests are labelled "unmatched".

Usage:

	r := chi.NewRouter()
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
