// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

// Package logging provides centralized zerolog-based logging for MatchBox.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Msg("Server starting")
//	logging.Ctx(ctx).Info().Int("circles", n).Msg("Circles formed")
//
// Components receive a zerolog.Logger and derive a child logger:
//
//	logger = logger.With().Str("component", "matchmaker").Logger()
//
// Always terminate log chains with .Msg() or .Send().
//
// # slog Bridge
//
// SlogHandler adapts zerolog to log/slog for sutureslog, so supervisor events
// land in the same structured stream.
package logging
