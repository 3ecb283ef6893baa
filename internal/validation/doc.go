// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator is shared by every handler. It reports
// fields by their JSON names and knows two matchbox-specific tags:
//
//   - activitylevel: value is one of matching.ActivityLevels
//   - socialstyle: value is one of matching.SocialStyles
//
// # Usage
//
//	var profile matching.UserProfile
//	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
//	    // handle decode error
//	}
//	if verr := validation.Struct(&profile); verr != nil {
//	    writeValidationError(w, r, verr.Error(), verr.Details())
//	    return
//	}
//
// # Error Format
//
// A single failure produces its message directly with field, tag and value
// details. Multiple failures are joined with "; " and listed under
// details.fields:
//
//	{
//	  "code": "VALIDATION_ERROR",
//	  "message": "interests is required; activityLevel must be one of: Very Active, Active, Moderate, Relaxed",
//	  "details": {"fields": [...]}
//	}
//
// Nested fields use dotted paths ("ageRange.max") and slice elements use
// indexes ("interests[2]").
package validation
