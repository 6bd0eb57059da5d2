// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

// Package recommend produces a ranked college shortlist from a student's
// career quiz output.
//
// # Pipeline
//
//   - Degree resolution: free-text quiz degree names map to short codes
//     (BTECH, MBA, ...) through an exact table and then an ordered list of
//     substring rules
//   - Aggregation: every resolved degree entry is folded into a map of code
//     to the union of desired specializations
//   - Matching: a course qualifies when its uppercased short_name is a
//     desired code and its specializations pass MatchesSpecialization
//   - Ranking: qualifying colleges are split into local and non-local
//     buckets, sorted by NIRF rank (unranked last), review count and rating,
//     and truncated to the configured caps
//
// # Loosely-typed fields
//
// Rating, review count and NIRF rank are stored as strings, numbers or
// null. ParseRating, ParseReviewsCount and ParseNIRFRank never fail; input
// they cannot read degrades to 0, 0 and NoRank respectively.
//
// # Usage
//
//	engine, err := recommend.NewEngine(store, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	result, err := engine.Recommend(ctx, userID)
//	switch {
//	case errors.Is(err, recommend.ErrStudentNotFound):
//	    // 404
//	case err != nil:
//	    // 500
//	}
//
// # Thread Safety
//
// The engine keeps no state between requests and is safe for concurrent use.
// Each call performs one student lookup and one full catalog scan.
package recommend
