// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package recommend

import (
	"strings"
)

// MatchesSpecialization reports whether a course's offered specializations
// satisfy a student's desired ones.
//
// An empty side imposes no constraint and matches. Otherwise the match is
// case-insensitive substring containment: a desired "data science" matches
// an offered "MSc Data Science and Analytics". Empty offered entries are
// ignored.
func MatchesSpecialization(desired SpecializationSet, offered []string) bool {
	if len(desired) == 0 || len(offered) == 0 {
		return true
	}

	lowered := make([]string, 0, len(offered))
	for _, o := range offered {
		if o == "" {
			continue
		}
		lowered = append(lowered, strings.ToLower(o))
	}

	for want := range desired {
		want = strings.ToLower(want)
		for _, o := range lowered {
			if strings.Contains(o, want) {
				return true
			}
		}
	}
	return false
}
