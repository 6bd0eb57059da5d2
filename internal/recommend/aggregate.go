// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package recommend

import (
	"sort"
	"strings"

	"github.com/tomtom215/collegematch/internal/models"
)

// SpecializationSet is a deduplicated set of desired specializations.
// Entries keep their original casing; comparison lowercases them.
type SpecializationSet map[string]struct{}

// Add inserts every specialization into the set.
func (s SpecializationSet) Add(specs ...string) {
	for _, spec := range specs {
		s[spec] = struct{}{}
	}
}

// Sorted returns the set members in lexical order.
func (s SpecializationSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for spec := range s {
		out = append(out, spec)
	}
	sort.Strings(out)
	return out
}

// DegreePreferences maps a short degree code to the specializations the
// student wants for it. It is built per request and never persisted.
type DegreePreferences map[string]SpecializationSet

// Codes returns the degree codes in lexical order.
func (p DegreePreferences) Codes() []string {
	out := make([]string, 0, len(p))
	for code := range p {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// BuildDegreePreferences folds every degree entry of the quiz output into a
// DegreePreferences map. Degree names are trimmed before resolution and
// entries that resolve to no code are dropped. A code seen under several
// careers accumulates the union of their specializations.
func BuildDegreePreferences(results *models.QuizResults) DegreePreferences {
	prefs := make(DegreePreferences)
	if results == nil {
		return prefs
	}

	for _, rec := range results.Recommendations {
		for _, entry := range rec.Degrees {
			code, ok := ResolveDegreeCode(strings.TrimSpace(entry.Degree.String()))
			if !ok {
				continue
			}
			set, exists := prefs[code]
			if !exists {
				set = make(SpecializationSet, len(entry.Specializations))
				prefs[code] = set
			}
			set.Add(entry.Specializations...)
		}
	}
	return prefs
}
