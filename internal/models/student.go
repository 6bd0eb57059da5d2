// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package models

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Student is a student-profile record. Only the quiz output is read by the
// recommendation pipeline.
type Student struct {
	UserID      string       `json:"user_id"`
	QuizResults *QuizResults `json:"quiz_results,omitempty"`
}

// QuizResults holds the output of the career quiz.
type QuizResults struct {
	Recommendations CareerRecommendationList `json:"recommendations"`
}

// CareerRecommendation is one career suggestion with the degrees that lead to it.
type CareerRecommendation struct {
	Career  string        `json:"career,omitempty"`
	Degrees []DegreeEntry `json:"degrees"`
}

// DegreeEntry names a degree and the specializations the student prefers for it.
type DegreeEntry struct {
	Degree          FlexValue  `json:"degree"`
	Specializations StringList `json:"specializations"`
}

// CareerRecommendationList decodes tolerantly: a non-array value or
// a malformed element yields no recommendation for that slot.
type CareerRecommendationList []CareerRecommendation

// UnmarshalJSON implements tolerant decoding for recommendation lists.
func (l *CareerRecommendationList) UnmarshalJSON(data []byte) error {
	*l = nil
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil
	}
	out := make(CareerRecommendationList, 0, len(elems))
	for _, elem := range elems {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '{' {
			continue
		}
		var rec struct {
			Career  FlexValue         `json:"career"`
			Degrees []json.RawMessage `json:"degrees"`
		}
		if err := json.Unmarshal(elem, &rec); err != nil {
			// degrees was not an array; keep the slot with no degrees
			out = append(out, CareerRecommendation{})
			continue
		}
		cr := CareerRecommendation{Career: rec.Career.String()}
		for _, d := range rec.Degrees {
			d = bytes.TrimSpace(d)
			if len(d) == 0 || d[0] != '{' {
				continue
			}
			var entry DegreeEntry
			if err := json.Unmarshal(d, &entry); err != nil {
				continue
			}
			cr.Degrees = append(cr.Degrees, entry)
		}
		out = append(out, cr)
	}
	*l = out
	return nil
}

// HasRecommendations reports whether the student has a non-empty quiz
// recommendation list.
func (s *Student) HasRecommendations() bool {
	return s != nil && s.QuizResults != nil && len(s.QuizResults.Recommendations) > 0
}
