// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package recommend

import (
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/collegematch/internal/models"
)

// MatchedCourse is the projection of a course that satisfied the student's
// degree and specialization preferences.
type MatchedCourse struct {
	Name            models.FlexValue `json:"name"`
	ShortName       string           `json:"short_name"`
	Specializations []string         `json:"specializations"`
	Duration        models.FlexValue `json:"duration"`
	Eligibility     models.FlexValue `json:"eligibility"`
	TuitionFee      models.FlexValue `json:"tuition_fee"`
	AnnualFee       models.FlexValue `json:"annual_fee"`
}

// MatchedCollege is a college with at least one matched course plus the
// parsed fields it is ranked by.
type MatchedCollege struct {
	College        models.College
	MatchedCourses []MatchedCourse
	NIRFRank       Rank
	Rating         float64
	ReviewsCount   int
	Local          bool
}

// MarshalJSON writes the full college document overlaid with the matched
// courses and the parsed ranking fields.
func (m MatchedCollege) MarshalJSON() ([]byte, error) {
	doc := m.College.Doc.Clone()
	fields := map[string]interface{}{
		"_id":              m.College.ID,
		"interest":         m.College.InterestCount(),
		"matched_courses":  m.MatchedCourses,
		"nirf_rank_parsed": m.NIRFRank,
		"rating":           m.Rating,
		"reviews_count":    m.ReviewsCount,
	}
	for key, value := range fields {
		if err := doc.Set(key, value); err != nil {
			return nil, err
		}
	}
	return json.Marshal(doc)
}

// less orders colleges by NIRF rank ascending (unranked last), then review
// count descending, then rating descending.
func (m *MatchedCollege) less(other *MatchedCollege) bool {
	if m.NIRFRank != other.NIRFRank {
		return m.NIRFRank.Less(other.NIRFRank)
	}
	if m.ReviewsCount != other.ReviewsCount {
		return m.ReviewsCount > other.ReviewsCount
	}
	return m.Rating > other.Rating
}

// Shortlist is the ranked, capped output of the matcher.
type Shortlist struct {
	// Local and Outside are sorted and truncated to the configured caps.
	Local   []MatchedCollege
	Outside []MatchedCollege

	// LocalTotal and OutsideTotal count every qualifying college before
	// truncation.
	LocalTotal   int
	OutsideTotal int
}

// Colleges returns the local shortlist followed by the non-local one.
func (s *Shortlist) Colleges() []MatchedCollege {
	out := make([]MatchedCollege, 0, len(s.Local)+len(s.Outside))
	out = append(out, s.Local...)
	return append(out, s.Outside...)
}

// Total is the number of qualifying colleges before truncation.
func (s *Shortlist) Total() int {
	return s.LocalTotal + s.OutsideTotal
}

// Ranker matches a college catalog against degree preferences and produces
// a two-bucket shortlist.
type Ranker struct {
	region       string
	localLimit   int
	outsideLimit int
}

// NewRanker creates a ranker from a validated config.
func NewRanker(cfg *Config) *Ranker {
	return &Ranker{
		region:       strings.TrimSpace(cfg.LocalRegion),
		localLimit:   cfg.LocalLimit,
		outsideLimit: cfg.OutsideLimit,
	}
}

// Rank scans every college once. Colleges with no matched course are
// dropped; the rest are split by locality, sorted, and truncated. Ties keep
// catalog order.
func (r *Ranker) Rank(prefs DegreePreferences, colleges []models.College) *Shortlist {
	var local, outside []MatchedCollege

	for i := range colleges {
		matched, ok := r.match(prefs, &colleges[i])
		if !ok {
			continue
		}
		if matched.Local {
			local = append(local, matched)
		} else {
			outside = append(outside, matched)
		}
	}

	sortColleges(local)
	sortColleges(outside)

	return &Shortlist{
		Local:        truncate(local, r.localLimit),
		Outside:      truncate(outside, r.outsideLimit),
		LocalTotal:   len(local),
		OutsideTotal: len(outside),
	}
}

// match builds the MatchedCollege for c, or reports false when none of its
// courses qualify.
func (r *Ranker) match(prefs DegreePreferences, c *models.College) (MatchedCollege, bool) {
	var courses []MatchedCourse
	for _, course := range c.Courses {
		short := strings.ToUpper(course.ShortName.String())
		desired, ok := prefs[short]
		if !ok {
			continue
		}
		if !MatchesSpecialization(desired, course.Specializations) {
			continue
		}
		courses = append(courses, projectCourse(course, short))
	}
	if len(courses) == 0 {
		return MatchedCollege{}, false
	}

	return MatchedCollege{
		College:        *c,
		MatchedCourses: courses,
		NIRFRank:       ParseNIRFRank(c.NIRFRank),
		Rating:         ParseRating(c.Rating),
		ReviewsCount:   ParseReviewsCount(c.ReviewsCount),
		Local:          r.isLocal(c),
	}, true
}

// isLocal reports whether the district or NIRF city names the local region.
func (r *Ranker) isLocal(c *models.College) bool {
	return strings.EqualFold(c.District.String(), r.region) ||
		strings.EqualFold(c.NIRFCity.String(), r.region)
}

func projectCourse(course models.Course, short string) MatchedCourse {
	specs := []string(course.Specializations)
	if specs == nil {
		specs = []string{}
	}
	return MatchedCourse{
		Name:            course.Name,
		ShortName:       short,
		Specializations: specs,
		Duration:        course.Duration,
		Eligibility:     course.Eligibility,
		TuitionFee:      course.TuitionFee,
		AnnualFee:       course.AnnualFee,
	}
}

func sortColleges(colleges []MatchedCollege) {
	sort.SliceStable(colleges, func(i, j int) bool {
		return colleges[i].less(&colleges[j])
	})
}

func truncate(colleges []MatchedCollege, limit int) []MatchedCollege {
	if len(colleges) > limit {
		return colleges[:limit]
	}
	return colleges
}
