// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package recommend

import (
	"regexp"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/collegematch/internal/models"
)

var (
	reDecimal = regexp.MustCompile(`\d+(?:\.\d+)?`)
	reDigits  = regexp.MustCompile(`\d+`)
)

// Rank is a parsed NIRF rank. The zero value is NoRank, which orders after
// every real rank.
type Rank struct {
	value int
	valid bool
}

// NoRank is the rank of a college without a usable NIRF rank.
var NoRank = Rank{}

// RankOf returns a valid rank.
func RankOf(n int) Rank {
	return Rank{value: n, valid: true}
}

// Int returns the rank and whether it is set.
func (r Rank) Int() (int, bool) {
	return r.value, r.valid
}

// Less orders ranks ascending with NoRank last.
func (r Rank) Less(other Rank) bool {
	switch {
	case !r.valid:
		return false
	case !other.valid:
		return true
	default:
		return r.value < other.value
	}
}

// MarshalJSON encodes the rank as an integer or null.
func (r Rank) MarshalJSON() ([]byte, error) {
	if !r.valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.value)
}

// ParseRating converts a stored rating to a float. Numbers are used as-is;
// strings yield their first decimal number ("4.5/5" is 4.5). Everything
// else is 0.
func ParseRating(v models.FlexValue) float64 {
	if f, ok := v.Float(); ok {
		return f
	}
	s, ok := v.Str()
	if !ok {
		return 0
	}
	m := reDecimal.FindString(s)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseReviewsCount converts a stored review count to an int. Integers are
// used as-is; strings yield their first run of digits ("38 Student Reviews"
// is 38). Fractional numbers, values too large for int64 and everything
// else are 0.
func ParseReviewsCount(v models.FlexValue) int {
	if n, ok := v.Int(); ok {
		return int(n)
	}
	s, ok := v.Str()
	if !ok {
		return 0
	}
	n, ok := firstInt(s)
	if !ok {
		return 0
	}
	return n
}

// ParseNIRFRank converts a stored NIRF rank. Integers are used as-is;
// strings yield their first run of digits ("Rank: 12" is 12). Anything
// without digits is NoRank, which is distinct from rank 0. A number or
// digit run too large for int64 is also NoRank.
func ParseNIRFRank(v models.FlexValue) Rank {
	if n, ok := v.Int(); ok {
		return RankOf(int(n))
	}
	s, ok := v.Str()
	if !ok {
		return NoRank
	}
	n, ok := firstInt(s)
	if !ok {
		return NoRank
	}
	return RankOf(n)
}

// firstInt parses the first run of ASCII digits in s. A run too long for
// an int is treated as no match.
func firstInt(s string) (int, bool) {
	m := reDigits.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}
