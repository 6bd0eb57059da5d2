// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package recommend

import (
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/collegematch/internal/models"
)

// flex decodes a JSON literal into a FlexValue.
func flex(t *testing.T, literal string) models.FlexValue {
	t.Helper()
	var v models.FlexValue
	if err := json.Unmarshal([]byte(literal), &v); err != nil {
		t.Fatalf("decode %s: %v", literal, err)
	}
	return v
}

func TestParseRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		literal string
		want    float64
	}{
		{"float", `4.5`, 4.5},
		{"integer", `4`, 4.0},
		{"slash string", `"4.5/5"`, 4.5},
		{"integer string", `"Rated 3 stars"`, 3.0},
		{"no digits", `"N/A"`, 0},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
		{"bool", `true`, 0},
		{"array", `[4.5]`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseRating(flex(t, tt.literal)); got != tt.want {
				t.Errorf("ParseRating(%s) = %v, want %v", tt.literal, got, tt.want)
			}
		})
	}

	if got := ParseRating(models.FlexValue{}); got != 0 {
		t.Errorf("ParseRating(absent) = %v, want 0", got)
	}
}

func TestParseReviewsCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		literal string
		want    int
	}{
		{"integer", `120`, 120},
		{"student reviews", `"38 Student Reviews"`, 38},
		{"comma separated takes first run", `"1,200 reviews"`, 1},
		{"no digits", `"none yet"`, 0},
		{"fractional number", `38.5`, 0},
		{"fractional zero", `38.0`, 0},
		{"null", `null`, 0},
		{"object", `{"count":3}`, 0},
		{"overflow", `"99999999999999999999999"`, 0},
		{"overflow literal", `99999999999999999999999`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseReviewsCount(flex(t, tt.literal)); got != tt.want {
				t.Errorf("ParseReviewsCount(%s) = %d, want %d", tt.literal, got, tt.want)
			}
		})
	}
}

func TestParseNIRFRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		literal   string
		wantRank  int
		wantValid bool
	}{
		{"integer", `12`, 12, true},
		{"zero is a rank", `0`, 0, true},
		{"rank string", `"Rank: 12"`, 12, true},
		{"band string", `"101-150"`, 101, true},
		{"no digits", `"Not ranked"`, 0, false},
		{"null", `null`, 0, false},
		{"fractional", `12.0`, 0, false},
		{"bool", `false`, 0, false},
		{"overflow literal", `99999999999999999999999`, 0, false},
		{"overflow string", `"Rank 99999999999999999999999"`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rank, valid := ParseNIRFRank(flex(t, tt.literal)).Int()
			if valid != tt.wantValid || rank != tt.wantRank {
				t.Errorf("ParseNIRFRank(%s) = (%d, %v), want (%d, %v)",
					tt.literal, rank, valid, tt.wantRank, tt.wantValid)
			}
		})
	}

	if ParseNIRFRank(models.FlexValue{}) != NoRank {
		t.Error("ParseNIRFRank(absent) should be NoRank")
	}
}

func TestRank_Less(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Rank
		want bool
	}{
		{"lower first", RankOf(1), RankOf(2), true},
		{"higher second", RankOf(2), RankOf(1), false},
		{"equal", RankOf(3), RankOf(3), false},
		{"rank before none", RankOf(999), NoRank, true},
		{"none after rank", NoRank, RankOf(1), false},
		{"none vs none", NoRank, NoRank, false},
		{"zero before none", RankOf(0), NoRank, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("Less() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRank_MarshalJSON(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal([]Rank{RankOf(7), NoRank})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(out) != `[7,null]` {
		t.Errorf("Marshal = %s, want [7,null]", out)
	}
}
