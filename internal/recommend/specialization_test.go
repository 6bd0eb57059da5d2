// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package recommend

import (
	"testing"
)

func specs(values ...string) SpecializationSet {
	s := make(SpecializationSet)
	s.Add(values...)
	return s
}

func TestMatchesSpecialization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		desired SpecializationSet
		offered []string
		want    bool
	}{
		{"empty desired", specs(), []string{"Anything"}, true},
		{"nil desired", nil, []string{"Anything"}, true},
		{"empty offered", specs("ai"), []string{}, true},
		{"nil offered", specs("ai"), nil, true},
		{"case-insensitive substring", specs("AI"), []string{"Artificial Intelligence (AI)"}, true},
		{"partial phrase", specs("data science"), []string{"MSc Data Science and Analytics"}, true},
		{"no overlap", specs("robotics"), []string{"AI"}, false},
		{"desired longer than offered", specs("computer science"), []string{"Computer"}, false},
		{"any of several", specs("robotics", "civil"), []string{"Mechanical", "Civil Engineering"}, true},
		{"only empty offered entries", specs("ai"), []string{"", ""}, false},
		{"empty entries ignored", specs("mech"), []string{"", "Mechanical"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := MatchesSpecialization(tt.desired, tt.offered); got != tt.want {
				t.Errorf("MatchesSpecialization(%v, %v) = %v, want %v",
					tt.desired.Sorted(), tt.offered, got, tt.want)
			}
		})
	}
}
