// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package recommend

import (
	"reflect"
	"testing"

	"github.com/tomtom215/collegematch/internal/models"
)

func degree(name string, specializations ...string) models.DegreeEntry {
	return models.DegreeEntry{
		Degree:          models.StringValue(name),
		Specializations: specializations,
	}
}

func quiz(recs ...[]models.DegreeEntry) *models.QuizResults {
	out := &models.QuizResults{}
	for _, degrees := range recs {
		out.Recommendations = append(out.Recommendations, models.CareerRecommendation{Degrees: degrees})
	}
	return out
}

func TestBuildDegreePreferences(t *testing.T) {
	t.Parallel()

	t.Run("merges specializations across careers", func(t *testing.T) {
		t.Parallel()

		prefs := BuildDegreePreferences(quiz(
			[]models.DegreeEntry{degree("B.Tech", "Computer Science", "AI")},
			[]models.DegreeEntry{degree(" B.Tech in Mechanical ", "Robotics", "AI")},
		))

		if !reflect.DeepEqual(prefs.Codes(), []string{DegreeBTech}) {
			t.Fatalf("Codes() = %v, want [BTECH]", prefs.Codes())
		}
		want := []string{"AI", "Computer Science", "Robotics"}
		if got := prefs[DegreeBTech].Sorted(); !reflect.DeepEqual(got, want) {
			t.Errorf("BTECH specializations = %v, want %v", got, want)
		}
	})

	t.Run("drops unresolvable degrees", func(t *testing.T) {
		t.Parallel()

		prefs := BuildDegreePreferences(quiz(
			[]models.DegreeEntry{degree("Underwater Welding", "Deep Sea"), degree("MBA", "Finance")},
		))

		if !reflect.DeepEqual(prefs.Codes(), []string{DegreeMBA}) {
			t.Errorf("Codes() = %v, want [MBA]", prefs.Codes())
		}
	})

	t.Run("degree with no specializations yields empty set", func(t *testing.T) {
		t.Parallel()

		prefs := BuildDegreePreferences(quiz([]models.DegreeEntry{degree("BCA")}))

		set, ok := prefs[DegreeBCA]
		if !ok {
			t.Fatal("BCA missing from preferences")
		}
		if len(set) != 0 {
			t.Errorf("len(BCA set) = %d, want 0", len(set))
		}
	})

	t.Run("non-string degree is dropped", func(t *testing.T) {
		t.Parallel()

		prefs := BuildDegreePreferences(quiz([]models.DegreeEntry{
			{Degree: models.IntValue(5), Specializations: []string{"x"}},
		}))
		if len(prefs) != 0 {
			t.Errorf("len(prefs) = %d, want 0", len(prefs))
		}
	})

	t.Run("order independent", func(t *testing.T) {
		t.Parallel()

		a := BuildDegreePreferences(quiz(
			[]models.DegreeEntry{degree("B.Sc", "Physics"), degree("BA", "History")},
			[]models.DegreeEntry{degree("B.Sc", "Chemistry")},
		))
		b := BuildDegreePreferences(quiz(
			[]models.DegreeEntry{degree("B.Sc", "Chemistry")},
			[]models.DegreeEntry{degree("BA", "History"), degree("B.Sc", "Physics")},
		))
		if !reflect.DeepEqual(a, b) {
			t.Errorf("preferences depend on order: %v vs %v", a, b)
		}
	})

	t.Run("nil quiz results", func(t *testing.T) {
		t.Parallel()

		if prefs := BuildDegreePreferences(nil); len(prefs) != 0 {
			t.Errorf("len(prefs) = %d, want 0", len(prefs))
		}
	})
}
