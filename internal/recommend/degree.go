// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package recommend

import (
	"strings"
)

// Short degree codes used to join quiz preferences against course records.
const (
	DegreeBTech  = "BTECH"
	DegreeBArch  = "BARCH"
	DegreeBBA    = "BBA"
	DegreeMBA    = "MBA"
	DegreeBCom   = "BCOM"
	DegreeBSc    = "BSC"
	DegreeBCA    = "BCA"
	DegreeBDes   = "BDES"
	DegreeBA     = "BA"
	DegreeBPharm = "BPHARM"
)

// degreeNames maps the degree names the career quiz emits to their short code.
var degreeNames = map[string]string{
	"B.Tech":  DegreeBTech,
	"B.Arch":  DegreeBArch,
	"BBA":     DegreeBBA,
	"MBA":     DegreeMBA,
	"B.Com":   DegreeBCom,
	"B.Sc":    DegreeBSc,
	"BCA":     DegreeBCA,
	"B.Des":   DegreeBDes,
	"BA":      DegreeBA,
	"B.Pharm": DegreeBPharm,
}

// degreeNamesUpper is degreeNames keyed by the uppercased degree name.
var degreeNamesUpper = func() map[string]string {
	m := make(map[string]string, len(degreeNames))
	for name, code := range degreeNames {
		m[strings.ToUpper(name)] = code
	}
	return m
}()

// degreeRule resolves a degree code when any of its markers occurs in the
// uppercased degree name.
type degreeRule struct {
	Code    string
	Markers []string
}

// degreeRules is evaluated top to bottom and the first hit wins.
//
// The order is load-bearing: "BA" is a substring of many unrelated names
// (e.g. "BASKET"), so it must stay below every rule it could shadow.
var degreeRules = []degreeRule{
	{Code: DegreeBTech, Markers: []string{"B.TECH"}},
	{Code: DegreeBArch, Markers: []string{"B.ARCH"}},
	{Code: DegreeBBA, Markers: []string{"BBA"}},
	{Code: DegreeMBA, Markers: []string{"MBA"}},
	{Code: DegreeBCom, Markers: []string{"B.COM", "BCOM"}},
	{Code: DegreeBSc, Markers: []string{"B.SC"}},
	{Code: DegreeBCA, Markers: []string{"BCA"}},
	{Code: DegreeBDes, Markers: []string{"B.DES"}},
	{Code: DegreeBA, Markers: []string{"BA"}},
	{Code: DegreeBPharm, Markers: []string{"B.PHARM"}},
}

// DegreeRules returns a copy of the ordered substring rules used by
// ResolveDegreeCode, for inspection.
func DegreeRules() []DegreeRuleInfo {
	out := make([]DegreeRuleInfo, len(degreeRules))
	for i, r := range degreeRules {
		out[i] = DegreeRuleInfo{Code: r.Code, Markers: append([]string(nil), r.Markers...)}
	}
	return out
}

// DegreeRuleInfo describes one substring rule.
type DegreeRuleInfo struct {
	Code    string   `json:"code"`
	Markers []string `json:"markers"`
}

// ResolveDegreeCode maps a free-text degree name to its short degree code.
//
// An exact table lookup is tried first (as given, then uppercased). Failing
// that, the uppercased name is scanned against degreeRules in order.
// ok is false when no rule matches.
func ResolveDegreeCode(name string) (code string, ok bool) {
	if code, ok := degreeNames[name]; ok {
		return code, true
	}

	upper := strings.ToUpper(name)
	if code, ok := degreeNamesUpper[upper]; ok {
		return code, true
	}

	for _, rule := range degreeRules {
		for _, marker := range rule.Markers {
			if strings.Contains(upper, marker) {
				return rule.Code, true
			}
		}
	}
	return "", false
}
