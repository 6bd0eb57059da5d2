// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package models

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Document is a college or student record exactly as it is stored, keyed by
// top-level field name. Fields the typed views do not know about are kept
// here so API responses can echo the full record.
type Document map[string]json.RawMessage

// Clone returns a shallow copy of the document. The raw values are shared,
// which is safe because they are never mutated in place.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Set encodes value and stores it under key.
func (d Document) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	d[key] = raw
	return nil
}

// College is the typed view of a catalog record. Only the fields the
// recommendation pipeline reads are decoded; everything else survives in Doc.
//
// Quality fields (NIRFRank, Rating, ReviewsCount) and Interest are FlexValues
// because scraped catalogs store them as strings, numbers or null.
type College struct {
	ID           string     `json:"_id"`
	Name         string     `json:"name"`
	District     FlexValue  `json:"district"`
	NIRFCity     FlexValue  `json:"nirf_city"`
	NIRFRank     FlexValue  `json:"nirf_rank"`
	Rating       FlexValue  `json:"rating"`
	ReviewsCount FlexValue  `json:"reviews_count"`
	Interest     FlexValue  `json:"interest"`
	Courses      CourseList `json:"courses"`

	Doc Document `json:"-"`
}

// collegeFields mirrors College without its methods so decoding the typed
// view does not recurse into College.UnmarshalJSON.
type collegeFields struct {
	ID           FlexValue  `json:"_id"`
	Name         FlexValue  `json:"name"`
	District     FlexValue  `json:"district"`
	NIRFCity     FlexValue  `json:"nirf_city"`
	NIRFRank     FlexValue  `json:"nirf_rank"`
	Rating       FlexValue  `json:"rating"`
	ReviewsCount FlexValue  `json:"reviews_count"`
	Interest     FlexValue  `json:"interest"`
	Courses      CourseList `json:"courses"`
}

// UnmarshalJSON decodes both the typed view and the raw document.
// A malformed field never rejects the whole record; it simply decodes as
// "not usable" in the typed view.
func (c *College) UnmarshalJSON(data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	var f collegeFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	*c = College{
		ID:           IDString(f.ID),
		Name:         f.Name.String(),
		District:     f.District,
		NIRFCity:     f.NIRFCity,
		NIRFRank:     f.NIRFRank,
		Rating:       f.Rating,
		ReviewsCount: f.ReviewsCount,
		Interest:     f.Interest,
		Courses:      f.Courses,
		Doc:          doc,
	}
	return nil
}

// MarshalJSON writes the stored document back with _id normalized to a
// string and interest normalized to an integer.
func (c College) MarshalJSON() ([]byte, error) {
	doc := c.Doc.Clone()
	if doc == nil {
		doc = Document{}
	}
	if err := doc.Set("_id", c.ID); err != nil {
		return nil, err
	}
	if err := doc.Set("interest", c.InterestCount()); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// InterestCount returns the interest counter as an integer, defaulting to 0
// when the field is missing or not numeric.
func (c College) InterestCount() int64 {
	if n, ok := c.Interest.Int(); ok {
		return n
	}
	if f, ok := c.Interest.Float(); ok {
		return int64(f)
	}
	return 0
}

// IDString renders a stored _id as a string. Numeric ids keep their literal
// text; anything else yields "".
func IDString(v FlexValue) string {
	switch v.Kind() {
	case FlexString:
		return v.String()
	case FlexNumber:
		return string(v.Raw())
	default:
		return ""
	}
}

// Course is one degree program offered by a college.
type Course struct {
	Name            FlexValue  `json:"name"`
	ShortName       FlexValue  `json:"short_name"`
	Specializations StringList `json:"specializations"`
	Duration        FlexValue  `json:"duration"`
	Eligibility     FlexValue  `json:"eligibility"`
	TuitionFee      FlexValue  `json:"tuition_fee"`
	AnnualFee       FlexValue  `json:"annual_fee"`
}

// CourseList decodes a courses field tolerantly: non-object elements are
// skipped and a non-array value decodes as an empty list.
type CourseList []Course

// UnmarshalJSON implements tolerant decoding for course lists.
func (l *CourseList) UnmarshalJSON(data []byte) error {
	*l = nil
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil
	}
	out := make(CourseList, 0, len(elems))
	for _, elem := range elems {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '{' {
			continue
		}
		var c Course
		if err := json.Unmarshal(elem, &c); err != nil {
			continue
		}
		out = append(out, c)
	}
	*l = out
	return nil
}

// StringList decodes a list of strings tolerantly. Non-string elements are
// dropped, a bare string becomes a one-element list, and any other shape
// decodes as nil.
type StringList []string

// UnmarshalJSON implements tolerant decoding for string lists.
func (l *StringList) UnmarshalJSON(data []byte) error {
	*l = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*l = StringList{s}
		}
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(data, &elems); err != nil {
			return nil
		}
		out := make(StringList, 0, len(elems))
		for _, elem := range elems {
			elem = bytes.TrimSpace(elem)
			if len(elem) == 0 || elem[0] != '"' {
				continue
			}
			var s string
			if err := json.Unmarshal(elem, &s); err == nil {
				out = append(out, s)
			}
		}
		*l = out
	}
	return nil
}
