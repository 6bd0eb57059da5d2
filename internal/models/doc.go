// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

/*
Package models defines data structures for the CollegeMatch service.

It holds the stored record shapes (colleges and students), the HTTP request
and response payloads, and the standardized API response envelope.

Key Components:

  - College: Typed view over a stored catalog record, keeping the raw Document
  - Course: One degree program offered by a college
  - Student: Student profile carrying the career quiz output
  - FlexValue: Tagged union for fields stored with inconsistent JSON types
  - APIResponse: Standardized API response wrapper

Loosely-typed fields:

College catalogs are scraped from several sources, so fields such as rating,
nirf_rank and reviews_count arrive as strings, numbers or null. FlexValue
records the JSON shape at decode time; the recommend package resolves the
value with explicit parse rules. List-valued fields (courses, specializations,
recommendations) decode tolerantly and drop elements of the wrong shape
instead of failing the whole record.

Usage Example:

	var c models.College
	if err := json.Unmarshal(raw, &c); err != nil {
	    return err
	}
	for _, course := range c.Courses {
	    fmt.Println(course.ShortName.String(), course.Specializations)
	}

Thread Safety:

All models are plain values. They are safe to share across goroutines as long
as no goroutine mutates them.
*/
package models
