// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package database

// Key layout:
//
//	college:<_id>   College document (JSON object)
//	student:<user_id> Student document (JSON object)
//	meta:ping       Never written; read by Ping
const (
	collegePrefix = "college:"
	studentPrefix = "student:"
	pingKey       = "meta:ping"
)

// Collection names used as metric labels.
const (
	collectionColleges = "College"
	collectionStudents = "Students"
)

func collegeKey(id string) []byte {
	return []byte(collegePrefix + id)
}

func studentKey(userID string) []byte {
	return []byte(studentPrefix + userID)
}
