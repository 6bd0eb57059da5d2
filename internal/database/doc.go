// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

/*
Package database provides the BadgerDB document store behind CollegeMatch.

Two collections are kept in one BadgerDB instance under key prefixes:

  - College: catalog records keyed by _id (college:<id>)
  - Students: student profiles keyed by user_id (student:<user_id>)

Documents are stored as JSON objects exactly as received, so fields the
service does not interpret are preserved and echoed back by the API.

# Operations

  - ListColleges / GetCollege: catalog reads, in key order
  - InsertCollege: new record with generated _id and interest defaulted to 0
  - IncrementInterest: transactional interest += n for many colleges
  - BulkUpdate: $set-style field merges for many colleges
  - FindStudent / UpsertStudentQuizResults: student profile reads and writes
  - Seed: idempotent bulk load from a {colleges, students} JSON file
  - RunGC: value log garbage collection

Read-modify-write operations run in a single BadgerDB transaction and are
retried on badger.ErrConflict.

# Circuit Breaker

BreakerStore wraps the read path (FindStudent, ListColleges, GetCollege,
Ping) with sony/gobreaker. While the breaker is open, reads fail fast with
ErrUnavailable. Breaker state is exported via the circuit_breaker_* metrics.

# Usage

	store, err := database.Open(&cfg.Database)
	if err != nil {
	    return err
	}
	defer store.Close()

	reader := database.NewBreakerStore(store)
	engine, err := recommend.NewEngine(database.NewRecommendProvider(reader), cfg.Recommend.Engine(), logger)
*/
package database
