// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/collegematch/internal/metrics"
	"github.com/tomtom215/collegematch/internal/models"
)

// FindStudent returns the student profile for userID, or ErrNotFound.
// A quiz_results field that is not an object decodes as no quiz results.
func (s *Store) FindStudent(ctx context.Context, userID string) (*models.Student, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	var student *models.Student
	err := s.db.View(func(txn *badger.Txn) error {
		doc, err := getDocumentTxn(txn, studentKey(userID))
		if err != nil {
			return err
		}
		student = studentFromDocument(userID, doc)
		return nil
	})

	metrics.RecordDBQuery("find", collectionStudents, time.Since(start), ignoreNotFound(err))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find student %s: %w", userID, err)
	}
	return student, nil
}

// UpsertStudentQuizResults creates the student document if needed and sets
// its quiz_results. Other fields of an existing document are preserved.
func (s *Store) UpsertStudentQuizResults(ctx context.Context, userID string, quiz *models.QuizResults) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if quiz == nil {
		return ErrInvalidDocument
	}

	start := time.Now()
	var err error
	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		err = s.db.Update(func(txn *badger.Txn) error {
			key := studentKey(userID)
			doc, err := getDocumentTxn(txn, key)
			if errors.Is(err, ErrNotFound) {
				doc = models.Document{}
			} else if err != nil {
				return err
			}

			if err := doc.Set("user_id", userID); err != nil {
				return err
			}
			if err := doc.Set("quiz_results", quiz); err != nil {
				return err
			}
			return putDocument(txn, key, doc)
		})
		if !errors.Is(err, badger.ErrConflict) {
			break
		}
	}

	metrics.RecordDBQuery("upsert", collectionStudents, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("upsert student %s: %w", userID, err)
	}
	s.logger.Debug().Str("user_id", userID).Msg("Student quiz results stored")
	return nil
}

func getDocumentTxn(txn *badger.Txn, key []byte) (models.Document, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var doc models.Document
	if err := json.Unmarshal(val, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if doc == nil {
		doc = models.Document{}
	}
	return doc, nil
}

func studentFromDocument(userID string, doc models.Document) *models.Student {
	student := &models.Student{UserID: userID}
	raw, ok := doc["quiz_results"]
	if !ok || isNullOrMissing(raw) {
		return student
	}
	var quiz models.QuizResults
	if err := json.Unmarshal(raw, &quiz); err == nil {
		student.QuizResults = &quiz
	}
	return student
}
