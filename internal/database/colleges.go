// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package database

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/collegematch/internal/metrics"
	"github.com/tomtom215/collegematch/internal/models"
)

// ListColleges returns the full catalog in key order. Records that are not
// JSON objects are skipped and logged.
func (s *Store) ListColleges(ctx context.Context) ([]models.College, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	colleges := make([]models.College, 0)
	prefix := []byte(collegePrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			id := strings.TrimPrefix(string(item.Key()), collegePrefix)

			c, err := decodeCollege(item, id)
			if err != nil {
				s.logger.Warn().Str("id", id).Err(err).Msg("Skipping unreadable college record")
				continue
			}
			colleges = append(colleges, *c)
		}
		return nil
	})

	metrics.RecordDBQuery("list", collectionColleges, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("scan colleges: %w", err)
	}
	metrics.SetStoreDocuments(collectionColleges, len(colleges))
	return colleges, nil
}

// GetCollege returns one college by _id, or ErrNotFound.
func (s *Store) GetCollege(ctx context.Context, id string) (*models.College, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	var college *models.College
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(collegeKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		college, err = decodeCollege(item, id)
		return err
	})

	metrics.RecordDBQuery("get", collectionColleges, time.Since(start), ignoreNotFound(err))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get college %s: %w", id, err)
	}
	return college, nil
}

// InsertCollege stores a new college and returns its _id. A missing or
// blank _id is replaced with a random UUID and a missing interest counter
// starts at 0.
func (s *Store) InsertCollege(ctx context.Context, doc models.Document) (string, error) {
	if err := s.ready(ctx); err != nil {
		return "", err
	}
	if doc == nil {
		return "", ErrInvalidDocument
	}

	doc = doc.Clone()
	id := documentID(doc)
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}
	if err := doc.Set("_id", id); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if isNullOrMissing(doc["interest"]) {
		if err := doc.Set("interest", 0); err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	}

	val, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	start := time.Now()
	err = s.db.Update(func(txn *badger.Txn) error {
		key := collegeKey(id)
		_, err := txn.Get(key)
		if err == nil {
			return ErrDuplicateID
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(key, val)
	})
	metrics.RecordDBQuery("insert", collectionColleges, time.Since(start), err)
	if err != nil {
		if errors.Is(err, ErrDuplicateID) {
			return "", ErrDuplicateID
		}
		return "", fmt.Errorf("insert college: %w", err)
	}

	s.logger.Debug().Str("id", id).Msg("College inserted")
	return id, nil
}

// IncrementInterest adds each positive increment to the matching college's
// interest counter in a single transaction. Non-positive increments and
// unknown ids are skipped. The updated ids are returned sorted.
func (s *Store) IncrementInterest(ctx context.Context, increments map[string]int64) ([]string, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(increments))
	for id, inc := range increments {
		if inc > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	var (
		updated []string
		total   int64
		err     error
	)
	start := time.Now()
	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		updated, total = make([]string, 0, len(ids)), 0
		err = s.db.Update(func(txn *badger.Txn) error {
			for _, id := range ids {
				college, err := getCollegeTxn(txn, id)
				if errors.Is(err, ErrNotFound) {
					s.logger.Debug().Str("id", id).Msg("Interest increment for unknown college")
					continue
				}
				if err != nil {
					return err
				}

				inc := increments[id]
				if err := college.Doc.Set("interest", college.InterestCount()+inc); err != nil {
					return err
				}
				if err := putDocument(txn, collegeKey(id), college.Doc); err != nil {
					return err
				}
				updated = append(updated, id)
				total += inc
			}
			return nil
		})
		if !errors.Is(err, badger.ErrConflict) {
			break
		}
	}

	metrics.RecordDBQuery("increment_interest", collectionColleges, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("increment interest: %w", err)
	}
	metrics.RecordInterestIncrement(total)
	return updated, nil
}

// BulkUpdate applies $set-style merges: each top-level key of an update's
// Data replaces the stored field. _id in Data is ignored. Entries with an
// empty ID, nil Data or an unknown ID are skipped. Matched ids are returned
// once each, in input order.
func (s *Store) BulkUpdate(ctx context.Context, updates []models.CollegeUpdate) ([]string, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	var (
		updated []string
		err     error
	)
	start := time.Now()
	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		updated = make([]string, 0, len(updates))
		seen := make(map[string]bool, len(updates))
		err = s.db.Update(func(txn *badger.Txn) error {
			for _, u := range updates {
				if u.ID == "" || u.Data == nil {
					continue
				}
				college, err := getCollegeTxn(txn, u.ID)
				if errors.Is(err, ErrNotFound) {
					s.logger.Debug().Str("id", u.ID).Msg("Bulk update for unknown college")
					continue
				}
				if err != nil {
					return err
				}

				for field, raw := range u.Data {
					if field == "_id" {
						continue
					}
					college.Doc[field] = raw
				}
				if err := putDocument(txn, collegeKey(u.ID), college.Doc); err != nil {
					return err
				}
				if !seen[u.ID] {
					seen[u.ID] = true
					updated = append(updated, u.ID)
				}
			}
			return nil
		})
		if !errors.Is(err, badger.ErrConflict) {
			break
		}
	}

	metrics.RecordDBQuery("bulk_update", collectionColleges, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("bulk update: %w", err)
	}
	return updated, nil
}

// getCollegeTxn reads and decodes a college inside an open transaction.
func getCollegeTxn(txn *badger.Txn, id string) (*models.College, error) {
	item, err := txn.Get(collegeKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeCollege(item, id)
}

// decodeCollege decodes a stored record. The value is copied out of the
// item because raw document fields outlive the transaction.
func decodeCollege(item *badger.Item, id string) (*models.College, error) {
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var c models.College
	if err := json.Unmarshal(val, &c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if c.ID == "" {
		c.ID = id
	}
	if c.Doc == nil {
		c.Doc = models.Document{}
	}
	return &c, nil
}

func putDocument(txn *badger.Txn, key []byte, doc models.Document) error {
	val, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return txn.Set(key, val)
}

// documentID extracts a string or numeric _id from a raw document.
func documentID(doc models.Document) string {
	raw, ok := doc["_id"]
	if !ok {
		return ""
	}
	var v models.FlexValue
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return models.IDString(v)
}

func isNullOrMissing(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func ignoreNotFound(err error) error {
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}
