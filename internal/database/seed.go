// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package database

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/collegematch/internal/models"
)

// SeedResult counts the documents written by Seed.
type SeedResult struct {
	Colleges int `json:"colleges"`
	Students int `json:"students"`
}

// seedFile is the on-disk layout of a seed file, one array per collection.
type seedFile struct {
	Colleges []json.RawMessage `json:"colleges"`
	Students []json.RawMessage `json:"students"`
}

// Seed loads colleges and students from a JSON file. Documents are written
// under their _id / user_id, replacing any existing record, so reseeding the
// same file is idempotent. Colleges without an _id get a random one.
// Entries that are not JSON objects, and students without a user_id, are
// skipped.
func (s *Store) Seed(ctx context.Context, path string) (*SeedResult, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer closeWithLog(f, s.logger, "seed file")

	var seed seedFile
	if err := json.NewDecoder(f).Decode(&seed); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	start := time.Now()
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	result := &SeedResult{}
	for i, raw := range seed.Colleges {
		doc, ok := seedDocument(raw)
		if !ok {
			s.logger.Warn().Int("index", i).Msg("Skipping seed college that is not an object")
			continue
		}
		id := documentID(doc)
		if strings.TrimSpace(id) == "" {
			id = uuid.NewString()
		}
		if err := doc.Set("_id", id); err != nil {
			return nil, fmt.Errorf("seed college %d: %w", i, err)
		}
		if isNullOrMissing(doc["interest"]) {
			if err := doc.Set("interest", 0); err != nil {
				return nil, fmt.Errorf("seed college %d: %w", i, err)
			}
		}
		if err := setBatch(wb.Set, collegeKey(id), doc); err != nil {
			return nil, fmt.Errorf("seed college %s: %w", id, err)
		}
		result.Colleges++
	}

	for i, raw := range seed.Students {
		doc, ok := seedDocument(raw)
		if !ok {
			s.logger.Warn().Int("index", i).Msg("Skipping seed student that is not an object")
			continue
		}
		var uid models.FlexValue
		if rawID, ok := doc["user_id"]; ok {
			_ = json.Unmarshal(rawID, &uid)
		}
		userID := models.IDString(uid)
		if strings.TrimSpace(userID) == "" {
			s.logger.Warn().Int("index", i).Msg("Skipping seed student without user_id")
			continue
		}
		if err := doc.Set("user_id", userID); err != nil {
			return nil, fmt.Errorf("seed student %d: %w", i, err)
		}
		if err := setBatch(wb.Set, studentKey(userID), doc); err != nil {
			return nil, fmt.Errorf("seed student %s: %w", userID, err)
		}
		result.Students++
	}

	if err := wb.Flush(); err != nil {
		return nil, fmt.Errorf("flush seed batch: %w", err)
	}

	s.logger.Info().
		Str("path", path).
		Int("colleges", result.Colleges).
		Int("students", result.Students).
		Dur("duration", time.Since(start)).
		Msg("Seed data loaded")
	return result, nil
}

func seedDocument(raw json.RawMessage) (models.Document, bool) {
	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		return nil, false
	}
	return doc, true
}

func setBatch(set func(k, v []byte) error, key []byte, doc models.Document) error {
	val, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return set(key, val)
}
