// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package recommend

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// LocalRegion is the district or city, compared case-insensitively,
	// that marks a college as local.
	LocalRegion string `json:"local_region"`

	// LocalLimit caps the number of local colleges returned.
	LocalLimit int `json:"local_limit"`

	// OutsideLimit caps the number of non-local colleges returned.
	OutsideLimit int `json:"outside_limit"`
}

// DefaultConfig returns the production defaults: up to 10 colleges in
// Nagpur followed by up to 5 elsewhere.
func DefaultConfig() *Config {
	return &Config{
		LocalRegion:  "nagpur",
		LocalLimit:   10,
		OutsideLimit: 5,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.LocalRegion) == "" {
		return fmt.Errorf("local_region must not be empty")
	}
	if c.LocalLimit < 0 {
		return fmt.Errorf("local_limit must be non-negative, got %d", c.LocalLimit)
	}
	if c.OutsideLimit < 0 {
		return fmt.Errorf("outside_limit must be non-negative, got %d", c.OutsideLimit)
	}
	return nil
}

// RegionLabel returns the local region as it appears in user-facing
// messages, with its first letter capitalized.
func (c *Config) RegionLabel() string {
	region := strings.TrimSpace(c.LocalRegion)
	if region == "" {
		return region
	}
	r, size := utf8.DecodeRuneInString(region)
	return string(unicode.ToUpper(r)) + region[size:]
}
