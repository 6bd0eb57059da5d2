// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package recommend

import (
	"testing"
	"unicode/utf8"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error: %v", err)
	}
	if cfg.LocalRegion != "nagpur" {
		t.Errorf("LocalRegion = %q, want nagpur", cfg.LocalRegion)
	}
	if cfg.LocalLimit != 10 {
		t.Errorf("LocalLimit = %d, want 10", cfg.LocalLimit)
	}
	if cfg.OutsideLimit != 5 {
		t.Errorf("OutsideLimit = %d, want 5", cfg.OutsideLimit)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid default", func(c *Config) {}, false},
		{"empty region", func(c *Config) { c.LocalRegion = "" }, true},
		{"whitespace region", func(c *Config) { c.LocalRegion = "   " }, true},
		{"negative local limit", func(c *Config) { c.LocalLimit = -1 }, true},
		{"negative outside limit", func(c *Config) { c.OutsideLimit = -1 }, true},
		{"zero limits allowed", func(c *Config) { c.LocalLimit = 0; c.OutsideLimit = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_RegionLabel(t *testing.T) {
	tests := []struct {
		region string
		want   string
	}{
		{"nagpur", "Nagpur"},
		{"Pune", "Pune"},
		{" mumbai ", "Mumbai"},
		{"", ""},
		{"éluru", "Éluru"},
		{"नागपुर", "नागपुर"},
	}

	for _, tt := range tests {
		cfg := &Config{LocalRegion: tt.region}
		got := cfg.RegionLabel()
		if got != tt.want {
			t.Errorf("RegionLabel(%q) = %q, want %q", tt.region, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("RegionLabel(%q) produced invalid UTF-8", tt.region)
		}
	}
}
