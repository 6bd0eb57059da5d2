// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package models

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// FlexKind classifies the JSON type a loosely-typed document field was stored as.
type FlexKind int

const (
	// FlexAbsent indicates the field was not present in the document.
	FlexAbsent FlexKind = iota
	// FlexNull indicates an explicit JSON null.
	FlexNull
	// FlexString indicates a JSON string.
	FlexString
	// FlexNumber indicates a JSON number.
	FlexNumber
	// FlexOther covers booleans, arrays and objects.
	FlexOther
)

// String returns a human-readable name for the kind.
func (k FlexKind) String() string {
	switch k {
	case FlexAbsent:
		return "absent"
	case FlexNull:
		return "null"
	case FlexString:
		return "string"
	case FlexNumber:
		return "number"
	case FlexOther:
		return "other"
	default:
		return "unknown"
	}
}

// FlexValue is a tagged union over the JSON shapes college documents use for
// fields such as rating, nirf_rank and reviews_count. Scraped catalogs store
// these inconsistently ("4.5", 4.5, "4.5/5", null), so the raw shape is kept
// at the document boundary and typed accessors resolve it explicitly.
//
// The original bytes are retained so a FlexValue marshals back unchanged.
type FlexValue struct {
	kind     FlexKind
	str      string
	num      float64
	integer  int64
	integral bool
	raw      json.RawMessage
}

// StringValue returns a FlexValue holding a string.
func StringValue(s string) FlexValue {
	raw, _ := json.Marshal(s)
	return FlexValue{kind: FlexString, str: s, raw: raw}
}

// IntValue returns a FlexValue holding an integral number.
func IntValue(n int64) FlexValue {
	return FlexValue{
		kind:     FlexNumber,
		num:      float64(n),
		integer:  n,
		integral: true,
		raw:      json.RawMessage(strconv.FormatInt(n, 10)),
	}
}

// FloatValue returns a FlexValue holding a fractional number.
// The value is always treated as non-integral, mirroring a stored double.
func FloatValue(f float64) FlexValue {
	raw := strconv.FormatFloat(f, 'f', -1, 64)
	if !bytes.ContainsAny([]byte(raw), ".eE") {
		raw += ".0"
	}
	return FlexValue{kind: FlexNumber, num: f, raw: json.RawMessage(raw)}
}

// NullValue returns a FlexValue holding an explicit null.
func NullValue() FlexValue {
	return FlexValue{kind: FlexNull, raw: json.RawMessage("null")}
}

// UnmarshalJSON records the JSON shape of the field without failing on any
// well-formed value.
func (v *FlexValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	*v = FlexValue{raw: append(json.RawMessage(nil), trimmed...)}

	if len(trimmed) == 0 {
		v.kind = FlexAbsent
		return nil
	}

	switch c := trimmed[0]; {
	case c == 'n':
		v.kind = FlexNull
	case c == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		v.kind = FlexString
		v.str = s
	case c == '-' || (c >= '0' && c <= '9'):
		f, err := strconv.ParseFloat(string(trimmed), 64)
		if err != nil {
			return err
		}
		v.kind = FlexNumber
		v.num = f
		if !bytes.ContainsAny(trimmed, ".eE") {
			if n, err := strconv.ParseInt(string(trimmed), 10, 64); err == nil {
				v.integer = n
				v.integral = true
			}
		}
	default:
		v.kind = FlexOther
	}
	return nil
}

// MarshalJSON writes the original bytes back, or null for an absent field.
func (v FlexValue) MarshalJSON() ([]byte, error) {
	if len(v.raw) == 0 {
		return []byte("null"), nil
	}
	return v.raw, nil
}

// Kind returns the stored JSON shape.
func (v FlexValue) Kind() FlexKind {
	return v.kind
}

// IsMissing reports whether the field was absent or null.
func (v FlexValue) IsMissing() bool {
	return v.kind == FlexAbsent || v.kind == FlexNull
}

// Str returns the value if it was stored as a string.
func (v FlexValue) Str() (string, bool) {
	if v.kind != FlexString {
		return "", false
	}
	return v.str, true
}

// String returns the string value, or "" for any other shape.
func (v FlexValue) String() string {
	return v.str
}

// Float returns the numeric value if it was stored as a number.
func (v FlexValue) Float() (float64, bool) {
	if v.kind != FlexNumber {
		return 0, false
	}
	return v.num, true
}

// Int returns the value if it was stored as an integral number literal.
// Fractional numbers such as 38.0 are not integers here.
func (v FlexValue) Int() (int64, bool) {
	if v.kind != FlexNumber || !v.integral {
		return 0, false
	}
	return v.integer, true
}

// Raw returns the original JSON bytes (nil when absent).
func (v FlexValue) Raw() json.RawMessage {
	return v.raw
}
