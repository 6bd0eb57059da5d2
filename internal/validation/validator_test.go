// CollegeMatch - College Search Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/collegematch

package validation

import (
	"strings"
	"testing"
)

type updateRequest struct {
	ID    string            `json:"_id" validate:"required,docid,max=8"`
	Data  map[string]string `json:"data" validate:"required"`
	Limit int               `json:"limit" validate:"gte=0,lte=50"`
	Mode  string            `json:"mode,omitempty" validate:"omitempty,oneof=local outside"`
	Tags  []string          `json:"tags" validate:"max=2"`
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	req := updateRequest{ID: "c1", Data: map[string]string{"k": "v"}, Limit: 10, Mode: "local"}
	if err := ValidateStruct(&req); err != nil {
		t.Errorf("ValidateStruct() = %v, want nil", err)
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	base := func() updateRequest {
		return updateRequest{ID: "c1", Data: map[string]string{}, Limit: 1}
	}

	tests := []struct {
		name      string
		mutate    func(*updateRequest)
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{"missing id", func(r *updateRequest) { r.ID = "" }, "_id", "required", "_id is required"},
		{"blank id", func(r *updateRequest) { r.ID = "   " }, "_id", "docid", "_id must be a non-blank identifier"},
		{"control char in id", func(r *updateRequest) { r.ID = "a\nb" }, "_id", "docid", ""},
		{"long id", func(r *updateRequest) { r.ID = "abcdefghij" }, "_id", "max", "_id must be at most 8 characters"},
		{"nil data", func(r *updateRequest) { r.Data = nil }, "data", "required", "data is required"},
		{"limit too high", func(r *updateRequest) { r.Limit = 51 }, "limit", "lte", "limit must be less than or equal to 50"},
		{"bad mode", func(r *updateRequest) { r.Mode = "abroad" }, "mode", "oneof", "mode must be one of: local outside"},
		{"too many tags", func(r *updateRequest) { r.Tags = []string{"a", "b", "c"} }, "tags", "max", "tags must be at most 2 items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := base()
			tt.mutate(&req)
			verr := ValidateStruct(&req)
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("len(Errors()) = %d, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("got field=%q tag=%q, want %q/%q", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
			if tt.wantMsg != "" && errs[0].Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&updateRequest{Data: map[string]string{}})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Details["field"] != "_id" {
		t.Errorf("Details[field] = %v, want _id", apiErr.Details["field"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&updateRequest{Limit: -1})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	apiErr := verr.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 3 {
		t.Fatalf("Details[fields] = %v, want 3 entries", apiErr.Details["fields"])
	}
	if !strings.Contains(apiErr.Message, "_id is required") || !strings.Contains(apiErr.Message, "; ") {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestValidateVar(t *testing.T) {
	t.Parallel()

	if err := ValidateVar("user_id", "student-42", "docid,max=256"); err != nil {
		t.Errorf("ValidateVar(valid) = %v", err)
	}

	verr := ValidateVar("user_id", " ", "docid,max=256")
	if verr == nil {
		t.Fatal("ValidateVar(blank) = nil, want error")
	}
	if got := verr.Errors()[0].Field(); got != "user_id" {
		t.Errorf("Field() = %q, want user_id", got)
	}
	if got := verr.Error(); got != "user_id must be a non-blank identifier" {
		t.Errorf("Error() = %q", got)
	}
}
