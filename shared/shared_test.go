package shared_test

import (
	"strings"
	"testing"
	"time"

	"adspot/shared"
	"adspot/shared/constant"
	"adspot/shared/dto"
)

func boolPtr(b bool) *bool { return &b }

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "valid true string", input: "true", expected: boolPtr(true)},
		{name: "valid false string", input: "false", expected: boolPtr(false)},
		{name: "valid 1 string", input: "1", expected: boolPtr(true)},
		{name: "valid 0 string", input: "0", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "invalid", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}

				return
			}

			if result == nil || *result != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, result)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "zero limit", total: 10, limit: 0, want: 1},
		{name: "exact division", total: 20, limit: 10, want: 2},
		{name: "rounds up", total: 21, limit: 10, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateReq struct {
		Title     string    `db:"title"`
		BasePrice float64   `db:"base_price"`
		StartDate time.Time `db:"start_date"`
		Ignored   string
	}

	req := updateReq{Title: "Billboard A", BasePrice: 150}

	fields := shared.TransformFields(req, "tester")

	if fields["title"] != "Billboard A" {
		t.Errorf("expected title to be transformed, got %v", fields["title"])
	}

	if fields["base_price"] != float64(150) {
		t.Errorf("expected base_price to be transformed, got %v", fields["base_price"])
	}

	if _, ok := fields["start_date"]; ok {
		t.Error("expected zero-valued start_date to be skipped")
	}

	if fields[constant.FieldModifiedBy] != "tester" {
		t.Errorf("expected modified_by to be tester, got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt]; !ok {
		t.Error("expected modified_at to be set")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("space-1", "id", "spaces")

	clause, args := group.GetWhereClause()

	if clause != "(spaces.id = :id)" {
		t.Errorf("unexpected clause: %q", clause)
	}

	if args["id"] != "space-1" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildCacheKey(t *testing.T) {
	key := shared.BuildCacheKey("booking:get", "abc", "def")

	if key != "booking:get:abc:def" {
		t.Errorf("unexpected cache key: %s", key)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := dto.FilterGroup{
		Filters: []any{dto.Filter{Field: "space_id", Value: "abc", Operator: dto.FilterOperatorEq}},
	}

	keyOne := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	keyTwo := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	if keyOne != keyTwo {
		t.Errorf("expected deterministic keys, got %s and %s", keyOne, keyTwo)
	}

	if !strings.HasPrefix(keyOne, "booking:gets:") {
		t.Errorf("expected prefix to be preserved, got %s", keyOne)
	}

	otherFilter := dto.FilterGroup{
		Filters: []any{dto.Filter{Field: "space_id", Value: "xyz", Operator: dto.FilterOperatorEq}},
	}

	if keyOne == shared.BuildCacheKeyWithQuery("booking:gets", params, otherFilter) {
		t.Error("expected different filters to produce different keys")
	}
}
