package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wander/shared"
	"wander/shared/constant"
	"wander/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "true", input: "true", expected: boolPtr(true)},
		{name: "false", input: "false", expected: boolPtr(false)},
		{name: "empty", input: "", expected: nil},
		{name: "invalid", input: "not-a-bool", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, *tt.expected, *result)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "exact division", total: 20, limit: 10, expected: 2},
		{name: "rounds up", total: 21, limit: 10, expected: 3},
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 20, limit: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Title    string `db:"title"`
		Location string `db:"location"`
		Skipped  string
	}

	fields := shared.TransformFields(updateRequest{Title: "Kayaking"}, "someone")

	assert.Equal(t, "Kayaking", fields["title"])
	assert.NotContains(t, fields, "location")
	assert.Equal(t, "someone", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("abc", "id", "experiences")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(experiences.id = :id)", where)
	assert.Equal(t, "abc", args["id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get", shared.BuildCacheKey("booking:get"))
	assert.Equal(t, "booking:get:id-1", shared.BuildCacheKey("booking:get", "id-1"))
	assert.Equal(t, "slot:get:exp-1:2025-10-22", shared.BuildCacheKey("slot:get", "exp-1", "2025-10-22"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := shared.FilterByID("exp-1", "experience_id", "bookings")

	keyOne := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	keyTwo := shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 2, Limit: 10}, filter)

	assert.NotEqual(t, keyOne, keyTwo)
	assert.Contains(t, keyOne, "booking:gets")
}

func boolPtr(b bool) *bool {
	return &b
}
