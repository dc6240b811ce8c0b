package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"wander/shared/constant"
	"wander/shared/dto"
	"wander/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := createdAt.Format(constant.DateFormat)
	expectedModifiedAt := modifiedAt.Format(constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "created_at",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "created_at",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with lowercase sort direction",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: "DESC",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			q := dto.QueryParams{}
			q.FromRequest(req, tt.defaultRequest)

			if q != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, q)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	t.Run("eq with table", func(t *testing.T) {
		f := dto.Filter{
			Field:    "experience_id",
			Operator: dto.FilterOperatorEq,
			Value:    "exp-1",
			Table:    "time_slots",
		}

		where, args := f.GetWhereClause()

		if where != "time_slots.experience_id = :experience_id" {
			t.Errorf("unexpected where clause: %s", where)
		}

		if args["experience_id"] != "exp-1" {
			t.Errorf("expected arg to be 'exp-1', got %v", args["experience_id"])
		}
	})

	t.Run("in with slice", func(t *testing.T) {
		f := dto.Filter{
			Field:    "status",
			Operator: dto.FilterOperatorIn,
			Value:    []string{"pending", "confirmed"},
			Table:    "bookings",
		}

		where, args := f.GetWhereClause()

		if where != "bookings.status IN (:status_0, :status_1) " {
			t.Errorf("unexpected where clause: %s", where)
		}

		if args["status_0"] != "pending" || args["status_1"] != "confirmed" {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("custom arg name disambiguates repeated fields", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{
					ArgName:  "booking_date_from",
					Field:    "booking_date",
					Operator: dto.FilterOperatorGreaterEq,
					Value:    "2025-10-22",
				},
				dto.Filter{
					ArgName:  "booking_date_to",
					Field:    "booking_date",
					Operator: dto.FilterOperatorLessEq,
					Value:    "2025-10-23",
				},
			},
		}

		where, args := group.GetWhereClause()

		if where != "(booking_date >= :booking_date_from AND booking_date <= :booking_date_to)" {
			t.Errorf("unexpected where clause: %s", where)
		}

		if len(args) != 2 {
			t.Errorf("expected 2 args, got %d", len(args))
		}
	})

	t.Run("empty group", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

		where, _ := group.GetWhereClause()
		if where != "" {
			t.Errorf("expected empty where clause, got %s", where)
		}
	})
}
