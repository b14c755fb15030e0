package booking

import (
	"net/http/httptest"
	"testing"

	"pms/internal/domains/booking/model"
	gDto "pms/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestListFilter(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		wantErr     bool
		wantFilters []gDto.Filter
	}{
		{
			name:        "no parameters",
			target:      "/v1/bookings",
			wantFilters: []gDto.Filter{},
		},
		{
			name:   "equality filters",
			target: "/v1/bookings?room_id=room-1&status=confirmed",
			wantFilters: []gDto.Filter{
				{
					Field:    model.FieldRoomID,
					Operator: gDto.FilterOperatorEq,
					Value:    "room-1",
					Table:    model.TableName,
				},
				{
					Field:    model.FieldStatus,
					Operator: gDto.FilterOperatorEq,
					Value:    "confirmed",
					Table:    model.TableName,
				},
			},
		},
		{
			name:   "check-in date range",
			target: "/v1/bookings?from=2026-01-01&to=2026-02-01",
			wantFilters: []gDto.Filter{
				{
					ArgName:  "check_in_from",
					Field:    model.FieldCheckIn,
					Operator: gDto.FilterOperatorGreaterEq,
					Value:    "2026-01-01",
					Table:    model.TableName,
				},
				{
					ArgName:  "check_in_to",
					Field:    model.FieldCheckIn,
					Operator: gDto.FilterOperatorLess,
					Value:    "2026-02-01",
					Table:    model.TableName,
				},
			},
		},
		{
			name:   "status with lower bound only",
			target: "/v1/bookings?status=pending&from=2026-01-15",
			wantFilters: []gDto.Filter{
				{
					Field:    model.FieldStatus,
					Operator: gDto.FilterOperatorEq,
					Value:    "pending",
					Table:    model.TableName,
				},
				{
					ArgName:  "check_in_from",
					Field:    model.FieldCheckIn,
					Operator: gDto.FilterOperatorGreaterEq,
					Value:    "2026-01-15",
					Table:    model.TableName,
				},
			},
		},
		{
			name:    "from is not a date",
			target:  "/v1/bookings?from=next-week",
			wantErr: true,
		},
		{
			name:    "to has a time component",
			target:  "/v1/bookings?to=2026-02-01T00:00:00Z",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)

			filterGroup, err := listFilter(r)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, gDto.FilterGroupOperatorAnd, filterGroup.Operator)
			assert.Len(t, filterGroup.Filters, len(tt.wantFilters))

			for i, want := range tt.wantFilters {
				assert.Equal(t, want, filterGroup.Filters[i])
			}
		})
	}
}
