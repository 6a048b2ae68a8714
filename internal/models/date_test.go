package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "valid date", value: "15/03/2024", want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding spaces", value: "  01/01/2025 ", want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "leap day", value: "29/02/2024", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "day 31 in April", value: "31/04/2024", wantErr: true},
		{name: "leap day in common year", value: "29/02/2023", wantErr: true},
		{name: "month 13", value: "01/13/2024", wantErr: true},
		{name: "ISO layout", value: "2024-03-15", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "garbage", value: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.value)
			if tt.wantErr {
				var dateErr *InvalidDateError
				require.True(t, errors.As(err, &dateErr), "want InvalidDateError, got %v", err)
				assert.Equal(t, tt.value, dateErr.Value)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05/09/2024", FormatDate(time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC)))
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		months int
		want   string
	}{
		{name: "zero months", start: "15/03/2024", months: 0, want: "15/03/2024"},
		{name: "simple", start: "15/03/2024", months: 2, want: "15/05/2024"},
		{name: "leap year clamp", start: "31/01/2024", months: 1, want: "29/02/2024"},
		{name: "common year clamp", start: "31/01/2023", months: 1, want: "28/02/2023"},
		{name: "short month clamp", start: "31/03/2024", months: 1, want: "30/04/2024"},
		{name: "year boundary", start: "30/11/2024", months: 3, want: "28/02/2025"},
		{name: "many years", start: "10/06/2024", months: 30, want: "10/12/2026"},
		{name: "day kept after short month", start: "31/01/2024", months: 2, want: "31/03/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := ParseDate(tt.start)
			require.NoError(t, err)

			assert.Equal(t, tt.want, FormatDate(AddMonths(start, tt.months)))
		})
	}
}
