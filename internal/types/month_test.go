package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/envelope-zero/planner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in   string
		want types.Month
		err  bool
	}{
		{"2024-05", types.NewMonth(2024, time.May), false},
		{"1999-12", types.NewMonth(1999, time.December), false},
		{"2024-13", types.Month{}, true},
		{"2024-5", types.Month{}, true},
		{"2024-05-01", types.Month{}, true},
		{"May 2024", types.Month{}, true},
		{"", types.Month{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := types.ParseMonth(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, types.ErrMonthFormat)
				return
			}

			require.Nil(t, err)
			assert.Equal(t, tt.want, m)
			assert.Equal(t, tt.in, m.String())
		})
	}
}

func TestMonthJSON(t *testing.T) {
	var target struct {
		Month types.Month `json:"month"`
	}

	err := json.Unmarshal([]byte(`{ "month": "2024-05" }`), &target)
	require.Nil(t, err)
	assert.Equal(t, types.NewMonth(2024, time.May), target.Month)

	out, err := json.Marshal(target)
	require.Nil(t, err)
	assert.Equal(t, `{"month":"2024-05"}`, string(out))

	err = json.Unmarshal([]byte(`{ "month": "2024-05-12" }`), &target)
	assert.ErrorIs(t, err, types.ErrMonthFormat)
}

func TestMonthScanValue(t *testing.T) {
	m := types.NewMonth(2023, time.February)

	v, err := m.Value()
	require.Nil(t, err)
	assert.Equal(t, "2023-02", v)

	var scanned types.Month
	require.Nil(t, scanned.Scan("2023-02"))
	assert.Equal(t, m, scanned)

	require.Nil(t, scanned.Scan([]byte("2021-07")))
	assert.Equal(t, types.NewMonth(2021, time.July), scanned)

	require.Nil(t, scanned.Scan(time.Date(2020, 3, 17, 4, 0, 0, 0, time.UTC)))
	assert.Equal(t, types.NewMonth(2020, time.March), scanned)

	assert.NotNil(t, scanned.Scan(42))
}

func TestMonthHelpers(t *testing.T) {
	m := types.NewMonth(2024, time.February)

	assert.Equal(t, 29, m.Days())
	assert.Equal(t, 31, types.NewMonth(2024, time.March).Days())
	assert.True(t, m.Contains(time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 14, m.MonthsUntil(types.NewMonth(2025, time.April)))
	assert.Equal(t, -2, m.MonthsUntil(types.NewMonth(2023, time.December)))
	assert.True(t, types.MonthOf(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)).Equal(m))
	assert.True(t, types.Month{}.IsZero())
}
