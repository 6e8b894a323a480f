package fleet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod_Valid(t *testing.T) {
	period, perr := ParsePeriod("01.06.2024 09:00", "01.06.2024 12:00")
	require.Nil(t, perr)
	require.NotNil(t, period)
	assert.Equal(t, time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), period.From)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), period.To)
}

func TestParsePeriod_Missing(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
	}{
		{"both empty", "", ""},
		{"from empty", "", "01.06.2024 12:00"},
		{"to empty", "01.06.2024 09:00", ""},
		{"whitespace only", "   ", "01.06.2024 12:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			period, perr := ParsePeriod(tc.from, tc.to)
			assert.Nil(t, period)
			require.NotNil(t, perr)
			assert.Equal(t, KindMissingPeriod, perr.Kind)
			assert.Equal(t, MsgMissingPeriod, perr.Message)
		})
	}
}

func TestParsePeriod_InvalidFormat(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
	}{
		{"garbage", "not-a-date", "01.06.2024 12:00"},
		{"iso format", "2024-06-01 09:00", "01.06.2024 12:00"},
		{"missing time", "01.06.2024", "01.06.2024 12:00"},
		{"trailing garbage", "01.06.2024 09:00 xx", "01.06.2024 12:00"},
		{"day 31 in 30-day month", "31.04.2024 09:00", "01.05.2024 12:00"},
		{"feb 29 off leap year", "29.02.2023 09:00", "01.03.2023 12:00"},
		{"hour 24", "01.06.2024 24:00", "02.06.2024 12:00"},
		{"month 13", "01.13.2024 09:00", "01.01.2025 12:00"},
		{"bad to", "01.06.2024 09:00", "32.06.2024 12:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			period, perr := ParsePeriod(tc.from, tc.to)
			assert.Nil(t, period)
			require.NotNil(t, perr)
			assert.Equal(t, KindInvalidDateFormat, perr.Kind)
		})
	}
}

func TestParsePeriod_InvalidRange(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
	}{
		{"inverted", "01.06.2024 12:00", "01.06.2024 09:00"},
		{"equal bounds", "01.06.2024 09:00", "01.06.2024 09:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			period, perr := ParsePeriod(tc.from, tc.to)
			assert.Nil(t, period)
			require.NotNil(t, perr)
			assert.Equal(t, KindInvalidRange, perr.Kind)
			assert.Equal(t, MsgInvalidRange, perr.Message)
		})
	}
}
