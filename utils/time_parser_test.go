package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	hour, minute, err := ParseClock("14:30")
	require.NoError(t, err)
	assert.Equal(t, 14, hour)
	assert.Equal(t, 30, minute)

	hour, minute, err = ParseClock(" 09:05 ")
	require.NoError(t, err)
	assert.Equal(t, 9, hour)
	assert.Equal(t, 5, minute)

	_, _, err = ParseClock("25:00")
	assert.Error(t, err)
	_, _, err = ParseClock("1430")
	assert.Error(t, err)
}

func TestParseSheetDate(t *testing.T) {
	tests := []struct {
		input string
		day   int
		month time.Month
		year  int
	}{
		{"15.03.2025", 15, time.March, 2025},
		{"15-03-2025", 15, time.March, 2025},
		{"15.03.2025 14:30", 15, time.March, 2025},
		{"15.03.2025 14:30:45", 15, time.March, 2025},
		{"15.03.2025 (примечание)", 15, time.March, 2025},
	}
	for _, tt := range tests {
		got, err := ParseSheetDate(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.day, got.Day(), "input %q", tt.input)
		assert.Equal(t, tt.month, got.Month(), "input %q", tt.input)
		assert.Equal(t, tt.year, got.Year(), "input %q", tt.input)
	}

	_, err := ParseSheetDate("вчера")
	assert.Error(t, err)
}

func TestFormatSheetDateRoundTrip(t *testing.T) {
	date := time.Date(2025, time.March, 15, 14, 30, 0, 0, MoscowLocation())
	assert.Equal(t, "15.03.2025", FormatSheetDate(date))
	assert.Equal(t, "15.03.2025 14:30", FormatSheetTimestamp(date))

	parsed, err := ParseSheetDate(FormatSheetTimestamp(date))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(date))
}
