package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatClock24h(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	face, suffix := FormatClock(now, "24h")
	require.Equal(t, "15:04", face)
	require.Equal(t, ":05", suffix)
}

func TestFormatClock12h(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	face, suffix := FormatClock(now, "12h")
	require.Equal(t, "3:04", face)
	require.Equal(t, ":05 PM", suffix)

	morning := time.Date(2026, 8, 31, 0, 30, 0, 0, time.UTC)
	face, suffix = FormatClock(morning, "12h")
	require.Equal(t, "12:30", face)
	require.Equal(t, ":00 AM", suffix)
}

func TestBigDigitsShape(t *testing.T) {
	rows := BigDigits("12:34")
	require.Len(t, rows, 5)
	for _, row := range rows[1:] {
		// Every row spans the same glyph cells.
		require.NotEmpty(t, row)
	}
}

func TestFormatRemaining(t *testing.T) {
	require.Equal(t, "0:07", FormatRemaining(7))
	require.Equal(t, "1:00", FormatRemaining(60))
	require.Equal(t, "59:59", FormatRemaining(3599))
	require.Equal(t, "1:01:05", FormatRemaining(3665))
}
