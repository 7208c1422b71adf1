package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Saturday afternoon, local time.
var refNow = time.Date(2025, 3, 15, 14, 30, 0, 0, time.Local)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"today", "2025-03-15", "Today"},
		{"yesterday", "2025-03-14", "Yesterday"},
		{"three days ago", "2025-03-12", "3 days ago"},
		{"seven days ago", "2025-03-08", "7 days ago"},
		{"eight days ago", "2025-03-07", "Mar 7, 2025"},
		{"future date", "2025-03-20", "Mar 20, 2025"},
		{"unparseable passes through", "not-a-date", "not-a-date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.date, refNow))
		})
	}
}

func TestFormatDate_IgnoresTimeOfDay(t *testing.T) {
	// Late evening vs early morning must not change the day bucket.
	lateNow := time.Date(2025, 3, 15, 23, 50, 0, 0, time.Local)
	assert.Equal(t, "Yesterday", FormatDate("2025-03-14", lateNow))

	earlyNow := time.Date(2025, 3, 15, 0, 10, 0, 0, time.Local)
	assert.Equal(t, "Yesterday", FormatDate("2025-03-14", earlyNow))
}

func TestFormatDate_AcrossDSTTransitions(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2025-03-09 is the US spring-forward date, so that midnight-to-midnight
	// interval is only 23 hours.
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, loc)
	assert.Equal(t, "Yesterday", FormatDate("2025-03-09", now))

	// the 7-day window spanning the transition must not collapse to 6
	now = time.Date(2025, 3, 13, 9, 0, 0, 0, loc)
	assert.Equal(t, "7 days ago", FormatDate("2025-03-06", now))

	// fall-back gives a 25-hour day; it must not round up to 2 days
	now = time.Date(2025, 11, 3, 12, 0, 0, 0, loc)
	assert.Equal(t, "Yesterday", FormatDate("2025-11-02", now))
}

func TestFormatTimestamp(t *testing.T) {
	sameDay := time.Date(2025, 3, 15, 9, 5, 0, 0, time.Local)
	assert.Equal(t, "9:05 AM", FormatTimestamp(sameDay, refNow))

	twoDaysAgo := refNow.Add(-48 * time.Hour) // Thursday
	assert.Equal(t, "Thu", FormatTimestamp(twoDaysAgo, refNow))

	older := time.Date(2025, 2, 13, 10, 0, 0, 0, time.Local)
	assert.Equal(t, "Feb 13", FormatTimestamp(older, refNow))
}

func TestLocalDate(t *testing.T) {
	assert.Equal(t, "2025-03-15", LocalDate(refNow))
}
