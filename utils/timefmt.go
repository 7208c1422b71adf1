package utils

import (
	"fmt"
	"math"
	"time"

	"github.com/nishantjoshi-007/NutriScan/models"
)

// Presentation helpers for the history and daily-log screens. Both take an
// explicit reference time so the stores can pass time.Now() and tests can
// pin the clock.

// FormatTimestamp renders a history timestamp relative to now:
// same calendar day -> time of day, within 7 days -> weekday abbreviation,
// else -> short month/day.
func FormatTimestamp(ts, now time.Time) string {
	ty, tm, td := ts.Date()
	ny, nm, nd := now.Date()
	if ty == ny && tm == nm && td == nd {
		return ts.Format("3:04 PM")
	}
	if now.Sub(ts) < 7*24*time.Hour {
		return ts.Format("Mon")
	}
	return ts.Format("Jan 2")
}

// FormatDate renders a YYYY-MM-DD daily-log date relative to now. The day
// difference uses local-midnight subtraction, not raw duration, so DST and
// time-of-day never skew the bucket.
func FormatDate(date string, now time.Time) string {
	d, err := time.ParseInLocation(models.DateLayout, date, now.Location())
	if err != nil {
		return date
	}
	dayStart := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	// a DST transition makes the midnight-to-midnight interval 23 or 25
	// hours; rounding keeps the calendar-day count exact either way
	days := int(math.Round(dayStart(now).Sub(dayStart(d)).Hours() / 24))
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days > 1 && days <= 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return d.Format("Jan 2, 2006")
	}
}

// LocalDate returns t's calendar date in the canonical log format.
func LocalDate(t time.Time) string {
	return t.Format(models.DateLayout)
}
