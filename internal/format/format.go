// Package format renders note metadata for list views.
package format

import (
	"strings"
	"time"
)

const (
	Yesterday     = "Yesterday"
	EmptyPreview  = "No additional text"
	timeLayout    = "15:04"
	dateLayout    = "2006/01/02"
	hoursInDay    = 24 * time.Hour
	daysInOneWeek = 7
)

// Date renders t relative to now by whole elapsed days: the clock time for
// the same day, "Yesterday", the weekday within a week, otherwise the date.
// Timestamps in the future count as today.
func Date(t, now time.Time) string {
	t = t.In(now.Location())

	days := int(now.Sub(t) / hoursInDay)

	switch {
	case days <= 0:
		return t.Format(timeLayout)
	case days == 1:
		return Yesterday
	case days < daysInOneWeek:
		return t.Weekday().String()
	default:
		return t.Format(dateLayout)
	}
}

// Preview returns the second line of content, or EmptyPreview when it is
// missing or blank.
func Preview(content string) string {
	_, rest, ok := strings.Cut(content, "\n")
	if !ok {
		return EmptyPreview
	}

	line, _, _ := strings.Cut(rest, "\n")
	line = strings.TrimRight(line, "\r")

	if strings.TrimSpace(line) == "" {
		return EmptyPreview
	}

	return line
}
