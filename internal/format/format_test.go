package format

import (
	"testing"
	"time"
)

func TestDate(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) // Sunday

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"same moment", now, "12:00"},
		{"earlier today", now.Add(-3*time.Hour - 15*time.Minute), "08:45"},
		{"23 hours ago", now.Add(-23 * time.Hour), "13:00"},
		{"one day ago", now.Add(-25 * time.Hour), Yesterday},
		{"three days ago", now.Add(-3 * 24 * time.Hour), "Thursday"},
		{"six days ago", now.Add(-6*24*time.Hour - time.Hour), "Monday"},
		{"a week ago", now.Add(-7 * 24 * time.Hour), "2024/03/03"},
		{"last year", time.Date(2023, 12, 31, 9, 0, 0, 0, time.UTC), "2023/12/31"},
		{"future", now.Add(2 * time.Hour), "14:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Date(tt.t, now); got != tt.want {
				t.Errorf("Date() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDate_UsesNowLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, loc)
	note := time.Date(2024, 3, 10, 7, 30, 0, 0, time.UTC)

	if got := Date(note, now); got != "10:30" {
		t.Errorf("Date() = %q, want 10:30", got)
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"", EmptyPreview},
		{"Title only", EmptyPreview},
		{"Title\n", EmptyPreview},
		{"Title\n   \nthird", EmptyPreview},
		{"Title\nsecond line\nthird", "second line"},
		{"Title\r\nsecond\r\nthird", "second"},
	}

	for _, tt := range tests {
		if got := Preview(tt.content); got != tt.want {
			t.Errorf("Preview(%q) = %q, want %q", tt.content, got, tt.want)
		}
	}
}
