package timeparse

import (
	"fmt"
	"strings"
	"time"
)

var layouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339,
}

// ParseTime parses an absolute or relative point in time. Relative forms
// are resolved against now:
//   - now
//   - today, yesterday (midnight in now's location)
//   - <duration> ago, e.g. "3d ago" (see ParseDuration)
//
// Absolute forms are YYYY-MM-DD and YYYY-MM-DD HH:MM:SS, both in UTC, and
// RFC3339 with any zone.
func ParseTime(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)

	switch strings.ToLower(s) {
	case "now":
		return now, nil
	case "today":
		return midnight(now), nil
	case "yesterday":
		return midnight(now).AddDate(0, 0, -1), nil
	}

	if ago, ok := strings.CutSuffix(s, " ago"); ok {
		d, err := ParseDuration(ago)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid time %q: %w", s, err)
		}
		return now.Add(-d), nil
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid time format %q (expected YYYY-MM-DD, YYYY-MM-DD HH:MM:SS, RFC3339, today, yesterday or <duration> ago)", s)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
