// Package timeparse parses the time and duration values accepted on the
// command line.
package timeparse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	day  = 24 * time.Hour
	week = 7 * day
)

var units = map[string]time.Duration{
	"ms": time.Millisecond,
	"s":  time.Second,
	"m":  time.Minute,
	"h":  time.Hour,
	"d":  day,
	"w":  week,
	// Aliases
	"sec":   time.Second,
	"secs":  time.Second,
	"min":   time.Minute,
	"mins":  time.Minute,
	"hour":  time.Hour,
	"hours": time.Hour,
	"day":   day,
	"days":  day,
	"week":  week,
	"weeks": week,
}

// ParseDuration parses a duration made of one or more <number><unit>
// segments, such as "30s", "2d", "3weeks" or "1d12h". Units are ms, s, m,
// h, d and w, plus their spelled-out aliases. Numbers are whole and
// non-negative.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration string")
	}

	var total time.Duration
	for rest := s; rest != ""; {
		d, n, err := parseSegment(rest)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		if total > math.MaxInt64-d {
			return 0, fmt.Errorf("invalid duration %q: value too large", s)
		}
		total += d
		rest = strings.TrimLeft(rest[n:], " ")
	}

	return total, nil
}

// parseSegment parses the leading <number><unit> of s and returns its
// value and length.
func parseSegment(s string) (time.Duration, int, error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, 0, fmt.Errorf("missing number")
	}

	num, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		return 0, 0, err
	}

	// The unit runs to the next digit.
	j := i
	for j < len(s) && (s[j] < '0' || s[j] > '9') {
		j++
	}
	unitStr := strings.TrimSpace(s[i:j])
	if unitStr == "" {
		return 0, 0, fmt.Errorf("missing unit")
	}
	unit, ok := units[unitStr]
	if !ok {
		return 0, 0, fmt.Errorf("unknown unit %q", unitStr)
	}

	if num > math.MaxInt64/int64(unit) {
		return 0, 0, fmt.Errorf("value too large")
	}

	return time.Duration(num) * unit, j, nil
}
