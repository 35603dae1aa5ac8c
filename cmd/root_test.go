package cmd

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/jparise/fsfind/internal/search"
)

func TestColorMode(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
		want    colorMode
	}{
		{
			name:    "auto",
			value:   "auto",
			wantErr: false,
			want:    colorAuto,
		},
		{
			name:    "always",
			value:   "always",
			wantErr: false,
			want:    colorAlways,
		},
		{
			name:    "never",
			value:   "never",
			wantErr: false,
			want:    colorNever,
		},
		{
			name:    "invalid value",
			value:   "invalid",
			wantErr: true,
		},
		{
			name:    "empty string",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c colorMode
			err := c.Set(tt.value)

			if tt.wantErr {
				if err == nil {
					t.Errorf("colorMode.Set(%q) expected error, got nil", tt.value)
				}
				return
			}

			if err != nil {
				t.Errorf("colorMode.Set(%q) unexpected error: %v", tt.value, err)
				return
			}

			if c != tt.want {
				t.Errorf("colorMode.Set(%q) = %v, want %v", tt.value, c, tt.want)
			}

			// Test String() method
			if c.String() != tt.value {
				t.Errorf("colorMode.String() = %q, want %q", c.String(), tt.value)
			}

			// Test Type() method
			if c.Type() != "colorMode" {
				t.Errorf("colorMode.Type() = %q, want %q", c.Type(), "colorMode")
			}
		})
	}
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantPattern string
		wantRoot    string
		wantErr     bool
	}{
		{
			name:        "pattern only",
			args:        []string{"report"},
			wantPattern: "report",
			wantRoot:    ".",
		},
		{
			name:        "pattern and folder",
			args:        []string{"report", "/home/user"},
			wantPattern: "report",
			wantRoot:    "/home/user",
		},
		{
			name:        "empty folder means current directory",
			args:        []string{"report", ""},
			wantPattern: "report",
			wantRoot:    ".",
		},
		{
			name:        "pattern with spaces",
			args:        []string{"annual report", "docs"},
			wantPattern: "annual report",
			wantRoot:    "docs",
		},
		{
			name:    "empty pattern",
			args:    []string{""},
			wantErr: true,
		},
		{
			name:    "no arguments",
			args:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern, root, err := parseArgs(tt.args)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseArgs(%q) expected error, got nil", tt.args)
				}
				return
			}

			if err != nil {
				t.Fatalf("parseArgs(%q) unexpected error: %v", tt.args, err)
			}
			if pattern != tt.wantPattern {
				t.Errorf("parseArgs(%q) pattern = %q, want %q", tt.args, pattern, tt.wantPattern)
			}
			if root != tt.wantRoot {
				t.Errorf("parseArgs(%q) root = %q, want %q", tt.args, root, tt.wantRoot)
			}
		})
	}
}

func TestParseSizes(t *testing.T) {
	tests := []struct {
		name    string
		minSize string
		maxSize string
		wantMin int64
		wantMax int64
		wantErr string
	}{
		{name: "no sizes"},
		{name: "minimum only", minSize: "1k", wantMin: 1024},
		{name: "maximum only", maxSize: "2m", wantMax: 2097152},
		{name: "range", minSize: "1k", maxSize: "1m", wantMin: 1024, wantMax: 1048576},
		{name: "equal bounds", minSize: "10", maxSize: "10", wantMin: 10, wantMax: 10},
		{name: "invalid minimum", minSize: "lots", wantErr: "invalid --min-size"},
		{name: "invalid maximum", maxSize: "10x", wantErr: "invalid --max-size"},
		{name: "zero minimum", minSize: "0", wantErr: "--min-size must be greater than 0"},
		{name: "zero maximum", maxSize: "0k", wantErr: "--max-size must be greater than 0"},
		{name: "inverted range", minSize: "2m", maxSize: "1m", wantErr: "--min-size cannot be greater than --max-size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMin, gotMax, err := parseSizes(tt.minSize, tt.maxSize)

			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("parseSizes(%q, %q) error = %v, want %q", tt.minSize, tt.maxSize, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("parseSizes(%q, %q) unexpected error: %v", tt.minSize, tt.maxSize, err)
			}
			if gotMin != tt.wantMin || gotMax != tt.wantMax {
				t.Errorf("parseSizes(%q, %q) = (%d, %d), want (%d, %d)",
					tt.minSize, tt.maxSize, gotMin, gotMax, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestParseTimes(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	date := func(year int, month time.Month, day int) *time.Time {
		t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		return &t
	}
	ago := func(d time.Duration) *time.Time {
		t := now.Add(-d)
		return &t
	}

	tests := []struct {
		name       string
		after      string
		before     string
		within     string
		wantAfter  *time.Time
		wantBefore *time.Time
		wantErr    string
	}{
		{name: "nothing set"},
		{name: "after", after: "2024-01-01", wantAfter: date(2024, 1, 1)},
		{name: "before", before: "2024-03-01", wantBefore: date(2024, 3, 1)},
		{name: "window", after: "2024-01-01", before: "2024-03-01", wantAfter: date(2024, 1, 1), wantBefore: date(2024, 3, 1)},
		{name: "within", within: "2d", wantAfter: ago(48 * time.Hour)},
		{name: "within and before", within: "1w", before: "2024-06-14", wantAfter: ago(7 * 24 * time.Hour), wantBefore: date(2024, 6, 14)},
		{name: "relative after", after: "yesterday", wantAfter: date(2024, 6, 14)},
		{name: "invalid after", after: "last tuesday", wantErr: "invalid --changed-after"},
		{name: "invalid before", before: "2024-13-45", wantErr: "invalid --changed-before"},
		{name: "invalid within", within: "fortnight", wantErr: "invalid --changed-within"},
		{name: "inverted window", after: "2024-03-01", before: "2024-01-01", wantErr: "--changed-after must be before --changed-before"},
		{name: "empty window", after: "2024-03-01", before: "2024-03-01", wantErr: "--changed-after must be before --changed-before"},
	}

	equal := func(a, b *time.Time) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.Equal(*b)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotAfter, gotBefore, err := parseTimes(now, tt.after, tt.before, tt.within)

			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("parseTimes() error = %v, want %q", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("parseTimes() unexpected error: %v", err)
			}
			if !equal(gotAfter, tt.wantAfter) {
				t.Errorf("parseTimes() after = %v, want %v", gotAfter, tt.wantAfter)
			}
			if !equal(gotBefore, tt.wantBefore) {
				t.Errorf("parseTimes() before = %v, want %v", gotBefore, tt.wantBefore)
			}
		})
	}
}

func TestSearchOptions(t *testing.T) {
	defer func(mc, wn, id, nf bool) {
		matchCase, wholeName, includeDirs, noFiles = mc, wn, id, nf
	}(matchCase, wholeName, includeDirs, noFiles)

	tests := []struct {
		name    string
		base    search.Options
		changed []string
		set     func()
		want    search.Options
	}{
		{
			name: "settings used when no flag is set",
			base: search.Options{MatchCase: true, IncludeFiles: true},
			set:  func() {},
			want: search.Options{MatchCase: true, IncludeFiles: true},
		},
		{
			name:    "flags override settings",
			base:    search.Options{MatchCase: true, IncludeFiles: true},
			changed: []string{"match-case", "whole-name", "dirs"},
			set: func() {
				matchCase, wholeName, includeDirs = false, true, true
			},
			want: search.Options{MatchWhole: true, IncludeFiles: true, IncludeDirs: true},
		},
		{
			name:    "no files",
			base:    search.DefaultOptions(),
			changed: []string{"no-files", "dirs"},
			set: func() {
				noFiles, includeDirs = true, true
			},
			want: search.Options{IncludeDirs: true},
		},
		{
			name:    "explicit files re-enables them",
			base:    search.Options{IncludeDirs: true},
			changed: []string{"no-files"},
			set: func() {
				noFiles = false
			},
			want: search.Options{IncludeFiles: true, IncludeDirs: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matchCase, wholeName, includeDirs, noFiles = false, false, false, false
			tt.set()

			got := searchOptions(tt.base, func(name string) bool {
				return slices.Contains(tt.changed, name)
			})
			if got != tt.want {
				t.Errorf("searchOptions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDiscoverEngines(t *testing.T) {
	engines, err := discoverEngines()
	if err != nil {
		t.Fatalf("discoverEngines() unexpected error: %v", err)
	}
	for _, name := range []string{"BFS", "DFS", "PBFS"} {
		if _, ok := engines[name]; !ok {
			t.Errorf("discoverEngines() is missing %s", name)
		}
	}
}

func TestParseByteSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		// Plain bytes
		{name: "plain number", input: "1024", want: 1024},
		{name: "zero", input: "0", want: 0},
		{name: "bytes suffix", input: "500b", want: 500},
		{name: "bytes uppercase", input: "500B", want: 500},

		// Kilobytes
		{name: "kilobytes", input: "1k", want: 1024},
		{name: "kilobytes kb", input: "10kb", want: 10240},
		{name: "kilobytes uppercase", input: "5K", want: 5120},
		{name: "kilobytes kib", input: "2kib", want: 2048},
		{name: "kilobytes uppercase KB", input: "3KB", want: 3072},

		// Megabytes
		{name: "megabytes", input: "1m", want: 1048576},
		{name: "megabytes mb", input: "5mb", want: 5242880},
		{name: "megabytes uppercase", input: "2M", want: 2097152},
		{name: "megabytes MiB", input: "3MiB", want: 3145728},

		// Gigabytes
		{name: "gigabytes", input: "1g", want: 1073741824},
		{name: "gigabytes gb", input: "2gb", want: 2147483648},
		{name: "gigabytes uppercase", input: "1G", want: 1073741824},
		{name: "gigabytes GiB", input: "1GiB", want: 1073741824},

		// Terabytes
		{name: "terabytes", input: "1t", want: 1099511627776},
		{name: "terabytes tb", input: "2tb", want: 2199023255552},
		{name: "terabytes TiB", input: "1TiB", want: 1099511627776},

		// Petabytes
		{name: "petabytes", input: "1p", want: 1125899906842624},
		{name: "petabytes pb", input: "1pb", want: 1125899906842624},
		{name: "petabytes PiB", input: "1PiB", want: 1125899906842624},

		// Decimal numbers
		{name: "decimal kilobytes", input: "1.5k", want: 1536},
		{name: "decimal megabytes", input: "2.5m", want: 2621440},
		{name: "decimal gigabytes", input: "0.5g", want: 536870912},

		// Whitespace handling
		{name: "leading whitespace", input: "  10m", want: 10485760},
		{name: "trailing whitespace", input: "10m  ", want: 10485760},
		{name: "whitespace around", input: "  10m  ", want: 10485760},
		{name: "whitespace before unit", input: "10 m", want: 10485760},

		// Error cases
		{name: "empty string", input: "", wantErr: true},
		{name: "invalid number", input: "abc", wantErr: true},
		{name: "invalid unit", input: "10x", wantErr: true},
		{name: "negative number", input: "-10m", wantErr: true},
		{name: "just a unit", input: "mb", wantErr: true},
		{name: "multiple decimals", input: "1.5.5m", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseByteSize(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseByteSize(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("parseByteSize(%q) unexpected error: %v", tt.input, err)
				return
			}

			if got != tt.want {
				t.Errorf("parseByteSize(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
