package search

import "strings"

// Options controls which entries are tested and how names are compared.
type Options struct {
	MatchCase    bool // Compare names case-sensitively
	MatchWhole   bool // Require the whole name to equal the pattern
	IncludeFiles bool // Report matching files
	IncludeDirs  bool // Report matching directories (they are traversed either way)
}

// DefaultOptions returns case-insensitive substring matching that reports
// files but not directories.
func DefaultOptions() Options {
	return Options{
		IncludeFiles: true,
	}
}

// Matcher tests entry names against a pattern.
type Matcher struct {
	pattern string
	fold    bool
	whole   bool
}

// NewMatcher prepares pattern for repeated matching under opts.
func NewMatcher(pattern string, opts Options) Matcher {
	m := Matcher{
		pattern: pattern,
		fold:    !opts.MatchCase,
		whole:   opts.MatchWhole,
	}
	if m.fold {
		m.pattern = strings.ToLower(pattern)
	}
	return m
}

// Match reports whether name satisfies the pattern. Only the entry name is
// compared, never its full path.
func (m Matcher) Match(name string) bool {
	if m.fold {
		name = strings.ToLower(name)
	}
	if m.whole {
		return name == m.pattern
	}
	return strings.Contains(name, m.pattern)
}
