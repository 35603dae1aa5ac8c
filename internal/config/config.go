// Package config loads and saves fsfind's persisted settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jparise/fsfind/internal/search"
	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultPollInterval is how often hosts drain the event queue.
	DefaultPollInterval = 150 * time.Millisecond

	defaultAlgorithm       = "BFS"
	defaultSearchPaneWidth = 36
	defaultNameColumnWidth = 28
	defaultPathColumnWidth = 60
	minColumnWidth         = 8
)

// Settings is the persisted configuration.
type Settings struct {
	Algorithm      string         `toml:"algorithm"`
	PollIntervalMS int            `toml:"poll_interval_ms"`
	Jobs           int            `toml:"jobs"` // 0 means one per CPU
	Search         SearchSettings `toml:"search"`
	UI             UISettings     `toml:"ui"`
}

// SearchSettings holds the default search options.
type SearchSettings struct {
	MatchCase    bool `toml:"match_case"`
	MatchWhole   bool `toml:"match_whole"`
	IncludeFiles bool `toml:"include_files"`
	IncludeDirs  bool `toml:"include_dirs"`
}

// UISettings holds the interactive UI geometry, in terminal cells.
type UISettings struct {
	SearchPaneWidth int `toml:"search_pane_width"`
	NameColumnWidth int `toml:"name_column_width"`
	PathColumnWidth int `toml:"path_column_width"`
}

// Default returns the built-in settings.
func Default() *Settings {
	opts := search.DefaultOptions()
	return &Settings{
		Algorithm:      defaultAlgorithm,
		PollIntervalMS: int(DefaultPollInterval / time.Millisecond),
		Search: SearchSettings{
			MatchCase:    opts.MatchCase,
			MatchWhole:   opts.MatchWhole,
			IncludeFiles: opts.IncludeFiles,
			IncludeDirs:  opts.IncludeDirs,
		},
		UI: UISettings{
			SearchPaneWidth: defaultSearchPaneWidth,
			NameColumnWidth: defaultNameColumnWidth,
			PathColumnWidth: defaultPathColumnWidth,
		},
	}
}

// DefaultPath returns the per-user settings file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "fsfind", "config.toml"), nil
}

// Load reads settings from path. A missing file yields Default(); keys
// missing from the file keep their default values.
func Load(path string) (*Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	s.normalize()

	return s, nil
}

// Save writes settings to path. Concurrent writers are serialized through a
// lock file next to path and the file is replaced atomically.
func Save(path string, s *Settings) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return lockAndWrite(path, data)
}

// Options returns the default search options.
func (s *Settings) Options() search.Options {
	return search.Options{
		MatchCase:    s.Search.MatchCase,
		MatchWhole:   s.Search.MatchWhole,
		IncludeFiles: s.Search.IncludeFiles,
		IncludeDirs:  s.Search.IncludeDirs,
	}
}

// SetOptions records opts as the default search options.
func (s *Settings) SetOptions(opts search.Options) {
	s.Search = SearchSettings{
		MatchCase:    opts.MatchCase,
		MatchWhole:   opts.MatchWhole,
		IncludeFiles: opts.IncludeFiles,
		IncludeDirs:  opts.IncludeDirs,
	}
}

// PollInterval returns the queue polling cadence.
func (s *Settings) PollInterval() time.Duration {
	return time.Duration(s.PollIntervalMS) * time.Millisecond
}

// normalize replaces out-of-range values with defaults.
func (s *Settings) normalize() {
	def := Default()
	if s.Algorithm == "" {
		s.Algorithm = def.Algorithm
	}
	if s.PollIntervalMS <= 0 {
		s.PollIntervalMS = def.PollIntervalMS
	}
	if s.Jobs < 0 {
		s.Jobs = 0
	}
	if s.UI.SearchPaneWidth < minColumnWidth {
		s.UI.SearchPaneWidth = def.UI.SearchPaneWidth
	}
	if s.UI.NameColumnWidth < minColumnWidth {
		s.UI.NameColumnWidth = def.UI.NameColumnWidth
	}
	if s.UI.PathColumnWidth < minColumnWidth {
		s.UI.PathColumnWidth = def.UI.PathColumnWidth
	}
}
