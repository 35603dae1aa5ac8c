package cmd

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"
	"unicode"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/jparise/fsfind/internal/config"
	"github.com/jparise/fsfind/internal/engine"
	"github.com/jparise/fsfind/internal/finder"
	"github.com/jparise/fsfind/internal/registry"
	"github.com/jparise/fsfind/internal/search"
	"github.com/jparise/fsfind/internal/timeparse"
	"github.com/spf13/cobra"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

var (
	version = "dev"

	// Persisted settings, loaded before any command runs.
	settings     *config.Settings
	settingsPath string

	// Flags.
	color         = colorAuto
	hyperlinks    bool
	algorithm     string
	matchCase     bool
	wholeName     bool
	includeDirs   bool
	noFiles       bool
	extensions    []string
	excludes      []string
	minSize       string
	maxSize       string
	changedAfter  string
	changedBefore string
	changedWithin string
	timeout       string
	interval      time.Duration
	jobs          int
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "fsfind [flags] <pattern> [<folder>]",
	Short: "Find files and folders by name",
	Long: `fsfind searches a folder tree for entries whose names contain <pattern>.

The search proceeds one folder level at a time, so shallow matches are
reported first. Results stream as they are found; press Ctrl-C to stop
early. <folder> defaults to the current directory.

Matching is case-insensitive and accepts substrings unless --match-case or
--whole-name is given. Only files are reported by default; use --dirs to
report matching folders as well.

Examples:
  fsfind report
  fsfind -w Makefile ~/src
  fsfind --dirs --no-files node_modules ~/src
  fsfind -e go -E "*_test.go" handler .
  fsfind --changed-within 2d --min-size 1M log /var
  fsfind -a DFS --timeout 30s config /etc`,
	Version:           version,
	Args:              cobra.RangeArgs(1, 2),
	PersistentPreRunE: loadSettings,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if jobs < 0 || jobs > 256 {
			return fmt.Errorf("--jobs must be between 0 and 256, got %d", jobs)
		}
		if cmd.Flags().Changed("interval") && interval <= 0 {
			return fmt.Errorf("--interval must be positive, got %s", interval)
		}
		if changedWithin != "" && changedAfter != "" {
			return fmt.Errorf("--changed-within cannot be combined with --changed-after")
		}
		return nil
	},
	RunE: run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "config", "",
		"settings file (default: user config dir/fsfind/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&algorithm, "algorithm", "a", "",
		"search algorithm (see \"fsfind algorithms\"; default from settings)")
	rootCmd.PersistentFlags().IntVarP(&jobs, "jobs", "j", 0,
		"folders listed concurrently by the PBFS algorithm (0: one per CPU)")
	rootCmd.PersistentFlags().DurationVar(&interval, "interval", 0,
		"how often results are collected (default from settings, 150ms)")

	rootCmd.Flags().Var(&color, "color",
		"colorize output: auto, always, never")
	rootCmd.Flags().BoolVar(&hyperlinks, "hyperlinks", false,
		"print results as terminal hyperlinks")
	rootCmd.Flags().BoolVarP(&matchCase, "match-case", "s", false,
		"case-sensitive matching")
	rootCmd.Flags().BoolVarP(&wholeName, "whole-name", "w", false,
		"require the whole name to equal <pattern>")
	rootCmd.Flags().BoolVarP(&includeDirs, "dirs", "d", false,
		"report matching folders")
	rootCmd.Flags().BoolVar(&noFiles, "no-files", false,
		"do not report matching files")
	rootCmd.Flags().StringSliceVarP(&extensions, "extension", "e", []string{},
		"only show files with this extension (can be specified multiple times)")
	rootCmd.Flags().StringSliceVarP(&excludes, "exclude", "E", []string{},
		"hide names matching this glob (can be specified multiple times)")
	rootCmd.Flags().StringVar(&minSize, "min-size", "",
		"minimum file size (e.g., 1M, 500k, 1GB)")
	rootCmd.Flags().StringVar(&maxSize, "max-size", "",
		"maximum file size (e.g., 5M, 1GB)")
	rootCmd.Flags().StringVar(&changedAfter, "changed-after", "",
		"only show entries changed after this time (YYYY-MM-DD, RFC3339, yesterday, \"3d ago\")")
	rootCmd.Flags().StringVar(&changedBefore, "changed-before", "",
		"only show entries changed before this time")
	rootCmd.Flags().StringVar(&changedWithin, "changed-within", "",
		"only show entries changed within this duration (e.g., 2h, 3d, 1w)")
	rootCmd.Flags().StringVar(&timeout, "timeout", "",
		"stop searching after this duration (e.g., 500ms, 30s, 1m30s)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"report each folder as it is searched")

	rootCmd.AddCommand(algorithmsCmd, tuiCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// loadSettings reads the settings file and fills in flags the user did not
// set explicitly.
func loadSettings(cmd *cobra.Command, args []string) error {
	path := settingsPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	s, err := config.Load(path)
	if err != nil {
		return err
	}
	settings = s
	settingsPath = path

	if !cmd.Flags().Changed("algorithm") {
		algorithm = s.Algorithm
	}
	if !cmd.Flags().Changed("jobs") {
		jobs = s.Jobs
	}
	if !cmd.Flags().Changed("interval") {
		interval = s.PollInterval()
	}
	return nil
}

// discoverEngines loads every registered search algorithm.
func discoverEngines() (map[string]registry.Factory, error) {
	engines, err := registry.Discover(engine.Location)
	if err != nil {
		return nil, err
	}
	if len(engines) == 0 {
		return nil, fmt.Errorf("no search algorithms available")
	}
	return engines, nil
}

// searchOptions applies the explicitly set option flags on top of base.
func searchOptions(base search.Options, changed func(name string) bool) search.Options {
	opts := base
	if changed("match-case") {
		opts.MatchCase = matchCase
	}
	if changed("whole-name") {
		opts.MatchWhole = wholeName
	}
	if changed("dirs") {
		opts.IncludeDirs = includeDirs
	}
	if changed("no-files") {
		opts.IncludeFiles = !noFiles
	}
	return opts
}

// parseByteSize parses a human-readable size string into bytes.
// Supports formats like "1M", "500k", "1.5G", "1024" (plain bytes).
// Units are case-insensitive and use binary (1024-based) multipliers.
func parseByteSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	// Find where the unit starts (last non-digit character)
	i := len(s) - 1
	for i >= 0 && !unicode.IsDigit(rune(s[i])) && s[i] != '.' {
		i--
	}

	// Parse the number part
	numStr := s[:i+1]
	num, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", numStr, err)
	}
	if num < 0 {
		return 0, fmt.Errorf("size cannot be negative")
	}

	// Parse the unit suffix
	unit := strings.ToLower(strings.TrimSpace(s[i+1:]))
	var multiplier float64
	switch unit {
	case "", "b":
		multiplier = 1
	case "k", "kb", "kib":
		multiplier = 1024
	case "m", "mb", "mib":
		multiplier = 1024 * 1024
	case "g", "gb", "gib":
		multiplier = 1024 * 1024 * 1024
	case "t", "tb", "tib":
		multiplier = 1024 * 1024 * 1024 * 1024
	case "p", "pb", "pib":
		multiplier = 1024 * 1024 * 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unknown unit %q (supported: b, k, m, g, t, p)", unit)
	}

	result := num * multiplier
	if result > float64(math.MaxInt64) {
		return 0, fmt.Errorf("size too large (exceeds max int64)")
	}

	return int64(result), nil
}

// parseArgs splits the command-line arguments into a pattern and a folder.
func parseArgs(args []string) (pattern, root string, err error) {
	if len(args) == 0 || args[0] == "" {
		return "", "", fmt.Errorf("search text is empty")
	}

	pattern = args[0]
	root = "."
	if len(args) > 1 && args[1] != "" {
		root = args[1]
	}

	return pattern, root, nil
}

// parseSizes parses and cross-checks --min-size and --max-size.
func parseSizes(minSize, maxSize string) (minBytes, maxBytes int64, err error) {
	if minSize != "" {
		size, err := parseByteSize(minSize)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid --min-size %q: %w", minSize, err)
		}
		if size == 0 {
			return 0, 0, fmt.Errorf("--min-size must be greater than 0")
		}
		minBytes = size
	}

	if maxSize != "" {
		size, err := parseByteSize(maxSize)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid --max-size %q: %w", maxSize, err)
		}
		if size == 0 {
			return 0, 0, fmt.Errorf("--max-size must be greater than 0")
		}
		maxBytes = size
	}

	if minBytes > 0 && maxBytes > 0 && minBytes > maxBytes {
		return 0, 0, fmt.Errorf("--min-size cannot be greater than --max-size")
	}

	return minBytes, maxBytes, nil
}

// parseTimes resolves the --changed-* flags relative to now.
func parseTimes(now time.Time, after, before, within string) (afterTime, beforeTime *time.Time, err error) {
	if within != "" {
		d, err := timeparse.ParseDuration(within)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --changed-within: %w", err)
		}
		t := now.Add(-d)
		afterTime = &t
	}

	if after != "" {
		t, err := timeparse.ParseTime(after, now)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --changed-after: %w", err)
		}
		afterTime = &t
	}

	if before != "" {
		t, err := timeparse.ParseTime(before, now)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --changed-before: %w", err)
		}
		beforeTime = &t
	}

	if afterTime != nil && beforeTime != nil && !afterTime.Before(*beforeTime) {
		return nil, nil, fmt.Errorf("--changed-after must be before --changed-before")
	}

	return afterTime, beforeTime, nil
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pattern, root, err := parseArgs(args)
	if err != nil {
		return err
	}

	if timeout != "" {
		d, err := timeparse.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid --timeout: %w", err)
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	var colorize bool
	switch color {
	case colorAlways:
		colorize = true
	case colorNever:
		colorize = false
	case colorAuto:
		terminal := term.FromEnv()
		colorize = terminal.IsColorEnabled()
	}

	minSizeBytes, maxSizeBytes, err := parseSizes(minSize, maxSize)
	if err != nil {
		return err
	}

	after, before, err := parseTimes(time.Now(), changedAfter, changedBefore, changedWithin)
	if err != nil {
		return err
	}

	opts := searchOptions(settings.Options(), cmd.Flags().Changed)
	if !opts.IncludeFiles && !opts.IncludeDirs {
		return fmt.Errorf("--no-files requires --dirs")
	}

	engines, err := discoverEngines()
	if err != nil {
		return err
	}

	// Build search options
	findOpts := &finder.Options{
		Root:          root,
		Pattern:       pattern,
		Algorithm:     algorithm,
		Search:        opts,
		Extensions:    extensions,
		Excludes:      excludes,
		MinSize:       minSizeBytes,
		MaxSize:       maxSizeBytes,
		ChangedAfter:  after,
		ChangedBefore: before,
		Interval:      interval,
		Jobs:          jobs,
		Verbose:       verbose,
	}

	// Create finder and run search
	f := finder.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorize, hyperlinks, engines)
	_, err = f.Find(ctx, findOpts)
	return err
}
