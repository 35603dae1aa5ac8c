package finder

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jparise/fsfind/internal/search"
)

// matchFilter narrows the matches an engine reports. It never changes which
// names the engine considers a match.
type matchFilter struct {
	extensions    []string
	excludes      []string
	ignoreCase    bool
	minSize       int64
	maxSize       int64
	changedAfter  *time.Time
	changedBefore *time.Time
}

func newMatchFilter(opts *Options) (*matchFilter, error) {
	ignoreCase := !opts.Search.MatchCase

	extensions := make([]string, 0, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if ignoreCase {
			ext = strings.ToLower(ext)
		}
		extensions = append(extensions, ext)
	}

	excludes := make([]string, 0, len(opts.Excludes))
	for _, exclude := range opts.Excludes {
		if !doublestar.ValidatePattern(exclude) {
			return nil, fmt.Errorf("invalid exclude pattern %q", exclude)
		}
		if ignoreCase {
			exclude = strings.ToLower(exclude)
		}
		excludes = append(excludes, exclude)
	}

	return &matchFilter{
		extensions:    extensions,
		excludes:      excludes,
		ignoreCase:    ignoreCase,
		minSize:       opts.MinSize,
		maxSize:       opts.MaxSize,
		changedAfter:  opts.ChangedAfter,
		changedBefore: opts.ChangedBefore,
	}, nil
}

// keep reports whether m should be shown. Entries that vanished before they
// could be inspected are dropped.
func (f *matchFilter) keep(m search.Match) bool {
	name := filepath.Base(m.Path)
	if f.ignoreCase {
		name = strings.ToLower(name)
	}

	if !f.hasExtension(name, m.IsDir) || f.excluded(name) {
		return false
	}
	if !f.needsStat() {
		return true
	}

	info, err := os.Stat(m.Path)
	if err != nil {
		return false
	}
	return f.sizeOK(info) && f.timeOK(info)
}

func (f *matchFilter) hasExtension(name string, isDir bool) bool {
	if len(f.extensions) == 0 || isDir {
		return true
	}
	ext := filepath.Ext(name)
	return ext != "" && slices.Contains(f.extensions, ext)
}

func (f *matchFilter) excluded(name string) bool {
	for _, pattern := range f.excludes {
		// Patterns were validated in newMatchFilter.
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func (f *matchFilter) needsStat() bool {
	return f.minSize > 0 || f.maxSize > 0 || f.changedAfter != nil || f.changedBefore != nil
}

// sizeOK applies the size limits to files only.
func (f *matchFilter) sizeOK(info os.FileInfo) bool {
	if info.IsDir() {
		return true
	}
	if f.minSize > 0 && info.Size() < f.minSize {
		return false
	}
	if f.maxSize > 0 && info.Size() > f.maxSize {
		return false
	}
	return true
}

func (f *matchFilter) timeOK(info os.FileInfo) bool {
	mtime := info.ModTime()
	if f.changedAfter != nil && !mtime.After(*f.changedAfter) {
		return false
	}
	if f.changedBefore != nil && !mtime.Before(*f.changedBefore) {
		return false
	}
	return true
}
