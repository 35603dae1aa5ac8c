package engine

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jparise/fsfind/internal/search"
)

type entryKind int

const (
	kindOther entryKind = iota
	kindFile
	kindDir
	kindDirLink // symlink to a directory, reported but never descended
)

// walker lists directories on behalf of a single run. Its methods only read
// shared state, so several goroutines may visit directories at once.
type walker struct {
	guard   *runGuard
	sink    search.Sink
	matcher search.Matcher
	opts    search.Options
}

func newWalker(guard *runGuard, sink search.Sink, pattern string, opts search.Options) *walker {
	return &walker{
		guard:   guard,
		sink:    sink,
		matcher: search.NewMatcher(pattern, opts),
		opts:    opts,
	}
}

// visit reports dir, tests its entries and returns the names of its
// subdirectories in listing order. A directory that is gone or cannot be
// listed yields nothing.
func (w *walker) visit(dir string) []string {
	if w.guard.cancelled() {
		return nil
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}
	w.sink.Put(search.LocationVisited{Path: dir})

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var subdirs []string
	for _, entry := range entries {
		if w.guard.cancelled() {
			return nil
		}

		name := entry.Name()
		path := filepath.Join(dir, name)
		switch classify(path, entry) {
		case kindDir:
			subdirs = append(subdirs, name)
			w.report(path, name, true)
		case kindDirLink:
			w.report(path, name, true)
		case kindFile:
			w.report(path, name, false)
		}
	}

	return subdirs
}

func (w *walker) report(path, name string, isDir bool) {
	if isDir && !w.opts.IncludeDirs {
		return
	}
	if !isDir && !w.opts.IncludeFiles {
		return
	}
	if w.matcher.Match(name) {
		w.sink.Put(search.Match{Path: path, IsDir: isDir})
	}
}

func classify(path string, entry fs.DirEntry) entryKind {
	mode := entry.Type()
	switch {
	case mode.IsDir():
		return kindDir
	case mode.IsRegular():
		return kindFile
	case mode&fs.ModeSymlink != 0:
		target, err := os.Stat(path)
		if err != nil {
			return kindOther
		}
		if target.IsDir() {
			return kindDirLink
		}
		if target.Mode().IsRegular() {
			return kindFile
		}
	}
	return kindOther
}
