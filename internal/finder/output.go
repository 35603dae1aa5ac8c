package finder

import (
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"sync"

	"github.com/mgutz/ansi"
)

// Output handles all output formatting with optional color and hyperlink support.
type Output struct {
	mu         sync.Mutex
	stdout     io.Writer
	stderr     io.Writer
	hyperlinks bool

	cyan   func(string) string
	green  func(string) string
	blue   func(string) string
	white  func(string) string
	yellow func(string) string
}

// NewOutput creates a new Output with optional color and hyperlink support.
func NewOutput(stdout, stderr io.Writer, colorize, hyperlinks bool) *Output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout:     stdout,
		stderr:     stderr,
		hyperlinks: hyperlinks,
		cyan:       color("cyan"),
		green:      color("green+b"),
		blue:       color("blue+b"),
		white:      color("white"),
		yellow:     color("yellow"),
	}
}

func makeHyperlink(url, text string) string {
	return fmt.Sprintf("\033]8;;%s\033\\%s\033]8;;\033\\", url, text)
}

// fileURL returns a file:// URL for path.
func fileURL(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}

// Match writes a matched entry: its folder, then its name. Directory names
// get a trailing separator.
func (o *Output) Match(path string, isDir bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	dir, name := filepath.Split(path)
	var formatted string
	if isDir {
		formatted = o.cyan(dir) + o.blue(name+string(filepath.Separator))
	} else {
		formatted = o.cyan(dir) + o.green(name)
	}

	if o.hyperlinks {
		formatted = makeHyperlink(fileURL(path), formatted)
	}

	fmt.Fprintf(o.stdout, "%s\n", formatted)
}

// Location writes the directory currently being searched to stderr.
func (o *Output) Location(path string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, "%s %s\n", o.white("Searching in:"), path)
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}

// Infof writes a formatted informational message to stderr.
func (o *Output) Infof(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, format+"\n", args...)
}
