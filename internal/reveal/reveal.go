// Package reveal opens search results in the platform file browser.
package reveal

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/cli/safeexec"
)

// ErrUnsupportedPlatform is returned on systems without a known file browser.
var ErrUnsupportedPlatform = errors.New("revealing files is not supported on this platform")

// Command returns the program and arguments that show path in the file
// browser of goos. Files are selected in their folder where the platform
// allows it; otherwise the containing folder is opened.
func Command(goos, path string, isFile bool) (string, []string, error) {
	switch goos {
	case "windows":
		if isFile {
			return "explorer", []string{"/select," + path}, nil
		}
		return "explorer", []string{path}, nil
	case "darwin":
		if isFile {
			return "open", []string{"-R", path}, nil
		}
		return "open", []string{path}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		if isFile {
			return "xdg-open", []string{filepath.Dir(path)}, nil
		}
		return "xdg-open", []string{path}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

// Path shows path in the file browser. It starts the browser and returns
// without waiting for it.
func Path(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to reveal %s: %w", path, err)
	}

	name, args, err := Command(runtime.GOOS, path, !info.IsDir())
	if err != nil {
		return err
	}

	bin, err := safeexec.LookPath(name)
	if err != nil {
		return fmt.Errorf("failed to find %s: %w", name, err)
	}

	cmd := exec.Command(bin, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to run %s: %w", name, err)
	}
	go cmd.Wait() //nolint:errcheck // the browser's exit status is irrelevant

	return nil
}
