package finder

import (
	"time"

	"github.com/jparise/fsfind/internal/search"
)

// Options contains all search parameters.
type Options struct {
	Root          string
	Pattern       string
	Algorithm     string // Registered engine name
	Search        search.Options
	Extensions    []string
	Excludes      []string      // Exclude patterns, matched against the entry name
	MinSize       int64         // Minimum file size in bytes (0 = no minimum)
	MaxSize       int64         // Maximum file size in bytes (0 = no maximum)
	ChangedAfter  *time.Time    // Entries changed after this time (nil = no filter)
	ChangedBefore *time.Time    // Entries changed before this time (nil = no filter)
	Interval      time.Duration // How often queued events are drained
	Jobs          int           // Listing concurrency for engines that support it (0 = engine default)
	Verbose       bool          // Report visited locations and a summary
}
