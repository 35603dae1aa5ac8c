// Package finder runs a filesystem name search and streams its results to
// the terminal.
package finder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jparise/fsfind/internal/registry"
	"github.com/jparise/fsfind/internal/search"
	"golang.org/x/sync/errgroup"
)

// DefaultInterval is how often queued events are drained when
// Options.Interval is unset.
const DefaultInterval = 150 * time.Millisecond

// ErrUnknownAlgorithm is returned when Options.Algorithm names no engine.
var ErrUnknownAlgorithm = errors.New("unknown search algorithm")

// jobsSetter is implemented by engines with tunable listing concurrency.
type jobsSetter interface {
	SetJobs(jobs int)
}

// Stats summarizes a search.
type Stats struct {
	Visited   int  // Directories visited
	Matched   int  // Matches shown
	Filtered  int  // Matches hidden by filters
	Cancelled bool // The search was stopped before the tree was exhausted
}

// Finder orchestrates the file finding process.
type Finder struct {
	output  *Output
	engines map[string]registry.Factory
}

// New creates a new Finder that selects engines from engines.
func New(stdout, stderr io.Writer, colorize, hyperlinks bool, engines map[string]registry.Factory) *Finder {
	return &Finder{
		output:  NewOutput(stdout, stderr, colorize, hyperlinks),
		engines: engines,
	}
}

// Find executes the search based on the provided options. It returns once
// the engine has stopped, either because the tree was exhausted or because
// ctx was cancelled.
func (f *Finder) Find(ctx context.Context, opts *Options) (Stats, error) {
	if err := validate(opts); err != nil {
		return Stats{}, err
	}

	factory, ok := f.engines[opts.Algorithm]
	if !ok {
		return Stats{}, fmt.Errorf("%w %q (available: %s)",
			ErrUnknownAlgorithm, opts.Algorithm, strings.Join(registry.Names(f.engines), ", "))
	}

	filter, err := newMatchFilter(opts)
	if err != nil {
		return Stats{}, err
	}

	eng := factory()
	if js, ok := eng.(jobsSetter); ok && opts.Jobs > 0 {
		js.SetJobs(opts.Jobs)
	}

	queue := search.NewQueue()
	done := make(chan struct{})

	var stats Stats
	var g errgroup.Group
	g.Go(func() error {
		defer close(done)
		return eng.Run(opts.Root, opts.Pattern, queue, opts.Search)
	})
	g.Go(func() error {
		stats = f.poll(ctx, eng, queue, done, filter, opts)
		return nil
	})
	if err := g.Wait(); err != nil {
		return stats, err
	}

	if stats.Cancelled {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			f.output.Warningf("search timed out; results are incomplete")
		} else {
			f.output.Warningf("search cancelled; results are incomplete")
		}
	}
	if opts.Verbose {
		f.output.Infof("%d matches in %d directories (%d filtered)", stats.Matched, stats.Visited, stats.Filtered)
	}

	return stats, nil
}

func validate(opts *Options) error {
	if opts.Pattern == "" {
		return errors.New("search text is empty")
	}

	info, err := os.Stat(opts.Root)
	if err != nil {
		return fmt.Errorf("invalid folder %q: %w", opts.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("invalid folder %q: not a directory", opts.Root)
	}

	return nil
}

// poll drains queue on every tick until the engine finishes. Once ctx is
// done it asks the engine to stop, repeating the request each tick so a
// request made before the engine started running is not lost.
func (f *Finder) poll(ctx context.Context, eng search.Engine, queue *search.Queue,
	done <-chan struct{}, filter *matchFilter, opts *Options,
) Stats {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var stats Stats
	ctxDone := ctx.Done()
	for {
		select {
		case <-ctxDone:
			ctxDone = nil
			select {
			case <-done:
				// The engine finished on its own; nothing was cut short.
				f.render(queue.Drain(), filter, opts.Verbose, &stats)
				return stats
			default:
			}
			stats.Cancelled = true
			eng.Cancel()
		case <-ticker.C:
			if stats.Cancelled {
				eng.Cancel()
			}
			f.render(queue.Drain(), filter, opts.Verbose, &stats)
		case <-done:
			f.render(queue.Drain(), filter, opts.Verbose, &stats)
			return stats
		}
	}
}

func (f *Finder) render(events []search.Event, filter *matchFilter, verbose bool, stats *Stats) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case search.LocationVisited:
			stats.Visited++
			if verbose {
				f.output.Location(ev.Path)
			}
		case search.Match:
			if !filter.keep(ev) {
				stats.Filtered++
				continue
			}
			stats.Matched++
			f.output.Match(ev.Path, ev.IsDir)
		}
	}
}
