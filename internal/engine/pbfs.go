package engine

import (
	"context"
	"runtime"
	"sync"

	"github.com/jparise/fsfind/internal/search"
	"golang.org/x/sync/semaphore"
)

// PBFS is a breadth-first search that lists the directories of each level
// concurrently. Events for one directory keep their order; events from
// sibling directories interleave.
type PBFS struct {
	guard runGuard
	jobs  int
}

// NewPBFS creates an idle PBFS engine that lists at most jobs directories
// at once. A jobs value below 1 means one per CPU.
func NewPBFS(jobs int) *PBFS {
	if jobs < 1 {
		jobs = runtime.NumCPU()
	}
	return &PBFS{jobs: jobs}
}

func (p *PBFS) Name() string { return NamePBFS }

// Jobs returns the listing concurrency limit.
func (p *PBFS) Jobs() int { return p.jobs }

// SetJobs changes the listing concurrency limit. It must not be called
// while a search is running. Values below 1 are ignored.
func (p *PBFS) SetJobs(jobs int) {
	if jobs >= 1 {
		p.jobs = jobs
	}
}

// State returns the engine's current RunState.
func (p *PBFS) State() search.RunState { return p.guard.current() }

func (p *PBFS) Cancel() { p.guard.cancel() }

func (p *PBFS) Run(rootPath, pattern string, sink search.Sink, opts search.Options) error {
	if err := p.guard.begin(); err != nil {
		return err
	}
	defer p.guard.end()

	w := newWalker(&p.guard, sink, pattern, opts)
	level := []*search.Node{search.NewNode(rootPath, nil)}

	for len(level) > 0 && !p.guard.cancelled() {
		level = p.expandLevel(w, level)
	}

	return nil
}

// expandLevel visits every node of one level and returns the next level.
func (p *PBFS) expandLevel(w *walker, level []*search.Node) []*search.Node {
	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		next []*search.Node
	)
	sem := semaphore.NewWeighted(int64(p.jobs))

	for _, node := range level {
		if p.guard.cancelled() {
			break
		}
		if err := sem.Acquire(context.Background(), 1); err != nil {
			break
		}

		wg.Add(1)
		go func(node *search.Node) {
			defer wg.Done()
			defer sem.Release(1)

			names := w.visit(node.FullPath())
			if len(names) == 0 {
				return
			}

			children := make([]*search.Node, len(names))
			for i, name := range names {
				children[i] = search.NewNode(name, node)
			}

			mu.Lock()
			next = append(next, children...)
			mu.Unlock()
		}(node)
	}

	wg.Wait()
	return next
}
