package engine

import (
	"sync/atomic"

	"github.com/jparise/fsfind/internal/search"
)

// runGuard tracks an engine's RunState. Entry into a run is a single
// compare-and-swap, so two racing Run calls can never both start.
type runGuard struct {
	state atomic.Int32
}

func (g *runGuard) begin() error {
	if !g.state.CompareAndSwap(int32(search.StateIdle), int32(search.StateRunning)) {
		return search.ErrAlreadyRunning
	}
	return nil
}

// end returns the guard to idle, clearing any pending cancel request.
func (g *runGuard) end() {
	g.state.Store(int32(search.StateIdle))
}

// cancel is a no-op unless a run is in progress.
func (g *runGuard) cancel() {
	g.state.CompareAndSwap(int32(search.StateRunning), int32(search.StateCancelRequested))
}

func (g *runGuard) cancelled() bool {
	return g.current() == search.StateCancelRequested
}

func (g *runGuard) current() search.RunState {
	return search.RunState(g.state.Load())
}
