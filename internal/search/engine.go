// Package search defines the building blocks shared by traversal engines:
// match options, the search tree, traversal events and the event queue.
package search

import "errors"

var (
	// ErrAlreadyRunning is returned by Engine.Run when the engine is not idle.
	ErrAlreadyRunning = errors.New("search is already running")

	// ErrChildNotFound is returned when removing a node that is not a child.
	ErrChildNotFound = errors.New("child not found")
)

// Engine is a traversal algorithm. An Engine runs at most one search at a
// time; Cancel may be called from any goroutine.
type Engine interface {
	// Name returns the name the engine is registered under.
	Name() string

	// Run walks rootPath and reports LocationVisited and Match events to
	// sink until the tree is exhausted or Cancel is observed. It blocks
	// until the walk ends.
	Run(rootPath, pattern string, sink Sink, opts Options) error

	// Cancel asks a running search to stop. It does not wait.
	Cancel()
}

// RunState is the lifecycle state of an engine.
type RunState int32

const (
	StateIdle RunState = iota
	StateRunning
	StateCancelRequested
)

func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCancelRequested:
		return "cancel requested"
	default:
		return "unknown"
	}
}
