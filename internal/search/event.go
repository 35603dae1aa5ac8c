package search

import "fmt"

// Event is a traversal event. Engines are the only producers.
type Event interface {
	isEvent()
	// EventPath returns the path the event refers to.
	EventPath() string
}

// LocationVisited is emitted once per directory, right before its entries
// are scanned.
type LocationVisited struct {
	Path string
}

func (LocationVisited) isEvent() {}

func (e LocationVisited) EventPath() string { return e.Path }

func (e LocationVisited) String() string { return fmt.Sprintf("visited %s", e.Path) }

// Match is emitted once per entry whose name satisfies the pattern.
type Match struct {
	Path  string
	IsDir bool
}

func (Match) isEvent() {}

func (e Match) EventPath() string { return e.Path }

func (e Match) String() string { return fmt.Sprintf("match %s", e.Path) }
