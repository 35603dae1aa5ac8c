package search

import "sync"

// Sink receives traversal events. Put must not block the engine.
type Sink interface {
	Put(ev Event)
}

// Queue is an unbounded FIFO of events. One goroutine writes while another
// drains; Put never blocks on the reader.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Put appends ev to the queue.
func (q *Queue) Put(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Drain removes and returns every queued event in arrival order. It returns
// nil when nothing is available yet.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil
	}
	events := q.events
	q.events = nil
	return events
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
