package engine

import "github.com/jparise/fsfind/internal/search"

// DFS searches each subdirectory completely before moving on to its next
// sibling.
type DFS struct {
	guard runGuard
}

// NewDFS creates an idle DFS engine.
func NewDFS() *DFS {
	return &DFS{}
}

func (d *DFS) Name() string { return NameDFS }

// State returns the engine's current RunState.
func (d *DFS) State() search.RunState { return d.guard.current() }

func (d *DFS) Cancel() { d.guard.cancel() }

func (d *DFS) Run(rootPath, pattern string, sink search.Sink, opts search.Options) error {
	if err := d.guard.begin(); err != nil {
		return err
	}
	defer d.guard.end()

	w := newWalker(&d.guard, sink, pattern, opts)
	stack := []*search.Node{search.NewNode(rootPath, nil)}

	for len(stack) > 0 && !d.guard.cancelled() {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Push in reverse so siblings pop in listing order.
		names := w.visit(node.FullPath())
		for i := len(names) - 1; i >= 0; i-- {
			stack = append(stack, search.NewNode(names[i], node))
		}
	}

	return nil
}
