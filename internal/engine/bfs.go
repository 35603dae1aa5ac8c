package engine

import (
	"fmt"
	"slices"

	"github.com/jparise/fsfind/internal/search"
)

// BFS searches one directory level at a time. It keeps only the unexplored
// frontier in a search tree and prunes branches once they are exhausted.
type BFS struct {
	guard runGuard
}

// NewBFS creates an idle BFS engine.
func NewBFS() *BFS {
	return &BFS{}
}

func (b *BFS) Name() string { return NameBFS }

// State returns the engine's current RunState.
func (b *BFS) State() search.RunState { return b.guard.current() }

func (b *BFS) Cancel() { b.guard.cancel() }

func (b *BFS) Run(rootPath, pattern string, sink search.Sink, opts search.Options) error {
	if err := b.guard.begin(); err != nil {
		return err
	}
	defer b.guard.end()

	w := newWalker(&b.guard, sink, pattern, opts)
	root := search.NewNode(rootPath, nil)

	explore(w, root)
	for root.HasChildren() && !b.guard.cancelled() {
		if err := b.expand(w, root); err != nil {
			return err
		}
	}

	return nil
}

// expand descends to the frontier leaves below node and explores them.
// Every leaf reached was added in the previous round, so each call
// advances the search by exactly one directory level. Exhausted children
// are pruned on the way back up.
func (b *BFS) expand(w *walker, node *search.Node) error {
	if b.guard.cancelled() {
		return nil
	}

	if !node.HasChildren() {
		explore(w, node)
		return nil
	}

	for _, child := range slices.Clone(node.Children()) {
		if err := b.expand(w, child); err != nil {
			return err
		}
		if child.HasChildren() {
			continue
		}
		if err := node.RemoveChild(child); err != nil {
			return fmt.Errorf("failed to prune %s: %w", child.FullPath(), err)
		}
	}
	return nil
}

// explore visits node's directory and attaches a child per subdirectory.
func explore(w *walker, node *search.Node) {
	for _, name := range w.visit(node.FullPath()) {
		node.AddChild(search.NewNode(name, node))
	}
}
