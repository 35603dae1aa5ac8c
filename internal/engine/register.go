// Package engine implements the traversal algorithms and registers them
// with the default algorithm registry.
package engine

import (
	"github.com/jparise/fsfind/internal/registry"
	"github.com/jparise/fsfind/internal/search"
)

// Location is the registry location the engines in this package use.
const Location = "fs"

// Registered engine names.
const (
	NameBFS  = "BFS"
	NameDFS  = "DFS"
	NamePBFS = "PBFS"
)

func init() {
	registry.Register(Location, registry.Unit{
		Name: "bfs",
		Load: registry.Provide(func() search.Engine { return NewBFS() }),
	})
	registry.Register(Location, registry.Unit{
		Name: "dfs",
		Load: registry.Provide(func() search.Engine { return NewDFS() }),
	})
	registry.Register(Location, registry.Unit{
		Name: "pbfs",
		Load: registry.Provide(func() search.Engine { return NewPBFS(0) }),
	})
}
