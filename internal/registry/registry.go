// Package registry maps algorithm names to engine factories so hosts can
// pick an engine by name without knowing its concrete type.
//
// Implementations register units from init functions. Discover loads
// every unit registered under a location; a unit that fails to load is
// logged and skipped, and discovery carries on with the rest.
package registry

import (
	"errors"
	"fmt"
	"log"
	"maps"
	"slices"
	"sync"

	"github.com/jparise/fsfind/internal/search"
)

// ErrUnknownLocation is returned by Discover for a location nothing was
// registered under.
var ErrUnknownLocation = errors.New("unknown registry location")

// Factory creates a fresh, idle engine.
type Factory func() search.Engine

// Unit is one implementation unit. Load returns the factories the unit
// owns; it may fail or panic, which only excludes this unit.
type Unit struct {
	Name string
	Load func() ([]Factory, error)
}

// Provide returns a Load function for a unit that always provides factories.
func Provide(factories ...Factory) func() ([]Factory, error) {
	return func() ([]Factory, error) {
		return factories, nil
	}
}

// Registry holds units grouped by location.
type Registry struct {
	mu     sync.Mutex
	units  map[string][]Unit
	logger *log.Logger
}

// New creates an empty Registry that reports load failures to logger. A nil
// logger means log.Default().
func New(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{
		units:  make(map[string][]Unit),
		logger: logger,
	}
}

// Default is the registry the engine package registers with.
var Default = New(nil)

// Register adds unit to location in the Default registry.
func Register(location string, unit Unit) {
	Default.Register(location, unit)
}

// Discover loads location from the Default registry.
func Discover(location string) (map[string]Factory, error) {
	return Default.Discover(location)
}

// Register adds unit to location. Units are loaded in registration order.
func (r *Registry) Register(location string, unit Unit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.units[location] = append(r.units[location], unit)
}

// Locations returns every location with at least one registered unit.
func (r *Registry) Locations() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Sorted(maps.Keys(r.units))
}

// Discover loads every unit registered under location and returns their
// factories keyed by the name each engine declares. When two engines
// declare the same name the one loaded last wins; the collision is logged.
func (r *Registry) Discover(location string) (map[string]Factory, error) {
	r.mu.Lock()
	units, ok := r.units[location]
	units = slices.Clone(units)
	r.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, location)
	}

	found := make(map[string]Factory)
	owners := make(map[string]string)
	for _, unit := range units {
		factories, err := load(unit)
		if err != nil {
			r.logger.Printf("Error loading search engine unit %s/%s: %v", location, unit.Name, err)
			continue
		}

		for _, factory := range factories {
			name, err := engineName(factory)
			if err != nil {
				r.logger.Printf("Error loading search engine from unit %s/%s: %v", location, unit.Name, err)
				continue
			}
			if owner, dup := owners[name]; dup {
				r.logger.Printf("Search engine %q from unit %s/%s replaces the one from %s", name, location, unit.Name, owner)
			}
			found[name] = factory
			owners[name] = unit.Name
		}
	}

	return found, nil
}

func load(unit Unit) (factories []Factory, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic during load: %v", rec)
		}
	}()

	if unit.Load == nil {
		return nil, errors.New("unit has no loader")
	}
	return unit.Load()
}

// engineName builds one engine to learn the name its type declares.
func engineName(factory Factory) (name string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic creating engine: %v", rec)
		}
	}()

	if factory == nil {
		return "", errors.New("nil factory")
	}
	eng := factory()
	if eng == nil {
		return "", errors.New("factory returned no engine")
	}
	if name = eng.Name(); name == "" {
		return "", errors.New("engine has no name")
	}
	return name, nil
}

// Names returns the names in factories, sorted.
func Names(factories map[string]Factory) []string {
	return slices.Sorted(maps.Keys(factories))
}
