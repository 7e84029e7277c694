// Package backend registers concrete graphics backends for the easel
// renderer. Backend packages register a factory from an init function;
// applications pick one by name or take the best available.
package backend

import (
	"sync"

	"github.com/easelgl/easel"
)

// Factory creates a backend with the given target dimensions.
type Factory func(width, height int) easel.Backend

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
	// Priority order for backend selection (first available wins).
	priority = []string{"gl", "soft"}
)

// Register registers a backend factory with the given name. It is
// typically called from init() in a backend package. Registering a
// name twice replaces the earlier factory.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a backend from the registry. Useful in tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	return names
}

// IsRegistered reports whether a backend name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// New creates a backend by name. It returns nil when the name is not
// registered.
func New(name string, width, height int) easel.Backend {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()
	if !ok {
		return nil
	}
	return factory(width, height)
}

// Default creates the best available backend by priority, falling back
// to any registered one. It returns nil when nothing is registered.
func Default(width, height int) easel.Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()
	for _, name := range priority {
		if factory, ok := factories[name]; ok {
			if b := factory(width, height); b != nil {
				return b
			}
		}
	}
	for _, factory := range factories {
		if b := factory(width, height); b != nil {
			return b
		}
	}
	return nil
}
