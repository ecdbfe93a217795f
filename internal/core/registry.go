package core

import (
	"fmt"
	"sort"
	"sync"
)

// ResourceFactory builds a resource of one kind from manifest parameters.
type ResourceFactory func(name string, params map[string]interface{}) (Resource, error)

var (
	resourceRegistry = make(map[string]ResourceFactory)
	registryMu       sync.RWMutex
)

// RegisterResource registers a factory for a manifest kind name. Adapters
// call this from init().
func RegisterResource(kind string, factory ResourceFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	resourceRegistry[kind] = factory
}

// CreateResource instantiates a resource of the given manifest kind.
func CreateResource(kind string, name string, params map[string]interface{}) (Resource, error) {
	registryMu.RLock()
	factory, ok := resourceRegistry[kind]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown resource kind: %s", kind)
	}

	return factory(name, params)
}

// RegisteredKinds returns the sorted list of registered manifest kinds.
func RegisteredKinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	kinds := make([]string, 0, len(resourceRegistry))
	for k := range resourceRegistry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
