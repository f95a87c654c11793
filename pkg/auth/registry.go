package auth

import "fmt"

type registryKey struct {
	provider string
	surface  Surface
}

// Registry holds all configured strategies indexed by provider and surface.
// It is built once during startup and immutable afterwards.
type Registry struct {
	strategies map[registryKey]*Strategy
}

// NewRegistry registers the given strategies. Registering two strategies for
// the same provider and surface is a configuration mistake and panics.
func NewRegistry(list ...*Strategy) *Registry {
	m := make(map[registryKey]*Strategy, len(list))
	for _, s := range list {
		key := registryKey{provider: s.Provider(), surface: s.Surface()}
		if _, exists := m[key]; exists {
			panic(fmt.Sprintf("auth: duplicate strategy for %s.%s", key.provider, key.surface))
		}
		m[key] = s
	}
	return &Registry{strategies: m}
}

// Get returns the strategy registered for the provider and surface, or
// ErrUnknownStrategy when none is configured.
func (r *Registry) Get(provider string, surface Surface) (*Strategy, error) {
	s, ok := r.strategies[registryKey{provider: provider, surface: surface}]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownStrategy, provider, surface)
	}
	return s, nil
}
