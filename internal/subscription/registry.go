// Package subscription keeps the per-provider mapping from watched addresses
// to the ordered watch identifiers that receive their deliveries.
package subscription

import (
	"maps"
	"slices"
	"sync"
)

// Registry maps an address to the watch identifiers subscribed to it, in
// registration order. It is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	subs map[string][]string
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		subs: make(map[string][]string),
	}
}

// Add appends watchID to the subscriptions of address. Adding the same
// identifier twice registers it twice.
func (r *Registry) Add(address, watchID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subs[address] = append(r.subs[address], watchID)
}

// Remove drops every subscription of address and reports whether any existed.
func (r *Registry) Remove(address string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.subs[address]
	delete(r.subs, address)
	return ok
}

// Lookup returns a copy of the identifiers subscribed to address.
func (r *Registry) Lookup(address string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.subs[address])
}

// Has reports whether address has at least one subscription.
func (r *Registry) Has(address string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.subs[address]) > 0
}

// Addresses returns every subscribed address in sorted order.
func (r *Registry) Addresses() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.subs))
}
