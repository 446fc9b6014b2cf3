package walletwatch

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/gabapcia/walletwatch/internal/config"
)

// Provider kinds reported by UnknownProviderError.
const (
	KindChain    = "chain"
	KindNotifier = "notifier"
	KindStorage  = "storage"
)

// ChainFactory builds the provider for one configured chain. Deliveries for
// subscribed addresses must be forwarded to sink.
type ChainFactory func(ctx context.Context, cfg config.ChainConfig, server config.ServerConfig, sink Sink) (ChainProvider, error)

// NotifierFactory builds one configured notifier.
type NotifierFactory func(ctx context.Context, cfg config.NotifierConfig) (Notifier, error)

// StorageFactory opens the configured storage backend.
type StorageFactory func(ctx context.Context, cfg config.StorageConfig) (Storage, error)

// Registry maps provider names to factories of type F.
type Registry[F any] struct {
	mu        sync.RWMutex
	kind      string
	factories map[string]F
}

// NewRegistry returns an empty registry for the given provider kind.
func NewRegistry[F any](kind string) *Registry[F] {
	return &Registry[F]{
		kind:      kind,
		factories: make(map[string]F),
	}
}

// Register binds name to factory, replacing any previous binding.
func (r *Registry[F]) Register(name string, factory F) *Registry[F] {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[name] = factory
	return r
}

// Lookup returns the factory registered under name, or an
// *UnknownProviderError listing the available names.
func (r *Registry[F]) Lookup(name string) (F, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		var zero F
		return zero, &UnknownProviderError{
			Kind:      r.kind,
			Name:      name,
			Available: slices.Sorted(maps.Keys(r.factories)),
		}
	}

	return factory, nil
}

// Names returns the registered names in sorted order.
func (r *Registry[F]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.factories))
}

// Registries groups the factories used during Setup.
type Registries struct {
	Chains    *Registry[ChainFactory]
	Notifiers *Registry[NotifierFactory]
	Storage   *Registry[StorageFactory]
}

// NewRegistries returns empty registries for every provider kind.
func NewRegistries() Registries {
	return Registries{
		Chains:    NewRegistry[ChainFactory](KindChain),
		Notifiers: NewRegistry[NotifierFactory](KindNotifier),
		Storage:   NewRegistry[StorageFactory](KindStorage),
	}
}
