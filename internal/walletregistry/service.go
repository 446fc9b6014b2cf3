package walletregistry

import (
	"context"

	"github.com/gabapcia/walletwatch/internal/walletwatch"
)

// Service manages the watches kept in storage. Watches added here are picked
// up by the pipeline the next time it starts.
//
// Implementations are responsible for validating input against the
// configured chains and delegating persistence to the WatchStorage.
type Service interface {
	// StartWatching validates req and stores the resulting watch, replacing
	// any watch already stored for the address.
	//
	// Returns:
	//   - validator.ErrValidation if required fields are missing.
	//   - ErrChainNotConfigured if the chain has no provider.
	//   - walletwatch.ErrInvalidAddress if the chain rejects the address.
	StartWatching(ctx context.Context, req WatchRequest) (walletwatch.Watch, error)

	// StopWatching removes the watch on address.
	//
	// Returns ErrWatchNotFound when no watch exists for the address.
	StopWatching(ctx context.Context, address string) error

	// ListWatches returns the stored watches, restricted to chain when it is
	// not empty.
	ListWatches(ctx context.Context, chain string) ([]walletwatch.Watch, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	watchStorage WatchStorage
	chains       ChainLookup
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a walletregistry service persisting to ws and validating
// addresses with the providers found in chains.
func New(ws WatchStorage, chains ChainLookup) *service {
	return &service{
		watchStorage: ws,
		chains:       chains,
	}
}
