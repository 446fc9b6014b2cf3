package walletregistry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/walletwatch/internal/pkg/logger"
	"github.com/gabapcia/walletwatch/internal/pkg/validator"
	"github.com/gabapcia/walletwatch/internal/walletwatch"
)

var (
	// ErrChainNotConfigured is returned when a watch names a chain without a provider.
	ErrChainNotConfigured = errors.New("chain not configured")

	// ErrWatchNotFound is returned when removing an address that is not watched.
	ErrWatchNotFound = errors.New("watch not found")
)

// WatchRequest describes a watch to register.
type WatchRequest struct {
	Chain   string   `validate:"required"`
	Address string   `validate:"required"`
	Label   string   `validate:"max=64"`
	Notify  []string `validate:"dive,required"`
}

// WatchStorage is the subset of walletwatch.Storage the registry needs.
type WatchStorage interface {
	SaveWatch(ctx context.Context, w walletwatch.Watch) error
	GetWatches(ctx context.Context, chain string) ([]walletwatch.Watch, error)
	DeleteWatch(ctx context.Context, address string) (bool, error)
}

// ChainLookup resolves configured chain providers by name.
// *walletwatch.Service satisfies it.
type ChainLookup interface {
	Chain(name string) (walletwatch.ChainProvider, bool)
}

// Chains is a ChainLookup over a fixed set of providers.
type Chains map[string]walletwatch.ChainProvider

func (c Chains) Chain(name string) (walletwatch.ChainProvider, bool) {
	p, ok := c[name]
	return p, ok
}

// buildWatch validates req against the configured chains and converts it to
// a watch.
func (s *service) buildWatch(req WatchRequest) (walletwatch.Watch, error) {
	if err := validator.Validate(req); err != nil {
		return walletwatch.Watch{}, err
	}

	provider, ok := s.chains.Chain(req.Chain)
	if !ok {
		return walletwatch.Watch{}, fmt.Errorf("%w: %s", ErrChainNotConfigured, req.Chain)
	}

	if !provider.ValidateAddress(req.Address) {
		return walletwatch.Watch{}, walletwatch.InvalidAddressError(req.Chain, req.Address)
	}

	return walletwatch.Watch{
		Address:   req.Address,
		Chain:     req.Chain,
		Label:     req.Label,
		Notify:    req.Notify,
		Source:    walletwatch.SourceRuntime,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// StartWatching registers a watch for req.Address on req.Chain.
func (s *service) StartWatching(ctx context.Context, req WatchRequest) (walletwatch.Watch, error) {
	w, err := s.buildWatch(req)
	if err != nil {
		return walletwatch.Watch{}, err
	}

	if err := s.watchStorage.SaveWatch(ctx, w); err != nil {
		return walletwatch.Watch{}, err
	}

	logger.Info(ctx, "watch registered", "watch.address", w.Address, "chain.name", w.Chain)
	return w, nil
}

// StopWatching unregisters the watch on address.
func (s *service) StopWatching(ctx context.Context, address string) error {
	if address == "" {
		return fmt.Errorf("%w: address is required", validator.ErrValidation)
	}

	deleted, err := s.watchStorage.DeleteWatch(ctx, address)
	if err != nil {
		return err
	}

	if !deleted {
		return fmt.Errorf("%w: %s", ErrWatchNotFound, address)
	}

	logger.Info(ctx, "watch removed", "watch.address", address)
	return nil
}

// ListWatches returns the stored watches.
func (s *service) ListWatches(ctx context.Context, chain string) ([]walletwatch.Watch, error) {
	return s.watchStorage.GetWatches(ctx, chain)
}
