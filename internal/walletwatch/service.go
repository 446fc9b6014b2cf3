package walletwatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/gabapcia/walletwatch/internal/config"
	"github.com/gabapcia/walletwatch/internal/pkg/logger"
	"github.com/gabapcia/walletwatch/internal/pkg/resilience/retry"
)

// ErrNoChainProviders is returned by Run when Setup produced no chain provider.
var ErrNoChainProviders = errors.New("no chain provider available")

// ErrUnknownWatch is returned by Deliver for an identifier with no watch.
var ErrUnknownWatch = errors.New("unknown watch")

type notifierEntry struct {
	notifier Notifier
	timeout  time.Duration
}

type chainEntry struct {
	provider ChainProvider
	port     int
}

// Service is the orchestrator. It owns the configured chain providers,
// notifiers and storage, routes provider deliveries through the filter,
// fans them out to notifiers and persists them.
type Service struct {
	mu      sync.Mutex
	running bool

	server        config.ServerConfig
	filter        Filter
	storeFiltered bool
	configured    []Watch

	storage    Storage
	chains     map[string]chainEntry
	chainOrder []string
	notifiers  map[string]notifierEntry

	watchesMu sync.RWMutex
	watches   map[string]Watch
	watchSeq  uint64

	tracer  trace.Tracer
	metrics metrics
}

// Compile-time assertion that Service is the sink handed to chain providers.
var _ Sink = (*Service)(nil)

type options struct {
	retry retry.Retry
	meter metric.Meter
}

// Option customizes New.
type Option func(*options)

// WithRetry sets the policy used to open the storage backend.
func WithRetry(r retry.Retry) Option {
	return func(o *options) {
		o.retry = r
	}
}

// WithMeter sets the meter used for pipeline metrics.
func WithMeter(m metric.Meter) Option {
	return func(o *options) {
		o.meter = m
	}
}

// WatchFromConfig converts a configured watch into a Watch.
func WatchFromConfig(wc config.WatchConfig) Watch {
	return Watch{
		Address: wc.Address,
		Chain:   wc.Chain,
		Label:   wc.Label,
		Notify:  wc.Notify,
		Filters: FilterOverrides{
			MinUSDValue: wc.Filters.MinUSDValue,
			TxTypes:     wc.Filters.TxTypes,
		},
		Source: SourceConfig,
	}
}

// New performs Setup: it opens the storage backend and builds every
// configured chain provider and notifier through reg. A component that
// fails to build is logged and left out; it never prevents the others from
// starting.
func New(ctx context.Context, cfg config.Config, reg Registries, opts ...Option) *Service {
	o := options{
		retry: retry.New(),
		meter: defaultMeter(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Service{
		server: cfg.Server,
		filter: Filter{
			MinUSDValue: cfg.Filters.MinUSDValue,
			TxTypes:     cfg.Filters.TxTypes,
		},
		storeFiltered: cfg.Filters.StoreFiltered,
		chains:        make(map[string]chainEntry, len(cfg.Chains)),
		notifiers:     make(map[string]notifierEntry, len(cfg.Notifiers)),
		watches:       make(map[string]Watch),
		tracer:        otel.Tracer(instrumentationName),
	}

	m, err := newMetrics(o.meter)
	if err != nil {
		logger.Warn(ctx, "metrics disabled", "error", err)
		m, _ = newMetrics(noop.NewMeterProvider().Meter(instrumentationName))
	}
	s.metrics = m

	for _, wc := range cfg.Watches {
		s.configured = append(s.configured, WatchFromConfig(wc))
	}

	s.setupStorage(ctx, cfg.Storage, reg.Storage, o.retry)
	s.setupChains(ctx, cfg.Chains, reg.Chains)
	s.setupNotifiers(ctx, cfg.Notifiers, reg.Notifiers)

	return s
}

func (s *Service) setupStorage(ctx context.Context, cfg config.StorageConfig, reg *Registry[StorageFactory], r retry.Retry) {
	ctx = logger.Derive(ctx, "storage.type", cfg.Type)

	factory, err := reg.Lookup(cfg.Type)
	if err != nil {
		logger.Error(ctx, "storage unavailable, transactions will not be persisted", "error", err)
		return
	}

	err = r.Execute(ctx, func() error {
		storage, err := factory(ctx, cfg)
		if err != nil {
			return err
		}

		s.storage = storage
		return nil
	})
	if err != nil {
		logger.Error(ctx, "storage unavailable, transactions will not be persisted", "error", err)
		return
	}

	logger.Info(ctx, "storage initialized")
}

func (s *Service) setupChains(ctx context.Context, chains []config.ChainConfig, reg *Registry[ChainFactory]) {
	for i, cfg := range chains {
		ctx := logger.Derive(ctx, "chain.name", cfg.Name)

		factory, err := reg.Lookup(cfg.Name)
		if err != nil {
			logger.Error(ctx, "failed to initialize chain provider", "error", err)
			continue
		}

		provider, err := factory(ctx, cfg, s.server, s)
		if err != nil {
			logger.Error(ctx, "failed to initialize chain provider", "error", err)
			continue
		}

		port := cfg.Port
		if port == 0 {
			port = s.server.Port + i
		}

		s.chains[cfg.Name] = chainEntry{provider: provider, port: port}
		s.chainOrder = append(s.chainOrder, cfg.Name)
		logger.Info(ctx, "chain provider initialized", "chain.port", port)
	}
}

func (s *Service) setupNotifiers(ctx context.Context, notifiers []config.NotifierConfig, reg *Registry[NotifierFactory]) {
	for _, cfg := range notifiers {
		ctx := logger.Derive(ctx, "notifier.name", cfg.Type)

		factory, err := reg.Lookup(cfg.Type)
		if err != nil {
			logger.Error(ctx, "failed to initialize notifier", "error", err)
			continue
		}

		notifier, err := factory(ctx, cfg)
		if err != nil {
			logger.Error(ctx, "failed to initialize notifier", "error", err)
			continue
		}

		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = config.DefaultNotifierTimeout
		}

		s.notifiers[cfg.Type] = notifierEntry{notifier: notifier, timeout: timeout}
		logger.Info(ctx, "notifier initialized")
	}
}

// Chain returns the provider set up for name.
func (s *Service) Chain(name string) (ChainProvider, bool) {
	entry, ok := s.chains[name]
	return entry.provider, ok
}

// Notifier returns the notifier set up for name.
func (s *Service) Notifier(name string) (Notifier, bool) {
	entry, ok := s.notifiers[name]
	return entry.notifier, ok
}

// Storage returns the storage backend, or nil when it failed to open.
func (s *Service) Storage() Storage {
	return s.storage
}

func (s *Service) watch(id string) (Watch, bool) {
	s.watchesMu.RLock()
	defer s.watchesMu.RUnlock()

	w, ok := s.watches[id]
	return w, ok
}

// Subscribe registers w on its chain provider and returns the identifier
// deliveries for it will carry. Every call gets a fresh identifier, so
// several watches on one address keep their own label and notifiers. It
// fails for an unknown chain or an address the chain rejects.
func (s *Service) Subscribe(ctx context.Context, w Watch) (string, error) {
	entry, ok := s.chains[w.Chain]
	if !ok {
		return "", &UnknownProviderError{Kind: KindChain, Name: w.Chain, Available: s.chainOrder}
	}

	if !entry.provider.ValidateAddress(w.Address) {
		return "", InvalidAddressError(w.Chain, w.Address)
	}

	s.watchesMu.Lock()
	s.watchSeq++
	id := fmt.Sprintf("%s:%s#%d", w.Chain, w.Address, s.watchSeq)
	s.watches[id] = w
	s.watchesMu.Unlock()

	if err := entry.provider.Subscribe(ctx, w.Address, id); err != nil {
		s.watchesMu.Lock()
		delete(s.watches, id)
		s.watchesMu.Unlock()
		return "", err
	}

	return id, nil
}

// Unsubscribe stops delivering events for address on chain and forgets every
// watch registered for it.
func (s *Service) Unsubscribe(ctx context.Context, chain, address string) error {
	entry, ok := s.chains[chain]
	if !ok {
		return &UnknownProviderError{Kind: KindChain, Name: chain, Available: s.chainOrder}
	}

	if err := entry.provider.Unsubscribe(ctx, address); err != nil {
		return err
	}

	s.watchesMu.Lock()
	for id, w := range s.watches {
		if w.Chain == chain && w.Address == address {
			delete(s.watches, id)
		}
	}
	s.watchesMu.Unlock()

	return nil
}

// loadWatches returns the configured watches followed by runtime watches
// that only exist in storage, such as those added from the command line.
// Configured watches are saved so storage holds a durable copy, and stored
// configuration watches the configuration no longer declares are deleted.
func (s *Service) loadWatches(ctx context.Context) []Watch {
	watches := make([]Watch, 0, len(s.configured))
	seen := make(map[string]bool, len(s.configured))

	for _, w := range s.configured {
		watches = append(watches, w)
		seen[w.Address] = true

		if s.storage != nil {
			if err := s.storage.SaveWatch(ctx, w); err != nil {
				logger.Error(ctx, "failed to persist watch", "watch.address", w.Address, "error", err)
			}
		}
	}

	if s.storage == nil {
		return watches
	}

	stored, err := s.storage.GetWatches(ctx, "")
	if err != nil {
		logger.Error(ctx, "failed to load stored watches", "error", err)
		return watches
	}

	for _, w := range stored {
		if seen[w.Address] {
			continue
		}

		if w.FromConfig() {
			if _, err := s.storage.DeleteWatch(ctx, w.Address); err != nil {
				logger.Error(ctx, "failed to prune watch removed from configuration", "watch.address", w.Address, "error", err)
			} else {
				logger.Info(ctx, "watch removed from configuration", "watch.address", w.Address)
			}
			continue
		}

		watches = append(watches, w)
	}

	return watches
}

// Run subscribes every watch and serves one webhook listener per chain
// provider until ctx is canceled or a listener fails. Storage is closed
// before Run returns.
func (s *Service) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrServiceAlreadyRunning
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		if err := s.Close(); err != nil {
			logger.Error(ctx, "failed to close storage", "error", err)
		}

		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	if len(s.chains) == 0 {
		return ErrNoChainProviders
	}

	watches := s.loadWatches(ctx)
	if len(watches) == 0 {
		logger.Warn(ctx, "no watches configured")
	}

	var releases []func(context.Context)
	for _, name := range s.chainOrder {
		if h, ok := s.chains[name].provider.(SyncHolder); ok {
			releases = append(releases, h.HoldSync())
		}
	}

	var subscribed int
	for _, w := range watches {
		wctx := logger.Derive(ctx, "watch.address", w.Address, "watch.chain", w.Chain)
		if _, err := s.Subscribe(wctx, w); err != nil {
			logger.Error(wctx, "skipping watch", "error", err)
			continue
		}

		subscribed++
		logger.Info(wctx, "watching address", "watch.label", w.Label)
	}

	for _, release := range releases {
		release(ctx)
	}

	g, gctx := errgroup.WithContext(ctx)

	for name, entry := range s.notifiers {
		listener, ok := entry.notifier.(Listener)
		if !ok {
			continue
		}

		go func() {
			lctx := logger.Derive(gctx, "notifier.name", name)
			if err := listener.Listen(lctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error(lctx, "notifier listener stopped", "error", err)
			}
		}()
	}

	for _, name := range s.chainOrder {
		entry := s.chains[name]
		g.Go(func() error {
			if err := entry.provider.Run(gctx, s.server.Host, entry.port); err != nil {
				return fmt.Errorf("%s listener: %w", name, err)
			}
			return nil
		})
	}

	logger.Info(ctx, "walletwatch running", "watches", subscribed, "chains", len(s.chainOrder))
	return g.Wait()
}

// Close releases the storage backend and every notifier holding a
// connection. It is safe to call more than once.
func (s *Service) Close() error {
	var errs []error
	for name, entry := range s.notifiers {
		if c, ok := entry.notifier.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close notifier %s: %w", name, err))
			}
		}
	}

	if s.storage != nil {
		errs = append(errs, s.storage.Close())
	}

	return errors.Join(errs...)
}

// Deliver handles a transaction matched to watchID: it applies the filter,
// notifies the watch's notifiers in order and persists the transaction.
// Notifier and storage failures are logged; only an unknown watch is
// reported as an error.
func (s *Service) Deliver(ctx context.Context, watchID string, tx Transaction) error {
	ctx, span := s.tracer.Start(ctx, "walletwatch.deliver", trace.WithAttributes(
		attribute.String("tx.signature", tx.Signature),
		attribute.String("tx.chain", tx.Chain),
		attribute.String("watch.id", watchID),
	))
	defer span.End()

	ctx = logger.Derive(ctx, "tx.signature", tx.Signature, "tx.chain", tx.Chain, "watch.id", watchID)

	w, ok := s.watch(watchID)
	if !ok {
		span.SetStatus(codes.Error, "unknown watch")
		logger.Warn(ctx, "transaction for unknown watch")
		return fmt.Errorf("%w: %s", ErrUnknownWatch, watchID)
	}

	chainAttr := metric.WithAttributes(attribute.String("chain", tx.Chain))
	s.metrics.received.Add(ctx, 1, chainAttr)
	logger.Info(ctx, "new transaction", "tx.type", tx.Type)

	if !s.filter.Merge(w.Filters).Allows(tx) {
		s.metrics.filtered.Add(ctx, 1, chainAttr)
		span.SetAttributes(attribute.Bool("tx.filtered", true))
		logger.Debug(ctx, "transaction filtered out")

		if s.storeFiltered {
			s.persist(ctx, tx)
		}
		return nil
	}

	s.dispatch(ctx, w, tx)
	s.persist(ctx, tx)

	return nil
}

func (s *Service) sendOptions(w Watch, tx Transaction) []SendOption {
	extra := map[string]any{
		"signature": tx.Signature,
		"chain":     tx.Chain,
		"address":   tx.Address,
		"tx_type":   tx.Type,
		"label":     w.Label,
	}
	if tx.AmountUSD != nil {
		extra["amount_usd"] = *tx.AmountUSD
	}

	opts := []SendOption{WithExtra(extra)}
	if tx.Timestamp != nil {
		opts = append(opts, WithTimestamp(*tx.Timestamp))
	}
	if link, ok := tx.ExplorerLink(); ok {
		opts = append(opts, WithButtons([]Button{link}))
	}

	return opts
}

// dispatch sends the rendered message to every notifier of w, in order.
// Each send is bounded by the notifier's own timeout.
func (s *Service) dispatch(ctx context.Context, w Watch, tx Transaction) {
	message := tx.Message(w.Label)
	opts := s.sendOptions(w, tx)

	for _, name := range w.Notify {
		nctx := logger.Derive(ctx, "notifier.name", name)

		entry, ok := s.notifiers[name]
		if !ok {
			logger.Warn(nctx, "notifier not configured, skipping")
			continue
		}

		sendCtx, cancel := context.WithTimeout(nctx, entry.timeout)
		sent := entry.notifier.Send(sendCtx, message, opts...)
		cancel()

		outcome := "sent"
		if !sent {
			outcome = "failed"
			logger.Error(nctx, "failed to send notification")
		} else {
			logger.Info(nctx, "notification sent")
		}

		s.metrics.notifications.Add(ctx, 1, metric.WithAttributes(
			attribute.String("notifier", name),
			attribute.String("outcome", outcome),
		))
	}
}

func (s *Service) persist(ctx context.Context, tx Transaction) {
	if s.storage == nil {
		return
	}

	outcome := "stored"
	if err := s.storage.SaveTransaction(ctx, tx); err != nil {
		outcome = "failed"
		logger.Error(ctx, "failed to persist transaction", "error", err)
	}

	s.metrics.persisted.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
