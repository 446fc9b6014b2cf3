package walletwatch

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Sink receives normalized transactions from chain providers. The watch
// identifier tells which subscription matched the transaction.
type Sink interface {
	// Deliver hands tx over for filtering, notification and persistence.
	// Providers call it once per watch identifier registered for the address.
	Deliver(ctx context.Context, watchID string, tx Transaction) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, watchID string, tx Transaction) error

// Deliver calls f.
func (f SinkFunc) Deliver(ctx context.Context, watchID string, tx Transaction) error {
	return f(ctx, watchID, tx)
}

// ChainProvider translates one blockchain's upstream delivery and query
// mechanisms into normalized transactions and balances.
//
// Implementations must be safe for concurrent use: Subscribe and Unsubscribe
// may run while the listener started by Run is ingesting deliveries.
type ChainProvider interface {
	// Name returns the chain identifier (e.g. "solana").
	Name() string

	// ValidateAddress reports whether address is well formed for the chain.
	// It is pure and never panics, whatever the input.
	ValidateAddress(address string) bool

	// Subscribe registers watchID for deliveries on address. Registering the
	// same address again appends, and deliveries follow registration order.
	//
	// Returns an error wrapping ErrInvalidAddress when the address fails
	// validation. Upstream relay synchronization failures are only logged.
	Subscribe(ctx context.Context, address, watchID string) error

	// Unsubscribe drops every watch registered for address.
	Unsubscribe(ctx context.Context, address string) error

	// GetBalance returns the native token balance of address. Failures are
	// logged and reported as zero.
	GetBalance(ctx context.Context, address string) decimal.Decimal

	// RecentSignatures lists up to limit recent transaction signatures for
	// address, newest first. Failures are logged and reported as empty.
	RecentSignatures(ctx context.Context, address string, limit int) []SignatureInfo

	// Run serves the inbound webhook listener on host:port until ctx is
	// canceled or the listener fails.
	Run(ctx context.Context, host string, port int) error
}

// SyncHolder is implemented by chain providers that can defer upstream
// synchronization across a series of Subscribe calls.
type SyncHolder interface {
	// HoldSync defers synchronization until release is called. Release
	// synchronizes once if subscriptions changed while held.
	HoldSync() (release func(ctx context.Context))
}

// SendOptions carries transport-agnostic extras for a notification.
type SendOptions struct {
	Buttons   [][]Button
	Extra     map[string]any
	Timestamp time.Time
}

// SendOption configures a single notification.
type SendOption func(*SendOptions)

// WithButtons attaches rows of buttons to the notification.
func WithButtons(rows ...[]Button) SendOption {
	return func(o *SendOptions) {
		o.Buttons = append(o.Buttons, rows...)
	}
}

// WithExtra merges fields into the notification payload for structured transports.
func WithExtra(extra map[string]any) SendOption {
	return func(o *SendOptions) {
		if o.Extra == nil {
			o.Extra = make(map[string]any, len(extra))
		}
		for k, v := range extra {
			o.Extra[k] = v
		}
	}
}

// WithTimestamp overrides the notification timestamp.
func WithTimestamp(t time.Time) SendOption {
	return func(o *SendOptions) {
		o.Timestamp = t
	}
}

// NewSendOptions applies opts over the defaults. The timestamp defaults to now.
func NewSendOptions(opts ...SendOption) SendOptions {
	o := SendOptions{Timestamp: time.Now().UTC()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Notifier delivers formatted messages to an external channel. Send and
// SendTo never return errors: every transport failure is logged and
// reported as false.
type Notifier interface {
	// Name returns the notifier type used in watch notify lists.
	Name() string

	// Send delivers message to the notifier's default recipients.
	Send(ctx context.Context, message string, opts ...SendOption) bool

	// SendTo delivers message to a single recipient.
	SendTo(ctx context.Context, recipient, message string, opts ...SendOption) bool

	// FormatMessage adapts a plain-text message to the transport's markup.
	FormatMessage(message string) string
}

// Listener is implemented by notifiers that run a background loop, such as
// a chat bot polling for subscription commands.
type Listener interface {
	Listen(ctx context.Context) error
}

// Storage persists watches and transactions idempotently. Implementations
// must be safe for concurrent use. Errors wrap ErrPersistenceFailure.
type Storage interface {
	// SaveWatch inserts or replaces the watch keyed by its address.
	SaveWatch(ctx context.Context, w Watch) error

	// GetWatches returns every watch, or only those on chain when it is not
	// empty, ordered by address.
	GetWatches(ctx context.Context, chain string) ([]Watch, error)

	// DeleteWatch removes the watch on address and reports whether one existed.
	DeleteWatch(ctx context.Context, address string) (bool, error)

	// SaveTransaction stores tx unless its signature is already present.
	// Saving a known signature is a successful no-op.
	SaveTransaction(ctx context.Context, tx Transaction) error

	// GetTransactions returns up to limit transactions, most recent first,
	// restricted to address when it is not empty. A non-positive limit
	// returns every match.
	GetTransactions(ctx context.Context, address string, limit int) ([]StoredTransaction, error)

	// Close releases the underlying handle. It is safe to call repeatedly.
	Close() error
}
