// Package storagetest provides the behavioural suite every walletwatch
// storage backend must pass.
package storagetest

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/gabapcia/walletwatch/internal/walletwatch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory opens an empty storage for a single subtest. The suite closes it.
type Factory func(t *testing.T) walletwatch.Storage

func ptr[T any](v T) *T {
	return &v
}

var created = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

func watch(chain, address, label string) walletwatch.Watch {
	return walletwatch.Watch{
		Address:   address,
		Chain:     chain,
		Label:     label,
		Notify:    []string{"telegram", "webhook"},
		CreatedAt: created,
	}
}

func transaction(signature, address string) walletwatch.Transaction {
	ts := created.Add(time.Minute)
	return walletwatch.Transaction{
		Signature:   signature,
		Chain:       "solana",
		Address:     address,
		Type:        "TRANSFER",
		Description: "Sent 1 SOL",
		AmountUSD:   ptr(1234.5),
		Timestamp:   &ts,
		Raw:         map[string]any{"signature": signature, "fee": 5000.0},
	}
}

func open(t *testing.T, factory Factory) walletwatch.Storage {
	t.Helper()

	s := factory(t)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

// Run exercises factory against every storage invariant.
func Run(t *testing.T, factory Factory) {
	t.Run("watch round trip", func(t *testing.T) {
		s := open(t, factory)
		ctx := t.Context()

		w := watch("solana", "So1", "Treasury")
		w.Filters = walletwatch.FilterOverrides{MinUSDValue: ptr(10.0), TxTypes: []string{"SWAP"}}
		w.Source = walletwatch.SourceConfig
		require.NoError(t, s.SaveWatch(ctx, w))

		got, err := s.GetWatches(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []walletwatch.Watch{w}, got)
	})

	t.Run("watch upsert keeps one row per address", func(t *testing.T) {
		s := open(t, factory)
		ctx := t.Context()

		require.NoError(t, s.SaveWatch(ctx, watch("solana", "So1", "old")))
		require.NoError(t, s.SaveWatch(ctx, watch("solana", "So1", "new")))

		got, err := s.GetWatches(ctx, "")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "new", got[0].Label)
	})

	t.Run("watches filtered by chain and ordered by address", func(t *testing.T) {
		s := open(t, factory)
		ctx := t.Context()

		require.NoError(t, s.SaveWatch(ctx, watch("solana", "So2", "")))
		require.NoError(t, s.SaveWatch(ctx, watch("ethereum", "0xabc", "")))
		require.NoError(t, s.SaveWatch(ctx, watch("solana", "So1", "")))

		all, err := s.GetWatches(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"0xabc", "So1", "So2"}, addresses(all))

		sol, err := s.GetWatches(ctx, "solana")
		require.NoError(t, err)
		assert.Equal(t, []string{"So1", "So2"}, addresses(sol))

		none, err := s.GetWatches(ctx, "bitcoin")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("delete watch", func(t *testing.T) {
		s := open(t, factory)
		ctx := t.Context()

		require.NoError(t, s.SaveWatch(ctx, watch("solana", "So1", "")))

		deleted, err := s.DeleteWatch(ctx, "So1")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = s.DeleteWatch(ctx, "So1")
		require.NoError(t, err)
		assert.False(t, deleted)

		got, err := s.GetWatches(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("duplicate signature keeps the first transaction", func(t *testing.T) {
		s := open(t, factory)
		ctx := t.Context()

		first := transaction("SIG1", "So1")
		second := transaction("SIG1", "So1")
		second.Description = "replayed"

		require.NoError(t, s.SaveTransaction(ctx, first))
		require.NoError(t, s.SaveTransaction(ctx, second))

		got, err := s.GetTransactions(ctx, "", 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, first, got[0].Transaction)
		assert.False(t, got[0].CreatedAt.IsZero())
	})

	t.Run("transactions newest first with limit and address", func(t *testing.T) {
		s := open(t, factory)
		ctx := t.Context()

		require.NoError(t, s.SaveTransaction(ctx, transaction("SIG1", "So1")))
		require.NoError(t, s.SaveTransaction(ctx, transaction("SIG2", "So2")))
		require.NoError(t, s.SaveTransaction(ctx, transaction("SIG3", "So1")))

		all, err := s.GetTransactions(ctx, "", 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"SIG3", "SIG2", "SIG1"}, signatures(all))

		limited, err := s.GetTransactions(ctx, "", 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"SIG3", "SIG2"}, signatures(limited))

		byAddress, err := s.GetTransactions(ctx, "So1", 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"SIG3", "SIG1"}, signatures(byAddress))

		unknown, err := s.GetTransactions(ctx, "So9", 10)
		require.NoError(t, err)
		assert.Empty(t, unknown)
	})

	t.Run("optional fields stay empty", func(t *testing.T) {
		s := open(t, factory)
		ctx := t.Context()

		tx := walletwatch.Transaction{Signature: "SIG1", Chain: "ethereum", Address: "0xabc", Type: "unknown"}
		require.NoError(t, s.SaveTransaction(ctx, tx))

		got, err := s.GetTransactions(ctx, "0xabc", 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].AmountUSD)
		assert.Nil(t, got[0].Timestamp)
		assert.Empty(t, got[0].Raw)
	})

	t.Run("concurrent duplicate saves store one row", func(t *testing.T) {
		s := open(t, factory)
		ctx := t.Context()

		var wg sync.WaitGroup
		errs := make(chan error, 8)
		for i := range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				tx := transaction("SIG1", "So1")
				tx.Description = fmt.Sprintf("attempt %d", i)
				errs <- s.SaveTransaction(ctx, tx)
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}

		got, err := s.GetTransactions(ctx, "", 10)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		s := factory(t)

		require.NoError(t, s.Close())
		assert.NoError(t, s.Close())
	})
}

func addresses(watches []walletwatch.Watch) []string {
	out := make([]string, len(watches))
	for i, w := range watches {
		out[i] = w.Address
	}

	return out
}

func signatures(txs []walletwatch.StoredTransaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.Signature
	}

	return out
}
