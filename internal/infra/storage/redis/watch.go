package redis

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/gabapcia/walletwatch/internal/walletwatch"
)

// watchesKey is the hash holding every watch, keyed by address.
const watchesKey = "walletwatch:watches"

// SaveWatch stores w as JSON under its address, replacing any previous watch.
func (c *client) SaveWatch(ctx context.Context, w walletwatch.Watch) error {
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}

	value, err := json.Marshal(w)
	if err != nil {
		return persistenceError("encode watch", err)
	}

	if err := c.conn.HSet(ctx, watchesKey, w.Address, value).Err(); err != nil {
		return persistenceError("save watch", err)
	}

	return nil
}

// GetWatches reads the whole hash and filters by chain in memory; the
// number of watches is small.
func (c *client) GetWatches(ctx context.Context, chain string) ([]walletwatch.Watch, error) {
	values, err := c.conn.HGetAll(ctx, watchesKey).Result()
	if err != nil {
		return nil, persistenceError("get watches", err)
	}

	watches := make([]walletwatch.Watch, 0, len(values))
	for _, value := range values {
		var w walletwatch.Watch
		if err := json.Unmarshal([]byte(value), &w); err != nil {
			return nil, persistenceError("decode watch", err)
		}

		if chain == "" || w.Chain == chain {
			watches = append(watches, w)
		}
	}

	slices.SortFunc(watches, func(a, b walletwatch.Watch) int {
		return strings.Compare(a.Address, b.Address)
	})

	return watches, nil
}

// DeleteWatch removes the hash field for address.
func (c *client) DeleteWatch(ctx context.Context, address string) (bool, error) {
	n, err := c.conn.HDel(ctx, watchesKey, address).Result()
	if err != nil {
		return false, persistenceError("delete watch", err)
	}

	return n > 0, nil
}
