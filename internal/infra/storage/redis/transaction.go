package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gabapcia/walletwatch/internal/walletwatch"
)

const (
	// transactionKeyPrefix namespaces transaction documents and their lists.
	transactionKeyPrefix = "walletwatch:tx"

	// transactionsKey lists every stored signature, newest first.
	transactionsKey = "walletwatch:txs"
)

// transactionKey builds the key holding the document for signature.
func transactionKey(signature string) string {
	return fmt.Sprintf("%s:%s", transactionKeyPrefix, signature)
}

// addressTransactionsKey builds the list of signatures stored for address.
func addressTransactionsKey(address string) string {
	return fmt.Sprintf("%s:%s", transactionsKey, address)
}

// claimTransaction stores the document only when the signature is new and,
// in the same step, pushes it on both lists. It returns 1 when stored.
var claimTransaction = redis.NewScript(`
if redis.call("SET", KEYS[1], ARGV[1], "NX") then
	redis.call("LPUSH", KEYS[2], ARGV[2])
	redis.call("LPUSH", KEYS[3], ARGV[2])
	return 1
end
return 0
`)

// SaveTransaction stores tx unless its signature was already claimed.
func (c *client) SaveTransaction(ctx context.Context, tx walletwatch.Transaction) error {
	value, err := json.Marshal(walletwatch.StoredTransaction{
		Transaction: tx,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return persistenceError("encode transaction", err)
	}

	keys := []string{
		transactionKey(tx.Signature),
		transactionsKey,
		addressTransactionsKey(tx.Address),
	}

	if err := claimTransaction.Run(ctx, c.conn, keys, value, tx.Signature).Err(); err != nil {
		return persistenceError("save transaction", err)
	}

	return nil
}

// GetTransactions reads the newest signatures from the relevant list and
// fetches their documents in one round trip.
func (c *client) GetTransactions(ctx context.Context, address string, limit int) ([]walletwatch.StoredTransaction, error) {
	list := transactionsKey
	if address != "" {
		list = addressTransactionsKey(address)
	}

	stop := int64(limit) - 1
	if limit <= 0 {
		stop = -1
	}

	signatures, err := c.conn.LRange(ctx, list, 0, stop).Result()
	if err != nil {
		return nil, persistenceError("get transactions", err)
	}
	if len(signatures) == 0 {
		return nil, nil
	}

	keys := make([]string, len(signatures))
	for i, signature := range signatures {
		keys[i] = transactionKey(signature)
	}

	values, err := c.conn.MGet(ctx, keys...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, persistenceError("get transactions", err)
	}

	txs := make([]walletwatch.StoredTransaction, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var tx walletwatch.StoredTransaction
		if err := json.Unmarshal([]byte(raw), &tx); err != nil {
			return nil, persistenceError("decode transaction", err)
		}
		txs = append(txs, tx)
	}

	return txs, nil
}
