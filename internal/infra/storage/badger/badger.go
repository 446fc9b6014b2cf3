// Package badger implements the embedded walletwatch storage backend on top
// of BadgerDB. Values are JSON documents; transactions are numbered by a
// persistent sequence so they can be listed newest first, globally or per
// address.
package badger

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/gabapcia/walletwatch/internal/config"
	"github.com/gabapcia/walletwatch/internal/pkg/logger"
	"github.com/gabapcia/walletwatch/internal/walletwatch"
)

// InMemoryPath opens a storage that lives only as long as the process.
const InMemoryPath = ":memory:"

const (
	sequenceBandwidth  = 64
	maxConflictRetries = 16
)

// Key layout:
//
//	w/<address>             JSON watch
//	s/<signature>           sequence of the stored transaction
//	t/<seq>                 JSON stored transaction
//	a/<address>/<seq>       per-address index, empty value
var (
	watchPrefix     = []byte("w/")
	signaturePrefix = []byte("s/")
	txPrefix        = []byte("t/")
	addressPrefix   = []byte("a/")
	sequenceKey     = []byte("meta/tx-sequence")
)

func watchKey(address string) []byte {
	return append(watchPrefix[:len(watchPrefix):len(watchPrefix)], address...)
}

func signatureKey(signature string) []byte {
	return append(signaturePrefix[:len(signaturePrefix):len(signaturePrefix)], signature...)
}

func txKey(seq uint64) []byte {
	return binary.BigEndian.AppendUint64(txPrefix[:len(txPrefix):len(txPrefix)], seq)
}

func addressIndexPrefix(address string) []byte {
	key := append(addressPrefix[:len(addressPrefix):len(addressPrefix)], address...)
	return append(key, '/')
}

func addressIndexKey(address string, seq uint64) []byte {
	return binary.BigEndian.AppendUint64(addressIndexPrefix(address), seq)
}

func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: badger %s: %w", walletwatch.ErrPersistenceFailure, op, err)
}

// Storage is the BadgerDB backend.
type Storage struct {
	db  *badger.DB
	seq *badger.Sequence

	closeOnce sync.Once
	closeErr  error
}

var _ walletwatch.Storage = (*Storage)(nil)

// Open opens or creates the database at path. InMemoryPath keeps everything
// in memory.
func Open(ctx context.Context, path string) (*Storage, error) {
	opts := badger.DefaultOptions(path)
	if path == InMemoryPath {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithLogger(badgerLogger{ctx: logger.Derive(ctx, "storage.type", "badger")})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, persistenceError("open", err)
	}

	seq, err := db.GetSequence(sequenceKey, sequenceBandwidth)
	if err != nil {
		return nil, errors.Join(persistenceError("sequence", err), db.Close())
	}

	return &Storage{db: db, seq: seq}, nil
}

// Factory opens the database at cfg.Path. It matches walletwatch.StorageFactory.
func Factory(ctx context.Context, cfg config.StorageConfig) (walletwatch.Storage, error) {
	path := cfg.Path
	if path == "" {
		path = InMemoryPath
	}

	return Open(ctx, path)
}

func (s *Storage) SaveWatch(_ context.Context, w walletwatch.Watch) error {
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}

	value, err := json.Marshal(w)
	if err != nil {
		return persistenceError("encode watch", err)
	}

	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(watchKey(w.Address), value)
	}); err != nil {
		return persistenceError("save watch", err)
	}

	return nil
}

func (s *Storage) GetWatches(_ context.Context, chain string) ([]walletwatch.Watch, error) {
	var watches []walletwatch.Watch

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = watchPrefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var w walletwatch.Watch
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &w)
			}); err != nil {
				return err
			}

			if chain == "" || w.Chain == chain {
				watches = append(watches, w)
			}
		}

		return nil
	})
	if err != nil {
		return nil, persistenceError("get watches", err)
	}

	return watches, nil
}

func (s *Storage) DeleteWatch(_ context.Context, address string) (bool, error) {
	var existed bool

	err := s.db.Update(func(txn *badger.Txn) error {
		key := watchKey(address)
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}

		existed = true
		return txn.Delete(key)
	})
	if err != nil {
		return false, persistenceError("delete watch", err)
	}

	return existed, nil
}

func (s *Storage) SaveTransaction(_ context.Context, tx walletwatch.Transaction) error {
	for range maxConflictRetries {
		seq, err := s.seq.Next()
		if err != nil {
			return persistenceError("next sequence", err)
		}

		err = s.db.Update(func(txn *badger.Txn) error {
			return insertTransaction(txn, seq, tx)
		})
		if !errors.Is(err, badger.ErrConflict) {
			if err != nil {
				return persistenceError("save transaction", err)
			}
			return nil
		}
	}

	return persistenceError("save transaction", badger.ErrConflict)
}

func insertTransaction(txn *badger.Txn, seq uint64, tx walletwatch.Transaction) error {
	sigKey := signatureKey(tx.Signature)
	if _, err := txn.Get(sigKey); err == nil {
		return nil
	} else if !errors.Is(err, badger.ErrKeyNotFound) {
		return err
	}

	value, err := json.Marshal(walletwatch.StoredTransaction{
		Transaction: tx,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	if err := txn.Set(sigKey, binary.BigEndian.AppendUint64(nil, seq)); err != nil {
		return err
	}
	if err := txn.Set(txKey(seq), value); err != nil {
		return err
	}

	return txn.Set(addressIndexKey(tx.Address, seq), nil)
}

func (s *Storage) GetTransactions(_ context.Context, address string, limit int) ([]walletwatch.StoredTransaction, error) {
	var txs []walletwatch.StoredTransaction

	err := s.db.View(func(txn *badger.Txn) error {
		if address == "" {
			return scanReverse(txn, txPrefix, limit, func(item *badger.Item) error {
				return appendTransaction(item, &txs)
			})
		}

		prefix := addressIndexPrefix(address)
		return scanReverse(txn, prefix, limit, func(item *badger.Item) error {
			seq := binary.BigEndian.Uint64(item.Key()[len(prefix):])

			txItem, err := txn.Get(txKey(seq))
			if err != nil {
				return err
			}
			return appendTransaction(txItem, &txs)
		})
	})
	if err != nil {
		return nil, persistenceError("get transactions", err)
	}

	return txs, nil
}

// scanReverse visits up to limit keys under prefix from the highest down. A
// non-positive limit visits every key.
func scanReverse(txn *badger.Txn, prefix []byte, limit int, visit func(*badger.Item) error) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.Reverse = true

	it := txn.NewIterator(opts)
	defer it.Close()

	seek := append(append([]byte(nil), prefix...), 0xFF)

	visited := 0
	for it.Seek(seek); it.ValidForPrefix(prefix) && (limit <= 0 || visited < limit); it.Next() {
		if err := visit(it.Item()); err != nil {
			return err
		}
		visited++
	}

	return nil
}

func appendTransaction(item *badger.Item, txs *[]walletwatch.StoredTransaction) error {
	return item.Value(func(val []byte) error {
		var tx walletwatch.StoredTransaction
		if err := json.Unmarshal(val, &tx); err != nil {
			return err
		}

		*txs = append(*txs, tx)
		return nil
	})
}

// Close releases the sequence and closes the database. Later calls return
// the first result.
func (s *Storage) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = errors.Join(s.seq.Release(), s.db.Close())
		if s.closeErr != nil {
			s.closeErr = persistenceError("close", s.closeErr)
		}
	})

	return s.closeErr
}

// badgerLogger routes badger's internal logs to the structured logger.
type badgerLogger struct {
	ctx context.Context
}

func (l badgerLogger) Errorf(format string, args ...any) {
	logger.Error(l.ctx, strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l badgerLogger) Warningf(format string, args ...any) {
	logger.Warn(l.ctx, strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l badgerLogger) Infof(format string, args ...any) {
	logger.Debug(l.ctx, strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l badgerLogger) Debugf(format string, args ...any) {
	logger.Debug(l.ctx, strings.TrimSpace(fmt.Sprintf(format, args...)))
}
