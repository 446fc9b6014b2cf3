// Package postgres implements the walletwatch storage backend on PostgreSQL.
// The schema is embedded and migrated with golang-migrate when the storage
// is opened.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"github.com/gabapcia/walletwatch/internal/config"
	"github.com/gabapcia/walletwatch/internal/pkg/logger"
	"github.com/gabapcia/walletwatch/internal/walletwatch"
)

// queryTimeout bounds every statement issued by the storage.
const queryTimeout = 10 * time.Second

// ErrMissingURL is returned by Factory when no DSN is configured.
var ErrMissingURL = errors.New("postgres url is required")

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	upsertWatchQuery = `
INSERT INTO watches (address, chain, label, notify, filters, source, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (address) DO UPDATE SET
    chain = EXCLUDED.chain,
    label = EXCLUDED.label,
    notify = EXCLUDED.notify,
    filters = EXCLUDED.filters,
    source = EXCLUDED.source,
    created_at = EXCLUDED.created_at`

	selectWatchesQuery = `
SELECT address, chain, label, notify, filters, source, created_at
FROM watches
WHERE $1::text = '' OR chain = $1
ORDER BY address COLLATE "C"`

	deleteWatchQuery = `DELETE FROM watches WHERE address = $1`

	insertTransactionQuery = `
INSERT INTO transactions (signature, chain, address, tx_type, description, amount_usd, tx_time, raw)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (signature) DO NOTHING`

	selectTransactionsQuery = `
SELECT signature, chain, address, tx_type, description, amount_usd, tx_time, raw, created_at
FROM transactions
WHERE $1::text = '' OR address = $1
ORDER BY id DESC
LIMIT $2`
)

func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: postgres %s: %w", walletwatch.ErrPersistenceFailure, op, err)
}

// Storage is the PostgreSQL backend.
type Storage struct {
	db *sql.DB

	closeOnce sync.Once
	closeErr  error
}

var _ walletwatch.Storage = (*Storage)(nil)

// Open connects to dsn, a postgres:// URL, and applies pending migrations.
func Open(ctx context.Context, dsn string) (*Storage, error) {
	if err := migrateUp(ctx, dsn); err != nil {
		return nil, persistenceError("migrate", err)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, persistenceError("open", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Join(persistenceError("ping", err), db.Close())
	}

	return &Storage{db: db}, nil
}

// Factory opens the database at cfg.URL. It matches walletwatch.StorageFactory.
func Factory(ctx context.Context, cfg config.StorageConfig) (walletwatch.Storage, error) {
	if cfg.URL == "" {
		return nil, ErrMissingURL
	}

	return Open(ctx, cfg.URL)
}

func migrateUp(ctx context.Context, dsn string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return err
	}

	version, _, _ := m.Version()
	logger.Info(ctx, "postgres schema migrated", "storage.schema_version", version)

	return nil
}

func (s *Storage) SaveWatch(ctx context.Context, w walletwatch.Watch) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}

	notify, err := json.Marshal(w.Notify)
	if err != nil {
		return persistenceError("encode notify", err)
	}

	filters, err := json.Marshal(w.Filters)
	if err != nil {
		return persistenceError("encode filters", err)
	}

	if _, err := s.db.ExecContext(ctx, upsertWatchQuery,
		w.Address, w.Chain, w.Label, string(notify), string(filters), w.Source, w.CreatedAt,
	); err != nil {
		return persistenceError("save watch", err)
	}

	return nil
}

func (s *Storage) GetWatches(ctx context.Context, chain string) ([]walletwatch.Watch, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, selectWatchesQuery, chain)
	if err != nil {
		return nil, persistenceError("get watches", err)
	}
	defer rows.Close()

	var watches []walletwatch.Watch
	for rows.Next() {
		var (
			w               walletwatch.Watch
			notify, filters []byte
		)
		if err := rows.Scan(&w.Address, &w.Chain, &w.Label, &notify, &filters, &w.Source, &w.CreatedAt); err != nil {
			return nil, persistenceError("scan watch", err)
		}

		if err := json.Unmarshal(notify, &w.Notify); err != nil {
			return nil, persistenceError("decode notify", err)
		}
		if err := json.Unmarshal(filters, &w.Filters); err != nil {
			return nil, persistenceError("decode filters", err)
		}
		w.CreatedAt = w.CreatedAt.UTC()

		watches = append(watches, w)
	}

	if err := rows.Err(); err != nil {
		return nil, persistenceError("get watches", err)
	}

	return watches, nil
}

func (s *Storage) DeleteWatch(ctx context.Context, address string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := s.db.ExecContext(ctx, deleteWatchQuery, address)
	if err != nil {
		return false, persistenceError("delete watch", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, persistenceError("delete watch", err)
	}

	return n > 0, nil
}

func (s *Storage) SaveTransaction(ctx context.Context, tx walletwatch.Transaction) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var raw any
	if len(tx.Raw) > 0 {
		b, err := json.Marshal(tx.Raw)
		if err != nil {
			return persistenceError("encode raw", err)
		}
		raw = string(b)
	}

	if _, err := s.db.ExecContext(ctx, insertTransactionQuery,
		tx.Signature, tx.Chain, tx.Address, tx.Type, tx.Description, tx.AmountUSD, tx.Timestamp, raw,
	); err != nil {
		return persistenceError("save transaction", err)
	}

	return nil
}

func (s *Storage) GetTransactions(ctx context.Context, address string, limit int) ([]walletwatch.StoredTransaction, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, selectTransactionsQuery, address, sql.NullInt64{Int64: int64(limit), Valid: limit > 0})
	if err != nil {
		return nil, persistenceError("get transactions", err)
	}
	defer rows.Close()

	var txs []walletwatch.StoredTransaction
	for rows.Next() {
		var (
			tx        walletwatch.StoredTransaction
			amountUSD sql.NullFloat64
			txTime    sql.NullTime
			raw       []byte
		)
		if err := rows.Scan(
			&tx.Signature, &tx.Chain, &tx.Address, &tx.Type, &tx.Description,
			&amountUSD, &txTime, &raw, &tx.CreatedAt,
		); err != nil {
			return nil, persistenceError("scan transaction", err)
		}

		if amountUSD.Valid {
			tx.AmountUSD = &amountUSD.Float64
		}
		if txTime.Valid {
			ts := txTime.Time.UTC()
			tx.Timestamp = &ts
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &tx.Raw); err != nil {
				return nil, persistenceError("decode raw", err)
			}
		}
		tx.CreatedAt = tx.CreatedAt.UTC()

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, persistenceError("get transactions", err)
	}

	return txs, nil
}

// Close closes the connection pool. Later calls return the first result.
func (s *Storage) Close() error {
	s.closeOnce.Do(func() {
		if err := s.db.Close(); err != nil {
			s.closeErr = persistenceError("close", err)
		}
	})

	return s.closeErr
}
