package store

import (
	"context"
	"database/sql"
	"errors"

	perr "griddesk/internal/platform/errors"

	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

// SQLiteKV is the embedded on-disk KV backend for snapshot caching
type SQLiteKV struct {
	db       *sql.DB
	maxBytes int64
}

// OpenSQLiteKV opens (and migrates) the cache database at path
func OpenSQLiteKV(ctx context.Context, path string, maxBytes int64) (*SQLiteKV, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeCache, "open cache db")
	}
	// single writer keeps modernc happy under database/sql
	db.SetMaxOpenConns(1)

	const schema = `
create table if not exists snapshots (
	key        text primary key,
	val        blob not null,
	updated_at text not null default (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, perr.Wrap(err, perr.ErrorCodeCache, "migrate cache db")
	}
	return &SQLiteKV{db: db, maxBytes: maxBytes}, nil
}

// Get returns the stored value or ok=false on a miss
func (s *SQLiteKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var val []byte
	err := s.db.QueryRowContext(ctx, `select val from snapshots where key = ?`, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, perr.Wrap(err, perr.ErrorCodeCache, "read snapshot")
	}
	return val, true, nil
}

// Set stores val under key, overwriting any previous snapshot
// the write is rejected with ErrFull when it would push the total stored
// bytes over the budget, so deleting other keys frees room for a retry
func (s *SQLiteKV) Set(ctx context.Context, key string, val []byte) error {
	if s.maxBytes > 0 {
		var others int64
		err := s.db.QueryRowContext(ctx,
			`select coalesce(sum(length(val)), 0) from snapshots where key <> ?`, key).Scan(&others)
		if err != nil {
			return perr.Wrap(err, perr.ErrorCodeCache, "size snapshots")
		}
		if others+int64(len(val)) > s.maxBytes {
			return ErrFull
		}
	}
	const upsert = `
insert into snapshots (key, val, updated_at)
values (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ','now'))
on conflict (key) do update set
	val = excluded.val,
	updated_at = excluded.updated_at`
	if _, err := s.db.ExecContext(ctx, upsert, key, val); err != nil {
		return perr.Wrap(err, perr.ErrorCodeCache, "write snapshot")
	}
	return nil
}

// Delete removes key; absent keys are fine
func (s *SQLiteKV) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `delete from snapshots where key = ?`, key); err != nil {
		return perr.Wrap(err, perr.ErrorCodeCache, "delete snapshot")
	}
	return nil
}

// Keys lists every stored key
func (s *SQLiteKV) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `select key from snapshots order by key`)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeCache, "list snapshots")
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeCache, "scan snapshot key")
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

// UpdatedAt returns the write timestamp for key, ok=false on a miss
func (s *SQLiteKV) UpdatedAt(ctx context.Context, key string) (string, bool, error) {
	var ts string
	err := s.db.QueryRowContext(ctx, `select updated_at from snapshots where key = ?`, key).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, perr.Wrap(err, perr.ErrorCodeCache, "read snapshot age")
	}
	return ts, true, nil
}

// Ping reports readiness
func (s *SQLiteKV) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

// Close releases the database handle
func (s *SQLiteKV) Close() error { return s.db.Close() }
