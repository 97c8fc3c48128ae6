// Package store persists sandbox state in SQLite so that a local BagelPay
// twin survives restarts when pointed at a file and stays hermetic with the
// default in-memory database.
package store

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

const schema = `
CREATE TABLE IF NOT EXISTS products (
	product_id         TEXT PRIMARY KEY,
	name               TEXT NOT NULL,
	description        TEXT NOT NULL DEFAULT '',
	price              REAL NOT NULL,
	currency           TEXT NOT NULL,
	billing_type       TEXT NOT NULL,
	tax_inclusive      INTEGER NOT NULL DEFAULT 0,
	tax_category       TEXT NOT NULL DEFAULT '',
	recurring_interval TEXT NOT NULL DEFAULT '',
	trial_days         INTEGER NOT NULL DEFAULT 0,
	is_archive         INTEGER NOT NULL DEFAULT 0,
	product_url        TEXT NOT NULL DEFAULT '',
	created_at         TEXT NOT NULL,
	updated_at         TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS payments (
	payment_id     TEXT PRIMARY KEY,
	request_id     TEXT NOT NULL UNIQUE,
	product_id     TEXT NOT NULL,
	status         TEXT NOT NULL,
	checkout_url   TEXT NOT NULL,
	units          INTEGER NOT NULL,
	customer_email TEXT NOT NULL DEFAULT '',
	success_url    TEXT NOT NULL DEFAULT '',
	metadata       TEXT NOT NULL DEFAULT '{}',
	expires_on     TEXT NOT NULL,
	created_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
	transaction_id TEXT PRIMARY KEY,
	amount         INTEGER NOT NULL,
	currency       TEXT NOT NULL,
	type           TEXT NOT NULL,
	customer_email TEXT NOT NULL DEFAULT '',
	remark         TEXT NOT NULL DEFAULT '',
	created_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS subscriptions (
	subscription_id      TEXT PRIMARY KEY,
	status               TEXT NOT NULL,
	product_id           TEXT NOT NULL,
	product_name         TEXT NOT NULL DEFAULT '',
	customer_email       TEXT NOT NULL DEFAULT '',
	recurring_interval   TEXT NOT NULL DEFAULT '',
	next_billing_amount  REAL NOT NULL DEFAULT 0,
	payment_method       TEXT NOT NULL DEFAULT '',
	trial_start          TEXT,
	trial_end            TEXT,
	billing_period_start TEXT,
	billing_period_end   TEXT,
	cancel_at            TEXT,
	remark               TEXT NOT NULL DEFAULT '',
	created_at           TEXT NOT NULL,
	updated_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS customers (
	email         TEXT PRIMARY KEY,
	name          TEXT NOT NULL DEFAULT '',
	total_spend   INTEGER NOT NULL DEFAULT 0,
	subscriptions INTEGER NOT NULL DEFAULT 0,
	created_at    TEXT NOT NULL
);
`

// Store wraps the sandbox database.
type Store struct {
	db *sql.DB
}

// Open opens (and migrates) the database at dsn. An empty dsn selects an
// in-memory database.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// A single connection keeps an in-memory database from being torn down
	// between pool checkouts.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// NewID mints a prefixed identifier, e.g. prod_1f87c0... .
func NewID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func timePtr(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	t := parseTime(ns.String)
	return &t
}
