// Package database wraps a PostgreSQL connection pool opened through the pgx
// stdlib driver. Using database/sql (rather than pgxpool directly) lets goose
// migrations and the Watermill SQL transport share the same driver.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ghuser/blooprint/pkg/logger"
)

// Database wraps *sql.DB with pool configuration and a transaction helper.
type Database struct {
	db  *sql.DB
	log logger.Logger
}

// NewPool opens a connection pool against dbURL and verifies connectivity.
func NewPool(ctx context.Context, dbURL string, log logger.Logger) (*Database, error) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Database{db: db, log: log}, nil
}

// DB returns the underlying *sql.DB for query execution.
func (d *Database) DB() *sql.DB {
	return d.db
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise. A panic inside fn also rolls back
// before re-panicking.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			d.log.Error("tx rollback failed", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Ping checks the database connection health.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}

// Close shuts down the connection pool.
func (d *Database) Close() {
	if err := d.db.Close(); err != nil {
		d.log.Error("database close failed", "error", err)
	}
}
