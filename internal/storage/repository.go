// Package storage provides the SQLite-backed ledger store.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"kudi/internal/core"
	"kudi/internal/store"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save replaces the stored ledger in one transaction. Insertion order is
// preserved through the autoincrement id.
func (s *SQLiteStore) Save(ctx context.Context, records []core.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (date, description, amount_cents, category, kind)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.ExecContext(ctx,
			r.Date.String(), r.Description, r.Amount.Cents, r.Category, string(r.Kind))
		if err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Load returns all stored records in insertion order. A row that no longer
// passes Record validation is skipped with a warning rather than aborting
// the load.
func (s *SQLiteStore) Load(ctx context.Context) ([]core.Record, []store.SkippedRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, description, amount_cents, category, kind
		FROM records
		ORDER BY id`)
	if err != nil {
		return nil, nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []core.Record
	var skipped []store.SkippedRow
	for rows.Next() {
		var (
			dateStr, description, category, kindStr string
			amountCents                             int64
		)
		if err := rows.Scan(&dateStr, &description, &amountCents, &category, &kindStr); err != nil {
			return nil, nil, fmt.Errorf("scan record: %w", err)
		}

		date, err := core.ParseDate(dateStr)
		if err != nil {
			skipped = append(skipped, store.SkippedRow{
				Row: []string{dateStr, description, "", category, kindStr},
				Err: err,
			})
			continue
		}
		rec, err := core.NewRecord(date, description, core.Money{Cents: amountCents}, category, core.Kind(kindStr))
		if err != nil {
			skipped = append(skipped, store.SkippedRow{
				Row: []string{dateStr, description, (core.Money{Cents: amountCents}).String(), category, kindStr},
				Err: err,
			})
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, skipped, nil
}

var _ store.Store = (*SQLiteStore)(nil)
