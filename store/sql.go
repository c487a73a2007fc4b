// Package store provides pluggable persistence backends for the quiz bot.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	enneabot "github.com/ennealab/enneabot-go"
)

// timeLayout is how created_at is written and read back. Storing a fixed
// textual layout keeps List portable across drivers.
const timeLayout = time.RFC3339

// SQLResultStore implements enneabot.ResultStore using database/sql.
//
// It owns a single results table (auto-created if AutoMigrate is true). The
// sql.DB must be already opened with a driver; the generated DDL targets
// sqlite — for other engines disable AutoMigrate and create an equivalent
// table yourself.
type SQLResultStore struct {
	db    *sql.DB
	table string
}

// SQLStoreConfig configures the SQL store.
type SQLStoreConfig struct {
	Table       string // table name, default "results"
	AutoMigrate bool   // create the table if not exists, default true
}

// NewSQLResultStore creates a ResultStore backed by a relational database.
func NewSQLResultStore(db *sql.DB, config ...SQLStoreConfig) (*SQLResultStore, error) {
	cfg := SQLStoreConfig{Table: "results", AutoMigrate: true}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Table == "" {
		cfg.Table = "results"
	}

	s := &SQLResultStore{db: db, table: cfg.Table}
	if cfg.AutoMigrate {
		if err := s.migrate(); err != nil {
			return nil, fmt.Errorf("auto-migrate failed: %w", err)
		}
	}
	return s, nil
}

func (s *SQLResultStore) migrate() error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id    TEXT,
		name       TEXT,
		basic_type TEXT,
		wing       TEXT,
		created_at TEXT
	)`, s.table)
	_, err := s.db.Exec(ddl)
	return err
}

func (s *SQLResultStore) Insert(ctx context.Context, r enneabot.StoredResult) error {
	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		fmt.Sprintf("INSERT INTO %s (user_id, name, basic_type, wing, created_at) VALUES (?, ?, ?, ?, ?)", s.table),
		r.UserID, r.Name, r.BasicType, r.Wing, createdAt.UTC().Format(timeLayout),
	)
	return err
}

func (s *SQLResultStore) List(ctx context.Context) ([]enneabot.StoredResult, error) {
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf("SELECT user_id, name, basic_type, wing, created_at FROM %s ORDER BY id", s.table),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []enneabot.StoredResult
	for rows.Next() {
		var r enneabot.StoredResult
		var createdAt string
		if err := rows.Scan(&r.UserID, &r.Name, &r.BasicType, &r.Wing, &createdAt); err != nil {
			return nil, err
		}
		// Zero timestamp on parse failure; the record itself still counts.
		r.CreatedAt, _ = time.Parse(timeLayout, createdAt)
		results = append(results, r)
	}
	return results, rows.Err()
}
