package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/probuilddigital1-star/nourish/internal/model"
)

// SQLiteRepository stores the state document as a single row in a SQLite
// database. Useful where a JSON file is too fragile (shared app dirs,
// backup tooling that expects a database).
type SQLiteRepository struct {
	db *sql.DB
}

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS app_state (
  id INTEGER PRIMARY KEY CHECK(id = 1),
  doc TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	repo := &SQLiteRepository{db: db}
	if err := repo.applyMigrations(); err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) applyMigrations() error {
	if _, err := r.db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	for _, m := range migrations {
		var applied int
		err := r.db.QueryRow(`SELECT COUNT(1) FROM schema_migrations WHERE version = ?`, m.version).Scan(&applied)
		if err != nil {
			return fmt.Errorf("check migration %d: %w", m.version, err)
		}
		if applied > 0 {
			continue
		}
		if _, err := r.db.Exec(m.sql); err != nil {
			return fmt.Errorf("apply migration %d (%s): %w", m.version, m.name, err)
		}
		if _, err := r.db.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) Load() (*model.State, error) {
	var doc string
	err := r.db.QueryRow(`SELECT doc FROM app_state WHERE id = 1`).Scan(&doc)
	if err == sql.ErrNoRows {
		return model.NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state row: %w", err)
	}
	var state model.State
	if err := json.Unmarshal([]byte(doc), &state); err != nil {
		return nil, fmt.Errorf("decode state document: %w", err)
	}
	normalize(&state)
	return &state, nil
}

func (r *SQLiteRepository) Save(state *model.State) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state document: %w", err)
	}
	_, err = r.db.Exec(`
INSERT INTO app_state(id, doc, updated_at)
VALUES(1, ?, CURRENT_TIMESTAMP)
ON CONFLICT(id) DO UPDATE SET doc=excluded.doc, updated_at=excluded.updated_at
`, string(doc))
	if err != nil {
		return fmt.Errorf("save state row: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
