// Package index keeps a local sqlite catalog of scanned cards so list and
// search don't have to rescan the vault.
package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/mireku/cardik/pkg/api"
)

var ErrNotFound = errors.New("not found")

type Store struct{ db *sql.DB }

// Open connects to the sqlite index using the modernc.org/sqlite driver and
// ensures the schema exists. The parent directory is created as needed.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	dbh, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// set WAL mode
	if _, err := dbh.ExecContext(ctx, `PRAGMA journal_mode=WAL;`); err != nil {
		_ = dbh.Close()
		return nil, err
	}
	if err := migrate(ctx, dbh); err != nil {
		_ = dbh.Close()
		return nil, err
	}
	return &Store{db: dbh}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS cards (
  id TEXT PRIMARY KEY,
  path TEXT NOT NULL,
  line INTEGER NOT NULL,
  name TEXT NOT NULL DEFAULT '',
  title TEXT NOT NULL DEFAULT '',
  company TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL DEFAULT '',
  raw TEXT NOT NULL,
  scanned_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cards_path_line ON cards(path, line);
CREATE INDEX IF NOT EXISTS idx_cards_name ON cards(name);
`)
	return err
}

// Upsert writes one card, replacing any previous row with the same identity.
func (s *Store) Upsert(ctx context.Context, c api.Card) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO cards(id, path, line, name, title, company, email, raw, scanned_at)
VALUES(?,?,?,?,?,?,?,?,?)
ON CONFLICT(id) DO UPDATE SET
  name=excluded.name, title=excluded.title, company=excluded.company,
  email=excluded.email, raw=excluded.raw, scanned_at=excluded.scanned_at`,
		c.ID, c.Path, c.Line, c.Name, c.Title, c.Company, c.Email, c.Raw, c.ScannedAt.UTC())
	return err
}

// ReplaceVault swaps the whole index for a fresh scan in one transaction, so
// cards deleted from the vault disappear from the catalog too.
func (s *Store) ReplaceVault(ctx context.Context, cards []api.Card) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM cards`); err != nil {
		return err
	}
	for _, c := range cards {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO cards(id, path, line, name, title, company, email, raw, scanned_at)
VALUES(?,?,?,?,?,?,?,?,?)`,
			c.ID, c.Path, c.Line, c.Name, c.Title, c.Company, c.Email, c.Raw, c.ScannedAt.UTC()); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// List returns cards ordered by path then line.
func (s *Store) List(ctx context.Context, limit int) ([]api.Card, error) {
	q := `SELECT id, path, line, name, title, company, email, raw, scanned_at FROM cards ORDER BY path, line`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	return s.query(ctx, q, args...)
}

// Search matches a case-insensitive substring against name, company, email,
// and the raw body.
func (s *Store) Search(ctx context.Context, term string, limit int) ([]api.Card, error) {
	like := "%" + escapeLike(term) + "%"
	q := `SELECT id, path, line, name, title, company, email, raw, scanned_at FROM cards
WHERE name LIKE ? ESCAPE '\' COLLATE NOCASE
   OR company LIKE ? ESCAPE '\' COLLATE NOCASE
   OR email LIKE ? ESCAPE '\' COLLATE NOCASE
   OR raw LIKE ? ESCAPE '\' COLLATE NOCASE
ORDER BY path, line`
	args := []any{like, like, like, like}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	return s.query(ctx, q, args...)
}

// Get resolves a card by full ID or unique ID prefix.
func (s *Store) Get(ctx context.Context, idPrefix string) (api.Card, error) {
	cards, err := s.query(ctx, `SELECT id, path, line, name, title, company, email, raw, scanned_at FROM cards
WHERE id LIKE ? ESCAPE '\' ORDER BY path, line LIMIT 2`, escapeLike(idPrefix)+"%")
	if err != nil {
		return api.Card{}, err
	}
	switch len(cards) {
	case 0:
		return api.Card{}, ErrNotFound
	case 1:
		return cards[0], nil
	default:
		return api.Card{}, fmt.Errorf("ambiguous card id prefix %q", idPrefix)
	}
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards`).Scan(&n)
	return n, err
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]api.Card, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []api.Card
	for rows.Next() {
		var c api.Card
		if err := rows.Scan(&c.ID, &c.Path, &c.Line, &c.Name, &c.Title, &c.Company, &c.Email, &c.Raw, &c.ScannedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
