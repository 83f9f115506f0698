// Package sqlite implements the on-device preference store.
//
// The mobile original keeps its session in a device key/value store; the
// Go rendition keeps the same three keys in a single-file sqlite database
// under the app data directory.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/linguago/linguago/internal/domain/entities"
)

// Preference keys, namespaced like the original app.
const (
	keyUser     = "linguago_user"
	keyToken    = "linguago_token"
	keyLoggedIn = "linguago_is_logged_in"
)

var ErrNoUser = errors.New("no user record in preferences")

// Store persists the session preferences: the cached user record, the
// session token, and the logged-in flag.
type Store struct {
	db *sqlx.DB
}

// Open opens (and if needed creates) the preferences database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open preferences database: %w", err)
	}

	// SQLite does not support multiple writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS preferences (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		return nil, fmt.Errorf("create preferences table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveUser writes the user record and sets the logged-in flag in a single
// transaction. The record is sanitized first: the password never reaches
// disk.
func (s *Store) SaveUser(ctx context.Context, user *entities.User) error {
	sanitized := user.Sanitized()
	data, err := json.Marshal(sanitized)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := set(ctx, tx, keyUser, string(data)); err != nil {
		return err
	}
	if err := set(ctx, tx, keyLoggedIn, "true"); err != nil {
		return err
	}

	return tx.Commit()
}

// User returns the cached user record, or ErrNoUser if none is stored.
func (s *Store) User(ctx context.Context) (*entities.User, error) {
	value, err := s.get(ctx, keyUser)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoUser
		}
		return nil, fmt.Errorf("read user: %w", err)
	}

	var user entities.User
	if err := json.Unmarshal([]byte(value), &user); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}

	return &user, nil
}

// IsLoggedIn returns the session flag, defaulting to false when absent.
func (s *Store) IsLoggedIn(ctx context.Context) (bool, error) {
	value, err := s.get(ctx, keyLoggedIn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("read login flag: %w", err)
	}

	return value == "true", nil
}

// SaveToken stores the server-issued session token.
func (s *Store) SaveToken(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		keyToken, token,
	)
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	return nil
}

// Token returns the stored session token, or "" when none is stored.
func (s *Store) Token(ctx context.Context) (string, error) {
	value, err := s.get(ctx, keyToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("read token: %w", err)
	}

	return value, nil
}

// Clear removes the user record, the token and the logged-in flag.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM preferences WHERE key IN (?, ?, ?)",
		keyUser, keyToken, keyLoggedIn,
	)
	if err != nil {
		return fmt.Errorf("clear preferences: %w", err)
	}

	return nil
}

// MergeUser shallow-merges the patch over the cached record and re-saves it.
// Merging without a cached record returns ErrNoUser: a partial update with
// nothing to merge onto means the caller's session state is already gone.
func (s *Store) MergeUser(ctx context.Context, patch entities.UserPatch) error {
	user, err := s.User(ctx)
	if err != nil {
		return err
	}

	patch.ApplyTo(user)

	return s.SaveUser(ctx, user)
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.GetContext(ctx, &value,
		"SELECT value FROM preferences WHERE key = ?", key)
	return value, err
}

func set(ctx context.Context, tx *sqlx.Tx, key, value string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	return nil
}
