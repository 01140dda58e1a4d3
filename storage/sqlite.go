package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"taskmaster-api/domain"
)

// SQLiteBackend stores entries in a single key/value table. The collection
// stays one serialized document per entry, same as the other backends.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database file and ensures the kv table
// exists.
func NewSQLite(path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connect sqlite db: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

func (b *SQLiteBackend) get(ctx context.Context, key string, v any) error {
	var value string
	err := b.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal([]byte(value), v)
}

func (b *SQLiteBackend) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = b.db.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(data))
	return err
}

func (b *SQLiteBackend) LoadTasks(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := b.get(ctx, tasksKey, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (b *SQLiteBackend) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return b.put(ctx, tasksKey, tasks)
}

func (b *SQLiteBackend) LoadUser(ctx context.Context) (domain.User, error) {
	var u domain.User
	if err := b.get(ctx, userKey, &u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (b *SQLiteBackend) SaveUser(ctx context.Context, u domain.User) error {
	return b.put(ctx, userKey, u)
}

func (b *SQLiteBackend) DeleteUser(ctx context.Context) error {
	_, err := b.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, userKey)
	return err
}
