package storage

import (
	"context"
	"errors"

	"taskmaster-api/domain"
)

// Entry keys. Every backend stores the same two serialized documents: the
// full task collection and the current session user.
const (
	tasksKey = "tasks"
	userKey  = "user"
)

// ErrNotFound is returned when a storage entry does not exist yet.
var ErrNotFound = errors.New("storage: entry not found")

// Backend persists the whole task collection and the session entry as single
// JSON documents, mirroring a browser profile's local storage. Writes replace
// the entry wholesale; there is no partial update.
type Backend interface {
	LoadTasks(ctx context.Context) ([]domain.Task, error)
	SaveTasks(ctx context.Context, tasks []domain.Task) error

	LoadUser(ctx context.Context) (domain.User, error)
	SaveUser(ctx context.Context, u domain.User) error
	DeleteUser(ctx context.Context) error
}
