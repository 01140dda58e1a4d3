package api

import (
	"context"

	"taskmaster-api/domain"
)

// TaskStore is the mutation and snapshot surface handlers depend on.
type TaskStore interface {
	Loading() bool
	Tasks() []domain.Task
	Add(ctx context.Context, t domain.Task) error
	Update(ctx context.Context, t domain.Task) error
	Delete(ctx context.Context, id string) error
}

// Authenticator is implemented by types able to resolve users from the
// Authorization header.
type Authenticator interface {
	UserFromAuthHeader(header string) (domain.User, error)
}
