package storage

import (
	"context"
	"errors"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"taskmaster-api/domain"
)

func newTestRedis(t *testing.T) *RedisBackend {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedis(client)
}

func TestRedisBackendTasksRoundTrip(t *testing.T) {
	backend := newTestRedis(t)
	ctx := context.Background()

	if _, err := backend.LoadTasks(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty redis, got %v", err)
	}

	want := sampleTasks()
	if err := backend.SaveTasks(ctx, want); err != nil {
		t.Fatalf("save tasks: %v", err)
	}
	got, err := backend.LoadTasks(ctx)
	if err != nil {
		t.Fatalf("load tasks: %v", err)
	}
	assertTasksEqual(t, got, want)
}

func TestRedisBackendUserEntry(t *testing.T) {
	backend := newTestRedis(t)
	ctx := context.Background()

	want := domain.User{ID: "user_123", Name: "Demo User", Email: "demo@example.com"}
	if err := backend.SaveUser(ctx, want); err != nil {
		t.Fatalf("save user: %v", err)
	}
	got, err := backend.LoadUser(ctx)
	if err != nil {
		t.Fatalf("load user: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected user: %+v", got)
	}

	if err := backend.DeleteUser(ctx); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if _, err := backend.LoadUser(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
