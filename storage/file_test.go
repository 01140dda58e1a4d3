package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"taskmaster-api/domain"
)

func sampleTasks() []domain.Task {
	due := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
	return []domain.Task{
		{
			ID:        "t1",
			Title:     "Write report",
			Category:  domain.CategoryWork,
			Priority:  domain.PriorityHigh,
			DueDate:   due,
			CreatedAt: due.AddDate(0, 0, -2),
		},
		{
			ID:        "t2",
			Title:     "Pay bills",
			Category:  domain.CategoryFinance,
			Priority:  domain.PriorityMedium,
			DueDate:   due.AddDate(0, 0, 3),
			Completed: true,
			CreatedAt: due.AddDate(0, 0, -1),
		},
	}
}

func assertTasksEqual(t *testing.T, got, want []domain.Task) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.ID != w.ID || g.Title != w.Title || g.Category != w.Category ||
			g.Priority != w.Priority || g.Completed != w.Completed {
			t.Fatalf("task %d mismatch: got %+v want %+v", i, g, w)
		}
		if !g.DueDate.Equal(w.DueDate) || !g.CreatedAt.Equal(w.CreatedAt) {
			t.Fatalf("task %d date mismatch: got %+v want %+v", i, g, w)
		}
	}
}

func TestFileBackendTasksRoundTrip(t *testing.T) {
	backend, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("new file backend: %v", err)
	}
	ctx := context.Background()

	if _, err := backend.LoadTasks(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on fresh dir, got %v", err)
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

func TestFileBackendCorruptEntry(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewFile(dir)
	if err != nil {
		t.Fatalf("new file backend: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "tasks.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt entry: %v", err)
	}

	if _, err := backend.LoadTasks(context.Background()); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestFileBackendUserEntry(t *testing.T) {
	backend, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("new file backend: %v", err)
	}
	ctx := context.Background()

	if _, err := backend.LoadUser(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent session, got %v", err)
	}

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
	// Deleting an absent entry stays a no-op.
	if err := backend.DeleteUser(ctx); err != nil {
		t.Fatalf("delete absent user: %v", err)
	}
}
