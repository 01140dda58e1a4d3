package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"taskmaster-api/domain"
)

// FileBackend keeps each entry as a JSON file inside a data directory. It is
// the default backend and the closest analog to browser local storage.
type FileBackend struct {
	dir string
}

// NewFile creates the data directory if needed and returns a file backend.
func NewFile(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (f *FileBackend) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileBackend) read(key string, v any) error {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// write replaces the entry atomically so a crash mid-write cannot leave a
// truncated document behind.
func (f *FileBackend) write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(key))
}

func (f *FileBackend) LoadTasks(_ context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := f.read(tasksKey, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (f *FileBackend) SaveTasks(_ context.Context, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return f.write(tasksKey, tasks)
}

func (f *FileBackend) LoadUser(_ context.Context) (domain.User, error) {
	var u domain.User
	if err := f.read(userKey, &u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (f *FileBackend) SaveUser(_ context.Context, u domain.User) error {
	return f.write(userKey, u)
}

func (f *FileBackend) DeleteUser(_ context.Context) error {
	if err := os.Remove(f.path(userKey)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
