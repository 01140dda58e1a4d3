package storage

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"taskmaster-api/domain"
)

// RedisBackend keeps the serialized entries in Redis strings. Entries are
// written without expiry; Redis acts as the durable key/value store rather
// than a cache.
type RedisBackend struct {
	client *redis.Client
}

// NewRedis returns a backend using the provided Redis client.
func NewRedis(client *redis.Client) *RedisBackend {
	if client == nil {
		panic("storage.NewRedis: client is nil")
	}
	return &RedisBackend{client: client}
}

func (b *RedisBackend) get(ctx context.Context, key string, v any) error {
	data, err := b.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(data, v)
}

func (b *RedisBackend) set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.client.Set(ctx, key, data, 0).Err()
}

func (b *RedisBackend) LoadTasks(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := b.get(ctx, tasksKey, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (b *RedisBackend) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return b.set(ctx, tasksKey, tasks)
}

func (b *RedisBackend) LoadUser(ctx context.Context) (domain.User, error) {
	var u domain.User
	if err := b.get(ctx, userKey, &u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (b *RedisBackend) SaveUser(ctx context.Context, u domain.User) error {
	return b.set(ctx, userKey, u)
}

func (b *RedisBackend) DeleteUser(ctx context.Context) error {
	return b.client.Del(ctx, userKey).Err()
}
