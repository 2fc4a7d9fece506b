package repository

import (
	"context"

	"course-planner/pkg/redis"
)

type redisSnapshotRepo struct {
	client *redis.Client
}

// NewRedisSnapshotRepo 创建基于 Redis 的 SnapshotRepository
func NewRedisSnapshotRepo(client *redis.Client) SnapshotRepository {
	return &redisSnapshotRepo{client: client}
}

func (r *redisSnapshotRepo) Get(ctx context.Context, key string) ([]byte, error) {
	return r.client.GetSnapshot(ctx, key)
}

func (r *redisSnapshotRepo) Put(ctx context.Context, key string, payload []byte) error {
	return r.client.SetSnapshot(ctx, key, payload)
}

func (r *redisSnapshotRepo) Delete(ctx context.Context, key string) error {
	return r.client.DeleteSnapshot(ctx, key)
}
