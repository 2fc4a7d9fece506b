package repository

import "context"

// SnapshotRepository 课程快照数据访问接口
// 每个 key 对应一条序列化后的课程列表
type SnapshotRepository interface {
	// Get 读取快照，不存在时返回 pkg/errors.ErrSnapshotNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	// Put 覆盖写入快照
	Put(ctx context.Context, key string, payload []byte) error
	// Delete 删除快照，不存在时为 no-op
	Delete(ctx context.Context, key string) error
}

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Snapshot SnapshotRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(snapshot SnapshotRepository) *Repository {
	return &Repository{
		Snapshot: snapshot,
	}
}
