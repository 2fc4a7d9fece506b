package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"course-planner/config"
	pkgerrors "course-planner/pkg/errors"
)

// Client Redis 客户端封装
// 用于课程快照存储与接口限流
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// NewFromClient 包装已有的 go-redis 客户端（测试中用于注入）
func NewFromClient(rdb *goredis.Client, logger *zap.Logger) *Client {
	return &Client{rdb: rdb, logger: logger}
}

// ── 课程快照 ──

const snapshotPrefix = "planner:snapshot:"

// GetSnapshot 读取快照，不存在时返回 ErrSnapshotNotFound
func (c *Client) GetSnapshot(ctx context.Context, key string) ([]byte, error) {
	data, err := c.rdb.Get(ctx, snapshotPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, pkgerrors.ErrSnapshotNotFound
	}
	return data, err
}

// SetSnapshot 写入快照（不过期）
func (c *Client) SetSnapshot(ctx context.Context, key string, payload []byte) error {
	return c.rdb.Set(ctx, snapshotPrefix+key, payload, 0).Err()
}

// DeleteSnapshot 删除快照，key 不存在时不报错
func (c *Client) DeleteSnapshot(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, snapshotPrefix+key).Err()
}

// ── 限流 ──

// CheckRateLimit 滑动窗口限流：window 内最多 limit 次
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now().UnixNano()
	cutoff := strconv.FormatInt(now-window.Nanoseconds(), 10)

	pipe := c.rdb.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", cutoff)
	card := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, goredis.Z{Score: float64(now), Member: now})
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return card.Val() < int64(limit), nil
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
