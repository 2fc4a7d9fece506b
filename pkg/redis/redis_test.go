package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"course-planner/config"
	pkgerrors "course-planner/pkg/errors"
)

// 指向无人监听的端口，连接立即被拒绝
func unreachableClient() *Client {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	return NewFromClient(rdb, zap.NewNop())
}

func TestNewClient_Unreachable(t *testing.T) {
	_, err := NewClient(&config.RedisConfig{Addr: "127.0.0.1:1"}, zap.NewNop())
	if err == nil {
		t.Fatal("期望连接失败")
	}
}

func TestClient_ErrorsAreNotNotFound(t *testing.T) {
	c := unreachableClient()
	defer c.Close()
	ctx := context.Background()

	_, err := c.GetSnapshot(ctx, "courses")
	if err == nil {
		t.Fatal("期望返回连接错误")
	}
	if errors.Is(err, pkgerrors.ErrSnapshotNotFound) {
		t.Error("连接错误不应被视为快照不存在")
	}
	if err := c.SetSnapshot(ctx, "courses", []byte("[]")); err == nil {
		t.Error("期望写入失败")
	}
	if _, err := c.CheckRateLimit(ctx, "k", 10, time.Minute); err == nil {
		t.Error("期望限流检查失败")
	}
}
