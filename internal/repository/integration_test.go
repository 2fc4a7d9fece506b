//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"course-planner/internal/model"
	"course-planner/internal/repository"
	pkgerrors "course-planner/pkg/errors"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=postgres password=postgres dbname=course_planner_test sslmode=disable"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	if err := testDB.AutoMigrate(&model.PlanSnapshot{}); err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 失败: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

func TestSnapshotRepo_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSnapshotRepo(testDB)
	key := fmt.Sprintf("it-%d", time.Now().UnixNano())
	t.Cleanup(func() { _ = repo.Delete(ctx, key) })

	if _, err := repo.Get(ctx, key); !errors.Is(err, pkgerrors.ErrSnapshotNotFound) {
		t.Fatalf("期望 ErrSnapshotNotFound，实际: %v", err)
	}

	if err := repo.Put(ctx, key, []byte(`[{"code":"CS101"}]`)); err != nil {
		t.Fatalf("首次 Put 失败: %v", err)
	}
	if err := repo.Put(ctx, key, []byte(`[]`)); err != nil {
		t.Fatalf("覆盖 Put 失败: %v", err)
	}

	got, err := repo.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get 失败: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("期望覆盖后为 []，实际 %s", got)
	}

	if err := repo.Delete(ctx, key); err != nil {
		t.Fatalf("Delete 失败: %v", err)
	}
	if _, err := repo.Get(ctx, key); !errors.Is(err, pkgerrors.ErrSnapshotNotFound) {
		t.Errorf("删除后期望 ErrSnapshotNotFound，实际: %v", err)
	}
}
