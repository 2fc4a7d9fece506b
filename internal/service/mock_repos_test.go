package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"course-planner/config"
	"course-planner/internal/repository"
	pkgerrors "course-planner/pkg/errors"
)

// ── Mock SnapshotRepository ──

type mockSnapshotRepo struct {
	data      map[string][]byte
	putErr    error
	deleteErr error
}

func newMockSnapshotRepo() *mockSnapshotRepo {
	return &mockSnapshotRepo{data: make(map[string][]byte)}
}

func (m *mockSnapshotRepo) Get(_ context.Context, key string) ([]byte, error) {
	if d, ok := m.data[key]; ok {
		return d, nil
	}
	return nil, pkgerrors.ErrSnapshotNotFound
}

func (m *mockSnapshotRepo) Put(_ context.Context, key string, payload []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.data[key] = append([]byte(nil), payload...)
	return nil
}

func (m *mockSnapshotRepo) Delete(_ context.Context, key string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.data, key)
	return nil
}

var errDiskFull = errors.New("disk full")

// ── 测试辅助 ──

func testConfig() *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{Driver: config.StorageDriverFile, Key: "courses", Dir: "unused"},
		Planner: config.PlannerConfig{AlertTTL: time.Hour},
	}
}

func setupTestPlannerService() (PlannerService, *mockSnapshotRepo) {
	snapRepo := newMockSnapshotRepo()
	repo := repository.NewRepository(snapRepo)
	svc := NewPlannerService(testConfig(), repo, zap.NewNop())
	svc.Load(context.Background())
	return svc, snapRepo
}
