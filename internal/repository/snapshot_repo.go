package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"course-planner/internal/model"
	pkgerrors "course-planner/pkg/errors"
)

type snapshotRepo struct {
	db *gorm.DB
}

// NewSnapshotRepo 创建基于 PostgreSQL 的 SnapshotRepository
func NewSnapshotRepo(db *gorm.DB) SnapshotRepository {
	return &snapshotRepo{db: db}
}

func (r *snapshotRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var snap model.PlanSnapshot
	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}
	return snap.Payload, nil
}

func (r *snapshotRepo) Put(ctx context.Context, key string, payload []byte) error {
	snap := model.PlanSnapshot{
		Key:       key,
		Payload:   payload,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&snap).Error
}

func (r *snapshotRepo) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.PlanSnapshot{}).Error
}
