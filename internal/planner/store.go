package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"course-planner/internal/model"
	"course-planner/internal/repository"
	pkgerrors "course-planner/pkg/errors"
)

// Store 当前会话的课程列表，按插入顺序保存，每次变更后同步写入快照。
// Store 本身不加锁，由调用方串行化访问。
type Store struct {
	repo    repository.SnapshotRepository
	key     string
	logger  *zap.Logger
	courses []model.Course
}

// NewStore 创建空的 Store，需调用 Load 读取已有快照
func NewStore(repo repository.SnapshotRepository, key string, logger *zap.Logger) *Store {
	return &Store{
		repo:    repo,
		key:     key,
		logger:  logger,
		courses: []model.Course{},
	}
}

// Load 从快照恢复课程列表。快照不存在或内容损坏时降级为空列表，不返回错误。
func (s *Store) Load(ctx context.Context) {
	s.courses = []model.Course{}

	data, err := s.repo.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, pkgerrors.ErrSnapshotNotFound) {
			s.logger.Warn("读取课程快照失败，使用空列表", zap.String("key", s.key), zap.Error(err))
		}
		return
	}

	var courses []model.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		s.logger.Warn("课程快照格式错误，使用空列表", zap.String("key", s.key), zap.Error(err))
		return
	}
	if err := validateCourses(courses); err != nil {
		s.logger.Warn("课程快照内容不合法，使用空列表", zap.String("key", s.key), zap.Error(err))
		return
	}
	if courses != nil {
		s.courses = courses
	}

	s.logger.Info("课程快照已加载", zap.String("key", s.key), zap.Int("courses", len(s.courses)))
}

// Snapshot 序列化当前课程列表并写入存储
func (s *Store) Snapshot(ctx context.Context) error {
	data, err := json.Marshal(s.courses)
	if err != nil {
		return fmt.Errorf("序列化课程快照失败: %w", err)
	}
	if err := s.repo.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("写入课程快照失败: %w", err)
	}
	return nil
}

// Clear 清空课程列表并删除快照
func (s *Store) Clear(ctx context.Context) error {
	s.courses = []model.Course{}
	if err := s.repo.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("删除课程快照失败: %w", err)
	}
	return nil
}

// Check 针对当前课程列表校验提交
func (s *Store) Check(cand Candidate) Reason {
	return Check(s.courses, cand)
}

// Apply 写入已通过校验的提交并同步快照，返回是否新建了课程
func (s *Store) Apply(ctx context.Context, cand Candidate) (bool, error) {
	var created bool
	s.courses, created = apply(s.courses, cand)
	return created, s.Snapshot(ctx)
}

// Delete 按代码删除课程并同步快照；课程不存在时不写存储
func (s *Store) Delete(ctx context.Context, code string) (bool, error) {
	var removed bool
	s.courses, removed = remove(s.courses, code)
	if !removed {
		return false, nil
	}
	return true, s.Snapshot(ctx)
}

// Courses 返回课程列表的深拷贝
func (s *Store) Courses() []model.Course {
	out := make([]model.Course, len(s.courses))
	for i, c := range s.courses {
		out[i] = c.Clone()
	}
	return out
}

// Len 课程数
func (s *Store) Len() int { return len(s.courses) }

// TotalUnits 当前总学分
func (s *Store) TotalUnits() int { return TotalUnits(s.courses) }

// validateCourses 快照中的课程代码必须唯一，且每门课程自身合法
func validateCourses(courses []model.Course) error {
	seen := make(map[string]bool, len(courses))
	for _, c := range courses {
		if err := c.Validate(); err != nil {
			return err
		}
		if seen[c.Code] {
			return fmt.Errorf("duplicate course code %q", c.Code)
		}
		seen[c.Code] = true
	}
	return nil
}
