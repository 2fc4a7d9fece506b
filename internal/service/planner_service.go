package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"course-planner/config"
	"course-planner/internal/dto"
	"course-planner/internal/model"
	"course-planner/internal/planner"
	"course-planner/internal/repository"
)

// ── 选课模块业务错误 ──

var (
	ErrPlanPersistFailed = errors.New("课程计划保存失败")
)

// ── PlannerService 接口 ────────────────────────────────────
//
// 设计说明：
//   - 一个进程对应一个选课会话，Store / Alert / Form 均归会话所有。
//   - 所有操作在同一把锁内串行执行，每次提交、删除、重置都完整结束后才处理下一次。
//   - 被拒绝的提交不是 error：以 Accepted=false + Reason 返回，同时显示提示。
//   - error 仅表示快照写入失败，内存中的变更保留，由下一次成功写入补齐。
// ─────────────────────────────────────────────────────────────

// PlannerService 选课规划业务接口
type PlannerService interface {
	// Load 从持久化存储恢复课程列表
	Load(ctx context.Context)
	// Submit 校验并写入一次提交
	Submit(ctx context.Context, cand planner.Candidate) (*dto.SubmitCourseResponse, error)
	// DeleteCourse 按课程代码删除，不存在时为 no-op
	DeleteCourse(ctx context.Context, code string) error
	// ResetAll 清空全部课程与快照
	ResetAll(ctx context.Context) error
	GetCourses() []model.Course
	GetTotalUnits() int
	GetAlertMessage() string
	GetForm() planner.Form
	GetTimetable() planner.Timetable
	// ImportSeed 从 YAML 计划文件逐条回放提交
	ImportSeed(ctx context.Context, path string) (*dto.SeedImportResult, error)
}

type plannerService struct {
	mu     sync.Mutex
	store  *planner.Store
	alert  *planner.Alert
	form   planner.Form
	logger *zap.Logger
}

// NewPlannerService 创建 PlannerService 实例，需调用 Load 恢复已有计划
func NewPlannerService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) PlannerService {
	return newPlannerService(
		planner.NewStore(repo.Snapshot, cfg.Storage.Key, logger),
		planner.NewAlert(cfg.Planner.AlertTTL),
		logger,
	)
}

func newPlannerService(store *planner.Store, alert *planner.Alert, logger *zap.Logger) *plannerService {
	return &plannerService{
		store:  store,
		alert:  alert,
		form:   planner.DefaultForm(),
		logger: logger,
	}
}

// ────────────────────── Load ──────────────────────

func (s *plannerService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Load(ctx)
	s.form.Reset()
}

// ────────────────────── Submit ──────────────────────

func (s *plannerService) Submit(ctx context.Context, cand planner.Candidate) (*dto.SubmitCourseResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reason := s.store.Check(cand)

	// 无论结果如何都重置输入框
	s.form = planner.FormOf(cand)
	s.form.Reset()

	if reason != planner.ReasonNone {
		s.alert.Show(reason.Message())
		s.logger.Info("提交被拒绝",
			zap.String("code", cand.Code),
			zap.String("reason", string(reason)),
			zap.Int("day", int(cand.Day)),
			zap.Int("start_time", int(cand.StartTime)),
			zap.String("recurrence", string(cand.Recurrence)),
		)
		return &dto.SubmitCourseResponse{
			Accepted:   false,
			Reason:     string(reason),
			Message:    reason.Message(),
			TotalUnits: s.store.TotalUnits(),
		}, nil
	}

	created, err := s.store.Apply(ctx, cand)
	s.form.Reset()
	if err != nil {
		s.logger.Error("保存课程计划失败", zap.String("code", cand.Code), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPlanPersistFailed, err)
	}

	s.logger.Info("提交已写入",
		zap.String("code", cand.Code),
		zap.Bool("created", created),
		zap.Int("total_units", s.store.TotalUnits()),
	)

	return &dto.SubmitCourseResponse{
		Accepted:   true,
		Created:    created,
		TotalUnits: s.store.TotalUnits(),
	}, nil
}

// ────────────────────── DeleteCourse ──────────────────────

func (s *plannerService) DeleteCourse(ctx context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.store.Delete(ctx, code)
	if err != nil {
		s.logger.Error("删除课程后保存失败", zap.String("code", code), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPlanPersistFailed, err)
	}
	if removed {
		s.form.Reset()
		s.logger.Info("课程已删除", zap.String("code", code), zap.Int("total_units", s.store.TotalUnits()))
	}
	return nil
}

// ────────────────────── ResetAll ──────────────────────

func (s *plannerService) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.form.Clear()
	s.alert.Clear()
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Error("清空课程计划失败", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPlanPersistFailed, err)
	}

	s.logger.Info("课程计划已清空")
	return nil
}

// ────────────────────── 只读投影 ──────────────────────

func (s *plannerService) GetCourses() []model.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Courses()
}

func (s *plannerService) GetTotalUnits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.TotalUnits()
}

func (s *plannerService) GetAlertMessage() string {
	return s.alert.Message()
}

func (s *plannerService) GetForm() planner.Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *plannerService) GetTimetable() planner.Timetable {
	s.mu.Lock()
	defer s.mu.Unlock()
	return planner.BuildTimetable(s.store.Courses())
}
