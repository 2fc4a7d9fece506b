package service

import (
	"go.uber.org/zap"

	"course-planner/config"
	"course-planner/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Planner PlannerService
	Export  ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	logger *zap.Logger,
) *Service {
	plannerSvc := NewPlannerService(cfg, repo, logger)
	return &Service{
		Planner: plannerSvc,
		Export:  NewExportService(plannerSvc, logger),
	}
}
