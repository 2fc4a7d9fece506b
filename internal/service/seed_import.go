package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"course-planner/internal/dto"
)

// ParseSeedPlan 解析 YAML 计划文件内容
func ParseSeedPlan(data []byte) (*dto.SeedPlan, error) {
	var plan dto.SeedPlan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("解析计划文件失败: %w", err)
	}
	return &plan, nil
}

// seedRequests 展开为逐条提交：每个上课时间一条，课程信息随每条提交携带
func seedRequests(plan *dto.SeedPlan) []dto.SubmitCourseRequest {
	var out []dto.SubmitCourseRequest
	for _, c := range plan.Courses {
		for _, t := range c.Times {
			out = append(out, dto.SubmitCourseRequest{
				Code:       c.Code,
				Name:       c.Name,
				Professor:  c.Professor,
				Unit:       c.Unit,
				ExamDate:   c.ExamDate,
				ExamTime:   c.ExamTime,
				Day:        t.Day,
				StartTime:  t.StartTime,
				Recurrence: t.Recurrence,
			})
		}
	}
	return out
}

// seedRejectReason 用与 HTTP 提交相同的 binding 规则校验一条提交，通过时返回空串
func seedRejectReason(req *dto.SubmitCourseRequest) string {
	err := binding.Validator.ValidateStruct(req)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.StructField() == "Unit" {
				return "INVALID_UNIT"
			}
		}
		for _, fe := range verrs {
			switch fe.StructField() {
			case "Day", "StartTime", "Recurrence":
				return "INVALID_SLOT"
			}
		}
	}
	return "INVALID_FIELD"
}

// ImportSeed 读取计划文件并逐条经 Submit 写入；被拒绝的条目记录后跳过
func (s *plannerService) ImportSeed(ctx context.Context, path string) (*dto.SeedImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取计划文件失败: %w", err)
	}
	plan, err := ParseSeedPlan(data)
	if err != nil {
		return nil, err
	}

	result := &dto.SeedImportResult{}
	reqs := seedRequests(plan)
	for i := range reqs {
		req := &reqs[i]
		if reason := seedRejectReason(req); reason != "" {
			result.Rejected++
			result.Reasons = append(result.Reasons, fmt.Sprintf("%s: %s", req.Code, reason))
			continue
		}
		cand := req.ToCandidate()
		resp, err := s.Submit(ctx, cand)
		if err != nil {
			return result, err
		}
		if resp.Accepted {
			result.Accepted++
			continue
		}
		result.Rejected++
		result.Reasons = append(result.Reasons, fmt.Sprintf("%s: %s", cand.Code, resp.Reason))
	}

	s.logger.Info("计划文件导入完成",
		zap.String("path", path),
		zap.Int("accepted", result.Accepted),
		zap.Int("rejected", result.Rejected),
	)
	return result, nil
}
