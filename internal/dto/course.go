package dto

import (
	"strings"

	"course-planner/internal/model"
	"course-planner/internal/planner"
)

// ── 选课模块 DTO ──

// SubmitCourseRequest 提交课程（新建课程或为已有课程追加时间）
// Code 不做必填校验：空代码属于业务拒绝原因，由冲突检测返回
type SubmitCourseRequest struct {
	Code       string           `json:"code"       binding:"max=50"`
	Name       string           `json:"name"       binding:"max=100"`
	Professor  string           `json:"professor"  binding:"max=100"`
	Unit       int              `json:"unit"       binding:"min=0,max=4"`
	Day        model.Weekday    `json:"day"        binding:"min=0,max=5"`
	StartTime  model.SlotHour   `json:"startTime"  binding:"oneof=8 10 12 14 16 18"`
	Recurrence model.Recurrence `json:"recurrence" binding:"omitempty,oneof=static odd even"`
	ExamDate   string           `json:"examDate"   binding:"max=50"`
	ExamTime   string           `json:"examTime"   binding:"max=50"`
}

// ToCandidate 转为待校验的提交，文本字段去除首尾空白
func (r *SubmitCourseRequest) ToCandidate() planner.Candidate {
	rec := r.Recurrence
	if rec == "" {
		rec = model.RecurrenceStatic
	}
	return planner.Candidate{
		Code:       strings.TrimSpace(r.Code),
		Name:       strings.TrimSpace(r.Name),
		Professor:  strings.TrimSpace(r.Professor),
		Unit:       r.Unit,
		ExamDate:   strings.TrimSpace(r.ExamDate),
		ExamTime:   strings.TrimSpace(r.ExamTime),
		Day:        r.Day,
		StartTime:  r.StartTime,
		Recurrence: rec,
	}
}

// SubmitCourseResponse 提交结果
type SubmitCourseResponse struct {
	Accepted   bool   `json:"accepted"`
	Created    bool   `json:"created,omitempty"` // 是否新建了课程
	Reason     string `json:"reason,omitempty"`
	Message    string `json:"message,omitempty"`
	TotalUnits int    `json:"total_units"`
}

// CourseListResponse 课程列表与总学分
type CourseListResponse struct {
	List       []model.Course `json:"list"`
	TotalUnits int            `json:"total_units"`
}

// TotalUnitsResponse 总学分
type TotalUnitsResponse struct {
	TotalUnits int `json:"total_units"`
}

// AlertResponse 当前提示信息
type AlertResponse struct {
	Message string `json:"message"`
}

// Option 下拉框选项
type Option struct {
	Value interface{} `json:"value"`
	Label string      `json:"label"`
}

// OptionsResponse 各下拉框选项（按展示顺序）与输入框默认值
type OptionsResponse struct {
	Units       []Option     `json:"units"`
	Weekdays    []Option     `json:"weekdays"`
	Hours       []Option     `json:"hours"`
	Recurrences []Option     `json:"recurrences"`
	Defaults    planner.Form `json:"defaults"`
}
