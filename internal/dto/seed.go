package dto

import "course-planner/internal/model"

// ── 计划导入 DTO ──

// SeedPlan YAML 计划文件
type SeedPlan struct {
	Courses []SeedCourse `yaml:"courses"`
}

// SeedCourse 计划文件中的一门课程
type SeedCourse struct {
	Code      string     `yaml:"code"`
	Name      string     `yaml:"name"`
	Professor string     `yaml:"professor"`
	Unit      int        `yaml:"unit"`
	ExamDate  string     `yaml:"exam_date"`
	ExamTime  string     `yaml:"exam_time"`
	Times     []SeedTime `yaml:"times"`
}

// SeedTime 计划文件中的一个上课时间
type SeedTime struct {
	Day        model.Weekday    `yaml:"day"`
	StartTime  model.SlotHour   `yaml:"start_time"`
	Recurrence model.Recurrence `yaml:"recurrence"`
}

// SeedImportResult 导入结果
type SeedImportResult struct {
	Accepted int      `json:"accepted"`
	Rejected int      `json:"rejected"`
	Reasons  []string `json:"reasons,omitempty"` // 每条被拒绝提交的 "代码: 原因"
}
