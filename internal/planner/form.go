package planner

import "course-planner/internal/model"

// Form 输入框的临时状态
type Form struct {
	Code       string           `json:"code"`
	Name       string           `json:"name"`
	Professor  string           `json:"professor"`
	Unit       int              `json:"unit"`
	Day        model.Weekday    `json:"day"`
	StartTime  model.SlotHour   `json:"startTime"`
	Recurrence model.Recurrence `json:"recurrence"`
	ExamDate   string           `json:"examDate"`
	ExamTime   string           `json:"examTime"`
}

// DefaultForm 所有输入框的初始值
func DefaultForm() Form {
	return Form{
		Day:        model.Weekdays[0],
		StartTime:  model.SlotHours[0],
		Recurrence: model.Recurrences[0],
	}
}

// FormOf 以提交内容填充输入框
func FormOf(cand Candidate) Form {
	return Form{
		Code:       cand.Code,
		Name:       cand.Name,
		Professor:  cand.Professor,
		Unit:       cand.Unit,
		Day:        cand.Day,
		StartTime:  cand.StartTime,
		Recurrence: cand.Recurrence,
		ExamDate:   cand.ExamDate,
		ExamTime:   cand.ExamTime,
	}
}

// Reset 恢复除课程代码外的所有输入框，保留代码以便继续为同一课程添加时间。幂等。
func (f *Form) Reset() {
	code := f.Code
	*f = DefaultForm()
	f.Code = code
}

// Clear 恢复全部输入框，包括课程代码
func (f *Form) Clear() {
	*f = DefaultForm()
}
