// Package planner 实现选课规划的核心规则：课程存储、冲突检测与变更。
package planner

import (
	"course-planner/internal/model"
)

// Reason 提交被拒绝的原因
type Reason string

const (
	ReasonNone                Reason = ""
	ReasonEmptyCode           Reason = "EMPTY_CODE"
	ReasonScheduleConflict    Reason = "SCHEDULE_CONFLICT"
	ReasonDuplicateSlot       Reason = "DUPLICATE_SLOT"
	ReasonIncompleteNewCourse Reason = "INCOMPLETE_NEW_COURSE"
)

var reasonMessages = map[Reason]string{
	ReasonEmptyCode:           "فیلد کد درس نمی تواند خالی باشد",
	ReasonScheduleConflict:    "درس وارد شده با یکی از دروس انتخاب شده قبل تداخل دارد",
	ReasonDuplicateSlot:       "در این روز و ساعت درس مذکور قبلا وارد شده است",
	ReasonIncompleteNewCourse: "اطلاعات لازم برای درس به طور کامل وارد نشده اند. لطفا اطلاعات را کامل کرده و دوباره امتحان کنید",
}

// Message 面向用户的提示文本
func (r Reason) Message() string { return reasonMessages[r] }

// Candidate 一次待校验的提交
type Candidate struct {
	Code       string
	Name       string
	Professor  string
	Unit       int
	ExamDate   string
	ExamTime   string
	Day        model.Weekday
	StartTime  model.SlotHour
	Recurrence model.Recurrence
}

// TimeSlot 提交所申请的上课时间
func (c Candidate) TimeSlot() model.TimeSlot {
	return model.TimeSlot{Day: c.Day, StartTime: c.StartTime, Recurrence: c.Recurrence}
}

// Check 校验提交能否写入，返回 ReasonNone 表示通过。
// 规则按顺序匹配：空课程代码 → 时间段扫描（重复优先于冲突）→ 新课程完整性。
func Check(courses []model.Course, cand Candidate) Reason {
	if cand.Code == "" {
		return ReasonEmptyCode
	}

	slot := cand.TimeSlot()
	var duplicate, interference, known bool
	for _, course := range courses {
		same := course.Code == cand.Code
		if same {
			known = true
		}
		for _, t := range course.Times {
			if !t.SameSlot(slot) || t.Recurrence.CompatibleWith(slot.Recurrence) {
				continue
			}
			if same {
				duplicate = true
			} else {
				interference = true
			}
		}
	}

	switch {
	case duplicate:
		return ReasonDuplicateSlot
	case interference:
		return ReasonScheduleConflict
	}

	if !known && (cand.Name == "" || cand.Professor == "" || cand.Unit == 0) {
		return ReasonIncompleteNewCourse
	}

	return ReasonNone
}
