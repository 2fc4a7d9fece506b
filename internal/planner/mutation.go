package planner

import "course-planner/internal/model"

// apply 将已通过校验的提交写入课程列表。
// 已有课程只追加时间，其余字段不变；新课程追加到末尾。
func apply(courses []model.Course, cand Candidate) ([]model.Course, bool) {
	slot := cand.TimeSlot()
	for i := range courses {
		if courses[i].Code == cand.Code {
			courses[i].Times = append(courses[i].Times, slot)
			return courses, false
		}
	}

	return append(courses, model.Course{
		Code:      cand.Code,
		Name:      cand.Name,
		Professor: cand.Professor,
		Unit:      cand.Unit,
		ExamDate:  cand.ExamDate,
		ExamTime:  cand.ExamTime,
		Times:     []model.TimeSlot{slot},
	}), true
}

// remove 按课程代码删除，不存在时原样返回
func remove(courses []model.Course, code string) ([]model.Course, bool) {
	for i := range courses {
		if courses[i].Code == code {
			return append(courses[:i], courses[i+1:]...), true
		}
	}
	return courses, false
}

// TotalUnits 所有课程学分之和
func TotalUnits(courses []model.Course) int {
	total := 0
	for _, c := range courses {
		total += c.Unit
	}
	return total
}
