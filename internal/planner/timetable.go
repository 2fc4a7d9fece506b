package planner

import "course-planner/internal/model"

// TimetableEntry 周课表单元格中的一门课
type TimetableEntry struct {
	Code       string           `json:"code"`
	Name       string           `json:"name"`
	Professor  string           `json:"professor"`
	Recurrence model.Recurrence `json:"recurrence"`
}

// TimetableRow 一天的课表，Cells 与 Timetable.Hours 一一对应
type TimetableRow struct {
	Day   model.Weekday      `json:"day"`
	Label string             `json:"label"`
	Cells [][]TimetableEntry `json:"cells"`
}

// Timetable 周课表：行为星期（周六→周四），列为时间段（8→18）
type Timetable struct {
	Hours []model.SlotHour `json:"hours"`
	Rows  []TimetableRow   `json:"rows"`
}

// BuildTimetable 由课程列表生成周课表，单元格内按课程插入顺序排列
func BuildTimetable(courses []model.Course) Timetable {
	tt := Timetable{
		Hours: append([]model.SlotHour(nil), model.SlotHours...),
		Rows:  make([]TimetableRow, len(model.Weekdays)),
	}
	for i, d := range model.Weekdays {
		cells := make([][]TimetableEntry, len(model.SlotHours))
		for j := range cells {
			cells[j] = []TimetableEntry{}
		}
		tt.Rows[i] = TimetableRow{Day: d, Label: d.Label(), Cells: cells}
	}

	for _, c := range courses {
		for _, t := range c.Times {
			col := t.StartTime.Index()
			if !t.Day.Valid() || col < 0 {
				continue
			}
			row := &tt.Rows[int(t.Day)]
			row.Cells[col] = append(row.Cells[col], TimetableEntry{
				Code:       c.Code,
				Name:       c.Name,
				Professor:  c.Professor,
				Recurrence: t.Recurrence,
			})
		}
	}

	return tt
}
