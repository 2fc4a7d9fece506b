package planner

import (
	"testing"

	"course-planner/internal/model"
)

func TestBuildTimetable(t *testing.T) {
	courses := []model.Course{
		course("CS101", 3,
			slot(model.Saturday, 8, model.RecurrenceStatic),
			slot(model.Monday, 18, model.RecurrenceOdd),
		),
		course("MA201", 2, slot(model.Monday, 18, model.RecurrenceEven)),
		course("BAD", 1, slot(model.Weekday(9), 8, model.RecurrenceStatic), slot(model.Saturday, 9, model.RecurrenceStatic)),
	}

	tt := BuildTimetable(courses)

	if len(tt.Rows) != 6 || len(tt.Hours) != 6 {
		t.Fatalf("期望 6×6 网格，实际 %d×%d", len(tt.Rows), len(tt.Hours))
	}
	if tt.Rows[0].Day != model.Saturday || tt.Rows[5].Day != model.Thursday {
		t.Error("行顺序应为周六→周四")
	}

	sat8 := tt.Rows[0].Cells[0]
	if len(sat8) != 1 || sat8[0].Code != "CS101" {
		t.Errorf("周六 8 点应只有 CS101: %+v", sat8)
	}

	mon18 := tt.Rows[int(model.Monday)].Cells[5]
	if len(mon18) != 2 || mon18[0].Code != "CS101" || mon18[1].Code != "MA201" {
		t.Errorf("周一 18 点应按插入顺序含 CS101, MA201: %+v", mon18)
	}

	total := 0
	for _, row := range tt.Rows {
		for _, cell := range row.Cells {
			if cell == nil {
				t.Fatal("空单元格应为非 nil 切片")
			}
			total += len(cell)
		}
	}
	if total != 3 {
		t.Errorf("非法时间不应出现在课表中，期望 3 项，实际 %d", total)
	}
}

func TestForm_Reset(t *testing.T) {
	f := FormOf(Candidate{
		Code: "CS101", Name: "Algo", Professor: "Dr.X", Unit: 3,
		Day: model.Monday, StartTime: 14, Recurrence: model.RecurrenceEven,
		ExamDate: "d", ExamTime: "t",
	})

	f.Reset()
	want := DefaultForm()
	want.Code = "CS101"
	if f != want {
		t.Errorf("Reset 后期望 %+v，实际 %+v", want, f)
	}

	f.Reset()
	if f != want {
		t.Error("Reset 应幂等")
	}

	f.Clear()
	if f != DefaultForm() {
		t.Errorf("Clear 后应全部为默认值: %+v", f)
	}
	if f.Day != model.Saturday || f.StartTime != 8 || f.Recurrence != model.RecurrenceStatic || f.Unit != 0 {
		t.Errorf("默认值不符: %+v", f)
	}
}
