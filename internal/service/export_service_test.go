package service

import (
	"context"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"course-planner/internal/model"
	"course-planner/internal/planner"
)

func TestExportService_ExportTimetable(t *testing.T) {
	plannerSvc, _ := setupTestPlannerService()
	ctx := context.Background()
	_, _ = plannerSvc.Submit(ctx, cs101())
	_, _ = plannerSvc.Submit(ctx, planner.Candidate{
		Code: "MA201", Name: "Calc", Professor: "Dr.Y", Unit: 2,
		Day: model.Monday, StartTime: 18, Recurrence: model.RecurrenceOdd,
	})

	svc := NewExportService(plannerSvc, zap.NewNop())
	buf, filename, err := svc.ExportTimetable(ctx)
	if err != nil {
		t.Fatalf("ExportTimetable 应成功: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("期望 .xlsx 文件名，实际 %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("导出内容应为合法 xlsx: %v", err)
	}
	defer f.Close()

	if v, _ := f.GetCellValue(timetableSheet, "B2"); v != "Algo" {
		t.Errorf("周六 8 点期望 Algo，实际 %q", v)
	}
	if v, _ := f.GetCellValue(timetableSheet, "G4"); !strings.HasPrefix(v, "Calc") {
		t.Errorf("周一 18 点期望 Calc (...)，实际 %q", v)
	}
	if v, _ := f.GetCellValue(timetableSheet, "B1"); v != "8 - 10" {
		t.Errorf("表头期望 8 - 10，实际 %q", v)
	}
	if v, _ := f.GetCellValue(courseSheet, "A3"); v != "MA201" {
		t.Errorf("课程表第 2 行期望 MA201，实际 %q", v)
	}
	if v, _ := f.GetCellValue(courseSheet, "D4"); v != "5" {
		t.Errorf("总学分期望 5，实际 %q", v)
	}
}

func TestExportService_ExportTimetable_Empty(t *testing.T) {
	plannerSvc, _ := setupTestPlannerService()
	svc := NewExportService(plannerSvc, zap.NewNop())

	buf, _, err := svc.ExportTimetable(context.Background())
	if err != nil {
		t.Fatalf("空计划也应可导出: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("导出内容不应为空")
	}
}
