package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"course-planner/internal/model"
	"course-planner/internal/planner"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

const (
	timetableSheet = "برنامه هفتگی"
	courseSheet    = "دروس"
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - Sheet 1：周课表，行为星期（周六→周四），列为时间段（8→18）
//   - Sheet 2：课程列表与总学分
type ExportService interface {
	// ExportTimetable 导出当前计划为 Excel
	ExportTimetable(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	planner PlannerService
	logger  *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(plannerSvc PlannerService, logger *zap.Logger) ExportService {
	return &exportService{planner: plannerSvc, logger: logger}
}

func (s *exportService) ExportTimetable(_ context.Context) (*bytes.Buffer, string, error) {
	courses := s.planner.GetCourses()

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(timetableSheet)
	if err != nil {
		s.logger.Error("创建工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")
	if _, err := f.NewSheet(courseSheet); err != nil {
		s.logger.Error("创建工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	cellStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})

	writeTimetableSheet(f, planner.BuildTimetable(courses), headerStyle, cellStyle)
	writeCourseSheet(f, courses, headerStyle)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, "course-plan.xlsx", nil
}

// writeTimetableSheet 表头：| 星期 | 8 - 10 | … | 18 - 20 |
func writeTimetableSheet(f *excelize.File, tt planner.Timetable, headerStyle, cellStyle int) {
	sh := timetableSheet
	f.SetSheetView(sh, 0, &excelize.ViewOptions{RightToLeft: boolPtr(true)})
	f.SetColWidth(sh, "A", "A", 12)
	last := colName(len(tt.Hours))
	f.SetColWidth(sh, "B", last, 24)

	for i, h := range tt.Hours {
		f.SetCellValue(sh, cell(colName(i+1), 1), h.Label())
	}
	f.SetCellStyle(sh, "A1", cell(last, 1), headerStyle)

	for r, row := range tt.Rows {
		rowNum := r + 2
		f.SetCellValue(sh, cell("A", rowNum), row.Label)
		f.SetCellStyle(sh, cell("A", rowNum), cell("A", rowNum), headerStyle)
		for c, entries := range row.Cells {
			lines := make([]string, 0, len(entries))
			for _, e := range entries {
				line := e.Name
				if line == "" {
					line = e.Code
				}
				if e.Recurrence != model.RecurrenceStatic {
					line += " (" + e.Recurrence.Label() + ")"
				}
				lines = append(lines, line)
			}
			f.SetCellValue(sh, cell(colName(c+1), rowNum), strings.Join(lines, "\n"))
		}
		f.SetCellStyle(sh, cell("B", rowNum), cell(last, rowNum), cellStyle)
	}
}

// writeCourseSheet 表头：| 代码 | 名称 | 教师 | 学分 | 考试日期 | 考试时间 |，末行为总学分
func writeCourseSheet(f *excelize.File, courses []model.Course, headerStyle int) {
	sh := courseSheet
	f.SetSheetView(sh, 0, &excelize.ViewOptions{RightToLeft: boolPtr(true)})
	f.SetColWidth(sh, "A", "A", 12)
	f.SetColWidth(sh, "B", "C", 24)
	f.SetColWidth(sh, "D", "F", 14)

	headers := []string{"کد درس", "نام درس", "نام استاد", "واحد", "تاریخ امتحان", "ساعت امتحان"}
	for i, h := range headers {
		f.SetCellValue(sh, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sh, "A1", cell(colName(len(headers)-1), 1), headerStyle)

	row := 2
	for _, c := range courses {
		f.SetCellValue(sh, cell("A", row), c.Code)
		f.SetCellValue(sh, cell("B", row), c.Name)
		f.SetCellValue(sh, cell("C", row), c.Professor)
		f.SetCellValue(sh, cell("D", row), c.Unit)
		f.SetCellValue(sh, cell("E", row), c.ExamDate)
		f.SetCellValue(sh, cell("F", row), c.ExamTime)
		row++
	}

	f.SetCellValue(sh, cell("C", row), "تعداد واحد انتخاب شده")
	f.SetCellValue(sh, cell("D", row), planner.TotalUnits(courses))
	f.SetCellStyle(sh, cell("C", row), cell("D", row), headerStyle)
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func boolPtr(b bool) *bool { return &b }
