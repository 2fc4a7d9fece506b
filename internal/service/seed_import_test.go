package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const seedYAML = `
courses:
  - code: CS101
    name: Algo
    professor: Dr.X
    unit: 3
    exam_date: "1403/10/20"
    times:
      - {day: 0, start_time: 8, recurrence: static}
      - {day: 2, start_time: 10, recurrence: odd}
      - {day: 2, start_time: 10, recurrence: even}
  - code: MA201
    name: Calc
    professor: Dr.Y
    unit: 2
    times:
      - {day: 0, start_time: 8, recurrence: odd}
      - {day: 1, start_time: 12, recurrence: static}
  - code: PH100
    times:
      - {day: 3, start_time: 9, recurrence: static}
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPlannerService_ImportSeed(t *testing.T) {
	svc, _ := setupTestPlannerService()

	result, err := svc.ImportSeed(context.Background(), writeSeed(t, seedYAML))
	if err != nil {
		t.Fatalf("ImportSeed 应成功: %v", err)
	}
	// CS101×3 + MA201 周日 12 点 接受；MA201 周六 8 点冲突、PH100 非法时间 拒绝
	if result.Accepted != 4 || result.Rejected != 2 {
		t.Errorf("期望 4 接受 / 2 拒绝，实际 %+v", result)
	}

	courses := svc.GetCourses()
	if len(courses) != 2 {
		t.Fatalf("期望 2 门课，实际 %d", len(courses))
	}
	if courses[0].ExamDate != "1403/10/20" || len(courses[0].Times) != 3 {
		t.Errorf("CS101 导入不符: %+v", courses[0])
	}
	if svc.GetTotalUnits() != 5 {
		t.Errorf("期望总学分 5，实际 %d", svc.GetTotalUnits())
	}
}

func TestPlannerService_ImportSeed_Errors(t *testing.T) {
	svc, _ := setupTestPlannerService()

	if _, err := svc.ImportSeed(context.Background(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("文件不存在应返回错误")
	}
	if _, err := svc.ImportSeed(context.Background(), writeSeed(t, "courses: [unclosed")); err == nil {
		t.Error("YAML 格式错误应返回错误")
	}
}

func TestPlannerService_ImportSeed_ExampleFile(t *testing.T) {
	svc, _ := setupTestPlannerService()

	result, err := svc.ImportSeed(context.Background(), filepath.Join("..", "..", "config", "seed", "example-plan.yaml"))
	if err != nil {
		t.Fatalf("示例计划应可导入: %v", err)
	}
	if result.Accepted != 4 || result.Rejected != 0 {
		t.Errorf("期望全部 4 条接受，实际 %+v", result)
	}
	if svc.GetTotalUnits() != 6 {
		t.Errorf("期望总学分 6，实际 %d", svc.GetTotalUnits())
	}
}

func TestPlannerService_ImportSeed_UnitOutOfRange(t *testing.T) {
	svc, snapRepo := setupTestPlannerService()

	content := `
courses:
  - {code: X1, name: A, professor: P, unit: 9, times: [{day: 0, start_time: 8}]}
  - {code: X2, name: B, professor: Q, unit: -3, times: [{day: 1, start_time: 8}]}
  - {code: X3, name: C, professor: R, unit: 4, times: [{day: 2, start_time: 8, recurrence: weekly}]}
`
	result, err := svc.ImportSeed(context.Background(), writeSeed(t, content))
	if err != nil {
		t.Fatalf("ImportSeed 应成功: %v", err)
	}
	if result.Accepted != 0 || result.Rejected != 3 {
		t.Fatalf("期望 0 接受 / 3 拒绝，实际 %+v", result)
	}
	want := []string{"X1: INVALID_UNIT", "X2: INVALID_UNIT", "X3: INVALID_SLOT"}
	for i, r := range want {
		if result.Reasons[i] != r {
			t.Errorf("第 %d 条原因期望 %q，实际 %q", i+1, r, result.Reasons[i])
		}
	}
	if len(svc.GetCourses()) != 0 || svc.GetTotalUnits() != 0 {
		t.Errorf("越界学分不应写入，实际 %+v", svc.GetCourses())
	}
	if _, ok := snapRepo.data["courses"]; ok {
		t.Error("全部被拒绝时不应写快照")
	}
}
