package model

import (
	"encoding/json"
	"testing"
)

func TestRecurrence_CompatibleWith(t *testing.T) {
	tests := []struct {
		a, b Recurrence
		want bool
	}{
		{RecurrenceStatic, RecurrenceStatic, false},
		{RecurrenceStatic, RecurrenceOdd, false},
		{RecurrenceEven, RecurrenceStatic, false},
		{RecurrenceOdd, RecurrenceOdd, false},
		{RecurrenceEven, RecurrenceEven, false},
		{RecurrenceOdd, RecurrenceEven, true},
		{RecurrenceEven, RecurrenceOdd, true},
	}
	for _, tt := range tests {
		if got := tt.a.CompatibleWith(tt.b); got != tt.want {
			t.Errorf("%s vs %s: 期望 %v，实际 %v", tt.a, tt.b, tt.want, got)
		}
	}
}

func TestDisplayOrder(t *testing.T) {
	if Weekdays[0] != Saturday || Weekdays[len(Weekdays)-1] != Thursday {
		t.Errorf("星期顺序应为周六→周四: %v", Weekdays)
	}
	for i := 1; i < len(SlotHours); i++ {
		if SlotHours[i] <= SlotHours[i-1] {
			t.Fatalf("时间段应升序: %v", SlotHours)
		}
	}
	want := []Recurrence{RecurrenceStatic, RecurrenceOdd, RecurrenceEven}
	for i, r := range want {
		if Recurrences[i] != r {
			t.Errorf("重复类型顺序错误: %v", Recurrences)
		}
	}
}

func TestSlotHour(t *testing.T) {
	if !SlotHour(14).Valid() || SlotHour(9).Valid() {
		t.Error("SlotHour.Valid 判断错误")
	}
	if SlotHour(18).Label() != "18 - 20" {
		t.Errorf("期望 18 - 20，实际 %s", SlotHour(18).Label())
	}
	if SlotHour(8).Index() != 0 || SlotHour(7).Index() != -1 {
		t.Error("SlotHour.Index 计算错误")
	}
}

func TestCourse_Clone(t *testing.T) {
	c := Course{Code: "CS101", Times: []TimeSlot{{Day: Saturday, StartTime: 8, Recurrence: RecurrenceStatic}}}
	cp := c.Clone()
	cp.Times[0].Day = Monday
	if c.Times[0].Day != Saturday {
		t.Error("Clone 不应与原值共享 Times")
	}
}

func TestCourse_UnmarshalJSON_UnitForms(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{`{"code":"A","unit":3}`, 3},
		{`{"code":"A","unit":"2"}`, 2},
		{`{"code":"A","unit":""}`, 0},
		{`{"code":"A"}`, 0},
	}
	for _, tt := range tests {
		var c Course
		if err := json.Unmarshal([]byte(tt.raw), &c); err != nil {
			t.Fatalf("%s 解析失败: %v", tt.raw, err)
		}
		if c.Unit != tt.want || c.Code != "A" {
			t.Errorf("%s: 期望 unit=%d，实际 %+v", tt.raw, tt.want, c)
		}
	}

	var c Course
	if err := json.Unmarshal([]byte(`{"code":"A","unit":"three"}`), &c); err == nil {
		t.Error("非数字 unit 应返回错误")
	}
}

func TestCourse_Validate(t *testing.T) {
	ok := Course{Code: "CS101", Unit: MaxUnit, Times: []TimeSlot{{Day: Thursday, StartTime: 18, Recurrence: RecurrenceEven}}}
	if err := ok.Validate(); err != nil {
		t.Errorf("合法课程不应报错: %v", err)
	}

	bad := []Course{
		{Code: "", Unit: 1},
		{Code: "A", Unit: MaxUnit + 1},
		{Code: "A", Unit: -1},
		{Code: "A", Times: []TimeSlot{{Day: Weekday(6), StartTime: 8, Recurrence: RecurrenceStatic}}},
		{Code: "A", Times: []TimeSlot{{Day: Saturday, StartTime: 20, Recurrence: RecurrenceStatic}}},
		{Code: "A", Times: []TimeSlot{{Day: Saturday, StartTime: 8, Recurrence: ""}}},
	}
	for _, c := range bad {
		if err := c.Validate(); err == nil {
			t.Errorf("期望校验失败: %+v", c)
		}
	}
}
