package model

import (
	"encoding/json"
	"fmt"
)

// ── 星期 ──

// Weekday 上课日，按展示顺序编码：周六=0 … 周四=5
type Weekday int

const (
	Saturday Weekday = iota
	Sunday
	Monday
	Tuesday
	Wednesday
	Thursday
)

// Weekdays 展示顺序（周六 → 周四）
var Weekdays = []Weekday{Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday}

var weekdayLabels = map[Weekday]string{
	Saturday:  "شنبه",
	Sunday:    "یکشنبه",
	Monday:    "دوشنبه",
	Tuesday:   "سه شنبه",
	Wednesday: "چهارشنبه",
	Thursday:  "پنج شنبه",
}

// Valid 是否为合法的上课日
func (d Weekday) Valid() bool { return d >= Saturday && d <= Thursday }

// Label 界面显示名称
func (d Weekday) Label() string { return weekdayLabels[d] }

// ── 时间段 ──

// SlotHour 两小时时间段的起始整点
type SlotHour int

// SlotHours 展示顺序（8 → 18）
var SlotHours = []SlotHour{8, 10, 12, 14, 16, 18}

// Valid 是否为合法的起始整点
func (h SlotHour) Valid() bool {
	for _, v := range SlotHours {
		if v == h {
			return true
		}
	}
	return false
}

// Label 形如 "8 - 10"
func (h SlotHour) Label() string { return fmt.Sprintf("%d - %d", int(h), int(h)+2) }

// Index 在展示顺序中的下标，不合法时返回 -1
func (h SlotHour) Index() int {
	for i, v := range SlotHours {
		if v == h {
			return i
		}
	}
	return -1
}

// ── 重复类型 ──

// Recurrence 上课周期：每周 / 单周 / 双周
type Recurrence string

const (
	RecurrenceStatic Recurrence = "static"
	RecurrenceOdd    Recurrence = "odd"
	RecurrenceEven   Recurrence = "even"
)

// Recurrences 选项顺序（每周、单周、双周）
var Recurrences = []Recurrence{RecurrenceStatic, RecurrenceOdd, RecurrenceEven}

var recurrenceLabels = map[Recurrence]string{
	RecurrenceStatic: "ثابت",
	RecurrenceOdd:    "هفته فرد",
	RecurrenceEven:   "هفته زوج",
}

// Valid 是否为合法的重复类型
func (r Recurrence) Valid() bool {
	_, ok := recurrenceLabels[r]
	return ok
}

// Label 界面显示名称
func (r Recurrence) Label() string { return recurrenceLabels[r] }

// CompatibleWith 同一时间段上两种周期能否共存：
// 只有单周与双周互不占用，其余组合（含每周）均冲突。
func (r Recurrence) CompatibleWith(other Recurrence) bool {
	if r == RecurrenceStatic || other == RecurrenceStatic {
		return false
	}
	return r != other
}

// ── 课程 ──

// TimeSlot 课程的一个上课时间
type TimeSlot struct {
	Day        Weekday    `json:"day"`
	StartTime  SlotHour   `json:"startTime"`
	Recurrence Recurrence `json:"recurrence"`
}

// SameSlot 是否落在同一 (星期, 时间段) 坐标
func (t TimeSlot) SameSlot(other TimeSlot) bool {
	return t.Day == other.Day && t.StartTime == other.StartTime
}

// MaxUnit 单门课程学分上限，学分取值 0..MaxUnit
const MaxUnit = 4

// Course 一门已选课程，以 Code 唯一标识
type Course struct {
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	Professor string     `json:"professor"`
	Unit      int        `json:"unit"`
	ExamDate  string     `json:"examDate"`
	ExamTime  string     `json:"examTime"`
	Times     []TimeSlot `json:"times"`
}

// Clone 深拷贝，Times 不与原值共享底层数组
func (c Course) Clone() Course {
	cp := c
	cp.Times = append([]TimeSlot(nil), c.Times...)
	return cp
}

// Validate 校验单门课程：代码非空、学分在范围内、每个上课时间均为合法枚举值
func (c Course) Validate() error {
	if c.Code == "" {
		return fmt.Errorf("course: empty code")
	}
	if c.Unit < 0 || c.Unit > MaxUnit {
		return fmt.Errorf("course %q: unit %d out of range", c.Code, c.Unit)
	}
	for _, t := range c.Times {
		if !t.Day.Valid() || !t.StartTime.Valid() || !t.Recurrence.Valid() {
			return fmt.Errorf("course %q: invalid time slot %+v", c.Code, t)
		}
	}
	return nil
}

// UnmarshalJSON 兼容旧快照：unit 可能以字符串保存（"3"）
func (c *Course) UnmarshalJSON(data []byte) error {
	type alias Course
	var raw struct {
		alias
		Unit json.RawMessage `json:"unit"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = Course(raw.alias)
	c.Unit = 0
	if len(raw.Unit) == 0 || string(raw.Unit) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw.Unit, &c.Unit); err == nil {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw.Unit, &s); err != nil {
		return fmt.Errorf("course %q: invalid unit %s", c.Code, raw.Unit)
	}
	if s == "" {
		return nil
	}
	if _, err := fmt.Sscanf(s, "%d", &c.Unit); err != nil {
		return fmt.Errorf("course %q: invalid unit %q", c.Code, s)
	}
	return nil
}
