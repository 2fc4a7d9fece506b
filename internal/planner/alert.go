package planner

import (
	"sync"
	"time"
)

// DefaultAlertTTL 提示信息默认显示时长
const DefaultAlertTTL = 3 * time.Second

type scheduleFunc func(d time.Duration, f func()) (stop func() bool)

func afterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// Alert 单条提示信息，显示 ttl 后自动清除。
// 每次 Show 会取消尚未触发的清除并重新计时，任意时刻至多一个待执行的清除。
type Alert struct {
	mu       sync.Mutex
	ttl      time.Duration
	message  string
	gen      uint64
	stop     func() bool
	schedule scheduleFunc
}

// NewAlert 创建 Alert，ttl<=0 时使用 DefaultAlertTTL
func NewAlert(ttl time.Duration) *Alert {
	if ttl <= 0 {
		ttl = DefaultAlertTTL
	}
	return &Alert{ttl: ttl, schedule: afterFunc}
}

// Show 显示提示并重新开始计时
func (a *Alert) Show(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cancelLocked()
	a.gen++
	gen := a.gen
	a.message = message
	a.stop = a.schedule(a.ttl, func() { a.expire(gen) })
}

// expire 仅清除同一代的提示；已被新提示替换时忽略
func (a *Alert) expire(gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if gen != a.gen {
		return
	}
	a.message = ""
	a.stop = nil
}

// Message 当前提示，无提示时为空串
func (a *Alert) Message() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.message
}

// Clear 立即清除提示并取消计时
func (a *Alert) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cancelLocked()
	a.gen++
	a.message = ""
}

func (a *Alert) cancelLocked() {
	if a.stop != nil {
		a.stop()
		a.stop = nil
	}
}
