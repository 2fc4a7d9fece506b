package model

import "time"

// PlanSnapshot 课程快照表，对应 plan_snapshots
// 每个 key 一行，Payload 为序列化后的课程列表
type PlanSnapshot struct {
	Key       string    `gorm:"type:varchar(100);primaryKey"       json:"key"`
	Payload   []byte    `gorm:"type:bytea;not null"                json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName 指定表名
func (PlanSnapshot) TableName() string { return "plan_snapshots" }
