package model

import (
	"time"
)

// DailyGroupActivity 小组每日活跃计数，(group_id, date) 唯一
// 只写不读，供下游报表使用；写入走存储层原子自增
type DailyGroupActivity struct {
	ID        uint64    `gorm:"primaryKey"`
	GroupID   uint64    `gorm:"not null;index:idx_activity_group_date,unique" json:"group_id"`
	Date      time.Time `gorm:"type:date;not null;index:idx_activity_group_date,unique" json:"date"`
	Value     int       `gorm:"not null;default:0" json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

func (DailyGroupActivity) TableName() string {
	return "daily_group_activity"
}
