package model

import (
	"time"
)

// QuarterlyStatistics 用户季度统计，(user_id, year, quarter) 唯一
// 计数 map 整行读改写，跨请求一致性由行锁事务保证
type QuarterlyStatistics struct {
	ID             uint64         `gorm:"primaryKey"`
	UserID         uint64         `gorm:"not null;index:idx_stat_user_period,unique" json:"user_id"`
	Year           int            `gorm:"not null;index:idx_stat_user_period,unique" json:"year"`
	Quarter        int            `gorm:"not null;index:idx_stat_user_period,unique" json:"quarter"`
	BodyPartCounts map[string]int `gorm:"serializer:json;type:json" json:"body_part_counts"`
	TimeZoneCounts map[string]int `gorm:"serializer:json;type:json" json:"time_zone_counts"`
	CurrentStreak  int            `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak  int            `gorm:"not null;default:0" json:"longest_streak"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (QuarterlyStatistics) TableName() string {
	return "quarterly_statistics"
}
