package model

import (
	"time"
)

// QuarterlyRanking 小组季度竞赛分，(group_id, year, quarter) 唯一
// is_final 置位后分数冻结，再写入视为逻辑错误
type QuarterlyRanking struct {
	ID        uint64    `gorm:"primaryKey"`
	Type      int8      `gorm:"not null;default:1" json:"type"`
	GroupID   uint64    `gorm:"not null;index:idx_rank_group_period,unique" json:"group_id"`
	Year      int       `gorm:"not null;index:idx_rank_group_period,unique" json:"year"`
	Quarter   int       `gorm:"not null;index:idx_rank_group_period,unique" json:"quarter"`
	Score     float64   `gorm:"not null;default:0" json:"score"`
	IsFinal   bool      `gorm:"not null;default:false" json:"is_final"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (QuarterlyRanking) TableName() string {
	return "quarterly_rankings"
}
