package model

import (
	"time"
)

// WorkoutLog 训练明细，一条帖子按部位拆成多行
// 时长按部位数均摊取整；随帖子整体替换或级联删除
type WorkoutLog struct {
	ID        uint64    `gorm:"primaryKey"`
	PostID    uint64    `gorm:"not null;index:idx_post_id" json:"post_id"`
	UserID    uint64    `gorm:"not null;index:idx_log_user" json:"user_id"`
	BodyPart  string    `gorm:"type:varchar(32);not null" json:"body_part"`
	Duration  int       `gorm:"not null;default:0" json:"duration"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WorkoutLog) TableName() string {
	return "workout_logs"
}
