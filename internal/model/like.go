package model

import (
	"time"
)

type Like struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"not null;index:idx_like_user_post,unique" json:"user_id"`
	PostID    uint64    `gorm:"not null;index:idx_like_user_post,unique;index:idx_like_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
