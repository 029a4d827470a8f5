package model

import (
	"time"
)

type Post struct {
	ID            uint64    `gorm:"primaryKey"`
	UserID        uint64    `gorm:"not null;index:idx_user_created" json:"user_id"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	Content       string    `gorm:"not null" json:"content"`
	ImageURL      string    `gorm:"type:varchar(512)" json:"image_url"`
	IsPublic      bool      `gorm:"not null;default:true" json:"is_public"`
	LikesCount    int       `gorm:"not null;default:0" json:"likes_count"`
	CommentsCount int       `gorm:"not null;default:0" json:"comments_count"`
	IsDeleted     bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt     time.Time `gorm:"index:idx_user_created;index:idx_created" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// 关联关系
	User        User         `gorm:"foreignKey:UserID;references:ID"`
	WorkoutLogs []WorkoutLog `gorm:"foreignKey:PostID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
