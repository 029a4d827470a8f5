package model

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primaryKey"`
	Username     string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_username" json:"username"`
	Password     string    `gorm:"type:varchar(128);not null" json:"-"`
	Nickname     string    `gorm:"type:varchar(32);not null" json:"nickname"`
	ProfileImage string    `gorm:"type:varchar(512)" json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
