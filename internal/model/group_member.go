package model

import (
	"time"
)

// GroupMember 小组成员关系
// user_id 唯一索引保证一名用户同一时间只属于一个小组
type GroupMember struct {
	ID       uint64    `gorm:"primaryKey"`
	GroupID  uint64    `gorm:"not null;index:idx_member_group" json:"group_id"`
	UserID   uint64    `gorm:"not null;uniqueIndex:idx_member_user" json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (GroupMember) TableName() string {
	return "group_members"
}
