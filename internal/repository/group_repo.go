package repository

import (
	"FitPulse/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrAlreadyMember 用户已加入其他小组
var ErrAlreadyMember = errors.New("already a group member")

type GroupRepo interface {
	CreateGroup(ctx context.Context, group *model.Group) error
	GetGroup(ctx context.Context, id uint64) (*model.Group, error)
	FindUserGroup(ctx context.Context, userID uint64) (*model.GroupMember, error)
	GetMemberIDs(ctx context.Context, groupID uint64) ([]uint64, error)
	GetMembers(ctx context.Context, groupID uint64) ([]*model.GroupMember, error)
	CountMembers(ctx context.Context, groupID uint64) (int64, error)
	AddMember(ctx context.Context, member *model.GroupMember) error
	RemoveMember(ctx context.Context, groupID, userID uint64) (int64, error)
	GetGroups(ctx context.Context, limit, offset int) ([]*model.Group, error)
}

type GroupRepoImpl struct {
	db *gorm.DB
}

func NewGroupRepo(db *gorm.DB) GroupRepo {
	return &GroupRepoImpl{db: db}
}

// CreateGroup 建组并把组长写入成员表，同一事务完成
func (s *GroupRepoImpl) CreateGroup(ctx context.Context, group *model.Group) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		member := &model.GroupMember{
			GroupID:  group.ID,
			UserID:   group.OwnerID,
			JoinedAt: time.Now(),
		}
		if err := tx.Create(member).Error; err != nil {
			if isDuplicateError(err) {
				return ErrAlreadyMember
			}
			return err
		}
		return nil
	})
}

func (s *GroupRepoImpl) GetGroup(ctx context.Context, id uint64) (*model.Group, error) {
	var group model.Group
	err := s.db.WithContext(ctx).First(&group, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

// FindUserGroup 查询用户所属小组，未加入返回 nil
func (s *GroupRepoImpl) FindUserGroup(ctx context.Context, userID uint64) (*model.GroupMember, error) {
	var member model.GroupMember
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (s *GroupRepoImpl) GetMemberIDs(ctx context.Context, groupID uint64) ([]uint64, error) {
	var userIDs []uint64
	err := s.db.WithContext(ctx).Model(&model.GroupMember{}).
		Where("group_id = ?", groupID).
		Pluck("user_id", &userIDs).Error
	return userIDs, err
}

func (s *GroupRepoImpl) GetMembers(ctx context.Context, groupID uint64) ([]*model.GroupMember, error) {
	var members []*model.GroupMember
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("group_id = ?", groupID).
		Order("joined_at ASC").
		Find(&members).Error
	return members, err
}

func (s *GroupRepoImpl) CountMembers(ctx context.Context, groupID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.GroupMember{}).
		Where("group_id = ?", groupID).
		Count(&count).Error
	return count, err
}

func (s *GroupRepoImpl) AddMember(ctx context.Context, member *model.GroupMember) error {
	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now()
	}
	err := s.db.WithContext(ctx).Create(member).Error
	if isDuplicateError(err) {
		return ErrAlreadyMember
	}
	return err
}

func (s *GroupRepoImpl) RemoveMember(ctx context.Context, groupID, userID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&model.GroupMember{})
	return result.RowsAffected, result.Error
}

func (s *GroupRepoImpl) GetGroups(ctx context.Context, limit, offset int) ([]*model.Group, error) {
	var groups []*model.Group
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&groups).Error
	return groups, err
}
