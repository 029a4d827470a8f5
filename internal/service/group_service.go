package service

import (
	"FitPulse/internal/api/dto"
	"FitPulse/internal/model"
	"FitPulse/internal/repository"
	"context"
	"errors"

	"github.com/jinzhu/copier"
)

type GroupService interface {
	CreateGroup(ctx context.Context, userID uint64, groupDTO *dto.GroupCreateDTO) (*dto.GroupDTO, error)
	GetGroup(ctx context.Context, groupID uint64) (*dto.GroupDTO, error)
	GetGroups(ctx context.Context, page *dto.PageQuery) ([]*dto.GroupDTO, error)
	GetMyGroup(ctx context.Context, userID uint64) (*dto.GroupDTO, error)
	GetMembers(ctx context.Context, groupID uint64) ([]*dto.GroupMemberDTO, error)
	JoinGroup(ctx context.Context, userID, groupID uint64) error
	LeaveGroup(ctx context.Context, userID, groupID uint64) error
}

type GroupServiceImpl struct {
	groupRepo repository.GroupRepo
}

func NewGroupService(groupRepo repository.GroupRepo) GroupService {
	return &GroupServiceImpl{groupRepo: groupRepo}
}

// CreateGroup 建组，创建者自动入组，一人同时只能在一个小组
func (s *GroupServiceImpl) CreateGroup(ctx context.Context, userID uint64, groupDTO *dto.GroupCreateDTO) (*dto.GroupDTO, error) {
	member, err := s.groupRepo.FindUserGroup(ctx, userID)
	if err != nil {
		return nil, err
	}
	if member != nil {
		return nil, ErrAlreadyInGroup
	}

	group := &model.Group{}
	if err = copier.Copy(group, groupDTO); err != nil {
		return nil, err
	}
	group.OwnerID = userID

	if err = s.groupRepo.CreateGroup(ctx, group); err != nil {
		if errors.Is(err, repository.ErrAlreadyMember) {
			return nil, ErrAlreadyInGroup
		}
		return nil, err
	}
	return s.toGroupDTO(ctx, group)
}

func (s *GroupServiceImpl) GetGroup(ctx context.Context, groupID uint64) (*dto.GroupDTO, error) {
	group, err := s.groupRepo.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return s.toGroupDTO(ctx, group)
}

func (s *GroupServiceImpl) GetGroups(ctx context.Context, page *dto.PageQuery) ([]*dto.GroupDTO, error) {
	page.Normalize()
	groups, err := s.groupRepo.GetGroups(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.GroupDTO, 0, len(groups))
	for _, group := range groups {
		item, err := s.toGroupDTO(ctx, group)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *GroupServiceImpl) GetMyGroup(ctx context.Context, userID uint64) (*dto.GroupDTO, error) {
	member, err := s.groupRepo.FindUserGroup(ctx, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrNotGroupMember
	}
	return s.GetGroup(ctx, member.GroupID)
}

func (s *GroupServiceImpl) GetMembers(ctx context.Context, groupID uint64) ([]*dto.GroupMemberDTO, error) {
	group, err := s.groupRepo.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	members, err := s.groupRepo.GetMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.GroupMemberDTO, 0, len(members))
	for _, member := range members {
		out = append(out, &dto.GroupMemberDTO{
			UserID:       member.UserID,
			Nickname:     member.User.Nickname,
			ProfileImage: member.User.ProfileImage,
			JoinedAt:     member.JoinedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return out, nil
}

func (s *GroupServiceImpl) JoinGroup(ctx context.Context, userID, groupID uint64) error {
	group, err := s.groupRepo.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrGroupNotFound
	}

	err = s.groupRepo.AddMember(ctx, &model.GroupMember{GroupID: groupID, UserID: userID})
	if errors.Is(err, repository.ErrAlreadyMember) {
		return ErrAlreadyInGroup
	}
	return err
}

func (s *GroupServiceImpl) LeaveGroup(ctx context.Context, userID, groupID uint64) error {
	rows, err := s.groupRepo.RemoveMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotGroupMember
	}
	return nil
}

func (s *GroupServiceImpl) toGroupDTO(ctx context.Context, group *model.Group) (*dto.GroupDTO, error) {
	out := &dto.GroupDTO{}
	if err := copier.Copy(out, group); err != nil {
		return nil, err
	}
	out.CreatedAt = group.CreatedAt.Format("2006-01-02 15:04:05")

	count, err := s.groupRepo.CountMembers(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	out.MemberCount = count
	return out, nil
}
