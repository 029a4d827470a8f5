package handler

import (
	"FitPulse/internal/api/dto"
	"FitPulse/internal/pkg/response"
	"FitPulse/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	groupSvc service.GroupService
}

func NewGroupHandler(groupSvc service.GroupService) *GroupHandler {
	return &GroupHandler{
		groupSvc: groupSvc,
	}
}

func (s *GroupHandler) CreateGroup(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.GroupCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	group, err := s.groupSvc.CreateGroup(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, group)
}

func (s *GroupHandler) GetGroup(c *gin.Context) {
	groupID, err := strconv.ParseUint(c.Param("group_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	group, err := s.groupSvc.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, group)
}

func (s *GroupHandler) GetGroups(c *gin.Context) {
	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}

	groups, err := s.groupSvc.GetGroups(c.Request.Context(), &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, groups)
}

func (s *GroupHandler) GetMyGroup(c *gin.Context) {
	userID := c.GetUint64("user_id")

	group, err := s.groupSvc.GetMyGroup(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, group)
}

func (s *GroupHandler) GetMembers(c *gin.Context) {
	groupID, err := strconv.ParseUint(c.Param("group_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	members, err := s.groupSvc.GetMembers(c.Request.Context(), groupID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, members)
}

func (s *GroupHandler) JoinGroup(c *gin.Context) {
	userID := c.GetUint64("user_id")

	groupID, err := strconv.ParseUint(c.Param("group_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.groupSvc.JoinGroup(c.Request.Context(), userID, groupID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *GroupHandler) LeaveGroup(c *gin.Context) {
	userID := c.GetUint64("user_id")

	groupID, err := strconv.ParseUint(c.Param("group_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.groupSvc.LeaveGroup(c.Request.Context(), userID, groupID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
