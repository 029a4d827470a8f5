package handler

import (
	"FitPulse/internal/api/dto"
	"FitPulse/internal/pkg/response"
	"FitPulse/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.CreatePostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.postSvc.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := s.postSvc.GetPost(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) GetMyPosts(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}

	posts, err := s.postSvc.GetPostsByUser(c.Request.Context(), userID, userID, &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) GetUserPosts(c *gin.Context) {
	userID := c.GetUint64("user_id")

	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var page dto.PageQuery
	if err = c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}

	posts, err := s.postSvc.GetPostsByUser(c.Request.Context(), userID, targetID, &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) GetGroupPosts(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}

	posts, err := s.postSvc.GetGroupPosts(c.Request.Context(), userID, &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) GetPopularPosts(c *gin.Context) {
	userID := c.GetUint64("user_id")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	posts, err := s.postSvc.GetPopularPosts(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.UpdatePostDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err = s.postSvc.UpdatePost(c.Request.Context(), userID, postID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.postSvc.DeletePost(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
