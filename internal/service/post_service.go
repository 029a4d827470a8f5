package service

import (
	"FitPulse/internal/api/dto"
	"FitPulse/internal/model"
	"FitPulse/internal/pkg/consts"
	"FitPulse/internal/pkg/feedrank"
	"FitPulse/internal/pkg/util"
	"FitPulse/internal/repository"
	"context"
	"math"
	"time"

	"github.com/jinzhu/copier"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, postDTO *dto.CreatePostDTO) (*dto.CreatePostResultDTO, error)
	GetPost(ctx context.Context, viewerID, postID uint64) (*dto.PostDTO, error)
	GetPostsByUser(ctx context.Context, viewerID, targetID uint64, page *dto.PageQuery) ([]*dto.PostDTO, error)
	GetGroupPosts(ctx context.Context, userID uint64, page *dto.PageQuery) ([]*dto.PostDTO, error)
	GetPopularPosts(ctx context.Context, viewerID uint64, limit int) ([]*dto.PostDTO, error)
	UpdatePost(ctx context.Context, userID, postID uint64, postDTO *dto.UpdatePostDTO) error
	DeletePost(ctx context.Context, userID, postID uint64) error
}

type PostServiceImpl struct {
	postRepo    repository.PostRepo
	groupRepo   repository.GroupRepo
	activitySvc ActivityService
}

func NewPostService(postRepo repository.PostRepo, groupRepo repository.GroupRepo, activitySvc ActivityService) PostService {
	return &PostServiceImpl{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		activitySvc: activitySvc,
	}
}

// CreatePost 发帖主流程：资格校验、帖子与训练明细落库、统计结算
func (s *PostServiceImpl) CreatePost(ctx context.Context, userID uint64, postDTO *dto.CreatePostDTO) (*dto.CreatePostResultDTO, error) {
	bodyParts, logs, err := buildWorkoutLogs(postDTO.BodyParts, postDTO.Duration)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err = s.activitySvc.EnsureEligible(ctx, userID, now); err != nil {
		return nil, err
	}

	post := &model.Post{}
	if err = copier.Copy(post, postDTO); err != nil {
		return nil, err
	}
	post.UserID = userID
	post.IsPublic = postDTO.IsPublic == nil || *postDTO.IsPublic

	if err = s.postRepo.CreatePost(ctx, post, logs); err != nil {
		return nil, err
	}

	result, err := s.activitySvc.RecordPost(ctx, userID, post.ID, bodyParts, post.CreatedAt)
	if err != nil {
		return nil, err
	}

	created, err := s.postRepo.GetPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, UnExpectedError
	}

	postOut, err := toPostDTO(created)
	if err != nil {
		return nil, err
	}

	activity := &dto.PostActivityDTO{
		FirstOfDay:    result.FirstOfDay,
		CurrentStreak: result.Statistics.CurrentStreak,
		LongestStreak: result.Statistics.LongestStreak,
		Degraded:      result.Degraded,
	}
	if result.Ranking != nil {
		activity.GroupScore = result.Ranking.Score
	}

	return &dto.CreatePostResultDTO{Post: postOut, Activity: activity}, nil
}

func (s *PostServiceImpl) GetPost(ctx context.Context, viewerID, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if !post.IsPublic && post.UserID != viewerID {
		return nil, ErrPostNotFound
	}
	return toPostDTO(post)
}

func (s *PostServiceImpl) GetPostsByUser(ctx context.Context, viewerID, targetID uint64, page *dto.PageQuery) ([]*dto.PostDTO, error) {
	page.Normalize()
	includePrivate := viewerID == targetID
	posts, err := s.postRepo.GetPostsByUser(ctx, targetID, includePrivate, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toPostDTOs(posts)
}

// GetGroupPosts 小组动态流，仅对组内成员开放
func (s *PostServiceImpl) GetGroupPosts(ctx context.Context, userID uint64, page *dto.PageQuery) ([]*dto.PostDTO, error) {
	page.Normalize()
	member, err := s.groupRepo.FindUserGroup(ctx, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrNotGroupMember
	}
	memberIDs, err := s.groupRepo.GetMemberIDs(ctx, member.GroupID)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.GetPostsByUsers(ctx, memberIDs, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toPostDTOs(posts)
}

// GetPopularPosts 热门信息流：近 30 天候选集按热度分重排后截断
// 候选集按超采样倍数拉取，避免近期低互动帖把高热老帖挤出窗口
// 热度分只作排序键，不落库也不随响应返回
func (s *PostServiceImpl) GetPopularPosts(ctx context.Context, viewerID uint64, limit int) ([]*dto.PostDTO, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	now := time.Now()
	since := now.AddDate(0, 0, -consts.PopularWindowDays)
	posts, err := s.postRepo.GetVisiblePostsSince(ctx, viewerID, since, limit*consts.PopularOverFetchFactor)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]*model.Post, len(posts))
	candidates := make([]feedrank.Candidate, 0, len(posts))
	for _, post := range posts {
		byID[post.ID] = post
		candidates = append(candidates, feedrank.Candidate{
			PostID:       post.ID,
			CreatedAt:    post.CreatedAt,
			LikeCount:    int64(post.LikesCount),
			CommentCount: int64(post.CommentsCount),
		})
	}

	ranked := feedrank.Rank(candidates, now, limit)

	out := make([]*dto.PostDTO, 0, len(ranked))
	for _, c := range ranked {
		postOut, err := toPostDTO(byID[c.PostID])
		if err != nil {
			return nil, err
		}
		out = append(out, postOut)
	}
	return out, nil
}

// UpdatePost 修改帖子，训练明细整体替换但不回溯已结算的统计
func (s *PostServiceImpl) UpdatePost(ctx context.Context, userID, postID uint64, postDTO *dto.UpdatePostDTO) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		return UnauthorizedError
	}

	var logs []*model.WorkoutLog
	if len(postDTO.BodyParts) > 0 {
		if postDTO.Duration <= 0 {
			return ErrParamInvalid
		}
		_, logs, err = buildWorkoutLogs(postDTO.BodyParts, postDTO.Duration)
		if err != nil {
			return err
		}
	}

	update := &model.Post{
		ID:       post.ID,
		UserID:   post.UserID,
		Title:    postDTO.Title,
		Content:  postDTO.Content,
		ImageURL: postDTO.ImageURL,
	}
	if postDTO.IsPublic != nil {
		update.IsPublic = *postDTO.IsPublic
	}

	return s.postRepo.UpdatePost(ctx, update, logs)
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, userID, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		return UnauthorizedError
	}
	return s.postRepo.DeletePost(ctx, postID)
}

// buildWorkoutLogs 去重校验训练部位，按部位数均摊总时长（四舍五入）
func buildWorkoutLogs(bodyParts []string, duration int) ([]string, []*model.WorkoutLog, error) {
	parts := util.DedupStrings(bodyParts)
	if len(parts) == 0 {
		return nil, nil, ErrBodyPartInvalid
	}
	for _, part := range parts {
		if !consts.IsBodyPart(part) {
			return nil, nil, ErrBodyPartInvalid
		}
	}

	share := int(math.Round(float64(duration) / float64(len(parts))))
	logs := make([]*model.WorkoutLog, 0, len(parts))
	for _, part := range parts {
		logs = append(logs, &model.WorkoutLog{
			BodyPart: part,
			Duration: share,
		})
	}
	return parts, logs, nil
}

func toPostDTO(post *model.Post) (*dto.PostDTO, error) {
	out := &dto.PostDTO{}
	if err := copier.Copy(out, post); err != nil {
		return nil, err
	}
	out.CreatedAt = post.CreatedAt.Format("2006-01-02 15:04:05")
	out.UpdatedAt = post.UpdatedAt.Format("2006-01-02 15:04:05")
	out.LikesCount = int64(post.LikesCount)
	out.CommentsCount = int64(post.CommentsCount)

	out.BodyParts = make([]string, 0, len(post.WorkoutLogs))
	out.Duration = 0
	for _, wl := range post.WorkoutLogs {
		out.BodyParts = append(out.BodyParts, wl.BodyPart)
		out.Duration += wl.Duration
	}

	out.UserID = post.UserID
	out.Nickname = post.User.Nickname
	out.ProfileImage = post.User.ProfileImage
	return out, nil
}

func toPostDTOs(posts []*model.Post) ([]*dto.PostDTO, error) {
	out := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		item, err := toPostDTO(post)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
