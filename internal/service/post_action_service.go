package service

import (
	"FitPulse/internal/api/dto"
	"FitPulse/internal/model"
	"FitPulse/internal/pkg/consts"
	"FitPulse/internal/pkg/redis"
	"FitPulse/internal/repository"
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
)

const actionCountTTL = time.Hour

type PostActionService interface {
	LikeAction(ctx context.Context, userID uint64, req *dto.PostActionReq) error
	CreateComment(ctx context.Context, userID uint64, commentDTO *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, userID, commentID uint64) error
	GetComments(ctx context.Context, postID uint64, page *dto.PageQuery) ([]*dto.CommentDTO, error)
	GetActionState(ctx context.Context, userID, postID uint64) (*dto.PostActionStateDTO, error)
}

type PostActionServiceImpl struct {
	actionRepo repository.PostActionRepo
	postRepo   repository.PostRepo
}

func NewPostActionService(actionRepo repository.PostActionRepo, postRepo repository.PostRepo) PostActionService {
	return &PostActionServiceImpl{
		actionRepo: actionRepo,
		postRepo:   postRepo,
	}
}

// LikeAction 点赞或取消点赞，重复操作直接报错
func (s *PostActionServiceImpl) LikeAction(ctx context.Context, userID uint64, req *dto.PostActionReq) error {
	post, err := s.postRepo.GetPost(ctx, req.PostID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	if req.Action == 1 {
		err = s.actionRepo.CreateLike(ctx, &model.Like{UserID: userID, PostID: req.PostID})
		if errors.Is(err, repository.ErrDuplicateAction) {
			return ErrActionDuplicate
		}
		if err != nil {
			return err
		}
	} else {
		rows, err := s.actionRepo.DeleteLike(ctx, userID, req.PostID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrActionDuplicate
		}
	}

	_ = redis.DeleteKey(ctx, consts.PostLikeKey+strconv.FormatUint(req.PostID, 10))
	return nil
}

func (s *PostActionServiceImpl) CreateComment(ctx context.Context, userID uint64, commentDTO *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPost(ctx, commentDTO.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{
		PostID:  commentDTO.PostID,
		UserID:  userID,
		Content: commentDTO.Content,
	}
	if err = s.actionRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	_ = redis.DeleteKey(ctx, consts.PostCommentKey+strconv.FormatUint(commentDTO.PostID, 10))

	out := &dto.CommentDTO{}
	if err = copier.Copy(out, comment); err != nil {
		return nil, err
	}
	out.CreatedAt = comment.CreatedAt.Format("2006-01-02 15:04:05")
	return out, nil
}

// DeleteComment 评论作者或帖子作者可删除
func (s *PostActionServiceImpl) DeleteComment(ctx context.Context, userID, commentID uint64) error {
	comment, err := s.actionRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID {
		post, err := s.postRepo.GetPost(ctx, comment.PostID)
		if err != nil {
			return err
		}
		if post == nil || post.UserID != userID {
			return UnauthorizedError
		}
	}

	if err = s.actionRepo.DeleteComment(ctx, commentID); err != nil {
		return err
	}
	_ = redis.DeleteKey(ctx, consts.PostCommentKey+strconv.FormatUint(comment.PostID, 10))
	return nil
}

func (s *PostActionServiceImpl) GetComments(ctx context.Context, postID uint64, page *dto.PageQuery) ([]*dto.CommentDTO, error) {
	page.Normalize()
	comments, err := s.actionRepo.GetCommentsByPostID(ctx, postID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		item := &dto.CommentDTO{}
		if err = copier.Copy(item, comment); err != nil {
			return nil, err
		}
		item.CreatedAt = comment.CreatedAt.Format("2006-01-02 15:04:05")
		item.Nickname = comment.User.Nickname
		item.ProfileImage = comment.User.ProfileImage
		out = append(out, item)
	}
	return out, nil
}

// GetActionState 帖子交互状态，计数走缓存旁路
func (s *PostActionServiceImpl) GetActionState(ctx context.Context, userID, postID uint64) (*dto.PostActionStateDTO, error) {
	likeCount, err := s.getCachedCount(ctx, consts.PostLikeKey, postID, func() (int64, error) {
		return s.actionRepo.GetLikeCountByPostID(ctx, postID)
	})
	if err != nil {
		return nil, err
	}

	commentCount, err := s.getCachedCount(ctx, consts.PostCommentKey, postID, func() (int64, error) {
		return s.actionRepo.GetCommentCountByPostID(ctx, postID)
	})
	if err != nil {
		return nil, err
	}

	isLiked := false
	if userID > 0 {
		isLiked, err = s.actionRepo.CheckLikeExists(ctx, userID, postID)
		if err != nil {
			return nil, err
		}
	}

	return &dto.PostActionStateDTO{
		LikeCount:    likeCount,
		CommentCount: commentCount,
		IsLiked:      isLiked,
	}, nil
}

func (s *PostActionServiceImpl) getCachedCount(ctx context.Context, prefix string, postID uint64, load func() (int64, error)) (int64, error) {
	key := prefix + strconv.FormatUint(postID, 10)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}
	if !errors.Is(err, redis.ErrKeyMiss) {
		return 0, err
	}

	count, err = load()
	if err != nil {
		return 0, err
	}
	_ = redis.SetWithExpiration(ctx, key, count, actionCountTTL)
	return count, nil
}
