package repository

import (
	"FitPulse/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post, logs []*model.WorkoutLog) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostByIds(ctx context.Context, ids []uint64) ([]*model.Post, error)
	ExistsInRange(ctx context.Context, userID uint64, start, end time.Time, excludeID uint64) (bool, error)
	GetPostsByUser(ctx context.Context, userID uint64, includePrivate bool, limit, offset int) ([]*model.Post, error)
	GetPostsByUsers(ctx context.Context, userIDs []uint64, limit, offset int) ([]*model.Post, error)
	GetVisiblePostsSince(ctx context.Context, viewerID uint64, since time.Time, limit int) ([]*model.Post, error)
	UpdatePost(ctx context.Context, post *model.Post, logs []*model.WorkoutLog) error
	DeletePost(ctx context.Context, id uint64) error
	UpdatePostCounts(ctx context.Context, id uint64, likes, comments int64) error
	IncrLikesCount(ctx context.Context, id uint64, delta int) error
	IncrCommentsCount(ctx context.Context, id uint64, delta int) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post, logs []*model.WorkoutLog) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		if len(logs) == 0 {
			return nil
		}
		for _, wl := range logs {
			wl.PostID = post.ID
			wl.UserID = post.UserID
		}
		return tx.Create(logs).Error
	})
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("WorkoutLogs").
		Where("is_deleted = ?", false).
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) GetPostByIds(ctx context.Context, ids []uint64) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("WorkoutLogs").
		Where("id IN ? AND is_deleted = ?", ids, false).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ExistsInRange 判断用户在 [start, end) 内是否已有发帖，excludeID 用于排除当前帖子自身
func (s *PostRepoImpl) ExistsInRange(ctx context.Context, userID uint64, start, end time.Time, excludeID uint64) (bool, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Where("created_at >= ? AND created_at < ?", start, end)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (s *PostRepoImpl) GetPostsByUser(ctx context.Context, userID uint64, includePrivate bool, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	query := s.db.WithContext(ctx).
		Preload("User").
		Preload("WorkoutLogs").
		Where("user_id = ? AND is_deleted = ?", userID, false)
	if !includePrivate {
		query = query.Where("is_public = ?", true)
	}
	err := query.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (s *PostRepoImpl) GetPostsByUsers(ctx context.Context, userIDs []uint64, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("WorkoutLogs").
		Where("user_id IN ? AND is_deleted = ?", userIDs, false).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, err
}

// GetVisiblePostsSince 拉取热度候选集，按创建时间倒序
func (s *PostRepoImpl) GetVisiblePostsSince(ctx context.Context, viewerID uint64, since time.Time, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("is_deleted = ? AND created_at >= ?", false, since).
		Where("is_public = ? OR user_id = ?", true, viewerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post, logs []*model.WorkoutLog) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Post{}).Where("id = ?", post.ID).Updates(post).Error; err != nil {
			return err
		}
		if logs == nil {
			return nil
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&model.WorkoutLog{}).Error; err != nil {
			return err
		}
		if len(logs) == 0 {
			return nil
		}
		for _, wl := range logs {
			wl.PostID = post.ID
			wl.UserID = post.UserID
		}
		return tx.Create(logs).Error
	})
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Update("is_deleted", true).Error
}

func (s *PostRepoImpl) UpdatePostCounts(ctx context.Context, id uint64, likes, comments int64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Updates(map[string]interface{}{
		"likes_count":    likes,
		"comments_count": comments,
	}).Error
}

func (s *PostRepoImpl) IncrLikesCount(ctx context.Context, id uint64, delta int) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Update("likes_count", gorm.Expr("likes_count + ?", delta)).Error
}

func (s *PostRepoImpl) IncrCommentsCount(ctx context.Context, id uint64, delta int) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Update("comments_count", gorm.Expr("comments_count + ?", delta)).Error
}
