package repository

import (
	"FitPulse/internal/model"
	"FitPulse/internal/pkg/consts"
	"context"
	"errors"

	"gorm.io/gorm"
)

type QuarterlyRankingRepo interface {
	UpdateWithLock(ctx context.Context, groupID uint64, year, quarter int, mutate func(ranking *model.QuarterlyRanking, created bool) error) (*model.QuarterlyRanking, error)
	GetByGroupPeriod(ctx context.Context, groupID uint64, year, quarter int) (*model.QuarterlyRanking, error)
	GetTopByPeriod(ctx context.Context, year, quarter int, limit int) ([]*model.QuarterlyRanking, error)
	FinalizePeriod(ctx context.Context, year, quarter int) (int64, error)
}

type QuarterlyRankingRepoImpl struct {
	db *gorm.DB
}

func NewQuarterlyRankingRepo(db *gorm.DB) QuarterlyRankingRepo {
	return &QuarterlyRankingRepoImpl{db: db}
}

// UpdateWithLock 锁定或新建 (group_id, year, quarter) 对应的竞赛行，执行 mutate 后落库
func (s *QuarterlyRankingRepoImpl) UpdateWithLock(ctx context.Context, groupID uint64, year, quarter int, mutate func(ranking *model.QuarterlyRanking, created bool) error) (*model.QuarterlyRanking, error) {
	var out *model.QuarterlyRanking

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ranking := &model.QuarterlyRanking{}
		created := false

		err := lockForUpdate(tx).
			Where("group_id = ? AND year = ? AND quarter = ?", groupID, year, quarter).
			First(ranking).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ranking = &model.QuarterlyRanking{
				Type:    consts.RankingTypeGroup,
				GroupID: groupID,
				Year:    year,
				Quarter: quarter,
			}
			if err = tx.Create(ranking).Error; err != nil {
				if !isDuplicateError(err) {
					return err
				}
				ranking = &model.QuarterlyRanking{}
				if err = lockForUpdate(tx).
					Where("group_id = ? AND year = ? AND quarter = ?", groupID, year, quarter).
					First(ranking).Error; err != nil {
					return err
				}
			} else {
				created = true
			}
		} else if err != nil {
			return err
		}

		if err = mutate(ranking, created); err != nil {
			return err
		}

		if err = tx.Save(ranking).Error; err != nil {
			return err
		}

		out = ranking
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *QuarterlyRankingRepoImpl) GetByGroupPeriod(ctx context.Context, groupID uint64, year, quarter int) (*model.QuarterlyRanking, error) {
	var ranking model.QuarterlyRanking
	err := s.db.WithContext(ctx).
		Where("group_id = ? AND year = ? AND quarter = ?", groupID, year, quarter).
		First(&ranking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ranking, nil
}

// GetTopByPeriod 按分数倒序取排行榜，同分按 group_id 升序保证稳定
func (s *QuarterlyRankingRepoImpl) GetTopByPeriod(ctx context.Context, year, quarter int, limit int) ([]*model.QuarterlyRanking, error) {
	rankings := make([]*model.QuarterlyRanking, 0)
	err := s.db.WithContext(ctx).
		Where("year = ? AND quarter = ?", year, quarter).
		Order("score DESC, group_id ASC").
		Limit(limit).
		Find(&rankings).Error
	if err != nil {
		return nil, err
	}
	return rankings, nil
}

// FinalizePeriod 冻结指定季度的全部竞赛分，返回受影响行数
func (s *QuarterlyRankingRepoImpl) FinalizePeriod(ctx context.Context, year, quarter int) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.QuarterlyRanking{}).
		Where("year = ? AND quarter = ? AND is_final = ?", year, quarter, false).
		Update("is_final", true)
	return result.RowsAffected, result.Error
}
