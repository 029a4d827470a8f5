package repository

import (
	"FitPulse/internal/model"
	"FitPulse/internal/pkg/period"
	"context"
	"errors"

	"gorm.io/gorm"
)

type QuarterlyStatisticsRepo interface {
	UpdateWithLock(ctx context.Context, userID uint64, year, quarter int, mutate func(stat *model.QuarterlyStatistics, created bool) error) (*model.QuarterlyStatistics, error)
	GetByUserPeriod(ctx context.Context, userID uint64, year, quarter int) (*model.QuarterlyStatistics, error)
}

type QuarterlyStatisticsRepoImpl struct {
	db *gorm.DB
}

func NewQuarterlyStatisticsRepo(db *gorm.DB) QuarterlyStatisticsRepo {
	return &QuarterlyStatisticsRepoImpl{db: db}
}

// UpdateWithLock 锁定或新建 (user_id, year, quarter) 对应的统计行，执行 mutate 后落库
// 首次写入与并发建行的冲突通过唯一键兜底，冲突后重新锁定已有行
func (s *QuarterlyStatisticsRepoImpl) UpdateWithLock(ctx context.Context, userID uint64, year, quarter int, mutate func(stat *model.QuarterlyStatistics, created bool) error) (*model.QuarterlyStatistics, error) {
	var out *model.QuarterlyStatistics

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stat := &model.QuarterlyStatistics{}
		created := false

		err := lockForUpdate(tx).
			Where("user_id = ? AND year = ? AND quarter = ?", userID, year, quarter).
			First(stat).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			stat = &model.QuarterlyStatistics{
				UserID:         userID,
				Year:           year,
				Quarter:        quarter,
				BodyPartCounts: map[string]int{},
				TimeZoneCounts: period.ZeroTimeOfDayCounts(),
			}
			if err = tx.Create(stat).Error; err != nil {
				if !isDuplicateError(err) {
					return err
				}
				stat = &model.QuarterlyStatistics{}
				if err = lockForUpdate(tx).
					Where("user_id = ? AND year = ? AND quarter = ?", userID, year, quarter).
					First(stat).Error; err != nil {
					return err
				}
			} else {
				created = true
			}
		} else if err != nil {
			return err
		}

		if stat.BodyPartCounts == nil {
			stat.BodyPartCounts = map[string]int{}
		}
		if stat.TimeZoneCounts == nil {
			stat.TimeZoneCounts = period.ZeroTimeOfDayCounts()
		}

		if err = mutate(stat, created); err != nil {
			return err
		}

		if err = tx.Save(stat).Error; err != nil {
			return err
		}

		out = stat
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *QuarterlyStatisticsRepoImpl) GetByUserPeriod(ctx context.Context, userID uint64, year, quarter int) (*model.QuarterlyStatistics, error) {
	var stat model.QuarterlyStatistics
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND quarter = ?", userID, year, quarter).
		First(&stat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stat, nil
}
