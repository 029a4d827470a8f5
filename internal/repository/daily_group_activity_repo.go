package repository

import (
	"FitPulse/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyGroupActivityRepo interface {
	IncrementDaily(ctx context.Context, groupID uint64, date time.Time) error
	GetByGroupDate(ctx context.Context, groupID uint64, date time.Time) (*model.DailyGroupActivity, error)
}

type DailyGroupActivityRepoImpl struct {
	db *gorm.DB
}

func NewDailyGroupActivityRepo(db *gorm.DB) DailyGroupActivityRepo {
	return &DailyGroupActivityRepoImpl{db: db}
}

// IncrementDaily 单条 Upsert 原子自增，(group_id, date) 冲突时 value + 1
func (s *DailyGroupActivityRepoImpl) IncrementDaily(ctx context.Context, groupID uint64, date time.Time) error {
	activity := &model.DailyGroupActivity{
		GroupID: groupID,
		Date:    date,
		Value:   1,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "group_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value": gorm.Expr("value + 1"),
		}),
	}).Create(activity).Error
}

func (s *DailyGroupActivityRepoImpl) GetByGroupDate(ctx context.Context, groupID uint64, date time.Time) (*model.DailyGroupActivity, error) {
	var activity model.DailyGroupActivity
	err := s.db.WithContext(ctx).
		Where("group_id = ? AND date = ?", groupID, date).
		First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}
