package service

import (
	"FitPulse/internal/model"
	"FitPulse/internal/pkg/consts"
	"FitPulse/internal/pkg/period"
	"FitPulse/internal/repository"
	"context"
	log "log/slog"
	"time"
)

// ActivityResult 单次发帖的统计结算结果
// Degraded 表示每日活跃计数写入失败但主流程已提交
type ActivityResult struct {
	Statistics *model.QuarterlyStatistics
	Ranking    *model.QuarterlyRanking
	FirstOfDay bool
	Degraded   bool
}

type ActivityService interface {
	EnsureEligible(ctx context.Context, userID uint64, postedAt time.Time) error
	RecordPost(ctx context.Context, userID, excludePostID uint64, bodyParts []string, postedAt time.Time) (*ActivityResult, error)
	GetStatistics(ctx context.Context, userID uint64, year, quarter int) (*model.QuarterlyStatistics, error)
}

type ActivityServiceImpl struct {
	periods     *period.Resolver
	postRepo    repository.PostRepo
	groupRepo   repository.GroupRepo
	statRepo    repository.QuarterlyStatisticsRepo
	rankingRepo repository.QuarterlyRankingRepo
	dailyRepo   repository.DailyGroupActivityRepo
}

func NewActivityService(
	periods *period.Resolver,
	postRepo repository.PostRepo,
	groupRepo repository.GroupRepo,
	statRepo repository.QuarterlyStatisticsRepo,
	rankingRepo repository.QuarterlyRankingRepo,
	dailyRepo repository.DailyGroupActivityRepo,
) ActivityService {
	return &ActivityServiceImpl{
		periods:     periods,
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		statRepo:    statRepo,
		rankingRepo: rankingRepo,
		dailyRepo:   dailyRepo,
	}
}

// EnsureEligible 发帖前置校验：当日首帖必须已加入小组，帖子落库前拦截
func (s *ActivityServiceImpl) EnsureEligible(ctx context.Context, userID uint64, postedAt time.Time) error {
	start, end := s.periods.DayRange(postedAt)
	already, err := s.postRepo.ExistsInRange(ctx, userID, start, end, 0)
	if err != nil {
		return err
	}
	if already {
		return nil
	}

	member, err := s.groupRepo.FindUserGroup(ctx, userID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrMembershipRequired
	}
	return nil
}

// RecordPost 发帖后的统计结算
// 部位与时段计数每帖累加；连续打卡与小组竞赛分只在当日首帖生效
func (s *ActivityServiceImpl) RecordPost(ctx context.Context, userID, excludePostID uint64, bodyParts []string, postedAt time.Time) (*ActivityResult, error) {
	year, quarter := s.periods.Quarter(postedAt)
	start, end := s.periods.DayRange(postedAt)

	already, err := s.postRepo.ExistsInRange(ctx, userID, start, end, excludePostID)
	if err != nil {
		return nil, err
	}
	firstOfDay := !already

	var member *model.GroupMember
	if firstOfDay {
		member, err = s.groupRepo.FindUserGroup(ctx, userID)
		if err != nil {
			return nil, err
		}
		if member == nil {
			return nil, ErrMembershipRequired
		}
	}

	timeOfDay := s.periods.TimeOfDay(postedAt)
	stat, err := s.statRepo.UpdateWithLock(ctx, userID, year, quarter, func(stat *model.QuarterlyStatistics, created bool) error {
		for _, bodyPart := range bodyParts {
			stat.BodyPartCounts[bodyPart]++
		}
		stat.TimeZoneCounts[timeOfDay]++
		if firstOfDay {
			stat.CurrentStreak++
			if stat.CurrentStreak > stat.LongestStreak {
				stat.LongestStreak = stat.CurrentStreak
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &ActivityResult{
		Statistics: stat,
		FirstOfDay: firstOfDay,
	}

	if !firstOfDay {
		return result, nil
	}

	memberCount, err := s.groupRepo.CountMembers(ctx, member.GroupID)
	if err != nil {
		return nil, err
	}
	if memberCount == 0 {
		return nil, UnExpectedError
	}
	contribution := consts.RankingBaseScore / float64(memberCount)

	// 冻结只针对已结束的季度，当前季度命中 IsFinal 属于异常数据
	// 此时帖子与统计更新已各自提交，这里的拒绝不回滚前序写入
	ranking, err := s.rankingRepo.UpdateWithLock(ctx, member.GroupID, year, quarter, func(ranking *model.QuarterlyRanking, created bool) error {
		if ranking.IsFinal {
			return ErrRankingFinalized
		}
		ranking.Score += contribution
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.Ranking = ranking

	// 每日活跃计数是旁路写入，失败不回滚主流程
	if err = s.dailyRepo.IncrementDaily(ctx, member.GroupID, s.periods.Midnight(postedAt)); err != nil {
		log.WarnContext(ctx, "daily group activity increment failed",
			"group_id", member.GroupID,
			"date", s.periods.DateKey(postedAt),
			"err", err,
		)
		result.Degraded = true
	}

	return result, nil
}

// GetStatistics 查询用户指定季度的统计，无记录时返回全零值
func (s *ActivityServiceImpl) GetStatistics(ctx context.Context, userID uint64, year, quarter int) (*model.QuarterlyStatistics, error) {
	stat, err := s.statRepo.GetByUserPeriod(ctx, userID, year, quarter)
	if err != nil {
		return nil, err
	}
	if stat == nil {
		stat = &model.QuarterlyStatistics{
			UserID:         userID,
			Year:           year,
			Quarter:        quarter,
			BodyPartCounts: map[string]int{},
			TimeZoneCounts: period.ZeroTimeOfDayCounts(),
		}
	}
	return stat, nil
}
