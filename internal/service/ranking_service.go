package service

import (
	"FitPulse/internal/api/dto"
	"FitPulse/internal/pkg/consts"
	"FitPulse/internal/pkg/period"
	"FitPulse/internal/pkg/redis"
	"FitPulse/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const leaderboardLimit = 50

type RankingService interface {
	GetGroupLeaderboard(ctx context.Context, year, quarter int) (*dto.LeaderboardDTO, error)
	FinalizeQuarter(ctx context.Context, now time.Time) error
}

type RankingServiceImpl struct {
	periods     *period.Resolver
	rankingRepo repository.QuarterlyRankingRepo
	groupRepo   repository.GroupRepo
}

func NewRankingService(periods *period.Resolver, rankingRepo repository.QuarterlyRankingRepo, groupRepo repository.GroupRepo) RankingService {
	return &RankingServiceImpl{
		periods:     periods,
		rankingRepo: rankingRepo,
		groupRepo:   groupRepo,
	}
}

// GetGroupLeaderboard 小组季度排行榜，结果缓存到当日零点
func (s *RankingServiceImpl) GetGroupLeaderboard(ctx context.Context, year, quarter int) (*dto.LeaderboardDTO, error) {
	if quarter < 1 || quarter > 4 {
		return nil, ErrParamInvalid
	}

	key := fmt.Sprintf("%s%d:%d", consts.GroupLeaderboardKey, year, quarter)
	value, err := redis.GetValue(ctx, key)
	if err != nil {
		return nil, err
	}
	if value != "" {
		var cached *dto.LeaderboardDTO
		if err = json.Unmarshal([]byte(value), &cached); err == nil {
			return cached, nil
		}
	}

	rankings, err := s.rankingRepo.GetTopByPeriod(ctx, year, quarter, leaderboardLimit)
	if err != nil {
		return nil, err
	}

	groupIDs := make([]uint64, 0, len(rankings))
	for _, r := range rankings {
		groupIDs = append(groupIDs, r.GroupID)
	}
	names := make(map[uint64]string, len(groupIDs))
	for _, id := range groupIDs {
		group, err := s.groupRepo.GetGroup(ctx, id)
		if err != nil {
			return nil, err
		}
		if group != nil {
			names[id] = group.Name
		}
	}

	board := &dto.LeaderboardDTO{
		Year:    year,
		Quarter: quarter,
		Entries: make([]*dto.LeaderboardEntryDTO, 0, len(rankings)),
	}
	for i, r := range rankings {
		board.Entries = append(board.Entries, &dto.LeaderboardEntryDTO{
			Rank:      i + 1,
			GroupID:   r.GroupID,
			GroupName: names[r.GroupID],
			Score:     r.Score,
			IsFinal:   r.IsFinal,
		})
	}

	jsonStr, err := json.Marshal(board)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if err = redis.SetWithExpiration(ctx, key, string(jsonStr), s.periods.UntilMidnight(now)); err != nil {
		return nil, err
	}

	return board, nil
}

// FinalizeQuarter 冻结上一季度的全部小组竞赛分，分布式锁防止多实例重复执行
func (s *RankingServiceImpl) FinalizeQuarter(ctx context.Context, now time.Time) error {
	curYear, curQuarter := s.periods.Quarter(now)
	year, quarter := period.PrevQuarter(curYear, curQuarter)

	lockKey := fmt.Sprintf("%s%d:%d", consts.QuarterFinalizeLock, year, quarter)
	lockValue := uuid.NewString()
	lock, err := redis.TryLock(ctx, lockKey, lockValue, time.Minute*5, 1)
	if err != nil {
		return err
	}
	if !lock {
		log.InfoContext(ctx, "quarter finalize skipped, lock held elsewhere", "year", year, "quarter", quarter)
		return nil
	}
	defer redis.UnLock(ctx, lockKey, lockValue)

	rows, err := s.rankingRepo.FinalizePeriod(ctx, year, quarter)
	if err != nil {
		return err
	}

	_ = redis.DeleteKey(ctx, fmt.Sprintf("%s%d:%d", consts.GroupLeaderboardKey, year, quarter))

	log.InfoContext(ctx, "quarter rankings finalized", "year", year, "quarter", quarter, "groups", rows)
	return nil
}
