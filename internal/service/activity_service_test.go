package service

import (
	"FitPulse/internal/model"
	"FitPulse/internal/pkg/period"
	"FitPulse/internal/repository"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type activityEnv struct {
	db          *gorm.DB
	periods     *period.Resolver
	postRepo    repository.PostRepo
	groupRepo   repository.GroupRepo
	statRepo    repository.QuarterlyStatisticsRepo
	rankingRepo repository.QuarterlyRankingRepo
	dailyRepo   repository.DailyGroupActivityRepo
	svc         ActivityService
}

func newActivityEnv(t *testing.T) *activityEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.WorkoutLog{},
		&model.Group{},
		&model.GroupMember{},
		&model.QuarterlyStatistics{},
		&model.QuarterlyRanking{},
		&model.DailyGroupActivity{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	})

	env := &activityEnv{
		db:          db,
		periods:     period.NewResolver(0),
		postRepo:    repository.NewPostRepository(db),
		groupRepo:   repository.NewGroupRepo(db),
		statRepo:    repository.NewQuarterlyStatisticsRepo(db),
		rankingRepo: repository.NewQuarterlyRankingRepo(db),
		dailyRepo:   repository.NewDailyGroupActivityRepo(db),
	}
	env.svc = NewActivityService(env.periods, env.postRepo, env.groupRepo, env.statRepo, env.rankingRepo, env.dailyRepo)
	return env
}

// seedGroup 建组并把 owner 连同其余成员一起入组
func (e *activityEnv) seedGroup(t *testing.T, ownerID uint64, memberIDs ...uint64) uint64 {
	t.Helper()
	ctx := context.Background()

	group := &model.Group{Name: "morning crew", OwnerID: ownerID}
	if err := e.groupRepo.CreateGroup(ctx, group); err != nil {
		t.Fatalf("create group: %v", err)
	}
	for _, userID := range memberIDs {
		err := e.groupRepo.AddMember(ctx, &model.GroupMember{GroupID: group.ID, UserID: userID})
		if err != nil {
			t.Fatalf("add member %d: %v", userID, err)
		}
	}
	return group.ID
}

func (e *activityEnv) seedPost(t *testing.T, userID uint64, at time.Time) uint64 {
	t.Helper()
	post := &model.Post{
		UserID:    userID,
		Title:     "workout",
		Content:   "done",
		IsPublic:  true,
		CreatedAt: at,
	}
	if err := e.postRepo.CreatePost(context.Background(), post, nil); err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post.ID
}

func TestRecordPostFirstOfDay(t *testing.T) {
	env := newActivityEnv(t)
	ctx := context.Background()
	env.seedGroup(t, 1)

	at := time.Date(2025, 5, 10, 7, 30, 0, 0, time.UTC)
	postID := env.seedPost(t, 1, at)

	result, err := env.svc.RecordPost(ctx, 1, postID, []string{"legs", "back"}, at)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !result.FirstOfDay {
		t.Fatal("expected first post of the day")
	}
	if result.Degraded {
		t.Fatal("unexpected degraded result")
	}

	stat := result.Statistics
	if stat.BodyPartCounts["legs"] != 1 || stat.BodyPartCounts["back"] != 1 {
		t.Fatalf("body parts = %v", stat.BodyPartCounts)
	}
	if stat.TimeZoneCounts[period.Morning] != 1 {
		t.Fatalf("time zones = %v", stat.TimeZoneCounts)
	}
	if stat.CurrentStreak != 1 || stat.LongestStreak != 1 {
		t.Fatalf("streak = %d/%d, want 1/1", stat.CurrentStreak, stat.LongestStreak)
	}

	// 单人小组，贡献整份 100 分
	if result.Ranking == nil || result.Ranking.Score != 100 {
		t.Fatalf("ranking = %+v, want score 100", result.Ranking)
	}
}

func TestRecordPostSameDayTwice(t *testing.T) {
	env := newActivityEnv(t)
	ctx := context.Background()
	env.seedGroup(t, 1)

	morning := time.Date(2025, 5, 10, 7, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 5, 10, 20, 0, 0, 0, time.UTC)

	first := env.seedPost(t, 1, morning)
	if _, err := env.svc.RecordPost(ctx, 1, first, []string{"legs"}, morning); err != nil {
		t.Fatalf("first record: %v", err)
	}

	second := env.seedPost(t, 1, evening)
	result, err := env.svc.RecordPost(ctx, 1, second, []string{"chest"}, evening)
	if err != nil {
		t.Fatalf("second record: %v", err)
	}
	if result.FirstOfDay {
		t.Fatal("second post of the day flagged as first")
	}

	stat := result.Statistics
	// 部位与时段每帖累加，连续打卡当日只加一次
	if stat.BodyPartCounts["legs"] != 1 || stat.BodyPartCounts["chest"] != 1 {
		t.Fatalf("body parts = %v", stat.BodyPartCounts)
	}
	if stat.CurrentStreak != 1 {
		t.Fatalf("streak = %d, want 1", stat.CurrentStreak)
	}
	if result.Ranking != nil {
		t.Fatalf("ranking updated on non-first post: %+v", result.Ranking)
	}

	ranking, err := env.rankingRepo.GetByGroupPeriod(ctx, 1, 2025, 2)
	if err != nil {
		t.Fatalf("get ranking: %v", err)
	}
	if ranking.Score != 100 {
		t.Fatalf("score = %v, want 100", ranking.Score)
	}
}

func TestRecordPostStreakAcrossDays(t *testing.T) {
	env := newActivityEnv(t)
	ctx := context.Background()
	env.seedGroup(t, 1)

	day1 := time.Date(2025, 5, 10, 7, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	// 隔了两天的下一帖仍然只加 1，不做重置
	day5 := day1.AddDate(0, 0, 4)

	var result *ActivityResult
	for _, at := range []time.Time{day1, day2, day5} {
		postID := env.seedPost(t, 1, at)
		var err error
		result, err = env.svc.RecordPost(ctx, 1, postID, []string{"legs"}, at)
		if err != nil {
			t.Fatalf("record at %v: %v", at, err)
		}
	}

	if result.Statistics.CurrentStreak != 3 {
		t.Fatalf("streak = %d, want 3", result.Statistics.CurrentStreak)
	}
	if result.Statistics.LongestStreak < result.Statistics.CurrentStreak {
		t.Fatalf("longest %d < current %d", result.Statistics.LongestStreak, result.Statistics.CurrentStreak)
	}
}

func TestRecordPostMembershipRequired(t *testing.T) {
	env := newActivityEnv(t)
	ctx := context.Background()

	at := time.Date(2025, 5, 10, 7, 0, 0, 0, time.UTC)
	postID := env.seedPost(t, 1, at)

	_, err := env.svc.RecordPost(ctx, 1, postID, []string{"legs"}, at)
	if !errors.Is(err, ErrMembershipRequired) {
		t.Fatalf("err = %v, want ErrMembershipRequired", err)
	}

	if err = env.svc.EnsureEligible(ctx, 2, at); !errors.Is(err, ErrMembershipRequired) {
		t.Fatalf("EnsureEligible err = %v, want ErrMembershipRequired", err)
	}
}

func TestRecordPostContributionSplit(t *testing.T) {
	env := newActivityEnv(t)
	ctx := context.Background()
	groupID := env.seedGroup(t, 1, 2, 3, 4)

	at := time.Date(2025, 5, 10, 7, 0, 0, 0, time.UTC)

	for _, userID := range []uint64{1, 2} {
		postID := env.seedPost(t, userID, at)
		if _, err := env.svc.RecordPost(ctx, userID, postID, []string{"legs"}, at); err != nil {
			t.Fatalf("record user %d: %v", userID, err)
		}
	}

	// 4 人小组，两名成员各贡献 25 分
	ranking, err := env.rankingRepo.GetByGroupPeriod(ctx, groupID, 2025, 2)
	if err != nil {
		t.Fatalf("get ranking: %v", err)
	}
	if ranking.Score != 50 {
		t.Fatalf("score = %v, want 50", ranking.Score)
	}

	activity, err := env.dailyRepo.GetByGroupDate(ctx, groupID, env.periods.Midnight(at))
	if err != nil {
		t.Fatalf("get daily: %v", err)
	}
	if activity == nil || activity.Value != 2 {
		t.Fatalf("daily = %+v, want value 2", activity)
	}
}

func TestRecordPostRankingFinalized(t *testing.T) {
	env := newActivityEnv(t)
	ctx := context.Background()
	groupID := env.seedGroup(t, 1)

	at := time.Date(2025, 5, 10, 7, 0, 0, 0, time.UTC)
	_, err := env.rankingRepo.UpdateWithLock(ctx, groupID, 2025, 2, func(ranking *model.QuarterlyRanking, created bool) error {
		ranking.Score = 75
		ranking.IsFinal = true
		return nil
	})
	if err != nil {
		t.Fatalf("seed ranking: %v", err)
	}

	postID := env.seedPost(t, 1, at)
	_, err = env.svc.RecordPost(ctx, 1, postID, []string{"legs"}, at)
	if !errors.Is(err, ErrRankingFinalized) {
		t.Fatalf("err = %v, want ErrRankingFinalized", err)
	}

	ranking, err := env.rankingRepo.GetByGroupPeriod(ctx, groupID, 2025, 2)
	if err != nil {
		t.Fatalf("get ranking: %v", err)
	}
	if ranking.Score != 75 {
		t.Fatalf("frozen score mutated: %v", ranking.Score)
	}

	// 统计更新先于竞赛分提交，冻结拒绝不回滚统计
	stat, err := env.statRepo.GetByUserPeriod(ctx, 1, 2025, 2)
	if err != nil {
		t.Fatalf("get stat: %v", err)
	}
	if stat == nil || stat.BodyPartCounts["legs"] != 1 {
		t.Fatalf("stat = %+v, want legs folded", stat)
	}
}

type failingDailyRepo struct{}

func (failingDailyRepo) IncrementDaily(ctx context.Context, groupID uint64, date time.Time) error {
	return errors.New("storage unavailable")
}

func (failingDailyRepo) GetByGroupDate(ctx context.Context, groupID uint64, date time.Time) (*model.DailyGroupActivity, error) {
	return nil, errors.New("storage unavailable")
}

func TestRecordPostDegradedOnDailyFailure(t *testing.T) {
	env := newActivityEnv(t)
	ctx := context.Background()
	env.seedGroup(t, 1)

	svc := NewActivityService(env.periods, env.postRepo, env.groupRepo, env.statRepo, env.rankingRepo, failingDailyRepo{})

	at := time.Date(2025, 5, 10, 7, 0, 0, 0, time.UTC)
	postID := env.seedPost(t, 1, at)

	result, err := svc.RecordPost(ctx, 1, postID, []string{"legs"}, at)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !result.Degraded {
		t.Fatal("expected degraded result")
	}
	// 主流程照常提交
	if result.Ranking == nil || result.Ranking.Score != 100 {
		t.Fatalf("ranking = %+v, want score 100", result.Ranking)
	}
}

func TestEnsureEligibleAllowsSecondPost(t *testing.T) {
	env := newActivityEnv(t)
	ctx := context.Background()

	// 已发过当日首帖的用户退组后仍可继续发帖
	at := time.Date(2025, 5, 10, 7, 0, 0, 0, time.UTC)
	env.seedPost(t, 1, at)

	if err := env.svc.EnsureEligible(ctx, 1, at.Add(2*time.Hour)); err != nil {
		t.Fatalf("EnsureEligible: %v", err)
	}
}

func TestGetStatisticsZeroValue(t *testing.T) {
	env := newActivityEnv(t)

	stat, err := env.svc.GetStatistics(context.Background(), 7, 2025, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stat.UserID != 7 || stat.Year != 2025 || stat.Quarter != 1 {
		t.Fatalf("stat = %+v", stat)
	}
	if stat.CurrentStreak != 0 || len(stat.BodyPartCounts) != 0 {
		t.Fatalf("expected zero-value statistics, got %+v", stat)
	}
	// 四个时段标签始终齐全，未使用的时段显式为 0
	if len(stat.TimeZoneCounts) != len(period.Labels) {
		t.Fatalf("time zones = %v, want all labels", stat.TimeZoneCounts)
	}
	for _, label := range period.Labels {
		if count, ok := stat.TimeZoneCounts[label]; !ok || count != 0 {
			t.Fatalf("label %s = %d (present=%v), want 0", label, count, ok)
		}
	}
}
