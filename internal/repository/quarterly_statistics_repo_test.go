package repository

import (
	"FitPulse/internal/model"
	"FitPulse/internal/pkg/period"
	"context"
	"testing"
)

func TestStatisticsUpdateWithLockCreates(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuarterlyStatisticsRepo(db)
	ctx := context.Background()

	stat, err := repo.UpdateWithLock(ctx, 1, 2025, 2, func(stat *model.QuarterlyStatistics, created bool) error {
		if !created {
			t.Fatal("expected created=true on first write")
		}
		stat.BodyPartCounts["legs"]++
		stat.TimeZoneCounts["morning"]++
		stat.CurrentStreak = 1
		stat.LongestStreak = 1
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if stat.BodyPartCounts["legs"] != 1 || stat.TimeZoneCounts["morning"] != 1 {
		t.Fatalf("counts not folded: %+v", stat)
	}

	loaded, err := repo.GetByUserPeriod(ctx, 1, 2025, 2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded == nil || loaded.CurrentStreak != 1 {
		t.Fatalf("loaded = %+v, want streak 1", loaded)
	}

	// 建行即写入全部时段标签，未命中的时段保持 0
	if len(loaded.TimeZoneCounts) != len(period.Labels) {
		t.Fatalf("time zones = %v, want all labels", loaded.TimeZoneCounts)
	}
	if loaded.TimeZoneCounts[period.Morning] != 1 || loaded.TimeZoneCounts[period.Dawn] != 0 {
		t.Fatalf("time zones = %v", loaded.TimeZoneCounts)
	}
}

func TestStatisticsUpdateWithLockAccumulates(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuarterlyStatisticsRepo(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.UpdateWithLock(ctx, 1, 2025, 2, func(stat *model.QuarterlyStatistics, created bool) error {
			stat.BodyPartCounts["back"]++
			return nil
		})
		if err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
	}

	loaded, err := repo.GetByUserPeriod(ctx, 1, 2025, 2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.BodyPartCounts["back"] != 3 {
		t.Fatalf("back = %d, want 3", loaded.BodyPartCounts["back"])
	}
}

func TestStatisticsGetByUserPeriodMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuarterlyStatisticsRepo(db)

	stat, err := repo.GetByUserPeriod(context.Background(), 99, 2025, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stat != nil {
		t.Fatalf("got %+v, want nil", stat)
	}
}
