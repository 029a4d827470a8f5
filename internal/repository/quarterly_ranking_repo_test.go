package repository

import (
	"FitPulse/internal/model"
	"context"
	"testing"
)

func TestRankingUpdateWithLockAccumulates(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuarterlyRankingRepo(db)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := repo.UpdateWithLock(ctx, 1, 2025, 3, func(ranking *model.QuarterlyRanking, created bool) error {
			ranking.Score += 25
			return nil
		})
		if err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
	}

	ranking, err := repo.GetByGroupPeriod(ctx, 1, 2025, 3)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ranking == nil || ranking.Score != 100 {
		t.Fatalf("ranking = %+v, want score 100", ranking)
	}
}

func TestGetTopByPeriodOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuarterlyRankingRepo(db)
	ctx := context.Background()

	for _, r := range []struct {
		groupID uint64
		score   float64
	}{{1, 50}, {2, 80}, {3, 80}, {4, 10}} {
		_, err := repo.UpdateWithLock(ctx, r.groupID, 2025, 3, func(ranking *model.QuarterlyRanking, created bool) error {
			ranking.Score = r.score
			return nil
		})
		if err != nil {
			t.Fatalf("seed group %d: %v", r.groupID, err)
		}
	}

	top, err := repo.GetTopByPeriod(ctx, 2025, 3, 3)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("len(top) = %d, want 3", len(top))
	}
	// 同分按 group_id 升序
	for i, want := range []uint64{2, 3, 1} {
		if top[i].GroupID != want {
			t.Fatalf("top[%d] = group %d, want %d", i, top[i].GroupID, want)
		}
	}
}

func TestFinalizePeriod(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuarterlyRankingRepo(db)
	ctx := context.Background()

	for _, groupID := range []uint64{1, 2} {
		_, err := repo.UpdateWithLock(ctx, groupID, 2025, 1, func(ranking *model.QuarterlyRanking, created bool) error {
			ranking.Score = 30
			return nil
		})
		if err != nil {
			t.Fatalf("seed group %d: %v", groupID, err)
		}
	}

	rows, err := repo.FinalizePeriod(ctx, 2025, 1)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if rows != 2 {
		t.Fatalf("rows = %d, want 2", rows)
	}

	// 重复冻结不再影响任何行
	rows, err = repo.FinalizePeriod(ctx, 2025, 1)
	if err != nil {
		t.Fatalf("finalize again: %v", err)
	}
	if rows != 0 {
		t.Fatalf("rows = %d, want 0", rows)
	}

	ranking, err := repo.GetByGroupPeriod(ctx, 1, 2025, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ranking.IsFinal {
		t.Fatal("ranking not frozen")
	}
}
