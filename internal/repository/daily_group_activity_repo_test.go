package repository

import (
	"context"
	"testing"
	"time"
)

func TestIncrementDailyAccumulates(t *testing.T) {
	db := newTestDB(t)
	repo := NewDailyGroupActivityRepo(db)
	ctx := context.Background()

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if err := repo.IncrementDaily(ctx, 1, date); err != nil {
			t.Fatalf("increment %d: %v", i, err)
		}
	}

	activity, err := repo.GetByGroupDate(ctx, 1, date)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if activity == nil {
		t.Fatal("activity row missing")
	}
	if activity.Value != 5 {
		t.Fatalf("value = %d, want 5", activity.Value)
	}
}

func TestIncrementDailySeparatesKeys(t *testing.T) {
	db := newTestDB(t)
	repo := NewDailyGroupActivityRepo(db)
	ctx := context.Background()

	day1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	if err := repo.IncrementDaily(ctx, 1, day1); err != nil {
		t.Fatalf("increment g1/d1: %v", err)
	}
	if err := repo.IncrementDaily(ctx, 1, day2); err != nil {
		t.Fatalf("increment g1/d2: %v", err)
	}
	if err := repo.IncrementDaily(ctx, 2, day1); err != nil {
		t.Fatalf("increment g2/d1: %v", err)
	}

	for _, c := range []struct {
		groupID uint64
		date    time.Time
	}{{1, day1}, {1, day2}, {2, day1}} {
		activity, err := repo.GetByGroupDate(ctx, c.groupID, c.date)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if activity == nil || activity.Value != 1 {
			t.Fatalf("group %d date %v: got %+v, want value 1", c.groupID, c.date, activity)
		}
	}
}

func TestGetByGroupDateMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewDailyGroupActivityRepo(db)

	activity, err := repo.GetByGroupDate(context.Background(), 42, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if activity != nil {
		t.Fatalf("got %+v, want nil", activity)
	}
}
