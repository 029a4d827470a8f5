package feedrank

import (
	"testing"
	"time"
)

func TestScore(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	// 当天新帖：10 + 3*2 + 2 = 18
	a := Candidate{PostID: 1, CreatedAt: now, LikeCount: 10, CommentCount: 2}
	// 8 天前：加成归零，5 + 3*5 = 20
	b := Candidate{PostID: 2, CreatedAt: now.AddDate(0, 0, -8), LikeCount: 5, CommentCount: 5}

	if got := Score(a, now); got != 18 {
		t.Fatalf("Score(a) = %v, want 18", got)
	}
	if got := Score(b, now); got != 20 {
		t.Fatalf("Score(b) = %v, want 20", got)
	}

	ranked := Rank([]Candidate{a, b}, now, 0)
	if ranked[0].PostID != 2 {
		t.Fatalf("ranked[0] = %d, want 2", ranked[0].PostID)
	}
}

func TestScoreFreshPost(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	// 刚发布的帖子拿满 2 分加成
	c := Candidate{PostID: 1, CreatedAt: now, LikeCount: 0, CommentCount: 0}
	if got := Score(c, now); got != 2 {
		t.Fatalf("Score(fresh) = %v, want 2", got)
	}

	// 超过 7 天加成归零
	old := Candidate{PostID: 2, CreatedAt: now.AddDate(0, 0, -30), LikeCount: 0, CommentCount: 0}
	if got := Score(old, now); got != 0 {
		t.Fatalf("Score(old) = %v, want 0", got)
	}
}

func TestRankOrderAndTruncate(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	candidates := []Candidate{
		{PostID: 1, CreatedAt: now.AddDate(0, 0, -10), LikeCount: 1, CommentCount: 0},
		{PostID: 2, CreatedAt: now.AddDate(0, 0, -10), LikeCount: 50, CommentCount: 0},
		{PostID: 3, CreatedAt: now.AddDate(0, 0, -10), LikeCount: 0, CommentCount: 10},
		{PostID: 4, CreatedAt: now.AddDate(0, 0, -10), LikeCount: 5, CommentCount: 1},
	}

	ranked := Rank(candidates, now, 2)
	if len(ranked) != 2 {
		t.Fatalf("len(ranked) = %d, want 2", len(ranked))
	}
	if ranked[0].PostID != 2 || ranked[1].PostID != 3 {
		t.Fatalf("ranked order = [%d %d], want [2 3]", ranked[0].PostID, ranked[1].PostID)
	}
}

func TestRankStableOnTies(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	// 同分时保持传入顺序
	candidates := []Candidate{
		{PostID: 7, CreatedAt: now.AddDate(0, 0, -10), LikeCount: 3, CommentCount: 0},
		{PostID: 8, CreatedAt: now.AddDate(0, 0, -10), LikeCount: 3, CommentCount: 0},
		{PostID: 9, CreatedAt: now.AddDate(0, 0, -10), LikeCount: 3, CommentCount: 0},
	}

	ranked := Rank(candidates, now, 0)
	for i, want := range []uint64{7, 8, 9} {
		if ranked[i].PostID != want {
			t.Fatalf("ranked[%d] = %d, want %d", i, ranked[i].PostID, want)
		}
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	candidates := []Candidate{
		{PostID: 1, CreatedAt: now.AddDate(0, 0, -10), LikeCount: 1},
		{PostID: 2, CreatedAt: now.AddDate(0, 0, -10), LikeCount: 9},
	}

	_ = Rank(candidates, now, 1)
	if candidates[0].PostID != 1 || candidates[1].PostID != 2 {
		t.Fatalf("input slice mutated: %v", candidates)
	}
}
