package service

import (
	"FitPulse/internal/model"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
)

func TestBuildWorkoutLogsApportionsDuration(t *testing.T) {
	parts, logs, err := buildWorkoutLogs([]string{"legs", "back"}, 40)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(parts) != 2 || len(logs) != 2 {
		t.Fatalf("parts=%v logs=%d", parts, len(logs))
	}
	for _, wl := range logs {
		if wl.Duration != 20 {
			t.Fatalf("duration = %d, want 20", wl.Duration)
		}
	}

	parts, logs, err = buildWorkoutLogs([]string{"legs"}, 45)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(logs) != 1 || logs[0].Duration != 45 {
		t.Fatalf("logs = %+v, want single 45", logs)
	}
	if parts[0] != "legs" {
		t.Fatalf("parts = %v", parts)
	}
}

func TestBuildWorkoutLogsRoundsShare(t *testing.T) {
	// 50 / 3 = 16.67，四舍五入为 17
	_, logs, err := buildWorkoutLogs([]string{"legs", "back", "core"}, 50)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, wl := range logs {
		if wl.Duration != 17 {
			t.Fatalf("duration = %d, want 17", wl.Duration)
		}
	}
}

func TestBuildWorkoutLogsDedup(t *testing.T) {
	parts, logs, err := buildWorkoutLogs([]string{"legs", "legs", "back"}, 40)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(parts) != 2 || len(logs) != 2 {
		t.Fatalf("dedup failed: parts=%v", parts)
	}
}

func TestBuildWorkoutLogsRejectsUnknownPart(t *testing.T) {
	_, _, err := buildWorkoutLogs([]string{"wings"}, 30)
	if !errors.Is(err, ErrBodyPartInvalid) {
		t.Fatalf("err = %v, want ErrBodyPartInvalid", err)
	}

	_, _, err = buildWorkoutLogs(nil, 30)
	if !errors.Is(err, ErrBodyPartInvalid) {
		t.Fatalf("err = %v, want ErrBodyPartInvalid", err)
	}
}

func TestGetPopularPostsRanksWithoutExposingScore(t *testing.T) {
	env := newActivityEnv(t)
	ctx := context.Background()
	svc := NewPostService(env.postRepo, env.groupRepo, env.svc)

	now := time.Now()
	// 8 天前的旧帖互动更高：5 + 3*5 = 20，新帖 10 + 3*2 + 2 = 18
	older := &model.Post{UserID: 1, Title: "b", Content: "b", IsPublic: true, LikesCount: 5, CommentsCount: 5, CreatedAt: now.AddDate(0, 0, -8)}
	fresh := &model.Post{UserID: 1, Title: "a", Content: "a", IsPublic: true, LikesCount: 10, CommentsCount: 2, CreatedAt: now}
	for _, post := range []*model.Post{older, fresh} {
		if err := env.db.Create(post).Error; err != nil {
			t.Fatalf("seed post: %v", err)
		}
	}

	posts, err := svc.GetPopularPosts(ctx, 0, 10)
	if err != nil {
		t.Fatalf("popular: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("len(posts) = %d, want 2", len(posts))
	}
	if posts[0].ID != older.ID {
		t.Fatalf("posts[0] = %d, want %d", posts[0].ID, older.ID)
	}

	payload, err := json.Marshal(posts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(payload), `"score"`) {
		t.Fatalf("popularity score exposed in response: %s", payload)
	}
}
