package feedrank

import (
	"sort"
	"time"
)

// 热度打分参数：评论权重高于点赞，7 天内的新帖额外加成
const (
	commentWeight   = 3.0
	recencyWeight   = 2.0
	recencySpanDays = 7
	secondsPerDay   = 24 * 60 * 60
)

// Candidate 参与热度排序的候选帖
// 分数只在排序期间存在，不落库也不返回给调用方
type Candidate struct {
	PostID       uint64
	CreatedAt    time.Time
	LikeCount    int64
	CommentCount int64
}

// Score 计算单个候选的热度分
// days = min(7, floor(帖龄)); boost = max(0, (7-days)/7)
func Score(c Candidate, now time.Time) float64 {
	days := int(now.Sub(c.CreatedAt).Seconds()) / secondsPerDay
	if days > recencySpanDays {
		days = recencySpanDays
	}
	boost := float64(recencySpanDays-days) / recencySpanDays
	if boost < 0 {
		boost = 0
	}
	return float64(c.LikeCount) + commentWeight*float64(c.CommentCount) + recencyWeight*boost
}

// Rank 按热度分降序排列候选并截断到 pageSize
// 同分保持传入顺序（调用方按创建时间倒序取候选，新帖优先）
// 候选窗口由调用方超量拉取，排序结果只是窗口内的近似热门，并非全局保证
func Rank(candidates []Candidate, now time.Time, pageSize int) []Candidate {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)

	scores := make(map[uint64]float64, len(ranked))
	for _, c := range ranked {
		scores[c.PostID] = Score(c, now)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].PostID] > scores[ranked[j].PostID]
	})

	if pageSize > 0 && len(ranked) > pageSize {
		ranked = ranked[:pageSize]
	}
	return ranked
}
