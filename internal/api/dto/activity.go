package dto

// StatisticsDTO 用户季度统计
type StatisticsDTO struct {
	UserID         uint64         `json:"user_id"`
	Year           int            `json:"year"`
	Quarter        int            `json:"quarter"`
	BodyPartCounts map[string]int `json:"body_part_counts"`
	TimeZoneCounts map[string]int `json:"time_zone_counts"`
	CurrentStreak  int            `json:"current_streak"`
	LongestStreak  int            `json:"longest_streak"`
}

// LeaderboardEntryDTO 小组季度排行条目
type LeaderboardEntryDTO struct {
	Rank      int     `json:"rank"`
	GroupID   uint64  `json:"group_id"`
	GroupName string  `json:"group_name"`
	Score     float64 `json:"score"`
	IsFinal   bool    `json:"is_final"`
}

// LeaderboardDTO 小组季度排行
type LeaderboardDTO struct {
	Year    int                    `json:"year"`
	Quarter int                    `json:"quarter"`
	Entries []*LeaderboardEntryDTO `json:"entries"`
}
