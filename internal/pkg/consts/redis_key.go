package consts

const (
	PostLikeKey         = "post:like:"
	PostCommentKey      = "post:comment:"
	GroupLeaderboardKey = "ranking:group:leaderboard:"
)

const (
	QuarterFinalizeLock = "lock:ranking:finalize:"
)
