package dto

// CommentCreateDTO 创建评论请求
type CommentCreateDTO struct {
	PostID  uint64 `json:"post_id" binding:"required"`
	Content string `json:"content" binding:"required,max=1000"`
}

// CommentDTO 评论详情
type CommentDTO struct {
	ID           uint64 `json:"id"`
	PostID       uint64 `json:"post_id"`
	UserID       uint64 `json:"user_id"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profile_image"`
	Content      string `json:"content"`
	CreatedAt    string `json:"created_at"`
}

// PostActionReq 点赞通用请求
type PostActionReq struct {
	PostID uint64 `json:"post_id" binding:"required"`
	Action int    `json:"action" binding:"required,oneof=1 2"` // 1:执行, 2:取消
}

// PostActionStateDTO 帖子交互状态数据
type PostActionStateDTO struct {
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
	IsLiked      bool  `json:"is_liked"`
}
