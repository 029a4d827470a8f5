package dto

// CreatePostDTO 发帖请求，训练部位与总时长随帖提交
type CreatePostDTO struct {
	Title     string   `json:"title" binding:"required" validate:"min=1,max=255"`
	Content   string   `json:"content" binding:"required" validate:"min=1,max=1000"`
	ImageURL  string   `json:"image_url,omitempty" validate:"max=512"`
	IsPublic  *bool    `json:"is_public,omitempty"`
	BodyParts []string `json:"body_parts" binding:"required,min=1"`
	Duration  int      `json:"duration" binding:"required,min=1"`
}

// UpdatePostDTO 修改帖子请求，BodyParts 为空表示训练明细不变
type UpdatePostDTO struct {
	Title     string   `json:"title" binding:"required" validate:"min=1,max=255"`
	Content   string   `json:"content" binding:"required" validate:"min=1,max=1000"`
	ImageURL  string   `json:"image_url,omitempty" validate:"max=512"`
	IsPublic  *bool    `json:"is_public,omitempty"`
	BodyParts []string `json:"body_parts,omitempty"`
	Duration  int      `json:"duration,omitempty"`
}

// PostDTO 帖子详情
type PostDTO struct {
	// Post
	ID            uint64 `json:"id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	ImageURL      string `json:"image_url"`
	IsPublic      bool   `json:"is_public"`
	LikesCount    int64  `json:"likes_count"`
	CommentsCount int64  `json:"comments_count"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`

	// WorkoutLog
	BodyParts []string `json:"body_parts"`
	Duration  int      `json:"duration"`

	// User
	UserID       uint64 `json:"user_id"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profile_image"`
}

// PostActivityDTO 发帖结算回显
type PostActivityDTO struct {
	FirstOfDay    bool    `json:"first_of_day"`
	CurrentStreak int     `json:"current_streak"`
	LongestStreak int     `json:"longest_streak"`
	GroupScore    float64 `json:"group_score,omitempty"`
	Degraded      bool    `json:"degraded,omitempty"`
}

// CreatePostResultDTO 发帖返回
type CreatePostResultDTO struct {
	Post     *PostDTO         `json:"post"`
	Activity *PostActivityDTO `json:"activity"`
}
