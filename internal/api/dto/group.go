package dto

// GroupCreateDTO 建组请求
type GroupCreateDTO struct {
	Name        string `json:"name" binding:"required" validate:"min=1,max=64"`
	Description string `json:"description,omitempty" validate:"max=255"`
}

// GroupDTO 小组信息
type GroupDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     uint64 `json:"owner_id"`
	MemberCount int64  `json:"member_count"`
	CreatedAt   string `json:"created_at"`
}

// GroupMemberDTO 小组成员
type GroupMemberDTO struct {
	UserID       uint64 `json:"user_id"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profile_image"`
	JoinedAt     string `json:"joined_at"`
}
