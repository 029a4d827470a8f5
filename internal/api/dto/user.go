package dto

// RegisterDTO 注册请求
type RegisterDTO struct {
	Username     string `json:"username" binding:"required" validate:"min=3,max=64"`
	Password     string `json:"password" binding:"required" validate:"min=6,max=64"`
	Nickname     string `json:"nickname" binding:"required" validate:"min=1,max=15"`
	ProfileImage string `json:"profile_image,omitempty" validate:"max=512"`
}

// CredentialDTO 登录请求
type CredentialDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserDTO 用户信息
type UserDTO struct {
	ID           uint64 `json:"id"`
	Username     string `json:"username"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profile_image"`
	CreatedAt    string `json:"created_at"`
}
