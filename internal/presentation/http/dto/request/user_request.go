package request

// CreateUserRequest is the payload for creating an account
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Name     string `json:"name" binding:"required,max=255"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=admin employee"`
}

// UpdateUserRequest is the payload for a partial account update
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin employee"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	IsActive *bool   `json:"is_active"`
}
