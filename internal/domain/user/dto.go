package user

// UserResponse represents user data in API responses
type UserResponse struct {
	ID         string  `json:"id"`
	Badge      string  `json:"badge"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Status     string  `json:"status"`
	University *string `json:"university,omitempty"`
	Department *string `json:"department,omitempty"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Badge:      u.Badge,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		Status:     string(u.Status),
		University: u.University,
		Department: u.Department,
	}
}
