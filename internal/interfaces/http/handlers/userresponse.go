package handlers

import (
	"time"

	"helpdesk/internal/domain/user"
)

// UserResponse is the public view of an account. The password hash never
// leaves the service.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      string(u.Role()),
		CreatedAt: u.CreatedAt(),
	}
}

func NewUserResponses(users []*user.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
