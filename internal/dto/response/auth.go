package response

import (
	"time"

	"cinema-manager/internal/data/entity"
)

// UserResponse is the outward projection of a user account. The password
// hash is deliberately absent.
type UserResponse struct {
	ID         string          `json:"id"`
	Username   string          `json:"username"`
	Email      string          `json:"email"`
	Role       entity.UserRole `json:"role"`
	IsVerified bool            `json:"is_verified"`
	CreatedAt  time.Time       `json:"created_at"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type SigninResponse struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		Username:   user.Username,
		Email:      user.Email,
		Role:       user.Role,
		IsVerified: user.EmailVerified,
		CreatedAt:  user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, token string) AuthResponse {
	return AuthResponse{
		User:  UserToResponse(user),
		Token: token,
	}
}
