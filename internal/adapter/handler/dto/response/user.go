package response

import (
	"time"

	"github.com/pixelforge/imgtier/internal/domain/entity"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	TierID    *string   `json:"tier_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func UserFromEntity(user *entity.User) UserResponse {
	resp := UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
	if user.TierID != nil {
		id := user.TierID.String()
		resp.TierID = &id
	}
	return resp
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}
