package response

import (
	"time"

	"parkboard/internal/data/entity"
)

type UserResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone,omitempty"`
	UnitNumber    *string   `json:"unit_number,omitempty"`
	CommunityCode string    `json:"community_code"`
	Role          string    `json:"role"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func UserToResponse(user *entity.UserProfile) UserResponse {
	return UserResponse{
		ID:            user.ID.String(),
		Name:          user.Name,
		Email:         user.Email,
		Phone:         user.Phone,
		UnitNumber:    user.UnitNumber,
		CommunityCode: user.CommunityCode,
		Role:          string(user.Role),
		IsActive:      user.IsActive,
		CreatedAt:     user.CreatedAt,
	}
}
