package request

type RegisterRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=100"`
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=8,max=72"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,min=6,max=20"`
	UnitNumber    *string `json:"unit_number,omitempty" validate:"omitempty,max=20"`
	CommunityCode string  `json:"community_code" validate:"required,min=3,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
