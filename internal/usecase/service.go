package usecase

import (
	"parkboard/internal/data/entity"
	"parkboard/internal/data/repository"
	"parkboard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Caller is the authenticated identity resolved by the session middleware.
type Caller struct {
	ID            uuid.UUID
	CommunityCode string
	Role          entity.UserRole
}

func (c Caller) IsAdmin() bool {
	return c.Role == entity.RoleAdmin
}

type Service struct {
	Auth    AuthService
	User    UserService
	Slot    SlotService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo, log),
		Slot:    NewSlotService(repo, log),
		Booking: NewBookingService(repo, log),
	}
}
