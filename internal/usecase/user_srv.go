package usecase

import (
	"context"

	"parkboard/internal/apperr"
	"parkboard/internal/data/entity"
	"parkboard/internal/data/repository"
	"parkboard/internal/dto/request"
	"parkboard/internal/dto/response"
	"parkboard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, caller Caller) (*response.UserResponse, error)

	// Admin endpoints
	GetCommunityUsers(ctx context.Context, caller Caller, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	UpdateUserRole(ctx context.Context, caller Caller, userID string, req *request.UpdateUserRoleRequest) (*response.UserResponse, error)
	DeactivateUser(ctx context.Context, caller Caller, userID string) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, caller Caller) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, caller.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// ==================== ADMIN METHODS ====================

func (s *userService) GetCommunityUsers(ctx context.Context, caller Caller, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	users, err := s.repo.User.FindByCommunity(ctx, caller.CommunityCode, limit, offset)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	total, err := s.repo.User.CountByCommunity(ctx, caller.CommunityCode)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

func (s *userService) UpdateUserRole(ctx context.Context, caller Caller, userID string, req *request.UpdateUserRoleRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update user role validation failed", zap.Any("errors", errs))
		return nil, apperr.BadRequest("Validation failed: " + utils.FormatValidationErrors(errs))
	}

	user, err := s.findCommunityUser(ctx, caller, userID)
	if err != nil {
		return nil, err
	}

	role := entity.UserRole(req.Role)
	if err := s.repo.User.UpdateRole(ctx, user.ID, role); err != nil {
		return nil, apperr.Internal(err)
	}
	user.Role = role

	s.log.Info("User role updated",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(role)),
		zap.String("admin_id", caller.ID.String()),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

// DeactivateUser disables the account and revokes its open sessions.
func (s *userService) DeactivateUser(ctx context.Context, caller Caller, userID string) error {
	user, err := s.findCommunityUser(ctx, caller, userID)
	if err != nil {
		return err
	}

	if user.ID == caller.ID {
		return apperr.BadRequest("You cannot deactivate your own account")
	}

	if err := s.repo.User.SetActive(ctx, user.ID, false); err != nil {
		return apperr.Internal(err)
	}

	if err := s.repo.Session.RevokeAllUserSessions(ctx, user.ID); err != nil {
		s.log.Error("Failed to revoke sessions for deactivated user",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		// Account is already inactive; auth middleware rejects it either way
	}

	s.log.Info("User deactivated",
		zap.String("user_id", user.ID.String()),
		zap.String("admin_id", caller.ID.String()),
	)

	return nil
}

// findCommunityUser resolves a user in the caller's community. Missing and
// cross-tenant users both read as not found.
func (s *userService) findCommunityUser(ctx context.Context, caller Caller, userID string) (*entity.UserProfile, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.BadRequest("Invalid user ID format")
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil || user.CommunityCode != caller.CommunityCode {
		return nil, apperr.NotFound("User not found")
	}

	return user, nil
}
