package usecase

import (
	"context"
	"net/http"
	"testing"

	"parkboard/internal/apperr"
	"parkboard/internal/data/entity"
	"parkboard/internal/data/repository"
	"parkboard/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserService(repo *repository.Repository) UserService {
	return NewUserService(repo, zap.NewNop())
}

func adminCaller() Caller {
	return Caller{ID: uuid.New(), CommunityCode: testCommunity, Role: entity.RoleAdmin}
}

func communityUser(community string) *entity.UserProfile {
	return &entity.UserProfile{
		Base:          entity.Base{ID: uuid.New()},
		Name:          "Reyes",
		Email:         "reyes@example.com",
		CommunityCode: community,
		Role:          entity.RoleResident,
		IsActive:      true,
	}
}

func TestUpdateUserRolePromotes(t *testing.T) {
	target := communityUser(testCommunity)

	var newRole entity.UserRole
	repo := &repository.Repository{
		User: &fakeUserRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
				return target, nil
			},
			UpdateRoleFn: func(ctx context.Context, userID uuid.UUID, role entity.UserRole) error {
				assert.Equal(t, target.ID, userID)
				newRole = role
				return nil
			},
		},
	}

	resp, err := newUserService(repo).UpdateUserRole(context.Background(), adminCaller(), target.ID.String(), &request.UpdateUserRoleRequest{Role: "admin"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, newRole)
	assert.Equal(t, "admin", resp.Role)
}

func TestUpdateUserRoleCrossTenant(t *testing.T) {
	target := communityUser("SEASIDE")

	repo := &repository.Repository{
		User: &fakeUserRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
				return target, nil
			},
		},
	}

	_, err := newUserService(repo).UpdateUserRole(context.Background(), adminCaller(), target.ID.String(), &request.UpdateUserRoleRequest{Role: "admin"})

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))
	assert.Equal(t, "User not found", apperr.MessageOf(err))
}

func TestDeactivateUserRevokesSessions(t *testing.T) {
	target := communityUser(testCommunity)

	deactivated := false
	revoked := false
	repo := &repository.Repository{
		User: &fakeUserRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
				return target, nil
			},
			SetActiveFn: func(ctx context.Context, userID uuid.UUID, active bool) error {
				assert.Equal(t, target.ID, userID)
				assert.False(t, active)
				deactivated = true
				return nil
			},
		},
		Session: &fakeSessionRepo{
			RevokeAllUserSessionsFn: func(ctx context.Context, userID uuid.UUID) error {
				assert.Equal(t, target.ID, userID)
				revoked = true
				return nil
			},
		},
	}

	err := newUserService(repo).DeactivateUser(context.Background(), adminCaller(), target.ID.String())

	require.NoError(t, err)
	assert.True(t, deactivated)
	assert.True(t, revoked)
}

func TestDeactivateUserSelf(t *testing.T) {
	admin := adminCaller()
	self := &entity.UserProfile{
		Base:          entity.Base{ID: admin.ID},
		CommunityCode: testCommunity,
		Role:          entity.RoleAdmin,
		IsActive:      true,
	}

	repo := &repository.Repository{
		User: &fakeUserRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
				return self, nil
			},
		},
	}

	err := newUserService(repo).DeactivateUser(context.Background(), admin, admin.ID.String())

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
	assert.Equal(t, "You cannot deactivate your own account", apperr.MessageOf(err))
}

func TestGetProfile(t *testing.T) {
	user := communityUser(testCommunity)
	caller := Caller{ID: user.ID, CommunityCode: testCommunity, Role: entity.RoleResident}

	repo := &repository.Repository{
		User: &fakeUserRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
				assert.Equal(t, user.ID, id)
				return user, nil
			},
		},
	}

	resp, err := newUserService(repo).GetProfile(context.Background(), caller)

	require.NoError(t, err)
	assert.Equal(t, user.Email, resp.Email)
	assert.Equal(t, testCommunity, resp.CommunityCode)
}
