package usecase

import (
	"context"
	"net/http"
	"testing"

	"parkboard/internal/apperr"
	"parkboard/internal/data/entity"
	"parkboard/internal/data/repository"
	"parkboard/internal/dto/request"
	"parkboard/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(repo *repository.Repository) AuthService {
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 72}}
	return NewAuthService(repo, config, zap.NewNop())
}

func activeUser(email, password string) *entity.UserProfile {
	hash, _ := utils.HashPassword(password)
	return &entity.UserProfile{
		Base:          entity.Base{ID: uuid.New()},
		Name:          "Dela Cruz",
		Email:         email,
		PasswordHash:  hash,
		CommunityCode: testCommunity,
		Role:          entity.RoleResident,
		IsActive:      true,
	}
}

func TestRegisterSuccess(t *testing.T) {
	var created *entity.UserProfile
	repo := &repository.Repository{
		User: &fakeUserRepo{
			FindByEmailFn: func(ctx context.Context, email string) (*entity.UserProfile, error) {
				return nil, nil
			},
			CreateFn: func(ctx context.Context, user *entity.UserProfile) error {
				created = user
				return nil
			},
		},
		Session: &fakeSessionRepo{
			CreateFn: func(ctx context.Context, session *entity.Session) error {
				return nil
			},
		},
	}

	resp, err := newAuthService(repo).Register(context.Background(), &request.RegisterRequest{
		Name:          "Dela Cruz",
		Email:         "dela@example.com",
		Password:      "sikretongmalupit",
		CommunityCode: testCommunity,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.RoleResident, created.Role)
	assert.True(t, created.IsActive)
	assert.NotEqual(t, "sikretongmalupit", created.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("sikretongmalupit", created.PasswordHash))
	assert.NotEmpty(t, resp.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	existing := activeUser("dela@example.com", "sikretongmalupit")

	repo := &repository.Repository{
		User: &fakeUserRepo{
			FindByEmailFn: func(ctx context.Context, email string) (*entity.UserProfile, error) {
				return existing, nil
			},
		},
	}

	_, err := newAuthService(repo).Register(context.Background(), &request.RegisterRequest{
		Name:          "Dela Cruz",
		Email:         "dela@example.com",
		Password:      "sikretongmalupit",
		CommunityCode: testCommunity,
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
	assert.Equal(t, "Email already registered", apperr.MessageOf(err))
}

// A concurrent registration can slip past the precheck; the unique index
// on email reports the same outcome.
func TestRegisterDuplicateEmailRace(t *testing.T) {
	repo := &repository.Repository{
		User: &fakeUserRepo{
			FindByEmailFn: func(ctx context.Context, email string) (*entity.UserProfile, error) {
				return nil, nil
			},
			CreateFn: func(ctx context.Context, user *entity.UserProfile) error {
				return errUniqueViolation()
			},
		},
	}

	_, err := newAuthService(repo).Register(context.Background(), &request.RegisterRequest{
		Name:          "Dela Cruz",
		Email:         "dela@example.com",
		Password:      "sikretongmalupit",
		CommunityCode: testCommunity,
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
	assert.Equal(t, "Email already registered", apperr.MessageOf(err))
}

func TestLoginSuccess(t *testing.T) {
	user := activeUser("dela@example.com", "sikretongmalupit")

	repo := &repository.Repository{
		User: &fakeUserRepo{
			FindByEmailFn: func(ctx context.Context, email string) (*entity.UserProfile, error) {
				return user, nil
			},
		},
		Session: &fakeSessionRepo{
			CreateFn: func(ctx context.Context, session *entity.Session) error {
				assert.Equal(t, user.ID, session.UserID)
				assert.False(t, session.ExpiresAt.IsZero())
				return nil
			},
		},
	}

	resp, err := newAuthService(repo).Login(context.Background(), &request.LoginRequest{
		Email:    "dela@example.com",
		Password: "sikretongmalupit",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.Email, resp.User.Email)
}

// Unknown email and wrong password are indistinguishable to the caller.
func TestLoginInvalidCredentials(t *testing.T) {
	user := activeUser("dela@example.com", "sikretongmalupit")

	tests := []struct {
		name  string
		found *entity.UserProfile
		pass  string
	}{
		{name: "unknown email", found: nil, pass: "sikretongmalupit"},
		{name: "wrong password", found: user, pass: "wrong-password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &repository.Repository{
				User: &fakeUserRepo{
					FindByEmailFn: func(ctx context.Context, email string) (*entity.UserProfile, error) {
						return tt.found, nil
					},
				},
			}

			_, err := newAuthService(repo).Login(context.Background(), &request.LoginRequest{
				Email:    "dela@example.com",
				Password: tt.pass,
			})

			require.Error(t, err)
			assert.Equal(t, http.StatusUnauthorized, apperr.StatusOf(err))
			assert.Equal(t, "Invalid credentials", apperr.MessageOf(err))
		})
	}
}

func TestLoginDeactivatedAccount(t *testing.T) {
	user := activeUser("dela@example.com", "sikretongmalupit")
	user.IsActive = false

	repo := &repository.Repository{
		User: &fakeUserRepo{
			FindByEmailFn: func(ctx context.Context, email string) (*entity.UserProfile, error) {
				return user, nil
			},
		},
	}

	_, err := newAuthService(repo).Login(context.Background(), &request.LoginRequest{
		Email:    "dela@example.com",
		Password: "sikretongmalupit",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperr.StatusOf(err))
	assert.Equal(t, "Account is deactivated", apperr.MessageOf(err))
}

func TestLogout(t *testing.T) {
	token := uuid.NewString()

	revoked := ""
	repo := &repository.Repository{
		Session: &fakeSessionRepo{
			RevokeFn: func(ctx context.Context, tok string) error {
				revoked = tok
				return nil
			},
		},
	}

	svc := newAuthService(repo)

	require.NoError(t, svc.Logout(context.Background(), token))
	assert.Equal(t, token, revoked)

	err := svc.Logout(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
}
