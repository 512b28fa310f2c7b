package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parkboard/internal/data/entity"
	"parkboard/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSessionRepo struct {
	session *entity.Session
	err     error
}

func (s *stubSessionRepo) Create(ctx context.Context, session *entity.Session) error { return nil }
func (s *stubSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	// The real query compares against a uuid column; a malformed token
	// fails to encode instead of matching nothing
	if _, err := uuid.Parse(token); err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	return s.session, s.err
}
func (s *stubSessionRepo) Revoke(ctx context.Context, token string) error              { return nil }
func (s *stubSessionRepo) RevokeAllUserSessions(ctx context.Context, id uuid.UUID) error { return nil }
func (s *stubSessionRepo) CleanExpiredSessions(ctx context.Context) error              { return nil }

type stubUserRepo struct {
	user *entity.UserProfile
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.UserProfile) error { return nil }
func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
	return s.user, nil
}
func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error) {
	return nil, nil
}
func (s *stubUserRepo) FindByCommunity(ctx context.Context, code string, limit, offset int) ([]*entity.UserProfile, error) {
	return nil, nil
}
func (s *stubUserRepo) CountByCommunity(ctx context.Context, code string) (int64, error) {
	return 0, nil
}
func (s *stubUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role entity.UserRole) error {
	return nil
}
func (s *stubUserRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error { return nil }

func sessionFor(userID uuid.UUID) *entity.Session {
	return &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     userID,
		Token:      uuid.New(),
		ExpiresAt:  time.Now().Add(time.Hour),
	}
}

func authedUser(role entity.UserRole) *entity.UserProfile {
	return &entity.UserProfile{
		Base:          entity.Base{ID: uuid.New()},
		Name:          "Santos",
		Email:         "santos@example.com",
		CommunityCode: "GREENHILLS",
		Role:          role,
		IsActive:      true,
	}
}

func TestAuthSessionResolvesIdentity(t *testing.T) {
	user := authedUser(entity.RoleResident)
	session := sessionFor(user.ID)

	var gotUserID uuid.UUID
	var gotCommunity, gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		gotCommunity, _ = utils.GetCommunityFromContext(r.Context())
		gotRole, _ = utils.GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthSession(&stubSessionRepo{session: session}, &stubUserRepo{user: user}, zap.NewNop())(next)

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID, gotUserID)
	assert.Equal(t, "GREENHILLS", gotCommunity)
	assert.Equal(t, "resident", gotRole)
}

func TestAuthSessionRejections(t *testing.T) {
	user := authedUser(entity.RoleResident)
	inactive := authedUser(entity.RoleResident)
	inactive.IsActive = false
	homeless := authedUser(entity.RoleResident)
	homeless.CommunityCode = ""

	tests := []struct {
		name       string
		header     string
		session    *entity.Session
		user       *entity.UserProfile
		wantStatus int
	}{
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			header:     "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token is not a UUID",
			header:     "Bearer hello",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown or expired session",
			header:     "Bearer " + uuid.NewString(),
			session:    nil,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "inactive user",
			header:     "Bearer " + uuid.NewString(),
			session:    sessionFor(inactive.ID),
			user:       inactive,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no community assigned",
			header:     "Bearer " + uuid.NewString(),
			session:    sessionFor(homeless.ID),
			user:       homeless,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not run")
			})
			if tt.user == nil {
				tt.user = user
			}
			handler := AuthSession(&stubSessionRepo{session: tt.session}, &stubUserRepo{user: tt.user}, zap.NewNop())(next)

			req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAdminGate(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Admin(zap.NewNop())(next)

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		ctx := utils.SetUserContext(req.Context(), uuid.New(), "GREENHILLS", "admin")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("resident forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		ctx := utils.SetUserContext(req.Context(), uuid.New(), "GREENHILLS", "resident")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
