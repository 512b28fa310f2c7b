package repository

import (
	"context"
	"fmt"

	"parkboard/internal/data/entity"
	"parkboard/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.UserProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error)
	FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error)
	FindByCommunity(ctx context.Context, communityCode string, limit, offset int) ([]*entity.UserProfile, error)
	CountByCommunity(ctx context.Context, communityCode string) (int64, error)
	UpdateRole(ctx context.Context, userID uuid.UUID, role entity.UserRole) error
	SetActive(ctx context.Context, userID uuid.UUID, active bool) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, name, email, password, phone, unit_number, community_code, role, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.UserProfile, error) {
	var user entity.UserProfile
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.UnitNumber,
		&user.CommunityCode,
		&user.Role,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.UserProfile) error {
	query := `
		INSERT INTO users (id, name, email, password, phone, unit_number, community_code, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.UnitNumber,
		user.CommunityCode,
		user.Role,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("email %s already registered: %w", user.Email, err)
		}
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

func (r *userRepository) FindByCommunity(ctx context.Context, communityCode string, limit, offset int) ([]*entity.UserProfile, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE community_code = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, communityCode, limit, offset)
	if err != nil {
		r.log.Error("Failed to find users by community",
			zap.Error(err),
			zap.String("community_code", communityCode),
		)
		return nil, fmt.Errorf("find users by community %s: %w", communityCode, err)
	}
	defer rows.Close()

	var users []*entity.UserProfile
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			r.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *userRepository) CountByCommunity(ctx context.Context, communityCode string) (int64, error) {
	query := `SELECT COUNT(*) FROM users WHERE community_code = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, communityCode).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count users by community",
			zap.Error(err),
			zap.String("community_code", communityCode),
		)
		return 0, fmt.Errorf("count users by community %s: %w", communityCode, err)
	}

	return count, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, userID uuid.UUID, role entity.UserRole) error {
	query := `UPDATE users SET role = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, userID, role)
	if err != nil {
		r.log.Error("Failed to update user role",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("role", string(role)),
		)
		return fmt.Errorf("update user %s role to %s: %w", userID.String(), string(role), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", userID.String())
	}

	return nil
}

func (r *userRepository) SetActive(ctx context.Context, userID uuid.UUID, active bool) error {
	query := `UPDATE users SET is_active = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, userID, active)
	if err != nil {
		r.log.Error("Failed to update user active flag",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Bool("active", active),
		)
		return fmt.Errorf("set user %s active to %t: %w", userID.String(), active, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", userID.String())
	}

	return nil
}
