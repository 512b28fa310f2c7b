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

type SlotRepository interface {
	Create(ctx context.Context, slot *entity.ParkingSlot) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ParkingSlot, error)
	FindByCommunity(ctx context.Context, communityCode string, status entity.SlotStatus, limit, offset int) ([]*entity.ParkingSlot, error)
	CountByCommunity(ctx context.Context, communityCode string, status entity.SlotStatus) (int64, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.ParkingSlot, error)
	Update(ctx context.Context, slot *entity.ParkingSlot) error
	UpdateStatus(ctx context.Context, slotID uuid.UUID, status entity.SlotStatus) error
}

type slotRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSlotRepository(db database.PgxIface, log *zap.Logger) SlotRepository {
	return &slotRepository{
		db:  db,
		log: log.With(zap.String("repository", "slot")),
	}
}

const slotColumns = `id, slot_number, slot_type, price_per_hour, status, owner_id, community_code, description, created_at, updated_at`

func scanSlot(row pgx.Row) (*entity.ParkingSlot, error) {
	var slot entity.ParkingSlot
	err := row.Scan(
		&slot.ID,
		&slot.SlotNumber,
		&slot.SlotType,
		&slot.PricePerHour,
		&slot.Status,
		&slot.OwnerID,
		&slot.CommunityCode,
		&slot.Description,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepository) Create(ctx context.Context, slot *entity.ParkingSlot) error {
	query := `
		INSERT INTO parking_slots (id, slot_number, slot_type, price_per_hour, status, owner_id, community_code, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		slot.ID,
		slot.SlotNumber,
		slot.SlotType,
		slot.PricePerHour,
		slot.Status,
		slot.OwnerID,
		slot.CommunityCode,
		slot.Description,
		slot.CreatedAt,
		slot.UpdatedAt,
	)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("slot number %s already exists in community %s: %w",
				slot.SlotNumber, slot.CommunityCode, err)
		}
		r.log.Error("Failed to create slot",
			zap.Error(err),
			zap.String("slot_number", slot.SlotNumber),
			zap.String("community_code", slot.CommunityCode),
		)
		return fmt.Errorf("create slot %s: %w", slot.SlotNumber, err)
	}

	return nil
}

func (r *slotRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ParkingSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM parking_slots WHERE id = $1`

	slot, err := scanSlot(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find slot by ID",
			zap.Error(err),
			zap.String("slot_id", id.String()),
		)
		return nil, fmt.Errorf("find slot by ID %s: %w", id.String(), err)
	}

	return slot, nil
}

// FindByCommunity lists non-deleted slots in a community, optionally
// narrowed to one status. Pass "" to list all non-deleted.
func (r *slotRepository) FindByCommunity(ctx context.Context, communityCode string, status entity.SlotStatus, limit, offset int) ([]*entity.ParkingSlot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM parking_slots
		WHERE community_code = $1
		  AND status <> 'deleted'
		  AND ($2 = '' OR status = $2)
		ORDER BY slot_number
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, communityCode, string(status), limit, offset)
	if err != nil {
		r.log.Error("Failed to find slots by community",
			zap.Error(err),
			zap.String("community_code", communityCode),
		)
		return nil, fmt.Errorf("find slots by community %s: %w", communityCode, err)
	}
	defer rows.Close()

	var slots []*entity.ParkingSlot
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			r.log.Error("Failed to scan slot row", zap.Error(err))
			return nil, fmt.Errorf("scan slot row: %w", err)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

func (r *slotRepository) CountByCommunity(ctx context.Context, communityCode string, status entity.SlotStatus) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM parking_slots
		WHERE community_code = $1
		  AND status <> 'deleted'
		  AND ($2 = '' OR status = $2)
	`

	var count int64
	err := r.db.QueryRow(ctx, query, communityCode, string(status)).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count slots by community",
			zap.Error(err),
			zap.String("community_code", communityCode),
		)
		return 0, fmt.Errorf("count slots by community %s: %w", communityCode, err)
	}

	return count, nil
}

func (r *slotRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.ParkingSlot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM parking_slots
		WHERE owner_id = $1 AND status <> 'deleted'
		ORDER BY slot_number
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("Failed to find slots by owner ID",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find slots by owner ID %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	var slots []*entity.ParkingSlot
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			r.log.Error("Failed to scan slot row", zap.Error(err))
			return nil, fmt.Errorf("scan slot row: %w", err)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

func (r *slotRepository) Update(ctx context.Context, slot *entity.ParkingSlot) error {
	query := `
		UPDATE parking_slots
		SET slot_number = $2, slot_type = $3, price_per_hour = $4,
		    status = $5, description = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		slot.ID,
		slot.SlotNumber,
		slot.SlotType,
		slot.PricePerHour,
		slot.Status,
		slot.Description,
		slot.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update slot",
			zap.Error(err),
			zap.String("slot_id", slot.ID.String()),
		)
		return fmt.Errorf("update slot %s: %w", slot.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("slot %s not found", slot.ID.String())
	}

	return nil
}

func (r *slotRepository) UpdateStatus(ctx context.Context, slotID uuid.UUID, status entity.SlotStatus) error {
	query := `UPDATE parking_slots SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, slotID, status)
	if err != nil {
		r.log.Error("Failed to update slot status",
			zap.Error(err),
			zap.String("slot_id", slotID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update slot %s status to %s: %w", slotID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("slot %s not found", slotID.String())
	}

	return nil
}
