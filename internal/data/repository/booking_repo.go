package repository

import (
	"context"
	"errors"
	"fmt"

	"parkboard/internal/data/entity"
	"parkboard/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ErrOverlap is returned by Create when the bookings_no_overlap exclusion
// constraint rejects the insert. The constraint is the only overlap check:
// two concurrent inserts for the same window cannot both commit.
var ErrOverlap = errors.New("booking overlaps an existing booking")

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindWithSlot(ctx context.Context, id uuid.UUID) (*entity.Booking, *entity.ParkingSlot, error)
	FindByParticipant(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByParticipant(ctx context.Context, userID uuid.UUID) (int64, error)
	FindByCommunity(ctx context.Context, communityCode string, limit, offset int) ([]*entity.Booking, error)
	CountByCommunity(ctx context.Context, communityCode string) (int64, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, slot_id, renter_id, slot_owner_id, start_time, end_time, status, total_price, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.SlotID,
		&booking.RenterID,
		&booking.SlotOwnerID,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.TotalPrice,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, slot_id, renter_id, slot_owner_id, start_time, end_time, status, total_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.SlotID,
		booking.RenterID,
		booking.SlotOwnerID,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
		booking.TotalPrice,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		if database.IsExclusionViolation(err) {
			r.log.Warn("Booking rejected by overlap constraint",
				zap.String("slot_id", booking.SlotID.String()),
				zap.Time("start_time", booking.StartTime),
				zap.Time("end_time", booking.EndTime),
			)
			return fmt.Errorf("slot %s from %s to %s: %w",
				booking.SlotID.String(),
				booking.StartTime.Format("2006-01-02 15:04"),
				booking.EndTime.Format("2006-01-02 15:04"),
				ErrOverlap)
		}
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("slot_id", booking.SlotID.String()),
			zap.String("renter_id", booking.RenterID.String()),
		)
		return fmt.Errorf("create booking for slot %s: %w", booking.SlotID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

// FindWithSlot loads a booking together with its slot in one round trip so
// tenancy and ownership checks see a consistent pair.
func (r *bookingRepository) FindWithSlot(ctx context.Context, id uuid.UUID) (*entity.Booking, *entity.ParkingSlot, error) {
	query := `
		SELECT b.id, b.slot_id, b.renter_id, b.slot_owner_id, b.start_time, b.end_time, b.status, b.total_price, b.created_at, b.updated_at,
		       s.id, s.slot_number, s.slot_type, s.price_per_hour, s.status, s.owner_id, s.community_code, s.description, s.created_at, s.updated_at
		FROM bookings b
		JOIN parking_slots s ON s.id = b.slot_id
		WHERE b.id = $1
	`

	var booking entity.Booking
	var slot entity.ParkingSlot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.SlotID,
		&booking.RenterID,
		&booking.SlotOwnerID,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.TotalPrice,
		&booking.CreatedAt,
		&booking.UpdatedAt,
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

	if err == pgx.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking with slot",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, nil, fmt.Errorf("find booking with slot %s: %w", id.String(), err)
	}

	return &booking, &slot, nil
}

// FindByParticipant lists bookings where the user is renter or slot owner.
func (r *bookingRepository) FindByParticipant(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE renter_id = $1 OR slot_owner_id = $1
		ORDER BY start_time DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by participant",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by participant %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows, r.log)
}

func (r *bookingRepository) CountByParticipant(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE renter_id = $1 OR slot_owner_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by participant",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by participant %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindByCommunity(ctx context.Context, communityCode string, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT b.id, b.slot_id, b.renter_id, b.slot_owner_id, b.start_time, b.end_time, b.status, b.total_price, b.created_at, b.updated_at
		FROM bookings b
		JOIN parking_slots s ON s.id = b.slot_id
		WHERE s.community_code = $1
		ORDER BY b.start_time DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, communityCode, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by community",
			zap.Error(err),
			zap.String("community_code", communityCode),
		)
		return nil, fmt.Errorf("find bookings by community %s: %w", communityCode, err)
	}
	defer rows.Close()

	return collectBookings(rows, r.log)
}

func (r *bookingRepository) CountByCommunity(ctx context.Context, communityCode string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings b
		JOIN parking_slots s ON s.id = b.slot_id
		WHERE s.community_code = $1
	`

	var count int64
	err := r.db.QueryRow(ctx, query, communityCode).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by community",
			zap.Error(err),
			zap.String("community_code", communityCode),
		)
		return 0, fmt.Errorf("count bookings by community %s: %w", communityCode, err)
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func collectBookings(rows pgx.Rows, log *zap.Logger) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}
