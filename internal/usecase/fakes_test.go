package usecase

import (
	"context"

	"parkboard/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// errUniqueViolation mimics what the driver raises on a UNIQUE conflict.
func errUniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}

// Function-field fakes so each test wires only the calls it expects.

type fakeSlotRepo struct {
	CreateFn          func(ctx context.Context, slot *entity.ParkingSlot) error
	FindByIDFn        func(ctx context.Context, id uuid.UUID) (*entity.ParkingSlot, error)
	FindByCommunityFn func(ctx context.Context, communityCode string, status entity.SlotStatus, limit, offset int) ([]*entity.ParkingSlot, error)
	CountByCommunityF func(ctx context.Context, communityCode string, status entity.SlotStatus) (int64, error)
	FindByOwnerIDFn   func(ctx context.Context, ownerID uuid.UUID) ([]*entity.ParkingSlot, error)
	UpdateFn          func(ctx context.Context, slot *entity.ParkingSlot) error
	UpdateStatusFn    func(ctx context.Context, slotID uuid.UUID, status entity.SlotStatus) error
}

func (f *fakeSlotRepo) Create(ctx context.Context, slot *entity.ParkingSlot) error {
	return f.CreateFn(ctx, slot)
}

func (f *fakeSlotRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ParkingSlot, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeSlotRepo) FindByCommunity(ctx context.Context, communityCode string, status entity.SlotStatus, limit, offset int) ([]*entity.ParkingSlot, error) {
	return f.FindByCommunityFn(ctx, communityCode, status, limit, offset)
}

func (f *fakeSlotRepo) CountByCommunity(ctx context.Context, communityCode string, status entity.SlotStatus) (int64, error) {
	return f.CountByCommunityF(ctx, communityCode, status)
}

func (f *fakeSlotRepo) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.ParkingSlot, error) {
	return f.FindByOwnerIDFn(ctx, ownerID)
}

func (f *fakeSlotRepo) Update(ctx context.Context, slot *entity.ParkingSlot) error {
	return f.UpdateFn(ctx, slot)
}

func (f *fakeSlotRepo) UpdateStatus(ctx context.Context, slotID uuid.UUID, status entity.SlotStatus) error {
	return f.UpdateStatusFn(ctx, slotID, status)
}

type fakeBookingRepo struct {
	CreateFn            func(ctx context.Context, booking *entity.Booking) error
	FindByIDFn          func(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindWithSlotFn      func(ctx context.Context, id uuid.UUID) (*entity.Booking, *entity.ParkingSlot, error)
	FindByParticipantFn func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByParticipantF func(ctx context.Context, userID uuid.UUID) (int64, error)
	FindByCommunityFn   func(ctx context.Context, communityCode string, limit, offset int) ([]*entity.Booking, error)
	CountByCommunityF   func(ctx context.Context, communityCode string) (int64, error)
	UpdateStatusFn      func(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	return f.CreateFn(ctx, booking)
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeBookingRepo) FindWithSlot(ctx context.Context, id uuid.UUID) (*entity.Booking, *entity.ParkingSlot, error) {
	return f.FindWithSlotFn(ctx, id)
}

func (f *fakeBookingRepo) FindByParticipant(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	return f.FindByParticipantFn(ctx, userID, limit, offset)
}

func (f *fakeBookingRepo) CountByParticipant(ctx context.Context, userID uuid.UUID) (int64, error) {
	return f.CountByParticipantF(ctx, userID)
}

func (f *fakeBookingRepo) FindByCommunity(ctx context.Context, communityCode string, limit, offset int) ([]*entity.Booking, error) {
	return f.FindByCommunityFn(ctx, communityCode, limit, offset)
}

func (f *fakeBookingRepo) CountByCommunity(ctx context.Context, communityCode string) (int64, error) {
	return f.CountByCommunityF(ctx, communityCode)
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	return f.UpdateStatusFn(ctx, bookingID, status)
}

type fakeUserRepo struct {
	CreateFn           func(ctx context.Context, user *entity.UserProfile) error
	FindByIDFn         func(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error)
	FindByEmailFn      func(ctx context.Context, email string) (*entity.UserProfile, error)
	FindByCommunityFn  func(ctx context.Context, communityCode string, limit, offset int) ([]*entity.UserProfile, error)
	CountByCommunityF  func(ctx context.Context, communityCode string) (int64, error)
	UpdateRoleFn       func(ctx context.Context, userID uuid.UUID, role entity.UserRole) error
	SetActiveFn        func(ctx context.Context, userID uuid.UUID, active bool) error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.UserProfile) error {
	return f.CreateFn(ctx, user)
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error) {
	return f.FindByEmailFn(ctx, email)
}

func (f *fakeUserRepo) FindByCommunity(ctx context.Context, communityCode string, limit, offset int) ([]*entity.UserProfile, error) {
	return f.FindByCommunityFn(ctx, communityCode, limit, offset)
}

func (f *fakeUserRepo) CountByCommunity(ctx context.Context, communityCode string) (int64, error) {
	return f.CountByCommunityF(ctx, communityCode)
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, userID uuid.UUID, role entity.UserRole) error {
	return f.UpdateRoleFn(ctx, userID, role)
}

func (f *fakeUserRepo) SetActive(ctx context.Context, userID uuid.UUID, active bool) error {
	return f.SetActiveFn(ctx, userID, active)
}

type fakeSessionRepo struct {
	CreateFn                func(ctx context.Context, session *entity.Session) error
	FindValidSessionFn      func(ctx context.Context, token string) (*entity.Session, error)
	RevokeFn                func(ctx context.Context, token string) error
	RevokeAllUserSessionsFn func(ctx context.Context, userID uuid.UUID) error
	CleanExpiredSessionsFn  func(ctx context.Context) error
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return f.CreateFn(ctx, session)
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	return f.FindValidSessionFn(ctx, token)
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	return f.RevokeFn(ctx, token)
}

func (f *fakeSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	return f.RevokeAllUserSessionsFn(ctx, userID)
}

func (f *fakeSessionRepo) CleanExpiredSessions(ctx context.Context) error {
	return f.CleanExpiredSessionsFn(ctx)
}
