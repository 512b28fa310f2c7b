package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parkboard/internal/apperr"
	"parkboard/internal/data/entity"
	"parkboard/internal/data/repository"
	"parkboard/internal/dto/request"
	"parkboard/internal/dto/response"
	"parkboard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, caller Caller, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, caller Caller, bookingID string) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, caller Caller, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	CancelBooking(ctx context.Context, caller Caller, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)

	// Admin endpoints
	GetCommunityBookings(ctx context.Context, caller Caller, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	UpdateBookingStatus(ctx context.Context, caller Caller, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// CreateBooking runs the ordered policy checks and hands the draft to the
// atomic insert. The checks fail fast; the insert is the only mutation.
func (s *bookingService) CreateBooking(ctx context.Context, caller Caller, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	start, end, errs := req.Validate()
	if errs != nil {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, apperr.BadRequest("Validation failed: " + utils.FormatValidationErrors(errs))
	}

	slotID, err := uuid.Parse(req.SlotID)
	if err != nil {
		return nil, apperr.BadRequest("Invalid slot ID format")
	}

	slot, err := s.repo.Slot.FindByID(ctx, slotID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if slot == nil {
		return nil, apperr.NotFound("Slot not found")
	}

	// Tenant check comes before any business-rule check so a cross-tenant
	// caller learns nothing about the slot beyond the 403.
	if slot.CommunityCode != caller.CommunityCode {
		s.log.Warn("Cross-tenant booking attempt",
			zap.String("slot_id", slotID.String()),
			zap.String("slot_community", slot.CommunityCode),
			zap.String("caller_community", caller.CommunityCode),
		)
		return nil, apperr.Forbidden("Slot not in your community")
	}

	if slot.Status != entity.SlotStatusActive {
		return nil, apperr.BadRequest("Slot is not available for booking")
	}

	if slot.IsOwnedBy(caller.ID) {
		return nil, apperr.Forbidden("You cannot book your own slot")
	}

	if slot.PricePerHour == nil {
		return nil, apperr.BadRequest("Slot requires a manual quote; instant booking is not available")
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		SlotID:      slot.ID,
		RenterID:    caller.ID,
		SlotOwnerID: slot.OwnerID,
		StartTime:   start.UTC(),
		EndTime:     end.UTC(),
		Status:      entity.BookingStatusPending,
		TotalPrice:  CalculatePrice(*slot.PricePerHour, start, end),
	}

	// The insert and the overlap check are one atomic operation: the
	// exclusion constraint decides, so concurrent requests for the same
	// window cannot both succeed.
	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrOverlap) {
			return nil, apperr.Conflict("Slot is already booked for this period")
		}
		return nil, apperr.Internal(err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("slot_id", slot.ID.String()),
		zap.String("renter_id", caller.ID.String()),
		zap.Time("start_time", booking.StartTime),
		zap.Time("end_time", booking.EndTime),
		zap.Float64("total_price", booking.TotalPrice),
	)

	resp := response.BookingToResponse(booking, slot)
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, caller Caller, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperr.BadRequest("Invalid booking ID format")
	}

	booking, slot, err := s.repo.Booking.FindWithSlot(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	// Absent and cross-tenant are indistinguishable to the caller
	if booking == nil || slot.CommunityCode != caller.CommunityCode {
		return nil, apperr.NotFound("Booking not found")
	}

	if booking.RenterID != caller.ID && !slot.IsOwnedBy(caller.ID) && !caller.IsAdmin() {
		return nil, apperr.Forbidden("You do not have access to this booking")
	}

	resp := response.BookingToResponse(booking, slot)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, caller Caller, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindByParticipant(ctx, caller.ID, limit, offset)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	total, err := s.repo.Booking.CountByParticipant(ctx, caller.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking, nil)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

// CancelBooking transitions a booking to cancelled on behalf of the renter
// or the slot owner. Cancelling an already-cancelled booking succeeds with
// no state change.
func (s *bookingService) CancelBooking(ctx context.Context, caller Caller, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Cancel booking validation failed", zap.Any("errors", errs))
		return nil, apperr.BadRequest("Validation failed: " + utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperr.BadRequest("Invalid booking ID format")
	}

	booking, slot, err := s.repo.Booking.FindWithSlot(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if booking == nil || slot.CommunityCode != caller.CommunityCode {
		return nil, apperr.NotFound("Booking not found")
	}

	// Only the booking's parties cancel here; admins go through the
	// status-transition endpoint
	isRenter := booking.RenterID == caller.ID
	if !isRenter && !slot.IsOwnedBy(caller.ID) {
		return nil, apperr.Forbidden("Only the renter or slot owner can cancel this booking")
	}

	// Idempotent: repeating a cancel returns the unchanged booking
	if booking.Status == entity.BookingStatusCancelled {
		resp := response.BookingToResponse(booking, slot)
		return &resp, nil
	}

	if booking.Status == entity.BookingStatusCompleted || booking.Status == entity.BookingStatusNoShow {
		return nil, apperr.BadRequest("Cannot cancel completed or no_show bookings")
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		return nil, apperr.Internal(err)
	}
	booking.Status = entity.BookingStatusCancelled

	actor := "renter"
	if !isRenter {
		actor = "owner"
	}
	s.log.Info("Booking cancelled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("cancelled_by", actor),
		zap.String("user_id", caller.ID.String()),
	)

	resp := response.BookingToResponse(booking, slot)
	return &resp, nil
}

// ==================== ADMIN METHODS ====================

func (s *bookingService) GetCommunityBookings(ctx context.Context, caller Caller, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindByCommunity(ctx, caller.CommunityCode, limit, offset)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	total, err := s.repo.Booking.CountByCommunity(ctx, caller.CommunityCode)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking, nil)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

// UpdateBookingStatus applies the admin-driven transitions: confirmation
// and the completion/no-show outcomes. Completed and no_show are terminal.
func (s *bookingService) UpdateBookingStatus(ctx context.Context, caller Caller, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return nil, apperr.BadRequest("Validation failed: " + utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperr.BadRequest("Invalid booking ID format")
	}

	booking, slot, err := s.repo.Booking.FindWithSlot(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if booking == nil || slot.CommunityCode != caller.CommunityCode {
		return nil, apperr.NotFound("Booking not found")
	}

	target := entity.BookingStatus(req.Status)
	if booking.Status == target {
		resp := response.BookingToResponse(booking, slot)
		return &resp, nil
	}

	if !transitionAllowed(booking.Status, target) {
		return nil, apperr.BadRequest(fmt.Sprintf("Cannot transition booking from %s to %s", booking.Status, target))
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, target); err != nil {
		return nil, apperr.Internal(err)
	}
	booking.Status = target

	s.log.Info("Booking status updated",
		zap.String("booking_id", booking.ID.String()),
		zap.String("status", string(target)),
		zap.String("admin_id", caller.ID.String()),
	)

	resp := response.BookingToResponse(booking, slot)
	return &resp, nil
}

// transitionAllowed encodes the booking state machine edges:
// pending -> confirmed|cancelled, confirmed -> completed|no_show|cancelled.
func transitionAllowed(from, to entity.BookingStatus) bool {
	switch from {
	case entity.BookingStatusPending:
		return to == entity.BookingStatusConfirmed || to == entity.BookingStatusCancelled
	case entity.BookingStatusConfirmed:
		return to == entity.BookingStatusCompleted ||
			to == entity.BookingStatusNoShow ||
			to == entity.BookingStatusCancelled
	default:
		return false
	}
}
