package usecase

import (
	"context"
	"time"

	"parkboard/internal/apperr"
	"parkboard/internal/data/entity"
	"parkboard/internal/data/repository"
	"parkboard/internal/dto/request"
	"parkboard/internal/dto/response"
	"parkboard/pkg/database"
	"parkboard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SlotService interface {
	CreateSlot(ctx context.Context, caller Caller, req *request.CreateSlotRequest) (*response.SlotResponse, error)
	GetSlots(ctx context.Context, caller Caller, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.SlotResponse], error)
	GetSlot(ctx context.Context, caller Caller, slotID string) (*response.SlotResponse, error)
	GetMySlots(ctx context.Context, caller Caller) ([]response.SlotResponse, error)
	UpdateSlot(ctx context.Context, caller Caller, slotID string, req *request.UpdateSlotRequest) (*response.SlotResponse, error)
	DeleteSlot(ctx context.Context, caller Caller, slotID string) error
}

type slotService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSlotService(repo *repository.Repository, log *zap.Logger) SlotService {
	return &slotService{
		repo: repo,
		log:  log.With(zap.String("service", "slot")),
	}
}

func (s *slotService) CreateSlot(ctx context.Context, caller Caller, req *request.CreateSlotRequest) (*response.SlotResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create slot validation failed", zap.Any("errors", errs))
		return nil, apperr.BadRequest("Validation failed: " + utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	ownerID := caller.ID
	slot := &entity.ParkingSlot{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		SlotNumber:   req.SlotNumber,
		SlotType:     entity.SlotType(req.SlotType),
		PricePerHour: req.PricePerHour,
		Status:       entity.SlotStatusActive,
		OwnerID:      &ownerID,
		// Community always comes from the caller, never the request
		CommunityCode: caller.CommunityCode,
		Description:   req.Description,
	}

	if err := s.repo.Slot.Create(ctx, slot); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperr.BadRequest("Slot number already exists in your community")
		}
		return nil, apperr.Internal(err)
	}

	s.log.Info("Slot created",
		zap.String("slot_id", slot.ID.String()),
		zap.String("slot_number", slot.SlotNumber),
		zap.String("community_code", slot.CommunityCode),
		zap.String("owner_id", ownerID.String()),
	)

	resp := response.SlotToResponse(slot)
	return &resp, nil
}

func (s *slotService) GetSlots(ctx context.Context, caller Caller, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.SlotResponse], error) {
	slotStatus := entity.SlotStatus(status)
	switch slotStatus {
	case "", entity.SlotStatusActive, entity.SlotStatusMaintenance, entity.SlotStatusDisabled:
	default:
		return nil, apperr.BadRequest("Invalid status filter")
	}

	limit := req.Limit()
	offset := req.Offset()

	slots, err := s.repo.Slot.FindByCommunity(ctx, caller.CommunityCode, slotStatus, limit, offset)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	total, err := s.repo.Slot.CountByCommunity(ctx, caller.CommunityCode, slotStatus)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	slotResponses := make([]response.SlotResponse, len(slots))
	for i, slot := range slots {
		slotResponses[i] = response.SlotToResponse(slot)
	}

	return response.NewPaginatedResponse(slotResponses, req.Page, req.PerPage, total), nil
}

func (s *slotService) GetSlot(ctx context.Context, caller Caller, slotID string) (*response.SlotResponse, error) {
	slot, err := s.findVisibleSlot(ctx, caller, slotID)
	if err != nil {
		return nil, err
	}

	resp := response.SlotToResponse(slot)
	return &resp, nil
}

func (s *slotService) GetMySlots(ctx context.Context, caller Caller) ([]response.SlotResponse, error) {
	slots, err := s.repo.Slot.FindByOwnerID(ctx, caller.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	slotResponses := make([]response.SlotResponse, len(slots))
	for i, slot := range slots {
		slotResponses[i] = response.SlotToResponse(slot)
	}

	return slotResponses, nil
}

func (s *slotService) UpdateSlot(ctx context.Context, caller Caller, slotID string, req *request.UpdateSlotRequest) (*response.SlotResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update slot validation failed", zap.Any("errors", errs))
		return nil, apperr.BadRequest("Validation failed: " + utils.FormatValidationErrors(errs))
	}

	slot, err := s.findVisibleSlot(ctx, caller, slotID)
	if err != nil {
		return nil, err
	}

	if !slot.IsOwnedBy(caller.ID) && !caller.IsAdmin() {
		return nil, apperr.Forbidden("Only the slot owner or an admin can modify this slot")
	}

	if req.SlotType != nil {
		slot.SlotType = entity.SlotType(*req.SlotType)
	}
	if req.PricePerHour != nil {
		slot.PricePerHour = req.PricePerHour
	}
	if req.Status != nil {
		slot.Status = entity.SlotStatus(*req.Status)
	}
	if req.Description != nil {
		slot.Description = req.Description
	}
	slot.UpdatedAt = time.Now()

	if err := s.repo.Slot.Update(ctx, slot); err != nil {
		return nil, apperr.Internal(err)
	}

	s.log.Info("Slot updated",
		zap.String("slot_id", slot.ID.String()),
		zap.String("status", string(slot.Status)),
		zap.String("user_id", caller.ID.String()),
	)

	resp := response.SlotToResponse(slot)
	return &resp, nil
}

// DeleteSlot soft-deletes: bookings keep referencing the row.
func (s *slotService) DeleteSlot(ctx context.Context, caller Caller, slotID string) error {
	slot, err := s.findVisibleSlot(ctx, caller, slotID)
	if err != nil {
		return err
	}

	if !slot.IsOwnedBy(caller.ID) && !caller.IsAdmin() {
		return apperr.Forbidden("Only the slot owner or an admin can delete this slot")
	}

	if err := s.repo.Slot.UpdateStatus(ctx, slot.ID, entity.SlotStatusDeleted); err != nil {
		return apperr.Internal(err)
	}

	s.log.Info("Slot deleted",
		zap.String("slot_id", slot.ID.String()),
		zap.String("user_id", caller.ID.String()),
	)

	return nil
}

// findVisibleSlot resolves a slot the caller is allowed to see. Missing,
// deleted, and cross-tenant slots all read as not found.
func (s *slotService) findVisibleSlot(ctx context.Context, caller Caller, slotID string) (*entity.ParkingSlot, error) {
	id, err := uuid.Parse(slotID)
	if err != nil {
		return nil, apperr.BadRequest("Invalid slot ID format")
	}

	slot, err := s.repo.Slot.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if slot == nil || slot.Status == entity.SlotStatusDeleted || slot.CommunityCode != caller.CommunityCode {
		return nil, apperr.NotFound("Slot not found")
	}

	return slot, nil
}
