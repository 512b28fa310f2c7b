package adaptor

import (
	"net/http"

	"parkboard/internal/dto/request"
	"parkboard/internal/usecase"
	"parkboard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SlotHandler struct {
	service usecase.SlotService
	log     *zap.Logger
}

func NewSlotHandler(service usecase.SlotService, log *zap.Logger) *SlotHandler {
	return &SlotHandler{
		service: service,
		log:     log.With(zap.String("handler", "slot")),
	}
}

// CreateSlot handles POST /api/slots (protected)
func (h *SlotHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateSlotRequest
	if err := decodeStrict(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	slot, err := h.service.CreateSlot(r.Context(), caller, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create slot")
		return
	}

	utils.ResponseCreated(w, "success", slot)
}

// GetSlots handles GET /api/slots (protected)
func (h *SlotHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	slots, err := h.service.GetSlots(r.Context(), caller, query.Get("status"), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// GetMySlots handles GET /api/user/slots (protected)
func (h *SlotHandler) GetMySlots(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	slots, err := h.service.GetMySlots(r.Context(), caller)
	if err != nil {
		handleServiceError(h.log, w, err, "get my slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// GetSlot handles GET /api/slots/{id} (protected)
func (h *SlotHandler) GetSlot(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	slotID := chi.URLParam(r, "id")
	if slotID == "" {
		utils.ResponseBadRequest(w, "Slot ID is required", nil)
		return
	}

	slot, err := h.service.GetSlot(r.Context(), caller, slotID)
	if err != nil {
		handleServiceError(h.log, w, err, "get slot")
		return
	}

	utils.ResponseSuccess(w, "success", slot)
}

// UpdateSlot handles PUT /api/slots/{id} (protected, owner or admin)
func (h *SlotHandler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	slotID := chi.URLParam(r, "id")
	if slotID == "" {
		utils.ResponseBadRequest(w, "Slot ID is required", nil)
		return
	}

	var req request.UpdateSlotRequest
	if err := decodeStrict(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	slot, err := h.service.UpdateSlot(r.Context(), caller, slotID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update slot")
		return
	}

	utils.ResponseSuccess(w, "success", slot)
}

// DeleteSlot handles DELETE /api/slots/{id} (protected, owner or admin)
func (h *SlotHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	slotID := chi.URLParam(r, "id")
	if slotID == "" {
		utils.ResponseBadRequest(w, "Slot ID is required", nil)
		return
	}

	if err := h.service.DeleteSlot(r.Context(), caller, slotID); err != nil {
		handleServiceError(h.log, w, err, "delete slot")
		return
	}

	utils.ResponseSuccess(w, "Slot deleted successfully", nil)
}
