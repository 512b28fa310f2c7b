package adaptor

import (
	"net/http"

	"parkboard/internal/dto/request"
	"parkboard/internal/usecase"
	"parkboard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetProfile handles GET /api/user/profile (protected)
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	user, err := h.service.GetProfile(r.Context(), caller)
	if err != nil {
		handleServiceError(h.log, w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// ==================== ADMIN METHODS ====================

// GetCommunityUsers handles GET /api/admin/users (admin only)
func (h *UserHandler) GetCommunityUsers(w http.ResponseWriter, r *http.Request) {
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

	users, err := h.service.GetCommunityUsers(r.Context(), caller, req)
	if err != nil {
		handleServiceError(h.log, w, err, "get community users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// UpdateUserRole handles PUT /api/admin/users/{id}/role (admin only)
func (h *UserHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	var req request.UpdateUserRoleRequest
	if err := decodeStrict(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.service.UpdateUserRole(r.Context(), caller, userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update user role")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// DeactivateUser handles DELETE /api/admin/users/{id} (admin only)
func (h *UserHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	if err := h.service.DeactivateUser(r.Context(), caller, userID); err != nil {
		handleServiceError(h.log, w, err, "deactivate user")
		return
	}

	utils.ResponseSuccess(w, "User deactivated successfully", nil)
}
