package adaptor

import (
	"encoding/json"
	"net/http"

	"parkboard/internal/apperr"
	"parkboard/internal/usecase"
	"parkboard/pkg/utils"

	"parkboard/internal/data/entity"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Slot    *SlotHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Slot:    NewSlotHandler(service.Slot, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

// decodeStrict decodes a JSON body rejecting unknown fields, so a stray
// total_price (or any other field the schema does not define) is a 400,
// not silently dropped.
func decodeStrict(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// callerFromContext rebuilds the identity the auth middleware resolved
func callerFromContext(r *http.Request) (usecase.Caller, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return usecase.Caller{}, false
	}
	community, ok := utils.GetCommunityFromContext(r.Context())
	if !ok {
		return usecase.Caller{}, false
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	return usecase.Caller{
		ID:            userID,
		CommunityCode: community,
		Role:          entity.UserRole(role),
	}, true
}

// handleServiceError maps a service error onto the response taxonomy.
// Expected outcomes log at warn; everything else is a 500 logged with detail.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	status := apperr.StatusOf(err)
	message := apperr.MessageOf(err)

	switch status {
	case http.StatusBadRequest:
		log.Warn(operation+" rejected", zap.Error(err), zap.String("operation", operation))
		utils.ResponseBadRequest(w, message, nil)

	case http.StatusUnauthorized:
		log.Warn(operation+" unauthorized", zap.Error(err), zap.String("operation", operation))
		utils.ResponseUnauthorized(w, message)

	case http.StatusForbidden:
		log.Warn(operation+" forbidden", zap.Error(err), zap.String("operation", operation))
		utils.ResponseForbidden(w, message)

	case http.StatusNotFound:
		log.Warn(operation+" not found", zap.Error(err), zap.String("operation", operation))
		utils.ResponseNotFound(w, message)

	case http.StatusConflict:
		log.Warn(operation+" conflict", zap.Error(err), zap.String("operation", operation))
		utils.ResponseConflict(w, message)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
