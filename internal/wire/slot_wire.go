package wire

import (
	"parkboard/internal/adaptor"
	"parkboard/internal/data/repository"
	"parkboard/pkg/middleware"
	"parkboard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSlot(
	r chi.Router,
	slotHandler *adaptor.SlotHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	// All slot operations are scoped to the caller's community
	r.Route("/api/slots", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// GET /api/slots?status=active&page=1&per_page=10 - Browse community slots
		r.Get("/", slotHandler.GetSlots)

		// POST /api/slots - List a new slot (owner becomes the caller)
		r.Post("/", slotHandler.CreateSlot)

		// GET /api/slots/{id} - View slot details
		r.Get("/{id}", slotHandler.GetSlot)

		// PUT /api/slots/{id} - Update slot (owner or admin)
		r.Put("/{id}", slotHandler.UpdateSlot)

		// DELETE /api/slots/{id} - Soft-delete slot (owner or admin)
		r.Delete("/{id}", slotHandler.DeleteSlot)
	})

	// GET /api/user/slots - Slots owned by the caller
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).Get("/api/user/slots", slotHandler.GetMySlots)
}
