package wire

import (
	"parkboard/internal/adaptor"
	"parkboard/internal/data/repository"
	"parkboard/pkg/middleware"
	"parkboard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	// Group routes that require authentication
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/bookings - Create new booking (authenticated users only)
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings/{id} - View a booking (renter, slot owner, or admin)
		r.Get("/api/bookings/{id}", bookingHandler.GetBooking)

		// PUT /api/bookings/{id} - Cancel a booking ({"status": "cancelled"})
		r.Put("/api/bookings/{id}", bookingHandler.CancelBooking)

		// GET /api/user/bookings - View booking history (bookings made or received)
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
	})

	// ==================== ADMIN ROUTES ====================
	// Admin booking management routes
	r.Route("/api/admin/bookings", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/bookings - List all community bookings
		r.Get("/", bookingHandler.GetCommunityBookings)

		// GET /api/admin/bookings/{id} - View any booking in the community
		r.Get("/{id}", bookingHandler.GetBooking)

		// PUT /api/admin/bookings/{id}/status - Force a status transition (admin)
		r.Put("/{id}/status", bookingHandler.UpdateBookingStatus)
	})
}
