package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(h *Handler, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(h.Authenticate)

		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)

		r.Get("/profile", h.GetProfile)
		r.Put("/profile", h.UpdateProfile)

		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.BrowseEvents)
			r.Post("/", h.CreateEvent)
			r.Get("/search", h.SearchEvents)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetEvent)
				r.Put("/", h.UpdateEvent)
				r.Delete("/", h.DeleteEvent)
				r.Post("/approve", h.ApproveEvent)
				r.Post("/reject", h.RejectEvent)
				r.Get("/registrations", h.EventRegistrations)
				r.Post("/bookings", h.BookEvent)
			})
		})

		r.Get("/organizer/events", h.ManagedEvents)

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", h.MyBookings)
			r.Get("/{id}", h.GetBooking)
			r.Delete("/{id}", h.CancelBooking)
		})

		r.Route("/admin/users", func(r chi.Router) {
			r.Get("/", h.ListUsers)
			r.Post("/", h.CreateUser)
			r.Get("/{id}", h.GetUser)
			r.Put("/{id}", h.UpdateUser)
			r.Delete("/{id}", h.DeleteUser)
		})
	})

	return r
}
