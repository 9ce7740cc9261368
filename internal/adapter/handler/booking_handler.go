package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/srgjo27/event_ticketing/internal/core/services"
)

// BookEvent reserves tickets for the caller.
// POST /api/events/{id}/bookings
func (h *Handler) BookEvent(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reg, err := h.bookings.Book(r.Context(), principalFrom(r.Context()), services.BookingRequest{
		EventID:  chi.URLParam(r, "id"),
		Quantity: req.Quantity.String(),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, reg)
}

// GET /api/bookings
func (h *Handler) MyBookings(w http.ResponseWriter, r *http.Request) {
	regs, err := h.bookings.ListMine(r.Context(), principalFrom(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, regs)
}

// GET /api/bookings/{id}
func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	reg, err := h.bookings.Get(r.Context(), principalFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

// CancelBooking cancels a registration and returns its tickets to the pool.
// DELETE /api/bookings/{id}
func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	reg, err := h.bookings.Cancel(r.Context(), principalFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}
