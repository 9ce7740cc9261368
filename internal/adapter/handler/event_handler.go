package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/srgjo27/event_ticketing/internal/core/services"
)

// BrowseEvents lists the events visible to the caller.
// GET /api/events
func (h *Handler) BrowseEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.Browse(r.Context(), principalFrom(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// SearchEvents filters by title, venue, date and status query parameters.
// GET /api/events/search
func (h *Handler) SearchEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := services.SearchInput{
		Title:  q.Get("title"),
		Venue:  q.Get("venue"),
		Date:   q.Get("date"),
		Status: q.Get("status"),
	}

	events, err := h.events.Search(r.Context(), principalFrom(r.Context()), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// GET /api/events/{id}
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.Get(r.Context(), principalFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// CreateEvent submits a new event for review.
// POST /api/events
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.events.Create(r.Context(), principalFrom(r.Context()), req.input())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

// PUT /api/events/{id}
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.events.Update(r.Context(), principalFrom(r.Context()), chi.URLParam(r, "id"), req.input())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// DELETE /api/events/{id}
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.events.Delete(r.Context(), principalFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/events/{id}/approve
func (h *Handler) ApproveEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.Approve(r.Context(), principalFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// POST /api/events/{id}/reject
func (h *Handler) RejectEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.Reject(r.Context(), principalFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// ManagedEvents lists the caller's own events, or every event for admins.
// GET /api/organizer/events
func (h *Handler) ManagedEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListManaged(r.Context(), principalFrom(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// GET /api/events/{id}/registrations
func (h *Handler) EventRegistrations(w http.ResponseWriter, r *http.Request) {
	regs, err := h.events.Registrations(r.Context(), principalFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, regs)
}
