package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/srgjo27/event_ticketing/internal/core/domain"
	"github.com/srgjo27/event_ticketing/internal/core/services"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
	Logout(ctx context.Context, p *domain.Principal) error
	Resolve(ctx context.Context, token string) (*domain.Principal, error)
}

type EventService interface {
	Create(ctx context.Context, p *domain.Principal, in services.EventInput) (*services.EventDetails, error)
	Update(ctx context.Context, p *domain.Principal, eventID string, in services.EventInput) (*services.EventDetails, error)
	Approve(ctx context.Context, p *domain.Principal, eventID string) (*services.EventDetails, error)
	Reject(ctx context.Context, p *domain.Principal, eventID string) (*services.EventDetails, error)
	Delete(ctx context.Context, p *domain.Principal, eventID string) error
	Get(ctx context.Context, p *domain.Principal, eventID string) (*services.EventDetails, error)
	Browse(ctx context.Context, p *domain.Principal) ([]services.EventDetails, error)
	Search(ctx context.Context, p *domain.Principal, in services.SearchInput) ([]services.EventDetails, error)
	ListManaged(ctx context.Context, p *domain.Principal) ([]services.EventDetails, error)
	Registrations(ctx context.Context, p *domain.Principal, eventID string) ([]domain.Registration, error)
}

type BookingService interface {
	Book(ctx context.Context, p *domain.Principal, req services.BookingRequest) (*domain.Registration, error)
	Cancel(ctx context.Context, p *domain.Principal, registrationID string) (*domain.Registration, error)
	Get(ctx context.Context, p *domain.Principal, registrationID string) (*domain.Registration, error)
	ListMine(ctx context.Context, p *domain.Principal) ([]domain.Registration, error)
}

type UserService interface {
	List(ctx context.Context, p *domain.Principal) ([]domain.User, error)
	Get(ctx context.Context, p *domain.Principal, userID string) (*domain.User, error)
	Create(ctx context.Context, p *domain.Principal, in services.UserInput) (*domain.User, error)
	Update(ctx context.Context, p *domain.Principal, userID string, in services.UserInput) (*domain.User, error)
	Delete(ctx context.Context, p *domain.Principal, userID string) error
	Profile(ctx context.Context, p *domain.Principal) (*domain.User, error)
	UpdateProfile(ctx context.Context, p *domain.Principal, in services.UserInput) (*domain.User, error)
}

type Handler struct {
	auth     AuthService
	events   EventService
	bookings BookingService
	users    UserService
	logger   *zap.Logger
}

func NewHandler(auth AuthService, events EventService, bookings BookingService, users UserService, logger *zap.Logger) *Handler {
	return &Handler{
		auth:     auth,
		events:   events,
		bookings: bookings,
		users:    users,
		logger:   logger,
	}
}

type errorResponse struct {
	Error  string              `json:"error"`
	Kind   string              `json:"kind,omitempty"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

var statusByKind = map[domain.Kind]int{
	domain.KindValidationFailed:     http.StatusBadRequest,
	domain.KindSessionInvalid:       http.StatusUnauthorized,
	domain.KindForbidden:            http.StatusForbidden,
	domain.KindEventNotFound:        http.StatusNotFound,
	domain.KindNotFound:             http.StatusNotFound,
	domain.KindInsufficientCapacity: http.StatusConflict,
	domain.KindConflict:             http.StatusConflict,
	domain.KindProtectedLastAdmin:   http.StatusConflict,
	domain.KindPersistenceFailed:    http.StatusInternalServerError,
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		h.logger.Error("unhandled error",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	status, ok := statusByKind[de.Kind]
	if !ok || status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error", Kind: string(domain.KindPersistenceFailed)})
		return
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="event_ticketing"`)
	}

	writeJSON(w, status, errorResponse{Error: de.Message, Kind: string(de.Kind), Fields: de.Fields})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
