package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/event_ticketing/internal/core/access"
	"github.com/srgjo27/event_ticketing/internal/core/domain"
	"github.com/srgjo27/event_ticketing/internal/core/ports"
	"github.com/srgjo27/event_ticketing/internal/core/validation"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var errBadCredentials = domain.NewError(domain.KindSessionInvalid, "invalid email or password")

type LoginResult struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	Principal *domain.Principal `json:"principal"`
}

type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	tokens     ports.TokenIssuer
	gate       *access.Gate
	logger     *zap.Logger
	sessionTTL time.Duration
	now        func() time.Time
}

func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionStore,
	tokens ports.TokenIssuer,
	gate *access.Gate,
	logger *zap.Logger,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		gate:       gate,
		logger:     logger,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

// Login checks credentials and opens a session bound to a fresh Principal.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var c validation.Collector
	email = c.Email(email, "email")
	if password == "" {
		c.Add("password", "is required")
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		s.failed(email, "unknown email")
		return nil, errBadCredentials
	}
	if err != nil {
		return nil, internalError(s.logger, "look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.failed(email, "wrong password")
		return nil, errBadCredentials
	}

	p := &domain.Principal{
		SessionID:    uuid.New(),
		UserID:       user.ID,
		Role:         user.Role,
		DisplayName:  user.Name,
		Email:        user.Email,
		SessionStart: s.now(),
	}

	if err := s.sessions.Save(ctx, p, s.sessionTTL); err != nil {
		return nil, internalError(s.logger, "save session", err, zap.Int64("user_id", user.ID))
	}

	token, expiresAt, err := s.tokens.Issue(p)
	if err != nil {
		_ = s.sessions.Delete(context.WithoutCancel(ctx), p.SessionID)
		return nil, internalError(s.logger, "issue token", err, zap.Int64("user_id", user.ID))
	}

	s.logger.Info("user logged in",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(user.Role)),
		zap.String("session_id", p.SessionID.String()),
	)

	return &LoginResult{Token: token, ExpiresAt: expiresAt, Principal: p}, nil
}

func (s *AuthService) Logout(ctx context.Context, p *domain.Principal) error {
	if !p.Valid() {
		return domain.ErrSessionInvalid
	}

	if err := s.sessions.Delete(ctx, p.SessionID); err != nil {
		return internalError(s.logger, "delete session", err, zap.String("session_id", p.SessionID.String()))
	}

	s.logger.Info("user logged out",
		zap.Int64("user_id", p.UserID),
		zap.Duration("session_length", s.now().Sub(p.SessionStart)),
	)
	return nil
}

// Resolve maps a bearer token to the Principal of a live session.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Principal, error) {
	sessionID, err := s.tokens.Parse(token)
	if err != nil {
		return nil, domain.WrapError(domain.KindSessionInvalid, "session is missing or invalid", err)
	}

	p, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, internalError(s.logger, "load session", err, zap.String("session_id", sessionID.String()))
	}

	if !p.Valid() {
		return nil, domain.ErrSessionInvalid
	}

	// The session holds the account as it was at login; a deleted account or
	// a changed role ends it.
	user, err := s.users.GetByID(ctx, p.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		s.revoke(ctx, p, "account no longer exists")
		return nil, domain.ErrSessionInvalid
	}
	if err != nil {
		return nil, internalError(s.logger, "load session user", err, zap.Int64("user_id", p.UserID))
	}

	if !user.Role.Matches(p.Role) {
		s.revoke(ctx, p, "role changed")
		return nil, domain.ErrSessionInvalid
	}

	return p, nil
}

func (s *AuthService) revoke(ctx context.Context, p *domain.Principal, reason string) {
	if err := s.sessions.Delete(ctx, p.SessionID); err != nil {
		s.logger.Error("failed to revoke session",
			zap.String("session_id", p.SessionID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("session revoked",
		zap.Int64("user_id", p.UserID),
		zap.String("session_id", p.SessionID.String()),
		zap.String("reason", reason),
	)
}

func (s *AuthService) failed(email, reason string) {
	s.gate.Record(nil, fmt.Sprintf("Failed login attempt for %s: %s", email, reason))
	s.logger.Warn("failed login attempt", zap.String("email", email), zap.String("reason", reason))
}
