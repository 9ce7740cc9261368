package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/srgjo27/event_ticketing/internal/core/access"
	"github.com/srgjo27/event_ticketing/internal/core/domain"
	"github.com/srgjo27/event_ticketing/internal/core/ports"
	"github.com/srgjo27/event_ticketing/internal/core/validation"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type UserService struct {
	users    ports.UserRepository
	gate     *access.Gate
	logger   *zap.Logger
	hashCost int
	now      func() time.Time

	// serializes changes that can reduce the number of admins
	adminMu sync.Mutex
}

func NewUserService(users ports.UserRepository, gate *access.Gate, logger *zap.Logger, hashCost int) *UserService {
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}
	return &UserService{
		users:    users,
		gate:     gate,
		logger:   logger,
		hashCost: hashCost,
		now:      time.Now,
	}
}

func (s *UserService) List(ctx context.Context, p *domain.Principal) ([]domain.User, error) {
	if err := s.gate.Authorize(p, access.AdministerUsers, nil); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, internalError(s.logger, "list users", err)
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, p *domain.Principal, userID string) (*domain.User, error) {
	id, err := parseID(userID, "user_id")
	if err != nil {
		return nil, err
	}

	if err := s.gate.Authorize(p, access.AdministerUsers, nil); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, internalError(s.logger, "get user", err, zap.Int64("user_id", id))
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, p *domain.Principal, in UserInput) (*domain.User, error) {
	var c validation.Collector
	name := c.String(in.Name, "name")
	email := c.Email(in.Email, "email")
	password, err := validation.Password(in.Password, "password")
	c.Check(err)
	role, err := validation.Role(in.Role, "role")
	c.Check(err)
	if err := c.Err(); err != nil {
		return nil, err
	}

	if err := s.gate.Authorize(p, access.AdministerUsers, nil); err != nil {
		return nil, err
	}

	user := &domain.User{Name: name, Email: email, Role: role}
	if err := s.create(ctx, user, password); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(role)),
		zap.Int64("admin_id", p.UserID),
	)

	return user, nil
}

// Update edits any user. A blank password keeps the current one, and the last
// admin cannot be demoted.
func (s *UserService) Update(ctx context.Context, p *domain.Principal, userID string, in UserInput) (*domain.User, error) {
	var c validation.Collector
	id := int64(c.PositiveInt(userID, "user_id"))
	name := c.String(in.Name, "name")
	email := c.Email(in.Email, "email")
	role, err := validation.Role(in.Role, "role")
	c.Check(err)
	password := in.Password
	if password != "" {
		_, err := validation.Password(password, "password")
		c.Check(err)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	if err := s.gate.Authorize(p, access.AdministerUsers, nil); err != nil {
		return nil, err
	}

	s.adminMu.Lock()
	defer s.adminMu.Unlock()

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, internalError(s.logger, "get user", err, zap.Int64("user_id", id))
	}

	if user.Role.Matches(domain.RoleAdmin) && !role.Matches(domain.RoleAdmin) {
		admins, err := s.users.CountAdmins(ctx)
		if err != nil {
			return nil, internalError(s.logger, "count admins", err)
		}
		if admins <= 1 {
			s.gate.Record(p, "Attempt to demote the last admin user")
			return nil, domain.NewError(domain.KindProtectedLastAdmin, "cannot demote the last admin user")
		}
	}

	user.Name = name
	user.Email = email
	user.Role = role
	if err := s.update(ctx, user, password); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", zap.Int64("user_id", id), zap.Int64("admin_id", p.UserID))

	return user, nil
}

// Delete removes a user, refusing to remove the last admin.
func (s *UserService) Delete(ctx context.Context, p *domain.Principal, userID string) error {
	id, err := parseID(userID, "user_id")
	if err != nil {
		return err
	}

	if err := s.gate.Authorize(p, access.AdministerUsers, nil); err != nil {
		return err
	}

	s.adminMu.Lock()
	defer s.adminMu.Unlock()

	target, err := s.users.GetByID(ctx, id)
	if err != nil {
		return internalError(s.logger, "get user", err, zap.Int64("user_id", id))
	}

	admins, err := s.users.CountAdmins(ctx)
	if err != nil {
		return internalError(s.logger, "count admins", err)
	}

	if err := s.gate.AuthorizeUserDeletion(p, target, admins); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return internalError(s.logger, "delete user", err, zap.Int64("user_id", id))
	}

	s.logger.Info("user deleted", zap.Int64("user_id", id), zap.Int64("admin_id", p.UserID))

	return nil
}

func (s *UserService) Profile(ctx context.Context, p *domain.Principal) (*domain.User, error) {
	if err := s.gate.Authorize(p, access.BookTickets, nil); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, internalError(s.logger, "get profile", err, zap.Int64("user_id", p.UserID))
	}

	if err := s.gate.Authorize(p, access.ManageProfile, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile lets a user change their own name, email and password. Roles stay put.
func (s *UserService) UpdateProfile(ctx context.Context, p *domain.Principal, in UserInput) (*domain.User, error) {
	var c validation.Collector
	name := c.String(in.Name, "name")
	email := c.Email(in.Email, "email")
	if in.Password != "" {
		_, err := validation.Password(in.Password, "password")
		c.Check(err)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	user, err := s.Profile(ctx, p)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Email = email
	if err := s.update(ctx, user, in.Password); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", zap.Int64("user_id", user.ID))

	return user, nil
}

// EnsureBootstrapAdmin creates the first admin account when none exists.
func (s *UserService) EnsureBootstrapAdmin(ctx context.Context, in UserInput) error {
	if strings.TrimSpace(in.Email) == "" {
		return nil
	}

	admins, err := s.users.CountAdmins(ctx)
	if err != nil {
		return internalError(s.logger, "count admins", err)
	}
	if admins > 0 {
		return nil
	}

	var c validation.Collector
	name := c.String(in.Name, "name")
	email := c.Email(in.Email, "email")
	password, err := validation.Password(in.Password, "password")
	c.Check(err)
	if err := c.Err(); err != nil {
		return err
	}

	user := &domain.User{Name: name, Email: email, Role: domain.RoleAdmin}
	if err := s.create(ctx, user, password); err != nil {
		return err
	}

	s.logger.Info("bootstrap admin created", zap.Int64("user_id", user.ID), zap.String("email", email))
	return nil
}

func (s *UserService) create(ctx context.Context, user *domain.User, password string) error {
	if err := s.ensureEmailFree(ctx, user.Email, 0); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return internalError(s.logger, "hash password", err)
	}

	user.PasswordHash = string(hash)
	user.CreatedAt = s.now()

	if err := s.users.Create(ctx, user); err != nil {
		return emailTaken(internalError(s.logger, "create user", err))
	}
	return nil
}

func (s *UserService) update(ctx context.Context, user *domain.User, password string) error {
	if err := s.ensureEmailFree(ctx, user.Email, user.ID); err != nil {
		return err
	}

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
		if err != nil {
			return internalError(s.logger, "hash password", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return emailTaken(internalError(s.logger, "update user", err, zap.Int64("user_id", user.ID)))
	}
	return nil
}

func (s *UserService) ensureEmailFree(ctx context.Context, email string, selfID int64) error {
	existing, err := s.users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return internalError(s.logger, "look up email", err)
	case existing.ID != selfID:
		return domain.ValidationError(domain.FieldError{Field: "email", Reason: "is already registered"})
	}
	return nil
}

// emailTaken turns a unique-violation conflict from storage into a field error.
func emailTaken(err error) error {
	if errors.Is(err, domain.ErrConflict) {
		return domain.ValidationError(domain.FieldError{Field: "email", Reason: "is already registered"})
	}
	return err
}
