package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/event_ticketing/internal/core/domain"
	"github.com/srgjo27/event_ticketing/internal/core/ports/mocks"
	"github.com/srgjo27/event_ticketing/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T, f *fixture) (*services.AuthService, *mocks.SessionStore, *mocks.TokenIssuer) {
	sessions := mocks.NewSessionStore(t)
	tokens := mocks.NewTokenIssuer(t)
	return services.NewAuthService(f.users, sessions, tokens, f.gate, zap.NewNop(), time.Hour), sessions, tokens
}

func hashed(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	f := newFixture(t)
	service, sessions, tokens := newAuthService(t, f)
	ctx := context.Background()

	user := &domain.User{ID: 3, Name: "Ann", Email: "ann@example.com", Role: domain.RoleAttendee, PasswordHash: hashed(t, "secret1")}
	f.users.On("GetByEmail", ctx, "ann@example.com").Return(user, nil)
	sessions.On("Save", ctx, mock.MatchedBy(func(p *domain.Principal) bool {
		return p.UserID == 3 && p.Role == domain.RoleAttendee && p.SessionID != uuid.Nil
	}), time.Hour).Return(nil)
	tokens.On("Issue", mock.AnythingOfType("*domain.Principal")).Return("signed.token", time.Now().Add(time.Hour), nil)

	res, err := service.Login(ctx, "ann@example.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "signed.token", res.Token)
	assert.Equal(t, "Ann", res.Principal.DisplayName)
}

func TestLogin_WrongPasswordIsAudited(t *testing.T) {
	f := newFixture(t)
	service, _, _ := newAuthService(t, f)
	ctx := context.Background()

	f.audit.On("Record", mock.MatchedBy(func(ev domain.AuditEvent) bool {
		return ev.UserID == "none"
	})).Once()
	f.users.On("GetByEmail", ctx, "ann@example.com").
		Return(&domain.User{ID: 3, Email: "ann@example.com", PasswordHash: hashed(t, "secret1")}, nil)

	_, err := service.Login(ctx, "ann@example.com", "wrong-one")

	assert.ErrorIs(t, err, domain.ErrSessionInvalid)
}

func TestLogin_UnknownEmail(t *testing.T) {
	f := newFixture(t)
	service, _, _ := newAuthService(t, f)
	ctx := context.Background()

	f.expectAudit(1)
	f.users.On("GetByEmail", ctx, "who@example.com").Return(nil, domain.ErrNotFound)

	_, err := service.Login(ctx, "who@example.com", "secret1")

	assert.ErrorIs(t, err, domain.ErrSessionInvalid)
}

func TestLogin_ValidationFailed(t *testing.T) {
	f := newFixture(t)
	service, _, _ := newAuthService(t, f)

	_, err := service.Login(context.Background(), "not-an-email", "")

	var de *domain.Error
	require.True(t, errors.As(err, &de))
	assert.Len(t, de.Fields, 2)
}

func TestResolve(t *testing.T) {
	f := newFixture(t)
	service, sessions, tokens := newAuthService(t, f)
	ctx := context.Background()

	sid := uuid.New()
	p := &domain.Principal{SessionID: sid, UserID: 3, Role: domain.RoleAttendee}
	tokens.On("Parse", "good").Return(sid, nil)
	sessions.On("Get", ctx, sid).Return(p, nil)
	f.users.On("GetByID", ctx, int64(3)).Return(&domain.User{ID: 3, Role: domain.RoleAttendee}, nil)
	tokens.On("Parse", "bad").Return(uuid.Nil, errors.New("signature is invalid"))

	got, err := service.Resolve(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.UserID)

	_, err = service.Resolve(ctx, "bad")
	assert.ErrorIs(t, err, domain.ErrSessionInvalid)
}

func TestResolve_ExpiredSession(t *testing.T) {
	f := newFixture(t)
	service, sessions, tokens := newAuthService(t, f)
	ctx := context.Background()

	sid := uuid.New()
	tokens.On("Parse", "stale").Return(sid, nil)
	sessions.On("Get", ctx, sid).Return(nil, domain.ErrSessionInvalid)

	_, err := service.Resolve(ctx, "stale")

	assert.ErrorIs(t, err, domain.ErrSessionInvalid)
}

func TestResolve_RevokesSessionOfDemotedUser(t *testing.T) {
	f := newFixture(t)
	service, sessions, tokens := newAuthService(t, f)
	ctx := context.Background()

	sid := uuid.New()
	p := &domain.Principal{SessionID: sid, UserID: 2, Role: domain.RoleAdmin}
	tokens.On("Parse", "tok").Return(sid, nil)
	sessions.On("Get", ctx, sid).Return(p, nil)
	f.users.On("GetByID", ctx, int64(2)).Return(&domain.User{ID: 2, Role: domain.RoleAttendee}, nil)
	sessions.On("Delete", ctx, sid).Return(nil)

	_, err := service.Resolve(ctx, "tok")

	assert.ErrorIs(t, err, domain.ErrSessionInvalid)
	sessions.AssertCalled(t, "Delete", ctx, sid)
}

func TestResolve_RevokesSessionOfDeletedUser(t *testing.T) {
	f := newFixture(t)
	service, sessions, tokens := newAuthService(t, f)
	ctx := context.Background()

	sid := uuid.New()
	p := &domain.Principal{SessionID: sid, UserID: 2, Role: domain.RoleAdmin}
	tokens.On("Parse", "tok").Return(sid, nil)
	sessions.On("Get", ctx, sid).Return(p, nil)
	f.users.On("GetByID", ctx, int64(2)).Return(nil, domain.NewError(domain.KindNotFound, "user not found"))
	sessions.On("Delete", ctx, sid).Return(nil)

	_, err := service.Resolve(ctx, "tok")

	assert.ErrorIs(t, err, domain.ErrSessionInvalid)
}

func TestResolve_UserLookupFailure(t *testing.T) {
	f := newFixture(t)
	service, sessions, tokens := newAuthService(t, f)
	ctx := context.Background()

	sid := uuid.New()
	tokens.On("Parse", "tok").Return(sid, nil)
	sessions.On("Get", ctx, sid).Return(&domain.Principal{SessionID: sid, UserID: 2, Role: domain.RoleAdmin}, nil)
	f.users.On("GetByID", ctx, int64(2)).Return(nil, errors.New("connection refused"))

	_, err := service.Resolve(ctx, "tok")

	assert.ErrorIs(t, err, domain.ErrPersistenceFailed)
	sessions.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	service, sessions, _ := newAuthService(t, f)
	ctx := context.Background()

	p := &domain.Principal{SessionID: uuid.New(), UserID: 3, Role: domain.RoleAttendee, SessionStart: time.Now()}
	sessions.On("Delete", ctx, p.SessionID).Return(nil)

	assert.NoError(t, service.Logout(ctx, p))
	assert.ErrorIs(t, service.Logout(ctx, nil), domain.ErrSessionInvalid)
}
