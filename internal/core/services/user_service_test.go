package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/srgjo27/event_ticketing/internal/core/domain"
	"github.com/srgjo27/event_ticketing/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (f *fixture) userService() *services.UserService {
	return services.NewUserService(f.users, f.gate, zap.NewNop(), bcrypt.MinCost)
}

func TestDeleteUser_LastAdminProtected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.expectAudit(1)

	f.users.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, nil)
	f.users.On("CountAdmins", ctx).Return(1, nil)

	err := f.userService().Delete(ctx, admin(1), "1")

	assert.ErrorIs(t, err, domain.ErrProtectedLastAdmin)
	f.users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteUser_AdminAllowedWhenAnotherRemains(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.users.On("GetByID", ctx, int64(2)).Return(&domain.User{ID: 2, Role: domain.RoleAdmin}, nil)
	f.users.On("CountAdmins", ctx).Return(2, nil)
	f.users.On("Delete", ctx, int64(2)).Return(nil)

	assert.NoError(t, f.userService().Delete(ctx, admin(1), "2"))
}

func TestDeleteUser_RequiresAdmin(t *testing.T) {
	f := newFixture(t)
	f.expectAudit(1)

	err := f.userService().Delete(context.Background(), organizer(5), "2")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateUser_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.users.On("GetByEmail", ctx, "new@example.com").Return(nil, domain.ErrNotFound)
	f.users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) == nil
	})).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 40
		}).
		Return(nil)

	user, err := f.userService().Create(ctx, admin(1), services.UserInput{
		Name:     "New Person",
		Email:    " new@example.com ",
		Password: "secret1",
		Role:     "organizer",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(40), user.ID)
	assert.Equal(t, domain.RoleOrganizer, user.Role)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.users.On("GetByEmail", ctx, "taken@example.com").Return(&domain.User{ID: 3}, nil)

	_, err := f.userService().Create(ctx, admin(1), services.UserInput{
		Name:     "Dup",
		Email:    "taken@example.com",
		Password: "secret1",
		Role:     "ATTENDEE",
	})

	var de *domain.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.KindValidationFailed, de.Kind)
	assert.Equal(t, "email", de.Fields[0].Field)
}

func TestCreateUser_UniqueViolationBecomesFieldError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.users.On("GetByEmail", ctx, "race@example.com").Return(nil, domain.ErrNotFound)
	f.users.On("Create", ctx, mock.Anything).Return(domain.NewError(domain.KindConflict, "email already registered"))

	_, err := f.userService().Create(ctx, admin(1), services.UserInput{
		Name:     "Racer",
		Email:    "race@example.com",
		Password: "secret1",
		Role:     "ATTENDEE",
	})

	assert.ErrorIs(t, err, domain.ErrValidationFailed)
}

func TestCreateUser_ValidationFailed(t *testing.T) {
	f := newFixture(t)

	_, err := f.userService().Create(context.Background(), admin(1), services.UserInput{
		Email:    "bad@",
		Password: "123",
		Role:     "root",
	})

	var de *domain.Error
	require.True(t, errors.As(err, &de))
	assert.Len(t, de.Fields, 4)
}

func TestUpdateUser_CannotDemoteLastAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.expectAudit(1)

	f.users.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, nil)
	f.users.On("CountAdmins", ctx).Return(1, nil)

	_, err := f.userService().Update(ctx, admin(1), "1", services.UserInput{
		Name:  "Only Admin",
		Email: "admin@example.com",
		Role:  "ATTENDEE",
	})

	assert.ErrorIs(t, err, domain.ErrProtectedLastAdmin)
}

func TestUpdateUser_KeepsPasswordWhenBlank(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.users.On("GetByID", ctx, int64(5)).Return(&domain.User{ID: 5, Role: domain.RoleAttendee, PasswordHash: "old"}, nil)
	f.users.On("GetByEmail", ctx, "five@example.com").Return(&domain.User{ID: 5}, nil)
	f.users.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.PasswordHash == "old" && u.Role == domain.RoleOrganizer
	})).Return(nil)

	_, err := f.userService().Update(ctx, admin(1), "5", services.UserInput{
		Name:  "Five",
		Email: "five@example.com",
		Role:  "ORGANIZER",
	})

	assert.NoError(t, err)
}

func TestProfile_ReturnsOwnRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.users.On("GetByID", ctx, int64(3)).Return(&domain.User{ID: 3, Name: "Ann", Role: domain.RoleAttendee}, nil)

	user, err := f.userService().Profile(ctx, attendee(3))

	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)
}

func TestUpdateProfile_KeepsRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.users.On("GetByID", ctx, int64(3)).Return(&domain.User{ID: 3, Role: domain.RoleAttendee}, nil)
	f.users.On("GetByEmail", ctx, "ann@example.com").Return(nil, domain.ErrNotFound)
	f.users.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleAttendee && u.Name == "Ann B"
	})).Return(nil)

	_, err := f.userService().UpdateProfile(ctx, attendee(3), services.UserInput{Name: "Ann B", Email: "ann@example.com", Role: "ADMIN"})

	assert.NoError(t, err)
}

func TestEnsureBootstrapAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.users.On("CountAdmins", ctx).Return(0, nil).Once()
	f.users.On("GetByEmail", ctx, "root@example.com").Return(nil, domain.ErrNotFound)
	f.users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool { return u.Role == domain.RoleAdmin })).Return(nil)

	err := f.userService().EnsureBootstrapAdmin(ctx, services.UserInput{Name: "Root", Email: "root@example.com", Password: "changeme"})

	assert.NoError(t, err)
}

func TestEnsureBootstrapAdmin_SkipsWhenAdminExists(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.users.On("CountAdmins", ctx).Return(1, nil)

	assert.NoError(t, f.userService().EnsureBootstrapAdmin(ctx, services.UserInput{Email: "root@example.com"}))
}
