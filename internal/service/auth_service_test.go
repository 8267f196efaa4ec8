package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/sports-ground-booking/internal/model"
	"github.com/iliyamo/sports-ground-booking/internal/repository"
)

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Create(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) List(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) Update(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func TestRegisterHashesPassword(t *testing.T) {
	users := new(mockUserStore)
	svc := NewAuthService(users, bcrypt.MinCost, nopLogger())

	var created *model.User
	users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*model.User)
	}).Return(nil)

	u, err := svc.Register(context.Background(), RegisterInput{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "Jane@Example.COM",
		Password:    "secret123",
		PhoneNumber: "1234567890",
		Address:     "1 Main St",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "jane@example.com", u.Email)
	assert.False(t, u.IsAdmin)
	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := new(mockUserStore)
	svc := NewAuthService(users, bcrypt.MinCost, nopLogger())
	users.On("Create", mock.Anything, mock.Anything).Return(repository.ErrEmailExists)

	_, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		Password: "secret123", PhoneNumber: "1234567890", Address: "1 Main St",
	})
	assert.ErrorIs(t, err, repository.ErrEmailExists)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := new(mockUserStore)
	svc := NewAuthService(users, bcrypt.MinCost, nopLogger())
	users.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&model.User{ID: 1, Email: "jane@example.com", PasswordHash: string(hash)}, nil)
	users.On("GetByEmail", mock.Anything, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	u, err := svc.Login(context.Background(), "jane@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	_, err = svc.Login(context.Background(), "jane@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email and bad password are indistinguishable.
	_, err = svc.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureAdminSeeds(t *testing.T) {
	users := new(mockUserStore)
	svc := NewAuthService(users, bcrypt.MinCost, nopLogger())

	var created *model.User
	users.On("GetByEmail", mock.Anything, "admin@sportsground.com").Return(nil, repository.ErrUserNotFound)
	users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*model.User)
	}).Return(nil)

	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin@sportsground.com", "admin123"))
	require.NotNil(t, created)
	assert.True(t, created.IsAdmin)
	assert.Equal(t, "Admin", created.FirstName)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("admin123")))
}

func TestEnsureAdminIdempotent(t *testing.T) {
	users := new(mockUserStore)
	svc := NewAuthService(users, bcrypt.MinCost, nopLogger())
	users.On("GetByEmail", mock.Anything, "admin@sportsground.com").
		Return(&model.User{ID: 1, Email: "admin@sportsground.com", IsAdmin: true}, nil)

	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin@sportsground.com", "admin123"))
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
