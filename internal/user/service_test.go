package user

import (
	"context"
	"errors"
	"testing"

	"premiumshop-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, name, email, password string, role Role) (User, error) {
	args := m.Called(ctx, name, email, password, role)
	return args.Get(0).(User), args.Error(1)
}

func (m *mockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id uint) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func (m *mockRepository) UpdateProfile(ctx context.Context, id uint, params UpdateProfileParams) (User, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(User), args.Error(1)
}

func (m *mockRepository) TouchLastLogin(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func TestService_Register(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("hashes password and assigns customer role", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo)

		repo.On("Create", mock.Anything, "Rahim", "rahim@example.com",
			mock.MatchedBy(func(hash string) bool {
				return hash != "plainpass" && CheckPasswordHash("plainpass", hash)
			}), RoleCustomer).
			Return(User{ID: 1, Email: "rahim@example.com", Role: RoleCustomer}, nil)

		token, u, err := svc.Register(context.Background(), "Rahim", "rahim@example.com", "plainpass")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, uint(1), u.ID)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email mapped to ErrEmailExists", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo)

		repo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(User{}, errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))

		_, _, err := svc.Register(context.Background(), "x", "dup@example.com", "pw")
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := HashPassword("plainpass")
	require.NoError(t, err)
	stored := User{ID: 2, Email: "karim@example.com", Password: hash, Role: RoleCustomer}

	t.Run("success touches last login", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", mock.Anything, stored.Email).Return(stored, nil)
		repo.On("TouchLastLogin", mock.Anything, stored.ID).Return(nil)

		token, u, err := svc.Login(context.Background(), stored.Email, "plainpass")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, stored.ID, u.ID)
		repo.AssertExpectations(t)
	})

	t.Run("unknown email and wrong password share one error", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(User{}, ErrUserNotFound)
		repo.On("FindByEmail", mock.Anything, stored.Email).Return(stored, nil)

		_, _, err := svc.Login(context.Background(), "ghost@example.com", "pw")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, _, err = svc.Login(context.Background(), stored.Email, "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("last login bookkeeping failure does not fail login", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", mock.Anything, stored.Email).Return(stored, nil)
		repo.On("TouchLastLogin", mock.Anything, stored.ID).Return(errors.New("timeout"))

		_, _, err := svc.Login(context.Background(), stored.Email, "plainpass")
		assert.NoError(t, err)
	})
}

func TestService_Profile(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		svc := NewService(new(mockRepository))

		_, err := svc.GetProfile(context.Background())
		assert.ErrorIs(t, err, ErrNotAuthenticated)

		_, err = svc.UpdateProfile(context.Background(), UpdateProfileParams{})
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("reads caller id from context", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo)

		ctx := utils.SetUserContext(context.Background(), 5, "u@example.com", "customer")
		repo.On("GetByID", mock.Anything, uint(5)).Return(User{ID: 5}, nil)

		u, err := svc.GetProfile(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint(5), u.ID)
	})
}
