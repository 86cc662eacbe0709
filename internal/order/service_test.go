package order

import (
	"context"
	"testing"
	"time"

	"premiumshop-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, o *Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *mockRepository) ListByUser(ctx context.Context, userID uint) ([]*Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Order), args.Error(1)
}

func (m *mockRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	return m.Called(ctx, id, status).Error(0)
}

type mockAdminRegistry struct {
	mock.Mock
}

func (m *mockAdminRegistry) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func authedCtx(id uint) context.Context {
	return utils.SetUserContext(context.Background(), id, "u@example.com", "customer")
}

func cartSnapshot() []Item {
	return []Item{
		{ProductID: "prod-1", Name: "Earbuds", Price: 500, Quantity: 2},
		{ProductID: "prod-2", Name: "Charger", Price: 1500, Quantity: 1},
	}
}

func TestNewOrderID(t *testing.T) {
	at := time.UnixMilli(1712345678901)
	id := newOrderID(at)

	assert.Len(t, id, 11)
	assert.Equal(t, "ORD45678901", id)
}

func TestService_Create(t *testing.T) {
	t.Run("unauthenticated caller writes nothing", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo, new(mockAdminRegistry))

		_, err := svc.Create(context.Background(), CreateOrderInput{Items: cartSnapshot()})
		assert.ErrorIs(t, err, ErrUserNotAuthenticated)
		assert.EqualError(t, err, "User not authenticated")
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("empty order rejected", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo, new(mockAdminRegistry))

		_, err := svc.Create(authedCtx(7), CreateOrderInput{})
		assert.ErrorIs(t, err, ErrEmptyOrder)
	})

	t.Run("totals add up and items are snapshotted", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo, new(mockAdminRegistry))

		repo.On("Create", mock.Anything, mock.MatchedBy(func(o *Order) bool {
			return o.UserID == 7 &&
				o.Subtotal == 2500 &&
				o.ShippingFee == 120 &&
				o.Total == 2620 &&
				o.Status == StatusPending
		})).Return(nil)

		input := CreateOrderInput{
			Items:         cartSnapshot(),
			PaymentMethod: "cod",
			ShippingFee:   120,
		}
		o, err := svc.Create(authedCtx(7), input)
		require.NoError(t, err)
		assert.Regexp(t, `^ORD\d{8}$`, o.ID)

		// Mutating the input afterwards must not reach the placed order.
		input.Items[0].Quantity = 99
		assert.Equal(t, 2, o.Items[0].Quantity)
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo, new(mockAdminRegistry))

		repo.On("Create", mock.Anything, mock.Anything).Return(ErrInsufficientStock)

		_, err := svc.Create(authedCtx(7), CreateOrderInput{Items: cartSnapshot()})
		assert.ErrorIs(t, err, ErrInsufficientStock)
	})
}

func TestService_Track(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, new(mockAdminRegistry))

	repo.On("GetByID", mock.Anything, "ORD12345678").
		Return(&Order{ID: "ORD12345678", Status: StatusProcessing}, nil)

	// No login required to follow a parcel.
	o, err := svc.Track(context.Background(), "ORD12345678")
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, o.Status)
}

func TestService_ListMine(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, new(mockAdminRegistry))

	repo.On("ListByUser", mock.Anything, uint(7)).
		Return([]*Order{{ID: "ORD1"}}, nil)

	got, err := svc.ListMine(authedCtx(7))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.ListMine(context.Background())
	assert.ErrorIs(t, err, ErrUserNotAuthenticated)
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("admin gate runs before validation and write", func(t *testing.T) {
		repo := new(mockRepository)
		admins := new(mockAdminRegistry)
		svc := NewService(repo, admins)

		admins.On("IsAdmin", mock.Anything, uint(7)).Return(false, nil)

		err := svc.UpdateStatus(authedCtx(7), "ORD1", StatusDelivered)
		assert.ErrorIs(t, err, ErrUnauthorized)
		repo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("invalid status rejected before any write", func(t *testing.T) {
		repo := new(mockRepository)
		admins := new(mockAdminRegistry)
		svc := NewService(repo, admins)

		admins.On("IsAdmin", mock.Anything, uint(1)).Return(true, nil)

		err := svc.UpdateStatus(authedCtx(1), "ORD1", Status("shipped?"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
		repo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("admin updates", func(t *testing.T) {
		repo := new(mockRepository)
		admins := new(mockAdminRegistry)
		svc := NewService(repo, admins)

		admins.On("IsAdmin", mock.Anything, uint(1)).Return(true, nil)
		repo.On("UpdateStatus", mock.Anything, "ORD1", StatusCancelled).Return(nil)

		assert.NoError(t, svc.UpdateStatus(authedCtx(1), "ORD1", StatusCancelled))
		repo.AssertExpectations(t)
	})
}
