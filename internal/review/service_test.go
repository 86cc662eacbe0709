package review

import (
	"context"
	"path/filepath"
	"testing"

	"premiumshop-be/internal/localstore"
	"premiumshop-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Add(ctx context.Context, r *Review) (*RatingSummary, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RatingSummary), args.Error(1)
}

func (m *mockRepository) ListByProduct(ctx context.Context, productID string) ([]*Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Review), args.Error(1)
}

func (m *mockRepository) HasPurchased(ctx context.Context, userID uint, productID string) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func userCtx(id uint) context.Context {
	return utils.SetUserContext(context.Background(), id, "customer@example.com", "customer")
}

func testStore(t *testing.T) *localstore.Store {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "localstore.json"))
	require.NoError(t, err)
	return store
}

func TestService_Add(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		svc := NewService(new(mockRepository), nil)

		_, _, err := svc.Add(context.Background(), "prod-1", NewReviewInput{Rating: 4})
		assert.ErrorIs(t, err, ErrUserNotAuthenticated)
	})

	t.Run("rating bounds checked before repository", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo, nil)

		_, _, err := svc.Add(userCtx(7), "prod-1", NewReviewInput{Rating: 0})
		assert.ErrorIs(t, err, ErrInvalidRating)

		_, _, err = svc.Add(userCtx(7), "prod-1", NewReviewInput{Rating: 6})
		assert.ErrorIs(t, err, ErrInvalidRating)

		repo.AssertNotCalled(t, "Add")
	})

	t.Run("verified purchase flagged and cached locally", func(t *testing.T) {
		repo := new(mockRepository)
		store := testStore(t)
		svc := NewService(repo, store)

		repo.On("HasPurchased", mock.Anything, uint(7), "prod-1").Return(true, nil)
		repo.On("Add", mock.Anything, mock.MatchedBy(func(r *Review) bool {
			return r.ProductID == "prod-1" && r.UserID == 7 && r.Rating == 4 && r.IsVerified
		})).Return(&RatingSummary{Rating: 3.1, ReviewCount: 10}, nil)

		rv, summary, err := svc.Add(userCtx(7), "prod-1", NewReviewInput{Rating: 4, Comment: "good"})
		require.NoError(t, err)
		assert.NotEmpty(t, rv.ID)
		assert.InDelta(t, 3.1, summary.Rating, 1e-9)

		var cached []*Review
		found, err := store.Get(localstore.KeyReviews, &cached)
		require.NoError(t, err)
		require.True(t, found)
		require.Len(t, cached, 1)
		assert.Equal(t, rv.ID, cached[0].ID)
	})

	t.Run("purchase check failure does not block the review", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo, nil)

		repo.On("HasPurchased", mock.Anything, uint(7), "prod-1").
			Return(false, assert.AnError)
		repo.On("Add", mock.Anything, mock.MatchedBy(func(r *Review) bool {
			return !r.IsVerified
		})).Return(&RatingSummary{Rating: 4, ReviewCount: 1}, nil)

		_, _, err := svc.Add(userCtx(7), "prod-1", NewReviewInput{Rating: 4})
		assert.NoError(t, err)
	})
}

func TestService_ListByProduct(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, nil)

	expected := []*Review{{ID: "rev-1", ProductID: "prod-1"}}
	repo.On("ListByProduct", mock.Anything, "prod-1").Return(expected, nil)

	got, err := svc.ListByProduct(context.Background(), "prod-1")
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}
