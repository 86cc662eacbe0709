package review

import (
	"context"

	"premiumshop-be/internal/localstore"
	"premiumshop-be/internal/logger"
	"premiumshop-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Add(ctx context.Context, productID string, input NewReviewInput) (*Review, *RatingSummary, error)
	ListByProduct(ctx context.Context, productID string) ([]*Review, error)
}

type service struct {
	repo  Repository
	store *localstore.Store
}

// NewService wires the repository plus an optional local store used as a
// cache of the caller's own reviews. store may be nil.
func NewService(repo Repository, store *localstore.Store) Service {
	return &service{repo: repo, store: store}
}

func (s *service) Add(ctx context.Context, productID string, input NewReviewInput) (*Review, *RatingSummary, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, nil, ErrUserNotAuthenticated
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, nil, ErrInvalidRating
	}

	userName := utils.GetUserEmailFromContext(ctx)

	verified, err := s.repo.HasPurchased(ctx, userID, productID)
	if err != nil {
		// Badge only; the review itself still goes through.
		logger.FromCtx(ctx).Warn("purchase check failed", zap.Error(err))
		verified = false
	}

	rv := &Review{
		ID:         uuid.New().String(),
		ProductID:  productID,
		UserID:     userID,
		UserName:   userName,
		Rating:     input.Rating,
		Comment:    input.Comment,
		IsVerified: verified,
	}

	summary, err := s.repo.Add(ctx, rv)
	if err != nil {
		return nil, nil, err
	}

	s.cacheOwn(ctx, rv)
	return rv, summary, nil
}

func (s *service) ListByProduct(ctx context.Context, productID string) ([]*Review, error) {
	return s.repo.ListByProduct(ctx, productID)
}

// cacheOwn appends the review to the local "reviews" snapshot. Failures are
// logged and swallowed, the store copy is authoritative.
func (s *service) cacheOwn(ctx context.Context, rv *Review) {
	if s.store == nil {
		return
	}

	var cached []*Review
	if _, err := s.store.Get(localstore.KeyReviews, &cached); err != nil {
		cached = nil
	}
	cached = append(cached, rv)

	if err := s.store.Put(localstore.KeyReviews, cached); err != nil {
		logger.FromCtx(ctx).Warn("failed to cache review locally", zap.Error(err))
	}
}
