package address

import (
	"context"

	"premiumshop-be/internal/logger"
	"premiumshop-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]*Address, error)
	Get(ctx context.Context, addressID uuid.UUID) (*Address, error)

	Create(ctx context.Context, input CreateAddressInput) (*Address, error)
	Delete(ctx context.Context, addressID uuid.UUID) error

	SetDefaultAddress(ctx context.Context, addressID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Address, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) Get(ctx context.Context, addressID uuid.UUID) (*Address, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	addr, err := s.repo.GetByID(ctx, addressID)
	if err != nil {
		return nil, err
	}

	// Another user's address is indistinguishable from a missing one.
	if addr.UserID != userID {
		logger.FromCtx(ctx).Warn("cross-user address access",
			zap.Uint("user_id", userID),
			zap.String("address_id", addressID.String()),
		)
		return nil, ErrAddressNotFound
	}
	return addr, nil
}

func (s *service) Create(ctx context.Context, input CreateAddressInput) (*Address, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	addr := &Address{
		ID:        uuid.New(),
		UserID:    userID,
		Label:     input.Label,
		Name:      input.Name,
		Phone:     input.Phone,
		Line1:     input.Line1,
		Line2:     input.Line2,
		City:      input.City,
		Postal:    input.Postal,
		IsDefault: input.SetAsDefault,
		IsActive:  true,
	}

	if input.SetAsDefault {
		if err := s.repo.ClearDefault(ctx, userID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, addr); err != nil {
		return nil, err
	}
	return addr, nil
}

func (s *service) Delete(ctx context.Context, addressID uuid.UUID) error {
	// Ownership check rides on Get.
	if _, err := s.Get(ctx, addressID); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, addressID)
}

func (s *service) SetDefaultAddress(ctx context.Context, addressID uuid.UUID) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

	if _, err := s.Get(ctx, addressID); err != nil {
		return err
	}

	if err := s.repo.ClearDefault(ctx, userID); err != nil {
		return err
	}
	return s.repo.SetDefault(ctx, userID, addressID)
}
