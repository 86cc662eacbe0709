package product

import (
	"context"
	"time"

	"premiumshop-be/internal/logger"
	"premiumshop-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminRegistry answers whether a user is present in the administrators
// registry. Satisfied by the user repository.
type AdminRegistry interface {
	IsAdmin(ctx context.Context, userID uint) (bool, error)
}

type Service interface {
	List(ctx context.Context, filter *Filter, sortBy string, limit, page *int32) ([]*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)

	// Admin-gated. Each verifies the caller against the registry before
	// any mutation is attempted.
	Create(ctx context.Context, input NewProductInput) (*Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*Product, error)
	Delete(ctx context.Context, id string) error
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

type service struct {
	repo   Repository
	admins AdminRegistry
}

func NewService(repo Repository, admins AdminRegistry) Service {
	return &service{repo: repo, admins: admins}
}

func (s *service) List(
	ctx context.Context,
	filter *Filter,
	sortBy string,
	limit, page *int32,
) ([]*Product, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListProducts"),
	)
	start := time.Now()

	products, err := s.repo.List(ctx, filter, sortBy, limit, page)
	if err != nil {
		log.Error("failed to fetch product list",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	log.Info("product list fetched",
		zap.Int("count", len(products)),
		zap.Duration("duration", time.Since(start)),
	)
	return products, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

// requireAdmin resolves the caller from context and checks the registry.
// Runs before every admin mutation so nothing is written for an
// unauthorized caller.
func (s *service) requireAdmin(ctx context.Context) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUserNotAuthenticated
	}

	isAdmin, err := s.admins.IsAdmin(ctx, userID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return ErrUnauthorized
	}
	return nil
}

func (s *service) Create(ctx context.Context, input NewProductInput) (*Product, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	if input.Name == "" {
		return nil, ErrEmptyName
	}
	if input.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if input.Stock < 0 {
		return nil, ErrInvalidStock
	}

	p := &Product{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Brand:       input.Brand,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("product created",
		zap.String("product_id", p.ID),
		zap.String("name", p.Name),
	)
	return p, nil
}

func (s *service) Update(ctx context.Context, id string, input UpdateProductInput) (*Product, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	if input.Price != nil && *input.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if input.Stock != nil && *input.Stock < 0 {
		return nil, ErrInvalidStock
	}

	return s.repo.Update(ctx, id, input)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.repo.DashboardStats(ctx)
}
