package order

import (
	"context"
	"fmt"
	"time"

	"premiumshop-be/internal/logger"
	"premiumshop-be/internal/utils"

	"go.uber.org/zap"
)

// AdminRegistry answers whether a user may manage other people's orders.
type AdminRegistry interface {
	IsAdmin(ctx context.Context, userID uint) (bool, error)
}

type CreateOrderInput struct {
	Items         []Item       `json:"items"`
	Shipping      ShippingInfo `json:"shipping"`
	PaymentMethod string       `json:"payment_method"`
	ShippingFee   int64        `json:"shipping_fee"`
}

type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*Order, error)
	// Track is a public point lookup, no login needed to follow a parcel.
	Track(ctx context.Context, id string) (*Order, error)
	ListMine(ctx context.Context) ([]*Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type service struct {
	repo   Repository
	admins AdminRegistry
	now    func() time.Time
}

func NewService(repo Repository, admins AdminRegistry) Service {
	return &service{repo: repo, admins: admins, now: time.Now}
}

// newOrderID derives the customer-facing id from the placement time,
// "ORD" plus the last eight digits of the millisecond clock.
func newOrderID(now time.Time) string {
	return fmt.Sprintf("ORD%08d", now.UnixMilli()%100_000_000)
}

func (s *service) Create(ctx context.Context, input CreateOrderInput) (*Order, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotAuthenticated
	}
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	// Snapshot copy so the caller's slice stays theirs.
	items := make([]Item, len(input.Items))
	copy(items, input.Items)

	var subtotal int64
	for _, item := range items {
		subtotal += item.Subtotal()
	}

	o := &Order{
		ID:            newOrderID(s.now()),
		UserID:        userID,
		Items:         items,
		Shipping:      input.Shipping,
		PaymentMethod: input.PaymentMethod,
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
		Subtotal:      subtotal,
		ShippingFee:   input.ShippingFee,
		Total:         subtotal + input.ShippingFee,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order created",
		zap.String("order_id", o.ID),
		zap.Int64("total", o.Total),
	)
	return o, nil
}

func (s *service) Track(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListMine(ctx context.Context) ([]*Order, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotAuthenticated
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) UpdateStatus(ctx context.Context, id string, status Status) error {
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

	if !ValidStatus(status) {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	return s.repo.UpdateStatus(ctx, id, status)
}
