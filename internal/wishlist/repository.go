package wishlist

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"premiumshop-be/internal/logger"

	"go.uber.org/zap"
)

var (
	errFailedGetWishlist    = fmt.Errorf("failed to get wishlist")
	errFailedUpdateWishlist = fmt.Errorf("failed to update wishlist")
)

// Repository keeps the remote wishlist document per user in sync with the
// session's engine.
type Repository interface {
	UpdateWishlist(ctx context.Context, userID uint, items []Item) error
	GetWishlist(ctx context.Context, userID uint) ([]Item, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) UpdateWishlist(ctx context.Context, userID uint, items []Item) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateWishlist"),
		zap.Uint("user_id", userID),
	)

	if items == nil {
		items = []Item{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: %v", errFailedUpdateWishlist, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO wishlists (user_id, items, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET items = $2, updated_at = NOW()
	`, userID, payload)
	if err != nil {
		log.Error("failed to upsert wishlist", zap.Error(err))
		return fmt.Errorf("%w: %v", errFailedUpdateWishlist, err)
	}

	return nil
}

func (r *repository) GetWishlist(ctx context.Context, userID uint) ([]Item, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT items FROM wishlists WHERE user_id = $1
	`, userID).Scan(&payload)

	if err == sql.ErrNoRows {
		return []Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errFailedGetWishlist, err)
	}

	var items []Item
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", errFailedGetWishlist, err)
	}
	return items, nil
}
