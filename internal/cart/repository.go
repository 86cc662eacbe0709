package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"premiumshop-be/internal/logger"

	"go.uber.org/zap"
)

// Repository mirrors the session cart into the remote store, one document
// per user. The upsert keeps created_at intact, so a sync merges into the
// existing document rather than replacing it.
type Repository interface {
	UpdateCart(ctx context.Context, userID uint, items []Item) error
	GetCart(ctx context.Context, userID uint) (*RemoteCart, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) UpdateCart(ctx context.Context, userID uint, items []Item) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateCart"),
		zap.Uint("user_id", userID),
		zap.Int("items", len(items)),
	)

	var total int64
	for _, it := range items {
		total += it.Subtotal()
	}

	if items == nil {
		items = []Item{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedUpdateCart, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO carts (user_id, items, total, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET items = $2, total = $3, updated_at = NOW()
	`, userID, payload, total)
	if err != nil {
		log.Error("failed to upsert cart", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedUpdateCart, err)
	}

	log.Debug("cart synced", zap.Int64("total", total))
	return nil
}

func (r *repository) GetCart(ctx context.Context, userID uint) (*RemoteCart, error) {
	query := `
		SELECT items, total, updated_at
		FROM carts
		WHERE user_id = $1
	`

	var (
		payload   []byte
		total     int64
		updatedAt time.Time
	)
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&payload, &total, &updatedAt)
	if err == sql.ErrNoRows {
		// A user with no saved cart gets an empty one; success, not error.
		return &RemoteCart{UserID: userID, Items: []Item{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGetCart, err)
	}

	cart := &RemoteCart{UserID: userID, Total: total, UpdatedAt: updatedAt}
	if err := json.Unmarshal(payload, &cart.Items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGetCart, err)
	}
	return cart, nil
}
