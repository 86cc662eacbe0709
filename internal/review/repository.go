package review

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"premiumshop-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	// Add inserts the review and folds its rating into the product
	// aggregate in one transaction.
	Add(ctx context.Context, r *Review) (*RatingSummary, error)
	ListByProduct(ctx context.Context, productID string) ([]*Review, error)
	// HasPurchased reports whether the user has an order containing the
	// product; drives the verified-purchase badge.
	HasPurchased(ctx context.Context, userID uint, productID string) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Add(ctx context.Context, rv *Review) (*RatingSummary, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "AddReview"),
		zap.String("product_id", rv.ProductID),
	)
	start := time.Now()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedAddReview, err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO reviews (id, product_id, user_id, user_name, rating, comment, is_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`,
		rv.ID, rv.ProductID, rv.UserID, rv.UserName, rv.Rating, rv.Comment, rv.IsVerified,
	).Scan(&rv.CreatedAt)
	if err != nil {
		log.Error("review insert failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedAddReview, err)
	}

	// Aggregate folded in a single statement so the average and the count
	// can never drift apart.
	summary := &RatingSummary{}
	err = tx.QueryRowContext(ctx, `
		UPDATE products
		SET rating = (rating * review_count + $1) / (review_count + 1),
		    review_count = review_count + 1,
		    updated_at = NOW()
		WHERE id = $2
		RETURNING rating, review_count
	`, rv.Rating, rv.ProductID).Scan(&summary.Rating, &summary.ReviewCount)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		log.Error("rating aggregate update failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedAddReview, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedAddReview, err)
	}

	log.Info("review added",
		zap.Float64("rating", summary.Rating),
		zap.Int("review_count", summary.ReviewCount),
		zap.Duration("duration", time.Since(start)),
	)
	return summary, nil
}

func (r *repository) ListByProduct(ctx context.Context, productID string) ([]*Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, user_id, user_name, rating, comment, is_verified, created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListReviews, err)
	}
	defer rows.Close()

	reviews := []*Review{}
	for rows.Next() {
		var rv Review
		err := rows.Scan(
			&rv.ID, &rv.ProductID, &rv.UserID, &rv.UserName,
			&rv.Rating, &rv.Comment, &rv.IsVerified, &rv.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedListReviews, err)
		}
		reviews = append(reviews, &rv)
	}
	return reviews, rows.Err()
}

func (r *repository) HasPurchased(ctx context.Context, userID uint, productID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM order_items oi
			JOIN orders o ON o.id = oi.order_id
			WHERE o.user_id = $1 AND oi.product_id = $2
		)
	`, userID, productID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
