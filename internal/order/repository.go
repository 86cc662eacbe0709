package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"premiumshop-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	// Create places the order in one transaction: order row, item rows,
	// conditional stock decrements, and the buyer's orders_count bump.
	// Any insufficient line rolls the whole order back.
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	ListByUser(ctx context.Context, userID uint) ([]*Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
		zap.String("order_id", o.ID),
		zap.Uint("user_id", o.UserID),
	)
	start := time.Now()

	shippingJSON, err := json.Marshal(o.Shipping)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			id, user_id, shipping, payment_method,
			status, payment_status, subtotal, shipping_fee, total
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`,
		o.ID, o.UserID, shippingJSON, o.PaymentMethod,
		o.Status, o.PaymentStatus, o.Subtotal, o.ShippingFee, o.Total,
	).Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("order insert failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, name, price, quantity)
			VALUES ($1, $2, $3, $4, $5)
		`, o.ID, item.ProductID, item.Name, item.Price, item.Quantity)
		if err != nil {
			log.Error("order item insert failed",
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
			return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
		}

		// Conditional decrement. Zero rows means the product ran out
		// between cart and checkout; the whole order rolls back so
		// stock can never go negative.
		res, err := tx.ExecContext(ctx, `
			UPDATE products
			SET stock = stock - $1, sold_count = sold_count + $1, updated_at = NOW()
			WHERE id = $2 AND stock >= $1
		`, item.Quantity, item.ProductID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
		}
		if affected == 0 {
			log.Info("stock ran out during placement",
				zap.String("product_id", item.ProductID),
				zap.Int("quantity", item.Quantity),
			)
			return fmt.Errorf("%w: %s", ErrInsufficientStock, item.Name)
		}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE users SET orders_count = orders_count + 1 WHERE id = $1
	`, o.UserID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedCreateOrder, err)
	}

	log.Info("order placed",
		zap.Int("items", len(o.Items)),
		zap.Int64("total", o.Total),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

func scanOrder(row interface{ Scan(...any) error }) (*Order, error) {
	var o Order
	var shippingJSON []byte
	err := row.Scan(
		&o.ID, &o.UserID, &shippingJSON, &o.PaymentMethod,
		&o.Status, &o.PaymentStatus, &o.Subtotal, &o.ShippingFee, &o.Total,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(shippingJSON, &o.Shipping); err != nil {
		return nil, err
	}
	return &o, nil
}

const orderColumns = `
	id, user_id, shipping, payment_method,
	status, payment_status, subtotal, shipping_fee, total,
	created_at, updated_at
`

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListOrders, err)
	}

	if err := r.loadItems(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListOrders, err)
	}
	defer rows.Close()

	orders := []*Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedListOrders, err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListOrders, err)
	}

	for _, o := range orders {
		if err := r.loadItems(ctx, o); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *repository) loadItems(ctx context.Context, o *Order) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id, name, price, quantity
		FROM order_items
		WHERE order_id = $1
	`, o.ID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedListOrders, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedListOrders, err)
		}
		o.Items = append(o.Items, item)
	}
	return rows.Err()
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.String("order_id", id),
		zap.String("status", string(status)),
	)
	return nil
}
