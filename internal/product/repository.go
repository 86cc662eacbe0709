package product

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"premiumshop-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, filter *Filter, sortBy string, limit, page *int32) ([]*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, id string, input UpdateProductInput) (*Product, error)
	SoftDelete(ctx context.Context, id string) error
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	id, name, description, category, brand,
	price, stock, sold_count, rating, review_count,
	imageurl, is_active, created_at, updated_at
`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Category, &p.Brand,
		&p.Price, &p.Stock, &p.SoldCount, &p.Rating, &p.ReviewCount,
		&p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(
	ctx context.Context,
	filter *Filter,
	sortBy string,
	limit, page *int32,
) ([]*Product, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListProducts"),
	)

	start := time.Now()

	// ---------- pagination ----------
	finalLimit := int32(20)
	if limit != nil && *limit > 0 {
		finalLimit = *limit
	}
	if finalLimit > 100 {
		finalLimit = 100
	}

	finalPage := int32(1)
	if page != nil && *page > 0 {
		finalPage = *page
	}

	offset := (finalPage - 1) * finalLimit

	// ---------- where ----------
	// Soft-deleted products never surface in listings.
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active = TRUE`
	args := []any{}
	argIndex := 1

	if filter != nil {
		if filter.Category != nil && *filter.Category != "" {
			query += fmt.Sprintf(" AND category = $%d", argIndex)
			args = append(args, *filter.Category)
			argIndex++
		}

		if filter.Brand != nil && *filter.Brand != "" {
			query += fmt.Sprintf(" AND brand = $%d", argIndex)
			args = append(args, *filter.Brand)
			argIndex++
		}

		if filter.MinPrice != nil {
			query += fmt.Sprintf(" AND price >= $%d", argIndex)
			args = append(args, *filter.MinPrice)
			argIndex++
		}

		if filter.MaxPrice != nil {
			query += fmt.Sprintf(" AND price <= $%d", argIndex)
			args = append(args, *filter.MaxPrice)
			argIndex++
		}

		if filter.MinRating != nil {
			query += fmt.Sprintf(" AND rating >= $%d", argIndex)
			args = append(args, *filter.MinRating)
			argIndex++
		}

		if filter.Search != nil && *filter.Search != "" {
			query += fmt.Sprintf(
				" AND (name ILIKE $%d OR description ILIKE $%d OR category ILIKE $%d)",
				argIndex, argIndex, argIndex,
			)
			args = append(args, "%"+*filter.Search+"%")
			argIndex++
		}
	}

	// ---------- sort ----------
	orderBy := "created_at DESC"
	switch sortBy {
	case SortPriceLow:
		orderBy = "price ASC"
	case SortPriceHigh:
		orderBy = "price DESC"
	case SortPopular:
		orderBy = "sold_count DESC"
	case SortNewest, "":
		orderBy = "created_at DESC"
	}

	query += " ORDER BY " + orderBy
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, finalLimit, offset)

	log.Debug("executing product list query",
		zap.String("sort", sortBy),
		zap.Int32("limit", finalLimit),
		zap.Int32("page", finalPage),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("product list query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, fmt.Errorf("%w: %v", ErrFailedListProducts, err)
	}
	defer rows.Close()

	// An empty page is a valid result, not an error.
	products := make([]*Product, 0, finalLimit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedListProducts, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListProducts, err)
	}

	log.Info("product list query success",
		zap.Int("rows", len(products)),
		zap.Duration("duration", time.Since(start)),
	)

	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 AND is_active = TRUE`,
		id,
	)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGetProduct, err)
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, p *Product) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateProduct"),
		zap.String("product_id", p.ID),
	)

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (
			id, name, description, category, brand,
			price, stock, sold_count, rating, review_count,
			imageurl, is_active
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,0,0,0,$8,TRUE)
		RETURNING created_at, updated_at
	`,
		p.ID, p.Name, p.Description, p.Category, p.Brand,
		p.Price, p.Stock, p.ImageURL,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedSaveProduct, err)
	}

	p.SoldCount = 0
	p.Rating = 0
	p.ReviewCount = 0
	p.IsActive = true

	log.Info("product created")
	return nil
}

func (r *repository) Update(ctx context.Context, id string, input UpdateProductInput) (*Product, error) {
	// Explicit field set; only what the caller named is written.
	set := "updated_at = NOW()"
	args := []any{}
	argIndex := 1

	appendSet := func(col string, v any) {
		set += fmt.Sprintf(", %s = $%d", col, argIndex)
		args = append(args, v)
		argIndex++
	}

	if input.Name != nil {
		appendSet("name", *input.Name)
	}
	if input.Description != nil {
		appendSet("description", *input.Description)
	}
	if input.Category != nil {
		appendSet("category", *input.Category)
	}
	if input.Brand != nil {
		appendSet("brand", *input.Brand)
	}
	if input.Price != nil {
		appendSet("price", *input.Price)
	}
	if input.Stock != nil {
		appendSet("stock", *input.Stock)
	}
	if input.ImageURL != nil {
		appendSet("imageurl", *input.ImageURL)
	}

	query := fmt.Sprintf(
		`UPDATE products SET %s WHERE id = $%d RETURNING `+productColumns,
		set, argIndex,
	)
	args = append(args, id)

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedSaveProduct, err)
	}
	return p, nil
}

func (r *repository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET is_active = FALSE, deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveProduct, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *repository) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "DashboardStats"),
	)

	stats := &DashboardStats{}

	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM users),
			(SELECT COALESCE(SUM(total), 0) FROM orders)
	`).Scan(&stats.TotalProducts, &stats.TotalOrders, &stats.TotalUsers, &stats.TotalRevenue)
	if err != nil {
		log.Error("failed to load dashboard totals", zap.Error(err))
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, total, status, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o Recent
		if err := rows.Scan(&o.OrderID, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		stats.RecentOrders = append(stats.RecentOrders, o)
	}
	return stats, rows.Err()
}
