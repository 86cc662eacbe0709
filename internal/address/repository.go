package address

import (
	"context"
	"database/sql"

	"premiumshop-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	GetByUserID(ctx context.Context, userID uint) ([]*Address, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Address, error)

	Create(ctx context.Context, addr *Address) error
	Deactivate(ctx context.Context, id uuid.UUID) error

	ClearDefault(ctx context.Context, userID uint) error
	SetDefault(ctx context.Context, userID uint, addressID uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const addressColumns = `
	id, user_id, label, name, phone,
	line1, line2, city, postal,
	is_default, is_active
`

func scanAddress(row interface{ Scan(...any) error }) (*Address, error) {
	var a Address
	err := row.Scan(
		&a.ID, &a.UserID, &a.Label, &a.Name, &a.Phone,
		&a.Line1, &a.Line2, &a.City, &a.Postal,
		&a.IsDefault, &a.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uint) ([]*Address, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "GetByUserID"),
		zap.Uint("user_id", userID),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+addressColumns+`
		FROM addresses
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY is_default DESC, created_at DESC
	`, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var res []*Address
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Address, error) {
	a, err := scanAddress(r.db.QueryRowContext(ctx, `
		SELECT `+addressColumns+`
		FROM addresses
		WHERE id = $1 AND is_active = TRUE
		LIMIT 1
	`, id))
	if err == sql.ErrNoRows {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("address lookup failed",
			zap.String("address_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}
	return a, nil
}

func (r *repository) Create(ctx context.Context, addr *Address) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO addresses (
			id, user_id, label, name, phone,
			line1, line2, city, postal,
			is_default, is_active
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		addr.ID, addr.UserID, addr.Label, addr.Name, addr.Phone,
		addr.Line1, addr.Line2, addr.City, addr.Postal,
		addr.IsDefault, addr.IsActive,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("address insert failed",
			zap.String("address_id", addr.ID.String()),
			zap.Error(err),
		)
	}
	return err
}

func (r *repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE addresses
		SET is_active = FALSE, is_default = FALSE
		WHERE id = $1
	`, id)
	return err
}

func (r *repository) ClearDefault(ctx context.Context, userID uint) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE addresses
		SET is_default = FALSE
		WHERE user_id = $1 AND is_default = TRUE
	`, userID)
	return err
}

func (r *repository) SetDefault(ctx context.Context, userID uint, addressID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE addresses
		SET is_default = TRUE
		WHERE user_id = $1 AND id = $2 AND is_active = TRUE
	`, userID, addressID)
	return err
}
