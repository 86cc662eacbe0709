package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"premiumshop-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, name, email, password string, role Role) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uint) (User, error)
	UpdateProfile(ctx context.Context, id uint, params UpdateProfileParams) (User, error)
	TouchLastLogin(ctx context.Context, id uint) error
	// IsAdmin checks the administrators registry, a separate table from
	// users so a compromised profile update cannot grant the role.
	IsAdmin(ctx context.Context, userID uint) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const userColumns = `id, name, email, password, role, orders_count, last_login_at, created_at`

func scanUser(row interface{ Scan(...any) error }) (User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Role,
		&u.OrdersCount, &u.LastLoginAt, &u.CreatedAt,
	)
	return u, err
}

func (r *repository) Create(ctx context.Context, name, email, password string, role Role) (User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateUser"),
	)

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, password, role, orders_count)
		VALUES ($1, $2, $3, $4, 0)
		RETURNING `+userColumns,
		name, email, password, role,
	)

	u, err := scanUser(row)
	if err != nil {
		log.Error("failed to insert user", zap.String("email", email), zap.Error(err))
		return User{}, err
	}

	log.Info("user created", zap.Uint("user_id", u.ID))
	return u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	return u, err
}

func (r *repository) GetByID(ctx context.Context, id uint) (User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	return u, err
}

func (r *repository) UpdateProfile(ctx context.Context, id uint, params UpdateProfileParams) (User, error) {
	set := ""
	args := []any{}
	argIndex := 1

	appendSet := func(col string, v any) {
		if set != "" {
			set += ", "
		}
		set += fmt.Sprintf("%s = $%d", col, argIndex)
		args = append(args, v)
		argIndex++
	}

	if params.Name != nil {
		appendSet("name", *params.Name)
	}
	if params.Email != nil {
		appendSet("email", *params.Email)
	}
	if set == "" {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE id = $%d RETURNING `+userColumns,
		set, argIndex,
	)
	args = append(args, id)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	return u, err
}

func (r *repository) TouchLastLogin(ctx context.Context, id uint) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET last_login_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *repository) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM admins WHERE user_id = $1)`, userID,
	).Scan(&exists)
	if err != nil {
		logger.FromCtx(ctx).Error("admin registry lookup failed",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return false, err
	}
	return exists, nil
}
