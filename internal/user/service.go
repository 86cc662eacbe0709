package user

import (
	"context"
	"fmt"
	"strings"

	"premiumshop-be/internal/logger"
	"premiumshop-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, name, email, password string) (string, User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	GetProfile(ctx context.Context) (User, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) (User, error)
	IsAdmin(ctx context.Context, userID uint) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, name, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx)

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}

	u, err := s.repo.Create(ctx, name, email, hashed, RoleCustomer)
	if err != nil {
		log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		if strings.Contains(err.Error(), "users_email_key") {
			return "", User{}, ErrEmailExists
		}
		return "", User{}, err
	}

	token, err := GenerateJWT(u.ID, string(u.Role), email)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", fmt.Sprint(u.ID)), zap.Error(err))
		return "", User{}, err
	}

	log.Info("register completed",
		zap.String("user_id", fmt.Sprint(u.ID)),
		zap.String("email", email),
	)
	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.Info("login failed, email not found", zap.String("email", email))
		return "", User{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Info("login failed, password mismatch", zap.String("email", email))
		return "", User{}, ErrInvalidCredentials
	}

	if err := s.repo.TouchLastLogin(ctx, u.ID); err != nil {
		// Bookkeeping only, the login still succeeds.
		log.Warn("failed to update last login", zap.Error(err))
	}

	token, err := GenerateJWT(u.ID, string(u.Role), email)
	return token, u, err
}

func (s *service) GetProfile(ctx context.Context) (User, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return User{}, ErrNotAuthenticated
	}
	return s.repo.GetByID(ctx, userID)
}

func (s *service) UpdateProfile(ctx context.Context, params UpdateProfileParams) (User, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return User{}, ErrNotAuthenticated
	}
	return s.repo.UpdateProfile(ctx, userID, params)
}

func (s *service) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	return s.repo.IsAdmin(ctx, userID)
}
