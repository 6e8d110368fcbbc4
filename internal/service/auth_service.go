package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-planner/internal/auth"
	"github.com/spec-kit/staff-planner/internal/config"
	"github.com/spec-kit/staff-planner/internal/domain"
	"github.com/spec-kit/staff-planner/internal/repository"
	apperrors "github.com/spec-kit/staff-planner/pkg/util"
)

// AuthService handles administrator login and password management.
type AuthService struct {
	admins     repository.AdminRepository
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewAuthService constructs the service.
func NewAuthService(cfg config.AuthConfig, admins repository.AdminRepository) *AuthService {
	return &AuthService{
		admins:     admins,
		tokens:     auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		bcryptCost: cfg.BcryptCost,
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// Login verifies credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.AdminUser, string, time.Time, error) {
	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.NewPersistenceError(err)
	}

	if err := auth.ComparePassword(admin.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.tokens.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return admin, token, expiresAt, nil
}

// ChangePassword rotates the authenticated admin's password.
func (s *AuthService) ChangePassword(ctx context.Context, adminID int64, current, next string) error {
	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("admin", nil)
		}
		return apperrors.NewPersistenceError(err)
	}

	if err := auth.ComparePassword(admin.PasswordHash, current); err != nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}

	hashed, err := auth.HashPassword(next, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if err := s.admins.UpdatePassword(ctx, adminID, hashed); err != nil {
		return apperrors.NewPersistenceError(err)
	}
	return nil
}

// EnsureBootstrapAdmin seeds the configured admin account when it does not
// exist yet, so a fresh deployment can log in without manual SQL.
func (s *AuthService) EnsureBootstrapAdmin(ctx context.Context, cfg config.AuthConfig, logger *zap.Logger) error {
	if cfg.BootstrapUsername == "" || cfg.BootstrapPassword == "" {
		return nil
	}

	if _, err := s.admins.GetByUsername(ctx, cfg.BootstrapUsername); err == nil {
		return nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hashed, err := auth.HashPassword(cfg.BootstrapPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	admin := &domain.AdminUser{Username: cfg.BootstrapUsername, PasswordHash: hashed}
	if err := s.admins.Create(ctx, admin); err != nil {
		return err
	}
	logger.Info("bootstrap admin created", zap.String("username", admin.Username))
	return nil
}
