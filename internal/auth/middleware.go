package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/staff-planner/internal/domain"
	"github.com/spec-kit/staff-planner/internal/repository"
	apperrors "github.com/spec-kit/staff-planner/pkg/util"
)

const principalKey = "auth_principal"

// Middleware validates bearer tokens and loads the admin principal.
type Middleware struct {
	tokens *TokenManager
	admins repository.AdminRepository
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, admins repository.AdminRepository) *Middleware {
	return &Middleware{tokens: tokens, admins: admins}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	adminID, err := claims.AdminID()
	if err != nil {
		return apperrors.NewUnauthorized("invalid token subject")
	}

	admin, err := m.admins.GetByID(c.Context(), adminID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthorized("admin not found")
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, admin)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated admin.
func PrincipalFromContext(c *fiber.Ctx) (*domain.AdminUser, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	admin, ok := val.(*domain.AdminUser)
	return admin, ok
}
