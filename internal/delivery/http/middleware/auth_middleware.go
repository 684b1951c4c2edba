package middleware

import (
	"strings"

	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyAccountID is the echo.Context key under which Authenticate stores the
// verified account ID (a uuid.UUID).
const KeyAccountID = "accountID"

// AuthMiddleware provides middleware for session token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer session token and stores the bound
// account ID on the context. A missing header is distinguished from an
// invalid token; nothing else about the failure is revealed.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrMissingToken
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrMissingToken.WithDetails("expected Bearer token")
		}

		accountID, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		c.Set(KeyAccountID, accountID)

		return next(c)
	}
}
