package middleware

import (
	domainerrors "guideflow/internal/domain/errors"
	"guideflow/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderAuthToken carries the session token. Kept as a bare token header
// rather than a Bearer scheme for client compatibility.
const HeaderAuthToken = "X-Auth-Token"

// ContextKeyUserID is the echo.Context key holding the authenticated user's ID.
const ContextKeyUserID = "userID"

// AuthMiddleware provides middleware for session token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the session token and stores the caller's user ID
// on the context. Missing, malformed, and expired tokens all come back 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := c.Request().Header.Get(HeaderAuthToken)
		if tokenString == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("missing auth token header")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated.WrapMessage("invalid or expired token")
		}

		c.Set(ContextKeyUserID, claims.UserID)

		return next(c)
	}
}

// UserID extracts the authenticated user's ID set by Authenticate.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return id, ok
}
