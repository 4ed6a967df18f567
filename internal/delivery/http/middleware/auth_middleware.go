package middleware

import (
	"slices"

	"mesa/internal/delivery/http/response"
	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/service"
	"mesa/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys for the authenticated caller.
const (
	contextKeyClaims = "authClaims"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := ClaimsFromRequest(c, m.tokenSvc)
		if err != nil {
			return response.Unauthorized(c,
				domainerrors.ErrUnauthenticated.ErrorCode(),
				domainerrors.ErrUnauthenticated.Message())
		}

		c.Set(contextKeyClaims, claims)

		return next(c)
	}
}

// RequireRoles is a middleware factory restricting a route to the given
// roles. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRoles(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(contextKeyClaims).(*service.Claims)
			if !ok {
				return response.Unauthorized(c,
					domainerrors.ErrUnauthenticated.ErrorCode(),
					domainerrors.ErrUnauthenticated.Message())
			}

			if !slices.Contains(roles, claims.Role) {
				return response.Forbidden(c,
					domainerrors.ErrForbidden.ErrorCode(),
					domainerrors.ErrForbidden.Message())
			}

			return next(c)
		}
	}
}

// GetCaller extracts the authenticated caller from the echo context.
// Handlers behind Authenticate can rely on it being present.
func GetCaller(c echo.Context) (usecase.Caller, bool) {
	claims, ok := c.Get(contextKeyClaims).(*service.Claims)
	if !ok {
		return usecase.Caller{}, false
	}

	return usecase.Caller{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, true
}

// ClaimsFromRequest resolves and validates the bearer token on a request.
// Shared by the HTTP middleware and the WebSocket upgrade handler.
func ClaimsFromRequest(c echo.Context, tokenSvc service.TokenService) (*service.Claims, error) {
	tokenString, err := bearerToken(c)
	if err != nil {
		return nil, err
	}

	claims, err := tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	return claims, nil
}

func bearerToken(c echo.Context) (string, error) {
	const prefix = "Bearer "

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		// Browser WebSocket clients cannot set the Authorization header
		// on the upgrade request, so a query parameter is accepted too.
		if token := c.QueryParam("token"); token != "" {
			return token, nil
		}

		return "", domainerrors.ErrUnauthenticated
	}
	if len(authHeader) <= len(prefix) || authHeader[:len(prefix)] != prefix {
		return "", domainerrors.ErrUnauthenticated
	}

	return authHeader[len(prefix):], nil
}
