package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"loyalty-ledger/internal/domain/principal"
	"loyalty-ledger/internal/handler/httperr"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	errMissingToken     = errs.New("access token required")
	errInvalidToken     = errs.New("invalid or expired token")
	errForbiddenRole    = errs.New("principal role not allowed")
	errMissingPrincipal = errs.New("principal missing from context")
)

const ctxPrincipalKey = "principal"

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts only bearer tokens; the ledger has no session cookies.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", httperr.Detail{Code: "unauthorized"})
			return
		}

		p, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errInvalidToken), "Invalid or expired token", httperr.Detail{Code: "unauthorized"})
			return
		}

		SetPrincipal(c, p)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(role principal.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			httperr.Internal(c, errMissingPrincipal)
			return
		}

		if p.Role != role {
			httperr.AbortWithError(c, http.StatusForbidden, errForbiddenRole, "Insufficient permissions", httperr.Detail{Code: "forbidden"})
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func SetPrincipal(c *gin.Context, p principal.Principal) {
	c.Set(ctxPrincipalKey, p)
}

func GetPrincipal(c *gin.Context) (principal.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return principal.Principal{}, false
	}
	p, ok := v.(principal.Principal)
	return p, ok
}
