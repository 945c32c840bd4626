package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/allmart/backoffice/internal/domain/errors"
	"github.com/allmart/backoffice/internal/domain/model"
	pkgAuth "github.com/allmart/backoffice/internal/pkg/auth"
	"github.com/allmart/backoffice/internal/pkg/permission"
)

const (
	// UserContextKey is a gin context key for the authenticated admin login.
	UserContextKey = "authUser"
	// RoleContextKey is a gin context key for the authenticated admin role.
	RoleContextKey = "authRole"

	authCookieName = "allmart_token"
)

// TokenParser verifies a session token and returns its claims.
type TokenParser interface {
	ParseToken(token string) (*pkgAuth.Claims, error)
}

// AuthRequired ensures a valid admin session before reaching the handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := parser.ParseToken(token)
		if err != nil {
			if err == pkgAuth.ErrInvalidToken {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserContextKey, claims.User)
		c.Set(RoleContextKey, claims.Role)
		c.Next()
	}
}

// Require rejects requests whose role does not grant the permission.
// Must run after AuthRequired.
func Require(p permission.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := Authorize(c, p); err != nil {
			_ = c.Error(err)
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// Authorize checks the session role against the permission. A missing or
// insufficient role yields ErrForbidden.
func Authorize(c *gin.Context, p permission.Permission) error {
	role, ok := CurrentRole(c)
	if !ok || !permission.Has(role, p) {
		return domainErrors.ErrForbidden
	}
	return nil
}

// CurrentRole extracts the authenticated role from context.
func CurrentRole(c *gin.Context) (model.Role, bool) {
	val, ok := c.Get(RoleContextKey)
	if !ok {
		return "", false
	}
	role, ok := val.(model.Role)
	return role, ok
}

// CurrentUser extracts the authenticated admin login from context.
func CurrentUser(c *gin.Context) string {
	val, ok := c.Get(UserContextKey)
	if !ok {
		return ""
	}
	user, _ := val.(string)
	return user
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the session token cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
