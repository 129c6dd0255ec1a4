package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authModel "github.com/ashevelyov/matchboard/internal/auth/model"
)

// ContextClaimsKey is where verified token claims are stored on the
// request context.
const ContextClaimsKey = "auth_claims"

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*authModel.Claims, error)
}

// authenticate verifies the request's bearer token and stores the claims
// on the context. It aborts with 401 and returns nil on failure. It never
// advances the handler chain; callers decide when to call Next.
func authenticate(c *gin.Context, verifier TokenVerifier) *authModel.Claims {
	token := bearerToken(c)
	if token == "" {
		abortUnauthorized(c, "missing bearer token")
		return nil
	}

	claims, err := verifier.Verify(token)
	if err != nil {
		abortUnauthorized(c, "invalid or expired token")
		return nil
	}

	c.Set(ContextClaimsKey, claims)
	return claims
}

// RequireAuth returns a middleware that rejects requests without a valid
// bearer token and stores the claims for downstream handlers.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authenticate(c, verifier) == nil {
			return
		}
		c.Next()
	}
}

// RequireAdmin returns a middleware that additionally requires the admin
// role. The role is checked before the handler chain advances, so a
// non-admin token never reaches the endpoint.
func RequireAdmin(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := authenticate(c, verifier)
		if claims == nil {
			return
		}

		if claims.Role != authModel.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "admin role required",
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ClaimsFrom returns the verified claims stored by RequireAuth, or nil.
func ClaimsFrom(c *gin.Context) *authModel.Claims {
	v, ok := c.Get(ContextClaimsKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*authModel.Claims)
	if !ok {
		return nil
	}
	return claims
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
	c.Abort()
}
