package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	a "github.com/you/carvalueai/pkg/auth"
)

// JWTAuth rejects requests without a valid bearer token and injects the
// caller's identity for downstream handlers.
func JWTAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "error": "missing bearer token"})
			return
		}
		tok := strings.TrimPrefix(h, "Bearer ")
		claims, err := a.ParseValidate(secret, tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "error": "invalid or expired token"})
			return
		}
		c.Set("sub", claims.Sub)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// UserID returns the identity JWTAuth stored on the context.
func UserID(c *gin.Context) string {
	v, _ := c.Get("sub")
	id, _ := v.(string)
	return id
}
