package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-auth-api/internal/core/auth"
	resp "go-auth-api/internal/transport/http/response"
)

// AuthJWT guards a route group with bearer-token auth. Rejects missing,
// malformed, tampered and expired tokens as well as issuer/audience
// mismatches with 401.
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Abort(c, http.StatusUnauthorized, "missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.Abort(c, http.StatusUnauthorized, "invalid token")
			return
		}
		c.Set("claims", claims)
		c.Set("userId", claims.Subject)
		c.Next()
	}
}
