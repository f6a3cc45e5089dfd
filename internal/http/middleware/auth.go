package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userClaimsKey = "user_claims"

// AuthOptional verifies a Bearer token when one is sent and attaches its
// claims to the context. Requests without a token pass through; the API is
// open, the token only identifies staff in logs and future role checks.
func AuthOptional(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err == nil && token.Valid {
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				c.Set(userClaimsKey, claims)
			}
		}
		c.Next()
	}
}

// GetUserClaims returns verified JWT claims when the request carried a valid
// token.
func GetUserClaims(c *gin.Context) (jwt.MapClaims, bool) {
	if v, ok := c.Get(userClaimsKey); ok {
		if claims, ok := v.(jwt.MapClaims); ok {
			return claims, true
		}
	}
	return nil, false
}
