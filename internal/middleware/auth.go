package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ownerIDKey is the Gin context key carrying the authenticated owner id.
const ownerIDKey = "ownerID"

// Claims are the JWT claims issued by the external credential provider. The
// subject claim is the owner id.
type Claims struct {
	jwt.RegisteredClaims
}

// Authenticate verifies the bearer credential and stores the owner id in
// the request context. Token issuance and refresh are handled by the
// external credential provider; this service only verifies.
func Authenticate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing credential"})
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credential format"})
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
			return secret, nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credential"})
			return
		}

		c.Set(ownerIDKey, claims.Subject)
		c.Next()
	}
}

// OptionalAuthenticate stores the owner id when a valid bearer credential
// is present and lets the request through either way. Prediction works for
// anonymous users; only history recording needs an owner.
func OptionalAuthenticate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if tokenString, ok := strings.CutPrefix(header, "Bearer "); ok {
			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
				return secret, nil
			})
			if err == nil && token.Valid && claims.Subject != "" {
				c.Set(ownerIDKey, claims.Subject)
			}
		}
		c.Next()
	}
}

// OwnerID returns the authenticated owner id, or "" when the request is
// unauthenticated.
func OwnerID(c *gin.Context) string {
	return c.GetString(ownerIDKey)
}
