package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// UserIDKey is the context key for the authenticated user id
	UserIDKey = "user_id"
	// TokenKey is the context key for the raw bearer token
	TokenKey = "auth_token"
	// TokenExpiryKey is the context key for the token expiry time
	TokenExpiryKey = "auth_token_expiry"
)

var (
	errMissingToken   = errors.New("missing bearer token")
	errInvalidSubject = errors.New("token subject is not a user id")
	errMissingExpiry  = errors.New("token has no expiry")
)

// Auth verifies HS256 bearer tokens issued by the auth provider. The
// subject must be the user's UUID and the token must carry an expiry.
func Auth(secret []byte) gin.HandlerFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	return func(c *gin.Context) {
		raw, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		claims := &jwt.RegisteredClaims{}
		if _, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
			return secret, nil
		}); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errInvalidSubject.Error()})
			return
		}
		if claims.ExpiresAt == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errMissingExpiry.Error()})
			return
		}

		c.Set(UserIDKey, userID.String())
		c.Set(TokenKey, raw)
		c.Set(TokenExpiryKey, claims.ExpiresAt.Time)
		c.Next()
	}
}

func bearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errMissingToken
	}
	return strings.TrimSpace(token), nil
}

// GetUserID retrieves the authenticated user id from the gin context.
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// GetToken retrieves the raw bearer token from the gin context.
func GetToken(c *gin.Context) string {
	return c.GetString(TokenKey)
}

// GetTokenExpiry retrieves the token expiry from the gin context.
func GetTokenExpiry(c *gin.Context) time.Time {
	return c.GetTime(TokenExpiryKey)
}
