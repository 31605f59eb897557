package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	jwt "github.com/golang-jwt/jwt/v5"
)

const anonIDKey = "anon_id"

var errMissingClaim = errors.New("token has no anon_id claim")

// generateJWT issues an HS256 token carrying anonID.
func (h *Handler) generateJWT(anonID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		anonIDKey: anonID,
		"iat":     now.Unix(),
		"exp":     now.Add(h.Auth.TokenTTL.Duration).Unix(),
		"iss":     h.Auth.Issuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.Auth.JWTSecret))
}

// validateAndGetAnonID verifies signature, expiry and issuer, then returns
// the anon_id claim.
func (h *Handler) validateAndGetAnonID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString,
		func(*jwt.Token) (any, error) { return []byte(h.Auth.JWTSecret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(h.Auth.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errMissingClaim
	}
	anonID, ok := claims[anonIDKey].(string)
	if !ok || anonID == "" {
		return "", errMissingClaim
	}
	return anonID, nil
}

// GetAnonID creates an anonymous identity and returns a token for it.
func (h *Handler) GetAnonID(c *gin.Context) {
	anonID := uuid.New().String()

	token, err := h.generateJWT(anonID)
	if err != nil {
		h.log.Error("failed to sign token", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "anon_id": anonID})
}

// RequireAuth accepts a bearer token in the Authorization header, or in
// the token query parameter for WebSocket clients that cannot set headers.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
			return
		}

		anonID, err := h.validateAndGetAnonID(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
			return
		}
		c.Set(anonIDKey, anonID)
		c.Next()
	}
}
