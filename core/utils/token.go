package utils

import (
	"errors"
	"fmt"

	appErrors "focusflow-api/core/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the JWT payload accepted on private routes.
type TokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// ParseToken validates a bearer token string against the shared secret and
// returns its claims.
func ParseToken(tokenString, secret string) (*TokenClaims, *appErrors.AppError) {
	claims := &TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, appErrors.NewAppError(appErrors.ErrTokenExpired, "Token expired", err)
		}
		return nil, appErrors.NewAppError(appErrors.ErrInvalidTokenFormat, "Invalid token", err)
	}
	if !token.Valid {
		return nil, appErrors.NewAppError(appErrors.ErrUnauthorized, "Invalid token", nil)
	}
	if claims.UserID == uuid.Nil {
		return nil, appErrors.NewAppError(appErrors.ErrInvalidTokenFormat, "Token missing user_id", nil)
	}

	return claims, nil
}
