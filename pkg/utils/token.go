package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is what a signed identity token carries: the user id and role.
type TokenClaims struct {
	UserID uuid.UUID
	Role   string
}

// GenerateToken signs an HS256 JWT embedding the user id and role.
// Expiry is a deployment concern and comes from config, not callers.
func GenerateToken(cfg JWTConfig, userID uuid.UUID, role string) (string, error) {
	now := time.Now().UTC()

	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"iat":  now.Unix(),
	}
	if cfg.ExpiryHours > 0 {
		claims["exp"] = now.Add(time.Duration(cfg.ExpiryHours) * time.Hour).Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := t.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ParseToken verifies a signed token and extracts the embedded identity.
func ParseToken(cfg JWTConfig, tokenStr string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("token missing subject")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid subject: %w", err)
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("token missing role")
	}

	return &TokenClaims{UserID: userID, Role: role}, nil
}
