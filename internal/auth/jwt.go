package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// defaultTokenLifetime is used when the config does not set one.
const defaultTokenLifetime = 24 * time.Hour

// IssueToken signs a bearer token carrying the user id as subject.
func IssueToken(secret, userID string, lifetime time.Duration) (string, error) {
	if lifetime <= 0 {
		lifetime = defaultTokenLifetime
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// ParseToken verifies a bearer token and returns the user id it carries.
func ParseToken(secret, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(_ *jwt.Token) (any, error) {
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
