// Package auth issues and verifies the signed session tokens that carry a
// user's identity claims.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/foodie/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims embeds the standard registered claims plus the identity posted by
// the client at sign-in.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Identity is the part of the claims a caller supplies when asking for a token.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// GenerateToken signs identity with HS256; the token expires after validityDuration.
func GenerateToken(identity Identity, secretKey []byte, validityDuration time.Duration) (string, error) {
	if strings.TrimSpace(identity.Email) == "" {
		return "", common.ErrorValidation
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Email: identity.Email,
		Name:  identity.Name,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies tokenString and returns its claims.
// Expired tokens yield common.ErrTokenExpired; anything else that fails
// verification yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.Email == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
