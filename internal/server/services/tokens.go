package services

import (
	"time"

	"github.com/dmitrijs2005/foodie/internal/server/auth"
	"github.com/dmitrijs2005/foodie/internal/server/config"
)

// TokenService issues and verifies session tokens with the configured
// secret and lifetime.
type TokenService struct {
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

func (s *TokenService) Issue(identity auth.Identity) (string, error) {
	return auth.GenerateToken(identity, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *TokenService) Verify(token string) (*auth.Claims, error) {
	return auth.ParseToken(token, s.jwtSecret)
}
