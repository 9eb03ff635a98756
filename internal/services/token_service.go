package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mizuki-dev/kanban-api/internal/config"
	"github.com/mizuki-dev/kanban-api/internal/models"
)

// ErrInvalidToken is returned for tokens that fail signature, audience or
// expiry checks.
var ErrInvalidToken = errors.New("could not validate token credentials")

// AccessTokenClaims are the bearer claims issued for a user: subject is the
// email, username travels alongside.
type AccessTokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256 access tokens.
type TokenService struct {
	secret   []byte
	audience string
	expiry   time.Duration
}

// NewTokenService creates a TokenService from the configuration.
func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret:   []byte(cfg.SecretKey),
		audience: cfg.JWTAudience,
		expiry:   time.Duration(cfg.AccessTokenExpireMinutes) * time.Minute,
	}
}

// CreateAccessToken issues a signed token for the user.
func (s *TokenService) CreateAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := AccessTokenClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseAccessToken validates the token and returns its claims.
func (s *TokenService) ParseAccessToken(tokenString string) (*AccessTokenClaims, error) {
	claims := &AccessTokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
