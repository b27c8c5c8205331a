package usecases

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrMissingSecret = errors.New("jwt secret is not configured")
)

// AuthUsecase issues and verifies bearer tokens for API clients.
// There are no user accounts; a token only names the calling client.
type AuthUsecase struct {
	jwtSecret []byte
	now       func() time.Time
}

func NewAuthUsecase(secret string) *AuthUsecase {
	return &AuthUsecase{
		jwtSecret: []byte(secret),
		now:       time.Now,
	}
}

// Enabled reports whether a secret is configured
func (uc *AuthUsecase) Enabled() bool {
	return len(uc.jwtSecret) > 0
}

// IssueToken signs an HS256 token for clientID valid for ttl
func (uc *AuthUsecase) IssueToken(clientID string, ttl time.Duration) (string, error) {
	if !uc.Enabled() {
		return "", ErrMissingSecret
	}
	if clientID == "" {
		return "", errors.New("client id is required")
	}

	now := uc.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   clientID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	tokenString, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ParseToken verifies tokenString and returns the client id it was issued to
func (uc *AuthUsecase) ParseToken(tokenString string) (string, error) {
	if !uc.Enabled() {
		return "", ErrMissingSecret
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return uc.jwtSecret, nil
	}, jwt.WithTimeFunc(uc.now))
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}
