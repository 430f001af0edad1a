package token

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/moneywise/finance-tracker/internal/domain/error"
	"github.com/moneywise/finance-tracker/internal/domain/port/core"
)

// accessClaims is the JWT payload for access tokens. The subject carries
// the login email; id and role ride along as custom claims.
type accessClaims struct {
	UserID uint64 `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTSigner implements core.TokenSigner with HMAC-SHA256 signed JWTs
type JWTSigner struct {
	key          []byte
	ttl          time.Duration
	timeProvider core.TimeProvider
}

// NewJWTSigner creates a signer from a base64-encoded secret
func NewJWTSigner(encodedSecret string, ttl time.Duration, timeProvider core.TimeProvider) (*JWTSigner, error) {
	key, err := base64.StdEncoding.DecodeString(encodedSecret)
	if err != nil {
		return nil, fmt.Errorf("decoding token secret: %w", err)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("token secret is empty")
	}

	return &JWTSigner{
		key:          key,
		ttl:          ttl,
		timeProvider: timeProvider,
	}, nil
}

// Generate produces a signed access token for the given identity
func (s *JWTSigner) Generate(userID uint64, email string, role string) (string, error) {
	now := s.timeProvider.Now()

	claims := accessClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("signing access token: %w", err)
	}
	return signed, nil
}

// Subject verifies the token signature and returns its subject claim
func (s *JWTSigner) Subject(tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// Validate verifies signature and expiry and confirms the subject matches
func (s *JWTSigner) Validate(tokenString string, subject string) (*core.AccessTokenClaims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Subject != subject {
		return nil, errs.ErrInvalidAccessToken
	}

	return &core.AccessTokenClaims{
		Subject: claims.Subject,
		UserID:  claims.UserID,
		Role:    claims.Role,
	}, nil
}

func (s *JWTSigner) parse(tokenString string) (*accessClaims, error) {
	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.key, nil
	}, jwt.WithTimeFunc(s.timeProvider.Now))
	if err != nil || !parsed.Valid {
		return nil, errs.ErrInvalidAccessToken
	}
	return claims, nil
}
