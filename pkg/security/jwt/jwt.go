package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers bad signatures, expired tokens and wrong issuers.
var ErrInvalidToken = errors.New("invalid state token")

// StateSigner выпускает и проверяет короткоживущие state-токены OAuth (HS256).
type StateSigner struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewStateSigner(secret, issuer string, ttl time.Duration) *StateSigner {
	return &StateSigner{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

// Claims несут одноразовый nonce в jti.
type Claims struct {
	jwt.RegisteredClaims
}

func (s *StateSigner) Sign(nonce string) (string, error) {
	now := s.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			ID:        nonce,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify returns the nonce carried by a valid token.
func (s *StateSigner) Verify(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.ID == "" {
		return "", fmt.Errorf("%w: missing nonce", ErrInvalidToken)
	}
	return claims.ID, nil
}

// TTL is how long a signed state stays valid.
func (s *StateSigner) TTL() time.Duration { return s.ttl }
