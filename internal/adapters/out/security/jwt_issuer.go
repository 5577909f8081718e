package security

import (
	"errors"
	"fmt"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrSecretIsRequired = errors.New("jwt secret is required")
	ErrInvalidToken     = errors.New("invalid or expired token")
)

const issuerName = "eats"

// Claims identify the caller a token was issued for. The user id travels in
// the subject.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 tokens.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

var _ ports.TokenIssuer = (*JWTIssuer)(nil)

func (i *JWTIssuer) Issue(caller user.Caller) (string, error) {
	if err := caller.Validate(); err != nil {
		return "", err
	}

	now := i.now()
	claims := Claims{
		Role: caller.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuerName,
			Subject:   caller.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

func (i *JWTIssuer) Parse(token string) (user.Caller, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuerName),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !parsed.Valid {
		return user.Caller{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id, err := kernel.ParseID(claims.Subject)
	if err != nil {
		return user.Caller{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return user.Caller{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return user.NewCaller(id, role)
}
