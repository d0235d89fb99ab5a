package crypto

import (
	"fmt"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// JWTIssuer implements ports.TokenIssuer with HMAC-SHA256 signed tokens.
// Claims carry the subject user ID and its role; tokens expire after the
// configured lifetime.
type JWTIssuer struct {
	secret   []byte
	lifetime time.Duration
}

// NewJWTIssuer creates an issuer signing with the given secret.
func NewJWTIssuer(secret string, lifetime time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if lifetime <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("lifetime",
			fmt.Errorf("%s is not positive", lifetime))
	}

	return &JWTIssuer{secret: []byte(secret), lifetime: lifetime}, nil
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a token embedding the subject and role.
func (i *JWTIssuer) Issue(claims ports.TokenClaims) (string, error) {
	if err := claims.UserID.Validate(); err != nil {
		return "", err
	}
	if err := claims.Role.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Role: claims.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.lifetime)),
		},
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature and expiry and extracts the claims. Every
// failure mode collapses into the same unauthorized error.
func (i *JWTIssuer) Verify(token string) (ports.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{},
		func(_ *jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return ports.TokenClaims{}, errs.NewUnauthorizedError("invalid token")
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok {
		return ports.TokenClaims{}, errs.NewUnauthorizedError("invalid token")
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return ports.TokenClaims{}, errs.NewUnauthorizedError("invalid token subject")
	}
	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return ports.TokenClaims{}, errs.NewUnauthorizedError("invalid token role")
	}

	return ports.TokenClaims{UserID: userID, Role: role}, nil
}
