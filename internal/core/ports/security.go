package ports

import (
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"
)

// PasswordHasher hashes and verifies credentials. Aggregates only ever hold
// the hash; plaintext passwords stop at the command layer.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare checks a plaintext password against a stored hash.
	// Returns an unauthorized error on mismatch.
	Compare(hash, password string) error
}

// TokenClaims is the identity a bearer token carries.
type TokenClaims struct {
	UserID kernel.UUID
	Role   user.Role
}

// TokenIssuer produces and verifies the opaque bearer credentials used by
// the HTTP surface.
type TokenIssuer interface {
	// Issue signs a token embedding the subject and role.
	Issue(claims TokenClaims) (string, error)

	// Verify checks the signature and expiry of a token and extracts its
	// claims. Returns an unauthorized error for any invalid token.
	Verify(token string) (TokenClaims, error)
}
