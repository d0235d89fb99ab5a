package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthenticateQueryHandler checks login credentials against the users table
// and issues a signed bearer token on success. Unknown CPFs and wrong
// passwords yield the same unauthorized error so a caller cannot probe
// which accounts exist.
type AuthenticateQueryHandler struct {
	db     *gorm.DB
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer
}

// NewAuthenticateQueryHandler creates a handler for login attempts.
func NewAuthenticateQueryHandler(
	db *gorm.DB,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{db: db, hasher: hasher, issuer: issuer}
}

// Handle verifies the credentials and returns a token with the account
// identity embedded in its claims.
func (h AuthenticateQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateQuery,
) (AuthenticateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateQueryResponse{}, err
	}

	var (
		id           uuid.UUID
		name         string
		passwordHash string
		roleName     string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			password_hash,
			role
		FROM users
		WHERE cpf = ?
	`, query.CPF().String()).Row()

	err := row.Scan(&id, &name, &passwordHash, &roleName)
	if errors.Is(err, sql.ErrNoRows) {
		return AuthenticateQueryResponse{}, errs.NewUnauthorizedError("invalid credentials")
	}
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}

	if err = h.hasher.Compare(passwordHash, query.Password()); err != nil {
		return AuthenticateQueryResponse{}, errs.NewUnauthorizedError("invalid credentials")
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}
	role, err := user.ParseRole(roleName)
	if err != nil {
		return AuthenticateQueryResponse{}, fmt.Errorf("stored role for user %s: %w", userID, err)
	}

	token, err := h.issuer.Issue(ports.TokenClaims{UserID: userID, Role: role})
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}

	return AuthenticateQueryResponse{
		Token:  token,
		UserID: userID,
		Name:   name,
		Role:   role.String(),
	}, nil
}
