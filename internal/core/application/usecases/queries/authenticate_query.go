package queries

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
)

var ErrAuthenticateQueryIsNotConstructed = errors.New(
	"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
)

// AuthenticateQuery carries the credentials of a login attempt. The CPF is
// normalized on construction so formatted and unformatted input match the
// same account.
type AuthenticateQuery struct { //nolint:recvcheck //using for validation
	cpf      kernel.CPF
	password string

	guard kernel.ConstructorGuard
}

// NewAuthenticateQuery creates a login query from raw credentials.
func NewAuthenticateQuery(cpf, password string) (AuthenticateQuery, error) {
	query := AuthenticateQuery{
		guard: kernel.NewConstructorGuard(),
	}

	if err := query.setCPF(cpf); err != nil {
		return AuthenticateQuery{}, err
	}
	if err := query.setPassword(password); err != nil {
		return AuthenticateQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

// CPF returns the normalized login identifier.
func (q AuthenticateQuery) CPF() kernel.CPF {
	return q.cpf
}

// Password returns the plaintext password to check.
func (q AuthenticateQuery) Password() string {
	return q.password
}

func (q *AuthenticateQuery) setCPF(raw string) error {
	cpf, err := kernel.NewCPF(raw)
	if err != nil {
		return err
	}
	q.cpf = cpf
	return nil
}

func (q *AuthenticateQuery) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	q.password = password
	return nil
}

// AuthenticateQueryResponse is the login result: a signed bearer token and
// the identity it represents.
type AuthenticateQueryResponse struct {
	Token  string
	UserID kernel.UUID
	Name   string
	Role   string
}
