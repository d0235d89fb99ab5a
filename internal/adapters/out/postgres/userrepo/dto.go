// Package userrepo persists authentication identities.
package userrepo

import (
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the database row backing a user. The CPF column holds the
// normalized digits-only form and carries the unique index that enforces
// one account per person.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	CPF          string    `gorm:"uniqueIndex;column:cpf"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		CPF:          aggregate.CPF().String(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	cpf, err := kernel.NewCPF(dto.CPF)
	if err != nil {
		return nil, err
	}
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, cpf, dto.PasswordHash, role)
}
