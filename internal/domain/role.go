package domain

import (
	"errors"
	"fmt"
)

// Role é o papel de um membro da equipe. Conjunto fechado.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleMember   Role = "member"
	RoleCustomer Role = "kunde"
)

var ErrInvalidRole = errors.New("papel de usuário inválido")

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleCustomer:
		return true
	}
	return false
}

func ParseRole(value string) (Role, error) {
	role := Role(value)
	if !role.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, value)
	}
	return role, nil
}
