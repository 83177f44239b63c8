package request

import (
	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/usecase"
)

type UserRequest struct {
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}

func (r UserRequest) ToInput() usecase.UserInput {
	roles := make([]entities.Role, 0, len(r.Roles))
	for _, role := range r.Roles {
		roles = append(roles, entities.Role(role))
	}
	return usecase.UserInput{Name: r.Name, Username: r.Username, Password: r.Password, Roles: roles}
}
