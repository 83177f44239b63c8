package interfaces

import (
	"context"
	"mercado_erp/internal/domain/entities"
)

type IUserRepository interface {
	List(ctx context.Context) ([]entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByUsername(ctx context.Context, username string) (entities.User, error)
	Upsert(ctx context.Context, u entities.User) (entities.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}
