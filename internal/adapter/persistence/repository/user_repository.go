package repository

import (
	"context"
	"strings"

	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/usecase/interfaces"
)

type UserRepository struct {
	c *collection[entities.User]
}

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func NewUserRepository(ctx context.Context, store interfaces.ISnapshotStore, seed []entities.User) (*UserRepository, error) {
	c, err := openCollection(ctx, store, KeyUsers, seed, func(u entities.User) string { return u.ID })
	if err != nil {
		return nil, err
	}
	return &UserRepository{c: c}, nil
}

func (r *UserRepository) List(_ context.Context) ([]entities.User, error) {
	return r.c.all(), nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (entities.User, error) {
	u, _ := r.c.find(func(u entities.User) bool { return u.ID == id })
	return u, nil
}

// GetByUsername matches case-insensitively.
func (r *UserRepository) GetByUsername(_ context.Context, username string) (entities.User, error) {
	u, _ := r.c.find(func(u entities.User) bool { return strings.EqualFold(u.Username, username) })
	return u, nil
}

func (r *UserRepository) Upsert(ctx context.Context, u entities.User) (entities.User, error) {
	r.c.upsert(ctx, u)
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.remove(ctx, func(u entities.User) bool { return u.ID == id }) > 0, nil
}
