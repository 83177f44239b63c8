package repository

import (
	"context"

	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/usecase/interfaces"
)

type ProductRepository struct {
	c *collection[entities.Product]
}

var _ interfaces.IProductRepository = (*ProductRepository)(nil)

func NewProductRepository(ctx context.Context, store interfaces.ISnapshotStore, seed []entities.Product) (*ProductRepository, error) {
	c, err := openCollection(ctx, store, KeyProducts, seed, func(p entities.Product) string { return p.ID })
	if err != nil {
		return nil, err
	}
	return &ProductRepository{c: c}, nil
}

func (r *ProductRepository) List(_ context.Context) ([]entities.Product, error) {
	return r.c.all(), nil
}

func (r *ProductRepository) Upsert(ctx context.Context, p entities.Product) (entities.Product, error) {
	r.c.upsert(ctx, p)
	return p, nil
}
