package repository

import (
	"context"

	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/usecase/interfaces"
)

type SupplierRepository struct {
	c *collection[entities.Supplier]
}

var _ interfaces.ISupplierRepository = (*SupplierRepository)(nil)

func NewSupplierRepository(ctx context.Context, store interfaces.ISnapshotStore, seed []entities.Supplier) (*SupplierRepository, error) {
	c, err := openCollection(ctx, store, KeySuppliers, seed, func(s entities.Supplier) string { return s.ID })
	if err != nil {
		return nil, err
	}
	return &SupplierRepository{c: c}, nil
}

func (r *SupplierRepository) List(_ context.Context) ([]entities.Supplier, error) {
	return r.c.all(), nil
}

func (r *SupplierRepository) GetByID(_ context.Context, id string) (entities.Supplier, error) {
	s, _ := r.c.find(func(s entities.Supplier) bool { return s.ID == id })
	return s, nil
}

func (r *SupplierRepository) Upsert(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	r.c.upsert(ctx, s)
	return s, nil
}
