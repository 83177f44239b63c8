package interfaces

import (
	"context"
	"mercado_erp/internal/domain/entities"
)

type ISupplierRepository interface {
	List(ctx context.Context) ([]entities.Supplier, error)
	GetByID(ctx context.Context, id string) (entities.Supplier, error)
	Upsert(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
}
