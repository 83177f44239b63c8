package interfaces

import (
	"context"
	"mercado_erp/internal/domain/entities"
)

type IProductRepository interface {
	List(ctx context.Context) ([]entities.Product, error)
	Upsert(ctx context.Context, p entities.Product) (entities.Product, error)
}
