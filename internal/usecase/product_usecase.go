package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidProduct     = errors.New("invalid product")
	ErrInvalidProductUnit = errors.New("invalid product unit")
)

type IProductUseCase interface {
	List(ctx context.Context) ([]entities.Product, error)
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
}

type ProductUseCase struct {
	repo  interfaces.IProductRepository
	newID func() string
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, newID: uuid.NewString}
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

func (u *ProductUseCase) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
	p.Description = strings.TrimSpace(p.Description)
	if p.Code == "" || p.Description == "" {
		return entities.Product{}, fmt.Errorf("%w: code and description are required", ErrInvalidProduct)
	}
	if p.WeightPerUnit <= 0 {
		return entities.Product{}, fmt.Errorf("%w: weight_per_unit must be positive", ErrInvalidProduct)
	}
	if p.Unit == "" {
		p.Unit = entities.ProductUnitKG
	}
	if !p.Unit.Valid() {
		return entities.Product{}, fmt.Errorf("%w: %q", ErrInvalidProductUnit, p.Unit)
	}

	p.ID = u.newID()
	return u.repo.Upsert(ctx, p)
}
