package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/logger"
	"mercado_erp/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidSupplier         = errors.New("invalid supplier")
	ErrInvalidSupplierCategory = errors.New("invalid supplier category")
)

type ISupplierUseCase interface {
	List(ctx context.Context) ([]entities.Supplier, error)
	Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
}

type SupplierUseCase struct {
	repo  interfaces.ISupplierRepository
	newID func() string
	log   zerolog.Logger
}

var _ ISupplierUseCase = (*SupplierUseCase)(nil)

func NewSupplierUseCase(repo interfaces.ISupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, newID: uuid.NewString, log: logger.WithComponent("supplier")}
}

func (u *SupplierUseCase) List(ctx context.Context) ([]entities.Supplier, error) {
	return u.repo.List(ctx)
}

func (u *SupplierUseCase) Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.CNPJ = strings.TrimSpace(s.CNPJ)
	s.City = strings.TrimSpace(s.City)
	if s.Name == "" || s.CNPJ == "" || s.City == "" {
		return entities.Supplier{}, fmt.Errorf("%w: name, cnpj and city are required", ErrInvalidSupplier)
	}
	if s.Category == "" {
		s.Category = entities.SupplierCategoryOutros
	}
	if !s.Category.Valid() {
		return entities.Supplier{}, fmt.Errorf("%w: %q", ErrInvalidSupplierCategory, s.Category)
	}

	s.ID = u.newID()
	saved, err := u.repo.Upsert(ctx, s)
	if err != nil {
		return entities.Supplier{}, err
	}
	u.log.Info().Str("supplier_id", saved.ID).Msg("[supplier][usecase] created")
	return saved, nil
}
