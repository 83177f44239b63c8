package repository

import (
	"context"

	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/usecase/interfaces"
)

// InvoiceRepository keeps invoices under the erp_invoices snapshot.
type InvoiceRepository struct {
	c *collection[entities.Invoice]
}

var _ interfaces.IInvoiceRepository = (*InvoiceRepository)(nil)

func NewInvoiceRepository(ctx context.Context, store interfaces.ISnapshotStore, seed []entities.Invoice) (*InvoiceRepository, error) {
	c, err := openCollection(ctx, store, KeyInvoices, seed, func(i entities.Invoice) string { return i.ID })
	if err != nil {
		return nil, err
	}
	return &InvoiceRepository{c: c}, nil
}

func (r *InvoiceRepository) List(_ context.Context) ([]entities.Invoice, error) {
	return r.c.all(), nil
}

func (r *InvoiceRepository) GetByID(_ context.Context, id string) (entities.Invoice, error) {
	inv, _ := r.c.find(func(i entities.Invoice) bool { return i.ID == id })
	return inv, nil
}

func (r *InvoiceRepository) Upsert(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	r.c.upsert(ctx, inv)
	return inv, nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.remove(ctx, func(i entities.Invoice) bool { return i.ID == id }) > 0, nil
}
