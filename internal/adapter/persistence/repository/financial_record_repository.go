package repository

import (
	"context"

	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/usecase/interfaces"
)

// FinancialRecordRepository keeps payable titles under erp_financial.
type FinancialRecordRepository struct {
	c *collection[entities.FinancialRecord]
}

var _ interfaces.IFinancialRecordRepository = (*FinancialRecordRepository)(nil)

func NewFinancialRecordRepository(ctx context.Context, store interfaces.ISnapshotStore, seed []entities.FinancialRecord) (*FinancialRecordRepository, error) {
	c, err := openCollection(ctx, store, KeyFinancialRecords, seed, func(r entities.FinancialRecord) string { return r.ID })
	if err != nil {
		return nil, err
	}
	return &FinancialRecordRepository{c: c}, nil
}

func (r *FinancialRecordRepository) List(_ context.Context) ([]entities.FinancialRecord, error) {
	return r.c.all(), nil
}

func (r *FinancialRecordRepository) GetByID(_ context.Context, id string) (entities.FinancialRecord, error) {
	rec, _ := r.c.find(func(f entities.FinancialRecord) bool { return f.ID == id })
	return rec, nil
}

func (r *FinancialRecordRepository) ListByInvoiceID(_ context.Context, invoiceID string) ([]entities.FinancialRecord, error) {
	return r.c.filter(func(f entities.FinancialRecord) bool { return f.InvoiceID == invoiceID }), nil
}

func (r *FinancialRecordRepository) Upsert(ctx context.Context, rec entities.FinancialRecord) (entities.FinancialRecord, error) {
	r.c.upsert(ctx, rec)
	return rec, nil
}

func (r *FinancialRecordRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.remove(ctx, func(f entities.FinancialRecord) bool { return f.ID == id }) > 0, nil
}

func (r *FinancialRecordRepository) DeleteByInvoiceID(ctx context.Context, invoiceID string) (int, error) {
	return r.c.remove(ctx, func(f entities.FinancialRecord) bool { return f.InvoiceID == invoiceID }), nil
}
