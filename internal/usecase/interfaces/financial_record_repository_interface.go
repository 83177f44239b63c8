package interfaces

import (
	"context"
	"mercado_erp/internal/domain/entities"
)

// IFinancialRecordRepository abstracts the accounts-payable collection.
//
// Callers outside the invoice use case must not create or delete records:
// their existence is derived from invoice status.
type IFinancialRecordRepository interface {
	List(ctx context.Context) ([]entities.FinancialRecord, error)
	GetByID(ctx context.Context, id string) (entities.FinancialRecord, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.FinancialRecord, error)
	Upsert(ctx context.Context, r entities.FinancialRecord) (entities.FinancialRecord, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteByInvoiceID(ctx context.Context, invoiceID string) (int, error)
}
