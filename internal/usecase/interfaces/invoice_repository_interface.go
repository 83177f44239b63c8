package interfaces

import (
	"context"
	"mercado_erp/internal/domain/entities"
)

// IInvoiceRepository abstracts the invoice collection.
//
// GetByID returns the zero value when the id is unknown. Delete reports
// whether something was removed.
type IInvoiceRepository interface {
	List(ctx context.Context) ([]entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	Upsert(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	Delete(ctx context.Context, id string) (bool, error)
}
