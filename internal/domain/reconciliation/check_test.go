package reconciliation

import (
	"testing"

	"mercado_erp/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	invoices := []entities.Invoice{
		{ID: "inv-ok", Status: entities.InvoiceStatusConfirmed},
		{ID: "inv-open", Status: entities.InvoiceStatusOpen},
		{ID: "inv-missing", Status: entities.InvoiceStatusConfirmed},
		{ID: "inv-dup", Status: entities.InvoiceStatusConfirmed},
	}
	records := []entities.FinancialRecord{
		{ID: "f-ok", InvoiceID: "inv-ok"},
		{ID: "f-open", InvoiceID: "inv-open"},
		{ID: "f-gone", InvoiceID: "inv-deleted"},
		{ID: "f-dup-1", InvoiceID: "inv-dup"},
		{ID: "f-dup-2", InvoiceID: "inv-dup"},
	}

	got := Check(invoices, records)
	assert.Equal(t, []Violation{
		{Kind: ViolationOrphanRecord, InvoiceID: "inv-open", RecordID: "f-open"},
		{Kind: ViolationOrphanRecord, InvoiceID: "inv-deleted", RecordID: "f-gone"},
		{Kind: ViolationDuplicateRecord, InvoiceID: "inv-dup", RecordID: "f-dup-2"},
		{Kind: ViolationMissingRecord, InvoiceID: "inv-missing"},
	}, got)
}

func TestCheck_Consistent(t *testing.T) {
	invoices := []entities.Invoice{
		{ID: "a", Status: entities.InvoiceStatusConfirmed},
		{ID: "b", Status: entities.InvoiceStatusOpen},
	}
	records := []entities.FinancialRecord{{ID: "fa", InvoiceID: "a"}}
	assert.Empty(t, Check(invoices, records))
}
