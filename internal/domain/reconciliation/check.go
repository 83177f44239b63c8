package reconciliation

import "mercado_erp/internal/domain/entities"

type ViolationKind string

const (
	// ViolationMissingRecord: a confirmed invoice has no record.
	ViolationMissingRecord ViolationKind = "MISSING_RECORD"
	// ViolationOrphanRecord: a record points at an open or deleted invoice.
	ViolationOrphanRecord ViolationKind = "ORPHAN_RECORD"
	// ViolationDuplicateRecord: a confirmed invoice has more than one record.
	ViolationDuplicateRecord ViolationKind = "DUPLICATE_RECORD"
)

type Violation struct {
	Kind      ViolationKind `json:"kind"`
	InvoiceID string        `json:"invoice_id"`
	RecordID  string        `json:"record_id,omitempty"`
}

// Check lists every invariant violation between the two collections.
// Record-level violations come first in record order, then missing records
// in invoice order. For duplicates the first record is the one kept.
func Check(invoices []entities.Invoice, records []entities.FinancialRecord) []Violation {
	byID := make(map[string]entities.Invoice, len(invoices))
	for _, inv := range invoices {
		byID[inv.ID] = inv
	}

	var out []Violation
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		inv, ok := byID[r.InvoiceID]
		if !ok || !inv.IsConfirmed() {
			out = append(out, Violation{Kind: ViolationOrphanRecord, InvoiceID: r.InvoiceID, RecordID: r.ID})
			continue
		}
		if seen[r.InvoiceID] {
			out = append(out, Violation{Kind: ViolationDuplicateRecord, InvoiceID: r.InvoiceID, RecordID: r.ID})
			continue
		}
		seen[r.InvoiceID] = true
	}

	for _, inv := range invoices {
		if inv.IsConfirmed() && !seen[inv.ID] {
			out = append(out, Violation{Kind: ViolationMissingRecord, InvoiceID: inv.ID})
		}
	}
	return out
}
