// Package reconciliation keeps the financial-record collection in step with
// invoice status.
//
// Invariant: a FinancialRecord exists for an invoice id if and only if that
// invoice exists and is CONFIRMED. PlanFor computes the single change that
// restores the invariant after an invoice is saved; Check finds every place
// where a collection pair breaks it.
package reconciliation

import (
	"errors"
	"fmt"
	"strings"

	"mercado_erp/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("invalid invoice amount")
	ErrUnknownStatus = errors.New("unknown invoice status")
)

type Kind int

const (
	KindNone Kind = iota
	KindCreate
	KindUpdate
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindCreate:
		return "create"
	case KindUpdate:
		return "update"
	case KindDelete:
		return "delete"
	default:
		return "none"
	}
}

// Plan is the change to apply to the financial-record collection.
// For KindDelete, Record is the record to remove; every other record sharing
// its invoice id must go as well.
type Plan struct {
	Kind   Kind
	Record entities.FinancialRecord
}

// ParseAmount reads a decimal typed by an operator. A single comma is taken
// as the decimal separator ("150,75"). Empty, malformed and negative values
// are rejected.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", ErrInvalidAmount)
	}
	if strings.Contains(s, ",") {
		if strings.Contains(s, ".") || strings.Count(s, ",") > 1 {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
		}
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative value %q", ErrInvalidAmount, raw)
	}
	return d.Round(2), nil
}

// PlanFor returns the change that makes the record collection agree with inv.
//
// existing is the record currently linked to inv.ID, or nil. A confirmed
// invoice updates the existing record in place (id, status, payment method
// and payment date survive) or creates a PENDING/BOLETO record with a fresh
// id. An open invoice deletes the existing record. today fills the due date
// when the invoice has none.
func PlanFor(inv entities.Invoice, existing *entities.FinancialRecord, newID func() string, today string) (Plan, error) {
	switch inv.Status {
	case entities.InvoiceStatusConfirmed:
		amount, err := ParseAmount(inv.TotalValue)
		if err != nil {
			return Plan{}, err
		}
		dueDate := inv.DueDate
		if dueDate == "" {
			dueDate = today
		}
		rec := entities.FinancialRecord{
			InvoiceID:      inv.ID,
			SupplierID:     inv.SupplierID,
			DocumentNumber: inv.Number,
			DueDate:        dueDate,
			Amount:         amount.InexactFloat64(),
		}
		if existing != nil {
			rec.ID = existing.ID
			rec.Status = existing.Status
			rec.PaymentMethod = existing.PaymentMethod
			rec.PaymentDate = existing.PaymentDate
			rec.ProviderPaymentID = existing.ProviderPaymentID
			return Plan{Kind: KindUpdate, Record: rec}, nil
		}
		rec.ID = newID()
		rec.Status = entities.FinancialStatusPending
		rec.PaymentMethod = entities.PaymentMethodBoleto
		return Plan{Kind: KindCreate, Record: rec}, nil

	case entities.InvoiceStatusOpen:
		if existing == nil {
			return Plan{Kind: KindNone}, nil
		}
		return Plan{Kind: KindDelete, Record: *existing}, nil

	default:
		return Plan{}, fmt.Errorf("%w: %q", ErrUnknownStatus, inv.Status)
	}
}
