package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/domain/reconciliation"
	"mercado_erp/internal/logger"
	"mercado_erp/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvalidInvoice       = errors.New("invalid invoice")
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")
	ErrInvalidInvoiceValue  = errors.New("invalid invoice total value")
)

// IInvoiceUseCase owns the invoice collection and keeps the financial
// records in step with it: a record exists for an invoice if and only if
// the invoice exists and is CONFIRMED.
type IInvoiceUseCase interface {
	List(ctx context.Context) ([]entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	Save(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	Revert(ctx context.Context, id string) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
	CheckConsistency(ctx context.Context) ([]reconciliation.Violation, error)
	RepairConsistency(ctx context.Context) ([]reconciliation.Violation, error)
}

type InvoiceUseCase struct {
	// mu serialises every write touching both collections. It is shared
	// with FinancialRecordUseCase when built through NewLedgerUseCases.
	mu          *sync.Mutex
	invoiceRepo interfaces.IInvoiceRepository
	recordRepo  interfaces.IFinancialRecordRepository
	newID       func() string
	now         func() time.Time
	log         zerolog.Logger
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(invoiceRepo interfaces.IInvoiceRepository, recordRepo interfaces.IFinancialRecordRepository) *InvoiceUseCase {
	return &InvoiceUseCase{
		mu:          &sync.Mutex{},
		invoiceRepo: invoiceRepo,
		recordRepo:  recordRepo,
		newID:       uuid.NewString,
		now:         time.Now,
		log:         logger.WithComponent("invoice"),
	}
}

// NewLedgerUseCases builds the invoice and finance use cases over one write
// lock, so a payment can never rewrite a record an invoice change removed.
func NewLedgerUseCases(invoiceRepo interfaces.IInvoiceRepository, recordRepo interfaces.IFinancialRecordRepository, gateway interfaces.IPaymentGateway) (*InvoiceUseCase, *FinancialRecordUseCase) {
	invoices := NewInvoiceUseCase(invoiceRepo, recordRepo)
	records := NewFinancialRecordUseCase(recordRepo, gateway)
	records.mu = invoices.mu
	return invoices, records
}

func (u *InvoiceUseCase) List(ctx context.Context) ([]entities.Invoice, error) {
	return u.invoiceRepo.List(ctx)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

// Save creates (empty id) or replaces an invoice, then creates, updates or
// deletes its financial record according to the resulting status.
func (u *InvoiceUseCase) Save(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	inv, err := normalizeInvoice(inv)
	if err != nil {
		u.log.Warn().Err(err).Str("invoice_id", inv.ID).Msg("[invoice][usecase] save rejected")
		return entities.Invoice{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if inv.ID == "" {
		inv.ID = u.newID()
	}

	existing, extras, err := u.linkedRecords(ctx, inv.ID)
	if err != nil {
		return entities.Invoice{}, err
	}

	plan, err := reconciliation.PlanFor(inv, existing, u.newID, u.today())
	if err != nil {
		if errors.Is(err, reconciliation.ErrInvalidAmount) {
			return entities.Invoice{}, fmt.Errorf("%w: %v", ErrInvalidInvoiceValue, err)
		}
		return entities.Invoice{}, fmt.Errorf("%w: %v", ErrInvalidInvoiceStatus, err)
	}

	saved, err := u.invoiceRepo.Upsert(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	if err := u.apply(ctx, plan, extras); err != nil {
		return entities.Invoice{}, err
	}

	u.log.Info().
		Str("invoice_id", saved.ID).
		Str("status", string(saved.Status)).
		Str("record_change", plan.Kind.String()).
		Msg("[invoice][usecase] saved")
	return saved, nil
}

// Revert sets the invoice back to OPEN and removes its record whatever the
// record status.
func (u *InvoiceUseCase) Revert(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	removed, err := u.recordRepo.DeleteByInvoiceID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	inv, err := u.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		u.log.Warn().Str("invoice_id", id).Int("records_removed", removed).Msg("[invoice][usecase] revert on unknown invoice")
		return entities.Invoice{}, ErrInvoiceNotFound
	}

	inv.Status = entities.InvoiceStatusOpen
	saved, err := u.invoiceRepo.Upsert(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}

	u.log.Info().Str("invoice_id", id).Int("records_removed", removed).Msg("[invoice][usecase] reverted")
	return saved, nil
}

func (u *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInvoiceID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	removed, err := u.recordRepo.DeleteByInvoiceID(ctx, id)
	if err != nil {
		return err
	}
	deleted, err := u.invoiceRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrInvoiceNotFound
	}

	u.log.Info().Str("invoice_id", id).Int("records_removed", removed).Msg("[invoice][usecase] deleted")
	return nil
}

func (u *InvoiceUseCase) CheckConsistency(ctx context.Context) ([]reconciliation.Violation, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.check(ctx)
}

// RepairConsistency removes orphan and duplicate records and creates the
// missing ones. It returns the violations it repaired; a missing record whose
// invoice amount cannot be parsed is logged and left for CheckConsistency.
func (u *InvoiceUseCase) RepairConsistency(ctx context.Context) ([]reconciliation.Violation, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	violations, err := u.check(ctx)
	if err != nil {
		return nil, err
	}

	repaired := make([]reconciliation.Violation, 0, len(violations))
	for _, v := range violations {
		switch v.Kind {
		case reconciliation.ViolationOrphanRecord, reconciliation.ViolationDuplicateRecord:
			if _, err := u.recordRepo.Delete(ctx, v.RecordID); err != nil {
				return nil, err
			}
		case reconciliation.ViolationMissingRecord:
			inv, err := u.invoiceRepo.GetByID(ctx, v.InvoiceID)
			if err != nil {
				return nil, err
			}
			plan, err := reconciliation.PlanFor(inv, nil, u.newID, u.today())
			if err != nil {
				u.log.Error().Err(err).Str("invoice_id", v.InvoiceID).Msg("[invoice][usecase] cannot rebuild record")
				continue
			}
			if err := u.apply(ctx, plan, nil); err != nil {
				return nil, err
			}
		}
		repaired = append(repaired, v)
		u.log.Info().Str("kind", string(v.Kind)).Str("invoice_id", v.InvoiceID).Str("record_id", v.RecordID).Msg("[invoice][usecase] repaired")
	}
	return repaired, nil
}

func (u *InvoiceUseCase) check(ctx context.Context) ([]reconciliation.Violation, error) {
	invoices, err := u.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	records, err := u.recordRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return reconciliation.Check(invoices, records), nil
}

// linkedRecords returns the record kept for invoiceID and any extra records
// sharing that id.
func (u *InvoiceUseCase) linkedRecords(ctx context.Context, invoiceID string) (*entities.FinancialRecord, []entities.FinancialRecord, error) {
	records, err := u.recordRepo.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, nil
	}
	first := records[0]
	return &first, records[1:], nil
}

func (u *InvoiceUseCase) apply(ctx context.Context, plan reconciliation.Plan, extras []entities.FinancialRecord) error {
	switch plan.Kind {
	case reconciliation.KindCreate, reconciliation.KindUpdate:
		if _, err := u.recordRepo.Upsert(ctx, plan.Record); err != nil {
			return err
		}
		for _, r := range extras {
			if _, err := u.recordRepo.Delete(ctx, r.ID); err != nil {
				return err
			}
		}
	case reconciliation.KindDelete:
		if _, err := u.recordRepo.DeleteByInvoiceID(ctx, plan.Record.InvoiceID); err != nil {
			return err
		}
	}
	return nil
}

func (u *InvoiceUseCase) today() string {
	return u.now().Format(dateLayout)
}

func normalizeInvoice(inv entities.Invoice) (entities.Invoice, error) {
	inv.ID = strings.TrimSpace(inv.ID)
	inv.Number = strings.TrimSpace(inv.Number)
	inv.SupplierID = strings.TrimSpace(inv.SupplierID)
	inv.IssueDate = strings.TrimSpace(inv.IssueDate)
	inv.DueDate = strings.TrimSpace(inv.DueDate)
	inv.TotalValue = strings.TrimSpace(inv.TotalValue)
	inv.TripID = strings.TrimSpace(inv.TripID)

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"number", inv.Number},
		{"supplier_id", inv.SupplierID},
		{"issue_date", inv.IssueDate},
		{"due_date", inv.DueDate},
		{"total_value", inv.TotalValue},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return inv, fmt.Errorf("%w: missing %s", ErrInvalidInvoice, strings.Join(missing, ", "))
	}

	if inv.Status == "" {
		inv.Status = entities.InvoiceStatusOpen
	}
	if !inv.Status.Valid() {
		return inv, fmt.Errorf("%w: %q", ErrInvalidInvoiceStatus, inv.Status)
	}
	if _, err := reconciliation.ParseAmount(inv.TotalValue); err != nil {
		return inv, fmt.Errorf("%w: %v", ErrInvalidInvoiceValue, err)
	}
	if inv.Items == nil {
		inv.Items = []entities.InvoiceItem{}
	}
	return inv, nil
}
