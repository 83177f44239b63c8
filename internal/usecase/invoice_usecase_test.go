package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"mercado_erp/internal/adapter/persistence/repository"
	"mercado_erp/internal/adapter/persistence/snapshot"
	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/domain/reconciliation"
	mock_interfaces "mercado_erp/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type invoiceFixture struct {
	uc       *InvoiceUseCase
	invoices *repository.InvoiceRepository
	records  *repository.FinancialRecordRepository
}

func newInvoiceFixture(t *testing.T, invoices []entities.Invoice, records []entities.FinancialRecord) invoiceFixture {
	t.Helper()
	ctx := context.Background()
	store := snapshot.NewMemoryStore()

	invRepo, err := repository.NewInvoiceRepository(ctx, store, invoices)
	require.NoError(t, err)
	recRepo, err := repository.NewFinancialRecordRepository(ctx, store, records)
	require.NoError(t, err)

	uc := NewInvoiceUseCase(invRepo, recRepo)
	seq := 0
	uc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	uc.now = func() time.Time { return time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC) }
	return invoiceFixture{uc: uc, invoices: invRepo, records: recRepo}
}

func (f invoiceFixture) recordsFor(t *testing.T, invoiceID string) []entities.FinancialRecord {
	t.Helper()
	recs, err := f.records.ListByInvoiceID(context.Background(), invoiceID)
	require.NoError(t, err)
	return recs
}

func x1(total string, status entities.InvoiceStatus) entities.Invoice {
	return entities.Invoice{
		ID:         "x1",
		Number:     "NF-100",
		SupplierID: "1",
		IssueDate:  "2024-03-01",
		DueDate:    "2024-03-20",
		TotalValue: total,
		Status:     status,
	}
}

func TestInvoiceUseCase_Save_Reconciles(t *testing.T) {
	ctx := context.Background()

	t.Run("confirm creates one pending boleto record", func(t *testing.T) {
		f := newInvoiceFixture(t, nil, nil)
		_, err := f.uc.Save(ctx, x1("100.00", entities.InvoiceStatusOpen))
		require.NoError(t, err)
		assert.Empty(t, f.recordsFor(t, "x1"))

		_, err = f.uc.Save(ctx, x1("100.00", entities.InvoiceStatusConfirmed))
		require.NoError(t, err)

		recs := f.recordsFor(t, "x1")
		require.Len(t, recs, 1)
		assert.Equal(t, entities.FinancialStatusPending, recs[0].Status)
		assert.Equal(t, entities.PaymentMethodBoleto, recs[0].PaymentMethod)
		assert.Equal(t, 100.0, recs[0].Amount)
		assert.Equal(t, "NF-100", recs[0].DocumentNumber)
		assert.Equal(t, "2024-03-20", recs[0].DueDate)
	})

	t.Run("reconfirm with new total updates in place", func(t *testing.T) {
		f := newInvoiceFixture(t, nil, nil)
		_, err := f.uc.Save(ctx, x1("100.00", entities.InvoiceStatusConfirmed))
		require.NoError(t, err)
		first := f.recordsFor(t, "x1")[0]

		first.PaymentMethod = entities.PaymentMethodPix
		_, err = f.records.Upsert(ctx, first)
		require.NoError(t, err)

		_, err = f.uc.Save(ctx, x1("150.00", entities.InvoiceStatusConfirmed))
		require.NoError(t, err)

		recs := f.recordsFor(t, "x1")
		require.Len(t, recs, 1)
		assert.Equal(t, first.ID, recs[0].ID)
		assert.Equal(t, 150.0, recs[0].Amount)
		assert.Equal(t, entities.FinancialStatusPending, recs[0].Status)
		assert.Equal(t, entities.PaymentMethodPix, recs[0].PaymentMethod)
	})

	t.Run("back to open removes the record", func(t *testing.T) {
		f := newInvoiceFixture(t, nil, nil)
		_, err := f.uc.Save(ctx, x1("100.00", entities.InvoiceStatusConfirmed))
		require.NoError(t, err)

		_, err = f.uc.Save(ctx, x1("100.00", entities.InvoiceStatusOpen))
		require.NoError(t, err)
		assert.Empty(t, f.recordsFor(t, "x1"))
	})

	t.Run("comma decimal separator", func(t *testing.T) {
		f := newInvoiceFixture(t, nil, nil)
		_, err := f.uc.Save(ctx, x1("1234,56", entities.InvoiceStatusConfirmed))
		require.NoError(t, err)
		assert.Equal(t, 1234.56, f.recordsFor(t, "x1")[0].Amount)
	})

	t.Run("new invoice gets an id", func(t *testing.T) {
		f := newInvoiceFixture(t, nil, nil)
		inv := x1("10", entities.InvoiceStatusConfirmed)
		inv.ID = ""
		saved, err := f.uc.Save(ctx, inv)
		require.NoError(t, err)
		assert.Equal(t, "id-1", saved.ID)
		assert.NotNil(t, saved.Items)

		recs := f.recordsFor(t, "id-1")
		require.Len(t, recs, 1)
		assert.Equal(t, "id-2", recs[0].ID)
	})

	t.Run("duplicates collapse to the first record", func(t *testing.T) {
		f := newInvoiceFixture(t, nil, []entities.FinancialRecord{
			{ID: "a", InvoiceID: "x1", Status: entities.FinancialStatusPaid},
			{ID: "b", InvoiceID: "x1", Status: entities.FinancialStatusPending},
		})
		_, err := f.uc.Save(ctx, x1("80", entities.InvoiceStatusConfirmed))
		require.NoError(t, err)

		recs := f.recordsFor(t, "x1")
		require.Len(t, recs, 1)
		assert.Equal(t, "a", recs[0].ID)
		assert.Equal(t, entities.FinancialStatusPaid, recs[0].Status)
	})
}

func TestInvoiceUseCase_Save_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*entities.Invoice)
		wantErr error
	}{
		{"missing number", func(i *entities.Invoice) { i.Number = " " }, ErrInvalidInvoice},
		{"missing due date", func(i *entities.Invoice) { i.DueDate = "" }, ErrInvalidInvoice},
		{"missing total", func(i *entities.Invoice) { i.TotalValue = "" }, ErrInvalidInvoice},
		{"unknown status", func(i *entities.Invoice) { i.Status = "PAID" }, ErrInvalidInvoiceStatus},
		{"malformed total", func(i *entities.Invoice) { i.TotalValue = "12a" }, ErrInvalidInvoiceValue},
		{"negative total", func(i *entities.Invoice) { i.TotalValue = "-5" }, ErrInvalidInvoiceValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInvoiceFixture(t, nil, nil)
			inv := x1("100", entities.InvoiceStatusConfirmed)
			tt.mutate(&inv)

			_, err := f.uc.Save(ctx, inv)
			assert.ErrorIs(t, err, tt.wantErr)

			list, _ := f.invoices.List(ctx)
			assert.Empty(t, list)
			recs, _ := f.records.List(ctx)
			assert.Empty(t, recs)
		})
	}

	t.Run("empty status defaults to open", func(t *testing.T) {
		f := newInvoiceFixture(t, nil, nil)
		saved, err := f.uc.Save(ctx, x1("100", ""))
		require.NoError(t, err)
		assert.Equal(t, entities.InvoiceStatusOpen, saved.Status)
	})
}

func TestInvoiceUseCase_Revert(t *testing.T) {
	ctx := context.Background()

	t.Run("removes even a paid record", func(t *testing.T) {
		f := newInvoiceFixture(t,
			[]entities.Invoice{x1("100", entities.InvoiceStatusConfirmed)},
			[]entities.FinancialRecord{{ID: "f1", InvoiceID: "x1", Status: entities.FinancialStatusPaid, PaymentDate: "2024-03-02"}},
		)

		inv, err := f.uc.Revert(ctx, " x1 ")
		require.NoError(t, err)
		assert.Equal(t, entities.InvoiceStatusOpen, inv.Status)
		assert.Empty(t, f.recordsFor(t, "x1"))

		stored, _ := f.invoices.GetByID(ctx, "x1")
		assert.Equal(t, entities.InvoiceStatusOpen, stored.Status)
	})

	t.Run("unknown invoice still purges records", func(t *testing.T) {
		f := newInvoiceFixture(t, nil, []entities.FinancialRecord{{ID: "f9", InvoiceID: "ghost"}})

		_, err := f.uc.Revert(ctx, "ghost")
		assert.ErrorIs(t, err, ErrInvoiceNotFound)
		assert.Empty(t, f.recordsFor(t, "ghost"))
	})

	t.Run("empty id", func(t *testing.T) {
		f := newInvoiceFixture(t, nil, nil)
		_, err := f.uc.Revert(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidInvoiceID)
	})
}

func TestInvoiceUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	other := entities.Invoice{ID: "x2", Number: "NF-2", SupplierID: "2", IssueDate: "2024-03-01", DueDate: "2024-03-05", TotalValue: "5", Status: entities.InvoiceStatusConfirmed}

	f := newInvoiceFixture(t,
		[]entities.Invoice{x1("100", entities.InvoiceStatusConfirmed), other},
		[]entities.FinancialRecord{{ID: "f1", InvoiceID: "x1"}, {ID: "f2", InvoiceID: "x2"}},
	)

	require.NoError(t, f.uc.Delete(ctx, "x1"))

	_, err := f.uc.GetByID(ctx, "x1")
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
	assert.Empty(t, f.recordsFor(t, "x1"))
	assert.Len(t, f.recordsFor(t, "x2"), 1)

	assert.ErrorIs(t, f.uc.Delete(ctx, "x1"), ErrInvoiceNotFound)
	assert.ErrorIs(t, f.uc.Delete(ctx, " "), ErrInvalidInvoiceID)
}

func TestInvoiceUseCase_Consistency(t *testing.T) {
	ctx := context.Background()
	open := x1("10", entities.InvoiceStatusOpen)
	open.ID = "open-1"
	bad := x1("abc", entities.InvoiceStatusConfirmed)
	bad.ID = "bad-1"

	f := newInvoiceFixture(t,
		[]entities.Invoice{x1("100", entities.InvoiceStatusConfirmed), open, bad},
		[]entities.FinancialRecord{
			{ID: "orphan", InvoiceID: "open-1"},
			{ID: "gone", InvoiceID: "deleted"},
		},
	)

	violations, err := f.uc.CheckConsistency(ctx)
	require.NoError(t, err)
	assert.Equal(t, []reconciliation.Violation{
		{Kind: reconciliation.ViolationOrphanRecord, InvoiceID: "open-1", RecordID: "orphan"},
		{Kind: reconciliation.ViolationOrphanRecord, InvoiceID: "deleted", RecordID: "gone"},
		{Kind: reconciliation.ViolationMissingRecord, InvoiceID: "x1"},
		{Kind: reconciliation.ViolationMissingRecord, InvoiceID: "bad-1"},
	}, violations)

	repaired, err := f.uc.RepairConsistency(ctx)
	require.NoError(t, err)
	assert.Equal(t, []reconciliation.Violation{
		{Kind: reconciliation.ViolationOrphanRecord, InvoiceID: "open-1", RecordID: "orphan"},
		{Kind: reconciliation.ViolationOrphanRecord, InvoiceID: "deleted", RecordID: "gone"},
		{Kind: reconciliation.ViolationMissingRecord, InvoiceID: "x1"},
	}, repaired)

	recs, _ := f.records.List(ctx)
	require.Len(t, recs, 1)
	assert.Equal(t, "x1", recs[0].InvoiceID)
	assert.Equal(t, 100.0, recs[0].Amount)

	left, err := f.uc.CheckConsistency(ctx)
	require.NoError(t, err)
	assert.Equal(t, []reconciliation.Violation{{Kind: reconciliation.ViolationMissingRecord, InvoiceID: "bad-1"}}, left)
}

func TestInvoiceUseCase_ListKeepsCreationOrder(t *testing.T) {
	ctx := context.Background()
	f := newInvoiceFixture(t, nil, nil)

	first := x1("10", entities.InvoiceStatusOpen)
	first.ID = ""
	second := first
	second.Number = "NF-101"

	a, err := f.uc.Save(ctx, first)
	require.NoError(t, err)
	b, err := f.uc.Save(ctx, second)
	require.NoError(t, err)
	_, err = f.uc.Save(ctx, a)
	require.NoError(t, err)

	list, err := f.uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []string{a.ID, b.ID}, []string{list[0].ID, list[1].ID})
}

func TestInvoiceUseCase_RepositoryErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("record lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		recRepo := mock_interfaces.NewMockIFinancialRecordRepository(ctrl)
		uc := NewInvoiceUseCase(invRepo, recRepo)

		recRepo.EXPECT().ListByInvoiceID(gomock.Any(), "x1").Return(nil, errors.New("db"))

		_, err := uc.Save(ctx, x1("100", entities.InvoiceStatusConfirmed))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("invoice upsert fails before records change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		recRepo := mock_interfaces.NewMockIFinancialRecordRepository(ctrl)
		uc := NewInvoiceUseCase(invRepo, recRepo)

		recRepo.EXPECT().ListByInvoiceID(gomock.Any(), "x1").Return([]entities.FinancialRecord{}, nil)
		invRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, errors.New("write"))

		_, err := uc.Save(ctx, x1("100", entities.InvoiceStatusConfirmed))
		if err == nil || err.Error() != "write" {
			t.Fatalf("expected write error, got %v", err)
		}
	})

	t.Run("get by id maps empty to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(invRepo, nil)

		invRepo.EXPECT().GetByID(gomock.Any(), "x9").Return(entities.Invoice{}, nil)

		_, err := uc.GetByID(ctx, " x9 ")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}
