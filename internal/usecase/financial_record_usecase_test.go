package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mercado_erp/internal/adapter/persistence/repository"
	"mercado_erp/internal/adapter/persistence/snapshot"
	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/usecase/interfaces"
	mock_interfaces "mercado_erp/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fixedNow() time.Time { return time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC) }

func TestFinancialRecordUseCase_List(t *testing.T) {
	ctx := context.Background()
	records := []entities.FinancialRecord{
		{ID: "f1", Status: entities.FinancialStatusPending},
		{ID: "f2", Status: entities.FinancialStatusPaid},
		{ID: "f3", Status: entities.FinancialStatusOverdue},
	}

	tests := []struct {
		filter  string
		wantIDs []string
		wantErr error
	}{
		{"", []string{"f1", "f2", "f3"}, nil},
		{"ALL", []string{"f1", "f2", "f3"}, nil},
		{"paid", []string{"f2"}, nil},
		{"OVERDUE", []string{"f3"}, nil},
		{"LATE", nil, ErrInvalidFinancialStatus},
	}

	for _, tt := range tests {
		t.Run("filter "+tt.filter, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIFinancialRecordRepository(ctrl)
			repo.EXPECT().List(gomock.Any()).Return(records, nil)

			got, err := NewFinancialRecordUseCase(repo, nil).List(ctx, tt.filter)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			var ids []string
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFinancialRecordUseCase_PayAndReopen(t *testing.T) {
	ctx := context.Background()

	t.Run("pay defaults to today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFinancialRecordRepository(ctrl)
		uc := NewFinancialRecordUseCase(repo, nil)
		uc.now = fixedNow

		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.FinancialRecord{ID: "f1", Status: entities.FinancialStatusPending, PaymentMethod: entities.PaymentMethodBoleto}, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.FinancialRecord) (entities.FinancialRecord, error) {
			return r, nil
		})

		rec, err := uc.Pay(ctx, "f1", PayInput{})
		require.NoError(t, err)
		assert.Equal(t, entities.FinancialStatusPaid, rec.Status)
		assert.Equal(t, "2024-03-10", rec.PaymentDate)
	})

	t.Run("pay twice is allowed and keeps the latest date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFinancialRecordRepository(ctrl)
		uc := NewFinancialRecordUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "f2").Return(entities.FinancialRecord{ID: "f2", Status: entities.FinancialStatusPaid, PaymentDate: "2024-01-01"}, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.FinancialRecord) (entities.FinancialRecord, error) {
			return r, nil
		})

		rec, err := uc.Pay(ctx, "f2", PayInput{PaymentDate: "2024-02-01"})
		require.NoError(t, err)
		assert.Equal(t, "2024-02-01", rec.PaymentDate)
	})

	t.Run("invalid method", func(t *testing.T) {
		uc := NewFinancialRecordUseCase(nil, nil)
		_, err := uc.Pay(ctx, "f1", PayInput{PaymentMethod: "CHEQUE"})
		assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
	})

	t.Run("invalid date", func(t *testing.T) {
		uc := NewFinancialRecordUseCase(nil, nil)
		_, err := uc.Pay(ctx, "f1", PayInput{PaymentDate: "10/03/2024"})
		assert.ErrorIs(t, err, ErrInvalidPaymentDate)
	})

	t.Run("unknown record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFinancialRecordRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.FinancialRecord{}, nil).Times(2)
		uc := NewFinancialRecordUseCase(repo, nil)

		_, err := uc.Pay(ctx, "nope", PayInput{})
		assert.ErrorIs(t, err, ErrFinancialRecordNotFound)
		_, err = uc.Reopen(ctx, "nope")
		assert.ErrorIs(t, err, ErrFinancialRecordNotFound)
	})

	t.Run("reopen clears the date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFinancialRecordRepository(ctrl)
		uc := NewFinancialRecordUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "f2").Return(entities.FinancialRecord{ID: "f2", Status: entities.FinancialStatusPaid, PaymentDate: "2023-10-20"}, nil)
		repo.EXPECT().Upsert(gomock.Any(), entities.FinancialRecord{ID: "f2", Status: entities.FinancialStatusPending}).Return(entities.FinancialRecord{ID: "f2", Status: entities.FinancialStatusPending}, nil)

		rec, err := uc.Reopen(ctx, "f2")
		require.NoError(t, err)
		assert.Equal(t, entities.FinancialStatusPending, rec.Status)
		assert.Empty(t, rec.PaymentDate)
	})
}

func TestFinancialRecordUseCase_PayThroughGateway(t *testing.T) {
	ctx := context.Background()
	pix := entities.FinancialRecord{ID: "f2", DocumentNumber: "PIX-9988", Amount: 1200.5, Status: entities.FinancialStatusPending, PaymentMethod: entities.PaymentMethodPix}

	t.Run("pix stores provider id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFinancialRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewFinancialRecordUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "f2").Return(pix, nil)
		gateway.EXPECT().SettlePix(gomock.Any(), interfaces.PixPayment{RecordID: "f2", Description: "Pagamento PIX-9988", Amount: 1200.5}).
			Return(interfaces.PaymentReceipt{ProviderPaymentID: "mp-123", Status: "approved"}, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.FinancialRecord) (entities.FinancialRecord, error) {
			return r, nil
		})

		rec, err := uc.Pay(ctx, "f2", PayInput{PaymentDate: "2024-03-10"})
		require.NoError(t, err)
		assert.Equal(t, "mp-123", rec.ProviderPaymentID)
		assert.Equal(t, entities.FinancialStatusPaid, rec.Status)
	})

	t.Run("provider failure leaves record untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFinancialRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewFinancialRecordUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "f2").Return(pix, nil)
		gateway.EXPECT().SettlePix(gomock.Any(), gomock.Any()).Return(interfaces.PaymentReceipt{}, errors.New("unauthorized"))

		_, err := uc.Pay(ctx, "f2", PayInput{})
		assert.ErrorIs(t, err, ErrPaymentGatewayFailed)
	})

	t.Run("boleto skips the provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFinancialRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewFinancialRecordUseCase(repo, gateway)

		boleto := pix
		boleto.PaymentMethod = entities.PaymentMethodBoleto
		repo.EXPECT().GetByID(gomock.Any(), "f2").Return(boleto, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.FinancialRecord) (entities.FinancialRecord, error) {
			return r, nil
		})

		rec, err := uc.Pay(ctx, "f2", PayInput{})
		require.NoError(t, err)
		assert.Empty(t, rec.ProviderPaymentID)
	})
}

func TestFinancialRecordUseCase_PayBoletoTitleByPix(t *testing.T) {
	ctx := context.Background()
	boleto := entities.FinancialRecord{ID: "r1", InvoiceID: "x1", DocumentNumber: "NF-100", Amount: 100, Status: entities.FinancialStatusPending, PaymentMethod: entities.PaymentMethodBoleto}

	t.Run("approved charge pays the title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFinancialRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewFinancialRecordUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "r1").Return(boleto, nil)
		gateway.EXPECT().SettlePix(gomock.Any(), interfaces.PixPayment{RecordID: "r1", Description: "Pagamento NF-100", Amount: 100}).
			Return(interfaces.PaymentReceipt{ProviderPaymentID: "mp-7", Status: "approved"}, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.FinancialRecord) (entities.FinancialRecord, error) {
			return r, nil
		})

		rec, err := uc.Pay(ctx, "r1", PayInput{PaymentDate: "2024-03-10", PaymentMethod: "pix"})
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentMethodPix, rec.PaymentMethod)
		assert.Equal(t, entities.FinancialStatusPaid, rec.Status)
		assert.Equal(t, "2024-03-10", rec.PaymentDate)
		assert.Equal(t, "mp-7", rec.ProviderPaymentID)
	})

	t.Run("pending charge keeps the title open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFinancialRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewFinancialRecordUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "r1").Return(boleto, nil)
		gateway.EXPECT().SettlePix(gomock.Any(), gomock.Any()).Return(interfaces.PaymentReceipt{ProviderPaymentID: "mp-8", Status: "pending"}, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.FinancialRecord) (entities.FinancialRecord, error) {
			return r, nil
		})

		rec, err := uc.Pay(ctx, "r1", PayInput{PaymentMethod: entities.PaymentMethodPix})
		require.NoError(t, err)
		assert.Equal(t, entities.FinancialStatusPending, rec.Status)
		assert.Empty(t, rec.PaymentDate)
		assert.Equal(t, "mp-8", rec.ProviderPaymentID)
	})

	t.Run("rejected charge leaves the title untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFinancialRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewFinancialRecordUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "r1").Return(boleto, nil)
		gateway.EXPECT().SettlePix(gomock.Any(), gomock.Any()).Return(interfaces.PaymentReceipt{ProviderPaymentID: "mp-9", Status: "rejected"}, nil)

		_, err := uc.Pay(ctx, "r1", PayInput{PaymentMethod: entities.PaymentMethodPix})
		assert.ErrorIs(t, err, ErrPaymentGatewayFailed)
	})
}

// holdingRecordRepo blocks the first GetByID until release is closed.
type holdingRecordRepo struct {
	interfaces.IFinancialRecordRepository
	once    sync.Once
	held    chan struct{}
	release chan struct{}
}

func newHoldingRecordRepo(inner interfaces.IFinancialRecordRepository) *holdingRecordRepo {
	return &holdingRecordRepo{IFinancialRecordRepository: inner, held: make(chan struct{}), release: make(chan struct{})}
}

func (r *holdingRecordRepo) GetByID(ctx context.Context, id string) (entities.FinancialRecord, error) {
	rec, err := r.IFinancialRecordRepository.GetByID(ctx, id)
	r.once.Do(func() {
		close(r.held)
		<-r.release
	})
	return rec, err
}

func newLedger(t *testing.T) (*InvoiceUseCase, *FinancialRecordUseCase, *repository.FinancialRecordRepository, *holdingRecordRepo) {
	t.Helper()
	ctx := context.Background()
	store := snapshot.NewMemoryStore()

	invRepo, err := repository.NewInvoiceRepository(ctx, store, []entities.Invoice{x1("100.00", entities.InvoiceStatusConfirmed)})
	require.NoError(t, err)
	recRepo, err := repository.NewFinancialRecordRepository(ctx, store, []entities.FinancialRecord{
		{ID: "r1", InvoiceID: "x1", SupplierID: "1", DocumentNumber: "NF-100", DueDate: "2024-03-20", Amount: 100, Status: entities.FinancialStatusPending, PaymentMethod: entities.PaymentMethodBoleto},
	})
	require.NoError(t, err)

	holding := newHoldingRecordRepo(recRepo)
	invoices, records := NewLedgerUseCases(invRepo, holding, nil)
	return invoices, records, recRepo, holding
}

func TestLedgerUseCases_PayAndInvoiceChangesDoNotInterleave(t *testing.T) {
	ctx := context.Background()

	t.Run("revert waits for a payment in flight", func(t *testing.T) {
		invoices, records, recRepo, holding := newLedger(t)

		payDone := make(chan error, 1)
		go func() {
			_, err := records.Pay(ctx, "r1", PayInput{PaymentDate: "2024-03-10"})
			payDone <- err
		}()
		<-holding.held

		revertDone := make(chan error, 1)
		go func() {
			_, err := invoices.Revert(ctx, "x1")
			revertDone <- err
		}()

		select {
		case err := <-revertDone:
			t.Fatalf("revert finished while a payment was in flight: %v", err)
		case <-time.After(50 * time.Millisecond):
		}

		close(holding.release)
		require.NoError(t, <-payDone)
		require.NoError(t, <-revertDone)

		inv, err := invoices.GetByID(ctx, "x1")
		require.NoError(t, err)
		assert.Equal(t, entities.InvoiceStatusOpen, inv.Status)

		left, err := recRepo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, left)

		violations, err := invoices.CheckConsistency(ctx)
		require.NoError(t, err)
		assert.Empty(t, violations)

		_, err = records.Pay(ctx, "r1", PayInput{})
		assert.ErrorIs(t, err, ErrFinancialRecordNotFound)
	})

	t.Run("save after a payment keeps it paid", func(t *testing.T) {
		invoices, records, recRepo, holding := newLedger(t)

		payDone := make(chan error, 1)
		go func() {
			_, err := records.Pay(ctx, "r1", PayInput{PaymentDate: "2024-03-10"})
			payDone <- err
		}()
		<-holding.held

		saveDone := make(chan error, 1)
		go func() {
			_, err := invoices.Save(ctx, x1("150.00", entities.InvoiceStatusConfirmed))
			saveDone <- err
		}()

		select {
		case err := <-saveDone:
			t.Fatalf("save finished while a payment was in flight: %v", err)
		case <-time.After(50 * time.Millisecond):
		}

		close(holding.release)
		require.NoError(t, <-payDone)
		require.NoError(t, <-saveDone)

		recs, err := recRepo.ListByInvoiceID(ctx, "x1")
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "r1", recs[0].ID)
		assert.Equal(t, entities.FinancialStatusPaid, recs[0].Status)
		assert.Equal(t, "2024-03-10", recs[0].PaymentDate)
		assert.Equal(t, 150.0, recs[0].Amount)
	})
}
