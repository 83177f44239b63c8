package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/logger"
	"mercado_erp/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// StatusAll disables the status filter on List.
const StatusAll = "ALL"

var (
	ErrFinancialRecordNotFound  = errors.New("financial record not found")
	ErrInvalidFinancialRecordID = errors.New("invalid financial record id")
	ErrInvalidFinancialStatus   = errors.New("invalid financial status filter")
	ErrInvalidPaymentDate       = errors.New("invalid payment date")
	ErrInvalidPaymentMethod     = errors.New("invalid payment method")
	ErrPaymentGatewayFailed     = errors.New("payment gateway failed")
)

// IFinancialRecordUseCase covers the finance screen: listing titles and
// moving them between PAID and PENDING. Records are never created or
// removed here.
type IFinancialRecordUseCase interface {
	List(ctx context.Context, status string) ([]entities.FinancialRecord, error)
	GetByID(ctx context.Context, id string) (entities.FinancialRecord, error)
	Pay(ctx context.Context, id string, in PayInput) (entities.FinancialRecord, error)
	Reopen(ctx context.Context, id string) (entities.FinancialRecord, error)
}

// PayInput carries the optional payment details. An empty PaymentDate means
// today; an empty PaymentMethod keeps the record's method.
type PayInput struct {
	PaymentDate   string
	PaymentMethod entities.PaymentMethod
}

type FinancialRecordUseCase struct {
	mu      *sync.Mutex
	repo    interfaces.IFinancialRecordRepository
	gateway interfaces.IPaymentGateway
	now     func() time.Time
	log     zerolog.Logger
}

var _ IFinancialRecordUseCase = (*FinancialRecordUseCase)(nil)

// NewFinancialRecordUseCase wires the finance flow. gateway may be nil, in
// which case payments are only recorded locally.
func NewFinancialRecordUseCase(repo interfaces.IFinancialRecordRepository, gateway interfaces.IPaymentGateway) *FinancialRecordUseCase {
	return &FinancialRecordUseCase{
		mu:      &sync.Mutex{},
		repo:    repo,
		gateway: gateway,
		now:     time.Now,
		log:     logger.WithComponent("finance"),
	}
}

func (u *FinancialRecordUseCase) List(ctx context.Context, status string) ([]entities.FinancialRecord, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	records, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" || status == StatusAll {
		return records, nil
	}
	want := entities.FinancialStatus(status)
	if !want.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFinancialStatus, status)
	}

	out := make([]entities.FinancialRecord, 0, len(records))
	for _, r := range records {
		if r.Status == want {
			out = append(out, r)
		}
	}
	return out, nil
}

func (u *FinancialRecordUseCase) GetByID(ctx context.Context, id string) (entities.FinancialRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FinancialRecord{}, ErrInvalidFinancialRecordID
	}
	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.FinancialRecord{}, err
	}
	if rec.ID == "" {
		return entities.FinancialRecord{}, ErrFinancialRecordNotFound
	}
	return rec, nil
}

// Pay marks the record PAID. PIX titles go through the payment provider first
// when one is configured: the title is PAID only once the provider approves
// it and stays PENDING with the provider id while the charge is open. A
// provider failure or rejection leaves the record untouched.
func (u *FinancialRecordUseCase) Pay(ctx context.Context, id string, in PayInput) (entities.FinancialRecord, error) {
	paymentDate := strings.TrimSpace(in.PaymentDate)
	if paymentDate == "" {
		paymentDate = u.now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, paymentDate); err != nil {
		return entities.FinancialRecord{}, fmt.Errorf("%w: %q", ErrInvalidPaymentDate, paymentDate)
	}
	method := entities.PaymentMethod(strings.ToUpper(strings.TrimSpace(string(in.PaymentMethod))))
	if method != "" && !method.Valid() {
		return entities.FinancialRecord{}, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, in.PaymentMethod)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	rec, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.FinancialRecord{}, err
	}

	if method != "" {
		rec.PaymentMethod = method
	}

	rec.Status = entities.FinancialStatusPaid
	rec.PaymentDate = paymentDate

	if u.gateway != nil && rec.PaymentMethod == entities.PaymentMethodPix {
		receipt, err := u.settle(ctx, rec)
		if err != nil {
			return entities.FinancialRecord{}, err
		}
		rec.ProviderPaymentID = receipt.ProviderPaymentID
		if !providerApproved(receipt.Status) {
			rec.Status = entities.FinancialStatusPending
			rec.PaymentDate = ""
		}
	}

	saved, err := u.repo.Upsert(ctx, rec)
	if err != nil {
		return entities.FinancialRecord{}, err
	}

	u.log.Info().
		Str("record_id", saved.ID).
		Str("status", string(saved.Status)).
		Str("payment_date", saved.PaymentDate).
		Str("provider_payment_id", saved.ProviderPaymentID).
		Msg("[finance][usecase] paid")
	return saved, nil
}

func (u *FinancialRecordUseCase) Reopen(ctx context.Context, id string) (entities.FinancialRecord, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	rec, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.FinancialRecord{}, err
	}

	rec.Status = entities.FinancialStatusPending
	rec.PaymentDate = ""
	saved, err := u.repo.Upsert(ctx, rec)
	if err != nil {
		return entities.FinancialRecord{}, err
	}

	u.log.Info().Str("record_id", saved.ID).Msg("[finance][usecase] reopened")
	return saved, nil
}

func (u *FinancialRecordUseCase) settle(ctx context.Context, rec entities.FinancialRecord) (interfaces.PaymentReceipt, error) {
	receipt, err := u.gateway.SettlePix(ctx, interfaces.PixPayment{
		RecordID:    rec.ID,
		Description: fmt.Sprintf("Pagamento %s", rec.DocumentNumber),
		Amount:      rec.Amount,
	})
	if err != nil {
		u.log.Error().Err(err).Str("record_id", rec.ID).Msg("[finance][usecase] provider payment failed")
		return interfaces.PaymentReceipt{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
	}
	if providerRejected(receipt.Status) {
		u.log.Warn().Str("record_id", rec.ID).Str("provider_status", receipt.Status).Msg("[finance][usecase] provider rejected payment")
		return interfaces.PaymentReceipt{}, fmt.Errorf("%w: status %q", ErrPaymentGatewayFailed, receipt.Status)
	}
	u.log.Info().
		Str("record_id", rec.ID).
		Str("provider_payment_id", receipt.ProviderPaymentID).
		Str("provider_status", receipt.Status).
		Msg("[finance][usecase] provider payment created")
	return receipt, nil
}

// Mercado Pago payment statuses.
func providerApproved(status string) bool {
	switch strings.ToLower(status) {
	case "approved", "authorized":
		return true
	}
	return false
}

func providerRejected(status string) bool {
	switch strings.ToLower(status) {
	case "rejected", "cancelled", "refunded", "charged_back":
		return true
	}
	return false
}
