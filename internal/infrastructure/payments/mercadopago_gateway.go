package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"mercado_erp/internal/logger"
	"mercado_erp/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidPaymentAmount = errors.New("payment amount must be positive")

type MercadoPagoOptions struct {
	AccessToken string
	// PayerEmail is sent as payer.email; Mercado Pago requires it for PIX.
	PayerEmail string
	Mock       bool
}

// MercadoPagoGateway settles payable titles through Mercado Pago.
// In mock mode no request leaves the process and every payment is approved.
type MercadoPagoGateway struct {
	client     payment.Client
	payerEmail string
	mockMode   bool
	log        zerolog.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(opts MercadoPagoOptions) (*MercadoPagoGateway, error) {
	log := logger.WithComponent("payments")
	if opts.Mock {
		log.Info().Msg("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, payerEmail: opts.PayerEmail, log: log}, nil
	}

	if opts.AccessToken == "" {
		log.Error().Msg("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(opts.AccessToken)
	if err != nil {
		log.Error().Err(err).Msg("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	log.Info().Msg("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), payerEmail: opts.PayerEmail, log: log}, nil
}

// SettlePix creates a PIX payment for one title.
func (g *MercadoPagoGateway) SettlePix(ctx context.Context, p interfaces.PixPayment) (interfaces.PaymentReceipt, error) {
	if g == nil {
		return interfaces.PaymentReceipt{}, ErrMercadoPagoGatewayNotConfigured
	}
	if p.Amount <= 0 {
		return interfaces.PaymentReceipt{}, fmt.Errorf("%w: %v", ErrInvalidPaymentAmount, p.Amount)
	}

	if g.mockMode {
		return g.mockSettle(p), nil
	}
	if g.client == nil {
		g.log.Error().Msg("[payment][gateway] gateway not configured")
		return interfaces.PaymentReceipt{}, ErrMercadoPagoGatewayNotConfigured
	}

	req := pixRequest(p, g.payerEmail)

	g.log.Info().Str("record_id", p.RecordID).Msg("[payment][gateway] settle start")
	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Error().Err(err).Str("record_id", p.RecordID).Msg("[payment][gateway] sdk create failed")
		return interfaces.PaymentReceipt{}, fmt.Errorf("mercado pago create payment: %w", err)
	}

	receipt := interfaces.PaymentReceipt{ProviderPaymentID: fmt.Sprintf("%d", resp.ID), Status: resp.Status}
	g.log.Info().
		Str("record_id", p.RecordID).
		Str("provider_payment_id", receipt.ProviderPaymentID).
		Str("provider_status", receipt.Status).
		Msg("[payment][gateway] settle success")
	return receipt, nil
}

func (g *MercadoPagoGateway) mockSettle(p interfaces.PixPayment) interfaces.PaymentReceipt {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	g.log.Info().
		Str("record_id", p.RecordID).
		Str("provider_payment_id", id).
		Msg("[payment][gateway] mock settle approved")
	return interfaces.PaymentReceipt{ProviderPaymentID: id, Status: "approved"}
}

// pixRequest is the Mercado Pago create-payment request for a title. The
// payer is only sent when an e-mail is configured.
func pixRequest(p interfaces.PixPayment, payerEmail string) payment.Request {
	req := payment.Request{
		TransactionAmount: p.Amount,
		Description:       p.Description,
		PaymentMethodID:   "pix",
		ExternalReference: p.RecordID,
	}
	if payerEmail != "" {
		req.Payer = &payment.PayerRequest{Email: payerEmail}
	}
	return req
}
