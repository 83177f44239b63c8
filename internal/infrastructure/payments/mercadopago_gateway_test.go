package payments

import (
	"context"
	"testing"

	"mercado_erp/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway(MercadoPagoOptions{})
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
}

func TestMercadoPagoGateway_MockSettle(t *testing.T) {
	g, err := NewMercadoPagoGateway(MercadoPagoOptions{Mock: true, PayerEmail: "test_user@testuser.com"})
	require.NoError(t, err)

	receipt, err := g.SettlePix(context.Background(), interfaces.PixPayment{RecordID: "f2", Description: "Pagamento PIX-9988", Amount: 1200.5})
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.ProviderPaymentID)
	assert.Equal(t, "approved", receipt.Status)
}

func TestMercadoPagoGateway_RejectsNonPositiveAmount(t *testing.T) {
	g, err := NewMercadoPagoGateway(MercadoPagoOptions{Mock: true})
	require.NoError(t, err)

	_, err = g.SettlePix(context.Background(), interfaces.PixPayment{RecordID: "f9", Amount: 0})
	assert.ErrorIs(t, err, ErrInvalidPaymentAmount)
}

func TestMercadoPagoGateway_NilReceiver(t *testing.T) {
	var g *MercadoPagoGateway
	_, err := g.SettlePix(context.Background(), interfaces.PixPayment{Amount: 1})
	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
}

func TestPixRequest(t *testing.T) {
	p := interfaces.PixPayment{RecordID: "f2", Description: "Pagamento PIX-9988", Amount: 1200.5}

	req := pixRequest(p, "finance@mercado.com")
	assert.Equal(t, "pix", req.PaymentMethodID)
	assert.Equal(t, "f2", req.ExternalReference)
	assert.Equal(t, 1200.5, req.TransactionAmount)
	assert.Equal(t, "Pagamento PIX-9988", req.Description)
	require.NotNil(t, req.Payer)
	assert.Equal(t, "finance@mercado.com", req.Payer.Email)

	assert.Nil(t, pixRequest(p, "").Payer)
}
