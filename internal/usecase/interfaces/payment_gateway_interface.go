package interfaces

import "context"

// PixPayment is a payable title sent to the payment provider.
type PixPayment struct {
	RecordID    string
	Description string
	Amount      float64
}

// PaymentReceipt is what finance keeps from the provider answer.
type PaymentReceipt struct {
	ProviderPaymentID string
	Status            string
}

// IPaymentGateway settles PIX titles with an external provider.
type IPaymentGateway interface {
	SettlePix(ctx context.Context, p PixPayment) (PaymentReceipt, error)
}
