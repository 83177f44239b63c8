package entities

type FinancialStatus string

const (
	FinancialStatusPending FinancialStatus = "PENDING"
	FinancialStatusPaid    FinancialStatus = "PAID"
	FinancialStatusOverdue FinancialStatus = "OVERDUE"
)

func (s FinancialStatus) Valid() bool {
	switch s {
	case FinancialStatusPending, FinancialStatusPaid, FinancialStatusOverdue:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodBoleto   PaymentMethod = "BOLETO"
	PaymentMethodPix      PaymentMethod = "PIX"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
	PaymentMethodCash     PaymentMethod = "CASH"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodBoleto, PaymentMethodPix, PaymentMethodTransfer, PaymentMethodCash:
		return true
	}
	return false
}

// FinancialRecord is a payable title derived from a CONFIRMED invoice.
//
// Its existence mirrors the invoice status: exactly one record per confirmed
// invoice, none otherwise. ProviderPaymentID is set only when the payment
// went through the payment provider.
type FinancialRecord struct {
	ID                string          `json:"id"`
	InvoiceID         string          `json:"invoice_id"`
	SupplierID        string          `json:"supplier_id"`
	DocumentNumber    string          `json:"document_number"`
	DueDate           string          `json:"due_date"`
	PaymentDate       string          `json:"payment_date,omitempty"`
	Amount            float64         `json:"amount"`
	Status            FinancialStatus `json:"status"`
	PaymentMethod     PaymentMethod   `json:"payment_method"`
	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
}
