package response

import "mercado_erp/internal/domain/entities"

type FinancialRecordResponse struct {
	ID                string  `json:"id"`
	InvoiceID         string  `json:"invoice_id"`
	SupplierID        string  `json:"supplier_id"`
	DocumentNumber    string  `json:"document_number"`
	DueDate           string  `json:"due_date"`
	PaymentDate       string  `json:"payment_date,omitempty"`
	Amount            float64 `json:"amount"`
	Status            string  `json:"status"`
	PaymentMethod     string  `json:"payment_method"`
	ProviderPaymentID string  `json:"provider_payment_id,omitempty"`
}

func FromFinancialRecord(r entities.FinancialRecord) FinancialRecordResponse {
	return FinancialRecordResponse{
		ID:                r.ID,
		InvoiceID:         r.InvoiceID,
		SupplierID:        r.SupplierID,
		DocumentNumber:    r.DocumentNumber,
		DueDate:           r.DueDate,
		PaymentDate:       r.PaymentDate,
		Amount:            r.Amount,
		Status:            string(r.Status),
		PaymentMethod:     string(r.PaymentMethod),
		ProviderPaymentID: r.ProviderPaymentID,
	}
}

func FromFinancialRecords(list []entities.FinancialRecord) []FinancialRecordResponse {
	out := make([]FinancialRecordResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromFinancialRecord(r))
	}
	return out
}
