package response

import "mercado_erp/internal/domain/entities"

type InvoiceItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
	TotalWeight float64 `json:"total_weight"`
}

type InvoiceResponse struct {
	ID            string                `json:"id"`
	Number        string                `json:"number"`
	SupplierID    string                `json:"supplier_id"`
	IssueDate     string                `json:"issue_date"`
	DueDate       string                `json:"due_date"`
	TotalValue    string                `json:"total_value"`
	Items         []InvoiceItemResponse `json:"items"`
	TripID        string                `json:"trip_id,omitempty"`
	Status        string                `json:"status"`
	AttachmentURL string                `json:"attachment_url,omitempty"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, InvoiceItemResponse(it))
	}
	return InvoiceResponse{
		ID:            inv.ID,
		Number:        inv.Number,
		SupplierID:    inv.SupplierID,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		TotalValue:    inv.TotalValue,
		Items:         items,
		TripID:        inv.TripID,
		Status:        string(inv.Status),
		AttachmentURL: inv.AttachmentURL,
	}
}

func FromInvoices(list []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, FromInvoice(inv))
	}
	return out
}
