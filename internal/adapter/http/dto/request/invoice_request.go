package request

import (
	"strings"

	"mercado_erp/internal/domain/entities"
)

type InvoiceItemRequest struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
	TotalWeight float64 `json:"total_weight"`
}

// InvoiceRequest is the body of POST /invoices and PUT /invoices/:id.
// total_value is text as typed ("1.234,56" is not accepted, "1234,56" is).
type InvoiceRequest struct {
	Number        string               `json:"number"`
	SupplierID    string               `json:"supplier_id"`
	IssueDate     string               `json:"issue_date"`
	DueDate       string               `json:"due_date"`
	TotalValue    string               `json:"total_value"`
	Items         []InvoiceItemRequest `json:"items"`
	TripID        string               `json:"trip_id"`
	Status        string               `json:"status"`
	AttachmentURL string               `json:"attachment_url"`
}

func (r InvoiceRequest) ToEntity(id string) entities.Invoice {
	items := make([]entities.InvoiceItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.InvoiceItem(it))
	}
	return entities.Invoice{
		ID:            strings.TrimSpace(id),
		Number:        r.Number,
		SupplierID:    r.SupplierID,
		IssueDate:     r.IssueDate,
		DueDate:       r.DueDate,
		TotalValue:    r.TotalValue,
		Items:         items,
		TripID:        r.TripID,
		Status:        entities.InvoiceStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
		AttachmentURL: strings.TrimSpace(r.AttachmentURL),
	}
}
