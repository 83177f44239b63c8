package entities

// InvoiceStatus is the only state machine in purchasing:
// OPEN -> CONFIRMED -> OPEN.
type InvoiceStatus string

const (
	InvoiceStatusOpen      InvoiceStatus = "OPEN"
	InvoiceStatusConfirmed InvoiceStatus = "CONFIRMED"
)

func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusOpen || s == InvoiceStatusConfirmed
}

// InvoiceItem is carried with the invoice but not used by any flow.
type InvoiceItem struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
	TotalWeight float64 `json:"total_weight"`
}

// Invoice is a purchase document (nota fiscal) issued by a supplier.
//
// TotalValue is kept as typed by the operator; it is parsed into an amount
// only when the invoice is saved.
type Invoice struct {
	ID            string        `json:"id"`
	Number        string        `json:"number"`
	SupplierID    string        `json:"supplier_id"`
	IssueDate     string        `json:"issue_date"`
	DueDate       string        `json:"due_date,omitempty"`
	TotalValue    string        `json:"total_value"`
	Items         []InvoiceItem `json:"items"`
	TripID        string        `json:"trip_id,omitempty"`
	Status        InvoiceStatus `json:"status"`
	AttachmentURL string        `json:"attachment_url,omitempty"`
}

func (i Invoice) IsConfirmed() bool {
	return i.Status == InvoiceStatusConfirmed
}
