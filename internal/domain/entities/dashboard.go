package entities

// DashboardSummary is the accounts-payable overview for a due-date window.
type DashboardSummary struct {
	StartDate       string            `json:"start_date,omitempty"`
	EndDate         string            `json:"end_date,omitempty"`
	Total           float64           `json:"total"`
	Paid            float64           `json:"paid"`
	Pending         float64           `json:"pending"`
	Overdue         float64           `json:"overdue"`
	PaidPercent     float64           `json:"paid_percent"`
	OverduePercent  float64           `json:"overdue_percent"`
	StatusBreakdown []StatusSlice     `json:"status_breakdown"`
	TopSuppliers    []SupplierExpense `json:"top_suppliers"`
	Timeline        []TimelinePoint   `json:"timeline"`
	Attention       []FinancialRecord `json:"attention"`
}

type StatusSlice struct {
	Status FinancialStatus `json:"status"`
	Value  float64         `json:"value"`
}

type SupplierExpense struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type TimelinePoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}
