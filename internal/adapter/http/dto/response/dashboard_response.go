package response

import "mercado_erp/internal/domain/entities"

type DashboardResponse struct {
	StartDate       string                     `json:"start_date,omitempty"`
	EndDate         string                     `json:"end_date,omitempty"`
	Totals          DashboardTotals            `json:"totals"`
	StatusBreakdown []entities.StatusSlice     `json:"status_breakdown"`
	TopSuppliers    []entities.SupplierExpense `json:"top_suppliers"`
	Timeline        []entities.TimelinePoint   `json:"timeline"`
	Attention       []FinancialRecordResponse  `json:"attention"`
}

type DashboardTotals struct {
	Total          float64 `json:"total"`
	Paid           float64 `json:"paid"`
	Pending        float64 `json:"pending"`
	Overdue        float64 `json:"overdue"`
	PaidPercent    float64 `json:"paid_percent"`
	OverduePercent float64 `json:"overdue_percent"`
}

type InsightResponse struct {
	Answer string `json:"answer"`
}

func FromDashboard(s entities.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Totals: DashboardTotals{
			Total:          s.Total,
			Paid:           s.Paid,
			Pending:        s.Pending,
			Overdue:        s.Overdue,
			PaidPercent:    s.PaidPercent,
			OverduePercent: s.OverduePercent,
		},
		StatusBreakdown: nonNil(s.StatusBreakdown),
		TopSuppliers:    nonNil(s.TopSuppliers),
		Timeline:        nonNil(s.Timeline),
		Attention:       FromFinancialRecords(s.Attention),
	}
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
