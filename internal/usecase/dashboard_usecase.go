package usecase

import (
	"context"
	"sort"
	"strings"

	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const (
	topSuppliersLimit  = 5
	attentionLimit     = 10
	unknownSupplierTag = "Outros"
)

type IDashboardUseCase interface {
	Summarize(ctx context.Context, startDate, endDate string) (entities.DashboardSummary, error)
}

type DashboardUseCase struct {
	recordRepo   interfaces.IFinancialRecordRepository
	supplierRepo interfaces.ISupplierRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(recordRepo interfaces.IFinancialRecordRepository, supplierRepo interfaces.ISupplierRepository) *DashboardUseCase {
	return &DashboardUseCase{recordRepo: recordRepo, supplierRepo: supplierRepo}
}

// Summarize aggregates the records whose due date falls in [startDate,
// endDate]. The window applies only when both bounds are given.
func (u *DashboardUseCase) Summarize(ctx context.Context, startDate, endDate string) (entities.DashboardSummary, error) {
	startDate = strings.TrimSpace(startDate)
	endDate = strings.TrimSpace(endDate)

	records, err := u.recordRepo.List(ctx)
	if err != nil {
		return entities.DashboardSummary{}, err
	}
	suppliers, err := u.supplierRepo.List(ctx)
	if err != nil {
		return entities.DashboardSummary{}, err
	}

	if startDate != "" && endDate != "" {
		filtered := make([]entities.FinancialRecord, 0, len(records))
		for _, r := range records {
			if r.DueDate >= startDate && r.DueDate <= endDate {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	supplierNames := make(map[string]string, len(suppliers))
	for _, s := range suppliers {
		supplierNames[s.ID] = s.Name
	}

	var total, paid, pending, overdue decimal.Decimal
	bySupplier := map[string]decimal.Decimal{}
	byDate := map[string]decimal.Decimal{}
	for _, r := range records {
		amount := decimal.NewFromFloat(r.Amount)
		total = total.Add(amount)
		switch r.Status {
		case entities.FinancialStatusPaid:
			paid = paid.Add(amount)
		case entities.FinancialStatusOverdue:
			overdue = overdue.Add(amount)
		default:
			pending = pending.Add(amount)
		}

		name, ok := supplierNames[r.SupplierID]
		if !ok || name == "" {
			name = unknownSupplierTag
		}
		bySupplier[name] = bySupplier[name].Add(amount)
		byDate[r.DueDate] = byDate[r.DueDate].Add(amount)
	}

	return entities.DashboardSummary{
		StartDate:       startDate,
		EndDate:         endDate,
		Total:           total.InexactFloat64(),
		Paid:            paid.InexactFloat64(),
		Pending:         pending.InexactFloat64(),
		Overdue:         overdue.InexactFloat64(),
		PaidPercent:     percentOf(paid, total),
		OverduePercent:  percentOf(overdue, total),
		StatusBreakdown: statusBreakdown(paid, pending, overdue),
		TopSuppliers:    topSuppliers(bySupplier),
		Timeline:        timeline(byDate),
		Attention:       attention(records),
	}, nil
}

func percentOf(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	return part.Div(total).Mul(decimal.NewFromInt(100)).Round(1).InexactFloat64()
}

func statusBreakdown(paid, pending, overdue decimal.Decimal) []entities.StatusSlice {
	out := make([]entities.StatusSlice, 0, 3)
	for _, s := range []struct {
		status entities.FinancialStatus
		value  decimal.Decimal
	}{
		{entities.FinancialStatusPaid, paid},
		{entities.FinancialStatusPending, pending},
		{entities.FinancialStatusOverdue, overdue},
	} {
		if s.value.IsPositive() {
			out = append(out, entities.StatusSlice{Status: s.status, Value: s.value.InexactFloat64()})
		}
	}
	return out
}

// topSuppliers orders by value descending, then by name for stable output.
func topSuppliers(bySupplier map[string]decimal.Decimal) []entities.SupplierExpense {
	out := make([]entities.SupplierExpense, 0, len(bySupplier))
	for name, v := range bySupplier {
		out = append(out, entities.SupplierExpense{Name: name, Value: v.InexactFloat64()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > topSuppliersLimit {
		out = out[:topSuppliersLimit]
	}
	return out
}

func timeline(byDate map[string]decimal.Decimal) []entities.TimelinePoint {
	out := make([]entities.TimelinePoint, 0, len(byDate))
	for date, v := range byDate {
		out = append(out, entities.TimelinePoint{Date: date, Amount: v.InexactFloat64()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func attention(records []entities.FinancialRecord) []entities.FinancialRecord {
	out := make([]entities.FinancialRecord, 0, attentionLimit)
	for _, r := range records {
		if r.Status != entities.FinancialStatusPaid {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate < out[j].DueDate })
	if len(out) > attentionLimit {
		out = out[:attentionLimit]
	}
	return out
}
