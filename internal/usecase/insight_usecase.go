package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/logger"
	"mercado_erp/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Answers shown when the AI collaborator gives nothing usable.
const (
	AnalyzeEmptyFallback = "Nenhum insight disponível."
	AnalyzeErrorFallback = "Não foi possível gerar insights de IA no momento."
	AskEmptyFallback     = "Não consegui formular uma resposta."
	AskErrorFallback     = "Erro ao consultar a IA. Tente novamente."
)

const (
	analyzeRecordSample   = 10
	analyzeSupplierSample = 5
	analyzeTripSample     = 5
)

var ErrEmptyQuestion = errors.New("question is required")

// IInsightUseCase never fails because of the AI collaborator: every
// collaborator problem becomes a fixed fallback answer.
type IInsightUseCase interface {
	Analyze(ctx context.Context) (string, error)
	Ask(ctx context.Context, question string) (string, error)
}

type InsightUseCase struct {
	recordRepo   interfaces.IFinancialRecordRepository
	supplierRepo interfaces.ISupplierRepository
	tripRepo     interfaces.ITripRepository
	gateway      interfaces.IInsightGateway
	printer      *message.Printer
	log          zerolog.Logger
}

var _ IInsightUseCase = (*InsightUseCase)(nil)

// NewInsightUseCase accepts a nil gateway when no credential is configured.
func NewInsightUseCase(
	recordRepo interfaces.IFinancialRecordRepository,
	supplierRepo interfaces.ISupplierRepository,
	tripRepo interfaces.ITripRepository,
	gateway interfaces.IInsightGateway,
) *InsightUseCase {
	return &InsightUseCase{
		recordRepo:   recordRepo,
		supplierRepo: supplierRepo,
		tripRepo:     tripRepo,
		gateway:      gateway,
		printer:      message.NewPrinter(language.BrazilianPortuguese),
		log:          logger.WithComponent("insight"),
	}
}

func (u *InsightUseCase) Analyze(ctx context.Context) (string, error) {
	records, suppliers, trips, err := u.load(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Você é um analista financeiro para um varejo de alimentos chamado \"Mercado do Bairro\".\n")
	b.WriteString("Analise os seguintes resumos de dados JSON e forneça um breve insight estratégico (máximo de 3 frases) ")
	b.WriteString("em Português do Brasil, focando em fluxo de caixa, pagamentos atrasados e eficiência logística.\n\n")
	b.WriteString(u.totalsLine(records))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Registros Financeiros: %s\n", toJSON(head(records, analyzeRecordSample)))
	fmt.Fprintf(&b, "Fornecedores: %s\n", toJSON(head(suppliers, analyzeSupplierSample)))
	fmt.Fprintf(&b, "Viagens: %s\n", toJSON(head(trips, analyzeTripSample)))

	return u.complete(ctx, "analyze", b.String(), AnalyzeEmptyFallback, AnalyzeErrorFallback), nil
}

func (u *InsightUseCase) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	records, suppliers, trips, err := u.load(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Você é um assistente inteligente do ERP \"Mercado do Bairro\".\n")
	fmt.Fprintf(&b, "O usuário (gestor) fez a seguinte pergunta: %q\n\n", question)
	b.WriteString("Use APENAS os dados abaixo para responder. Se a resposta não estiver nos dados, diga que não sabe.\n")
	b.WriteString("Seja conciso, direto e profissional. Responda em Português do Brasil.\n\n")
	b.WriteString(u.totalsLine(records))
	b.WriteString("\nDADOS DO SISTEMA:\n")
	fmt.Fprintf(&b, "- Financeiro: %s\n", toJSON(records))
	fmt.Fprintf(&b, "- Fornecedores: %s\n", toJSON(suppliers))
	fmt.Fprintf(&b, "- Logística/Viagens: %s\n", toJSON(trips))

	return u.complete(ctx, "ask", b.String(), AskEmptyFallback, AskErrorFallback), nil
}

func (u *InsightUseCase) complete(ctx context.Context, op, prompt, emptyFallback, errorFallback string) string {
	if u.gateway == nil {
		u.log.Warn().Str("op", op).Msg("[insight][usecase] no AI credential configured")
		return errorFallback
	}

	answer, err := u.gateway.Complete(ctx, prompt)
	if err != nil {
		u.log.Error().Err(err).Str("op", op).Msg("[insight][usecase] AI request failed")
		return errorFallback
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return emptyFallback
	}
	return answer
}

func (u *InsightUseCase) load(ctx context.Context) ([]entities.FinancialRecord, []entities.Supplier, []entities.Trip, error) {
	records, err := u.recordRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	suppliers, err := u.supplierRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	trips, err := u.tripRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return records, suppliers, trips, nil
}

// totalsLine renders the payable totals with Brazilian number formatting.
func (u *InsightUseCase) totalsLine(records []entities.FinancialRecord) string {
	var paid, pending, overdue float64
	for _, r := range records {
		switch r.Status {
		case entities.FinancialStatusPaid:
			paid += r.Amount
		case entities.FinancialStatusOverdue:
			overdue += r.Amount
		default:
			pending += r.Amount
		}
	}
	return u.printer.Sprintf("Totais: %d títulos, pago R$ %.2f, pendente R$ %.2f, vencido R$ %.2f\n",
		len(records), paid, pending, overdue)
}

func head[T any](in []T, n int) []T {
	if len(in) > n {
		return in[:n]
	}
	return in
}

func toJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}
