package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"mercado_erp/internal/domain/entities"
	mock_interfaces "mercado_erp/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type insightFixture struct {
	uc      *InsightUseCase
	gateway *mock_interfaces.MockIInsightGateway
}

func newInsightFixture(t *testing.T, withGateway bool) insightFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	recRepo := mock_interfaces.NewMockIFinancialRecordRepository(ctrl)
	supRepo := mock_interfaces.NewMockISupplierRepository(ctrl)
	tripRepo := mock_interfaces.NewMockITripRepository(ctrl)

	var records []entities.FinancialRecord
	for i := 1; i <= 12; i++ {
		records = append(records, entities.FinancialRecord{ID: fmt.Sprintf("rec-%02d", i), Amount: 1000, Status: entities.FinancialStatusPending})
	}
	recRepo.EXPECT().List(gomock.Any()).Return(records, nil).AnyTimes()
	supRepo.EXPECT().List(gomock.Any()).Return([]entities.Supplier{{ID: "1", Name: "Agro Verde Ltda"}}, nil).AnyTimes()
	tripRepo.EXPECT().List(gomock.Any()).Return([]entities.Trip{{ID: "t1", Code: "V-2023-088"}}, nil).AnyTimes()

	f := insightFixture{}
	var gateway *mock_interfaces.MockIInsightGateway
	if withGateway {
		gateway = mock_interfaces.NewMockIInsightGateway(ctrl)
		f.uc = NewInsightUseCase(recRepo, supRepo, tripRepo, gateway)
	} else {
		f.uc = NewInsightUseCase(recRepo, supRepo, tripRepo, nil)
	}
	f.gateway = gateway
	return f
}

func TestInsightUseCase_Analyze(t *testing.T) {
	ctx := context.Background()

	t.Run("samples the first ten records", func(t *testing.T) {
		f := newInsightFixture(t, true)
		f.gateway.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "Mercado do Bairro")
			assert.Contains(t, prompt, "rec-10")
			assert.NotContains(t, prompt, "rec-11")
			assert.Contains(t, prompt, "V-2023-088")
			assert.Contains(t, prompt, "Totais: 12 títulos")
			return "  Pague os boletos vencidos primeiro. ", nil
		})

		answer, err := f.uc.Analyze(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Pague os boletos vencidos primeiro.", answer)
	})

	t.Run("empty answer", func(t *testing.T) {
		f := newInsightFixture(t, true)
		f.gateway.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("   ", nil)

		answer, err := f.uc.Analyze(ctx)
		require.NoError(t, err)
		assert.Equal(t, AnalyzeEmptyFallback, answer)
	})

	t.Run("gateway error", func(t *testing.T) {
		f := newInsightFixture(t, true)
		f.gateway.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("timeout"))

		answer, err := f.uc.Analyze(ctx)
		require.NoError(t, err)
		assert.Equal(t, AnalyzeErrorFallback, answer)
	})

	t.Run("no credential", func(t *testing.T) {
		f := newInsightFixture(t, false)
		answer, err := f.uc.Analyze(ctx)
		require.NoError(t, err)
		assert.Equal(t, AnalyzeErrorFallback, answer)
	})
}

func TestInsightUseCase_Ask(t *testing.T) {
	ctx := context.Background()

	t.Run("sends the question with all data", func(t *testing.T) {
		f := newInsightFixture(t, true)
		f.gateway.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "Quanto devo ao Agro Verde?")
			assert.Contains(t, prompt, "rec-12")
			assert.True(t, strings.Contains(prompt, "DADOS DO SISTEMA"))
			return "R$ 0,00", nil
		})

		answer, err := f.uc.Ask(ctx, "Quanto devo ao Agro Verde?")
		require.NoError(t, err)
		assert.Equal(t, "R$ 0,00", answer)
	})

	t.Run("fallbacks", func(t *testing.T) {
		f := newInsightFixture(t, true)
		gomock.InOrder(
			f.gateway.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", nil),
			f.gateway.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("quota")),
		)

		answer, err := f.uc.Ask(ctx, "Status?")
		require.NoError(t, err)
		assert.Equal(t, AskEmptyFallback, answer)

		answer, err = f.uc.Ask(ctx, "Status?")
		require.NoError(t, err)
		assert.Equal(t, AskErrorFallback, answer)
	})

	t.Run("empty question", func(t *testing.T) {
		f := newInsightFixture(t, true)
		_, err := f.uc.Ask(ctx, "  ")
		assert.ErrorIs(t, err, ErrEmptyQuestion)
	})
}
