package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"mercado_erp/internal/adapter/http/handlers/mocks"
	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestFinancialRecordHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinancialRecordUseCase(ctrl)
		h := NewFinancialRecordHandler(uc)

		r := gin.New()
		r.GET("/v1/financial-records", h.ListFinancialRecords)

		uc.EXPECT().List(gomock.Any(), "LATE").Return(nil, fmt.Errorf("%w: %q", usecase.ErrInvalidFinancialStatus, "LATE"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/financial-records?status=LATE", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinancialRecordUseCase(ctrl)
		h := NewFinancialRecordHandler(uc)

		r := gin.New()
		r.GET("/v1/financial-records", h.ListFinancialRecords)

		uc.EXPECT().List(gomock.Any(), "").Return([]entities.FinancialRecord{{ID: "f1", Status: entities.FinancialStatusPending}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/financial-records", nil))

		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"id":"f1"`)) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestFinancialRecordHandler_Pay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body pays today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinancialRecordUseCase(ctrl)
		h := NewFinancialRecordHandler(uc)

		r := gin.New()
		r.POST("/v1/financial-records/:id/pay", h.PayFinancialRecord)

		uc.EXPECT().Pay(gomock.Any(), "f1", usecase.PayInput{}).Return(entities.FinancialRecord{ID: "f1", Status: entities.FinancialStatusPaid, PaymentDate: "2024-05-10"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/financial-records/f1/pay", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("explicit date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinancialRecordUseCase(ctrl)
		h := NewFinancialRecordHandler(uc)

		r := gin.New()
		r.POST("/v1/financial-records/:id/pay", h.PayFinancialRecord)

		uc.EXPECT().Pay(gomock.Any(), "f1", usecase.PayInput{PaymentDate: "2024-05-01"}).Return(entities.FinancialRecord{ID: "f1", Status: entities.FinancialStatusPaid}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/financial-records/f1/pay", bytes.NewBufferString(`{"payment_date":"2024-05-01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("pay a boleto title by pix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinancialRecordUseCase(ctrl)
		h := NewFinancialRecordHandler(uc)

		r := gin.New()
		r.POST("/v1/financial-records/:id/pay", h.PayFinancialRecord)

		uc.EXPECT().Pay(gomock.Any(), "f1", usecase.PayInput{PaymentMethod: entities.PaymentMethodPix}).
			Return(entities.FinancialRecord{ID: "f1", Status: entities.FinancialStatusPaid, PaymentMethod: entities.PaymentMethodPix, ProviderPaymentID: "mock-f1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/financial-records/f1/pay", bytes.NewBufferString(`{"payment_method":"PIX"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"provider_payment_id":"mock-f1"`)) {
			t.Fatalf("expected provider id in body, got %s", w.Body.String())
		}
	})

	t.Run("unknown payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinancialRecordUseCase(ctrl)
		h := NewFinancialRecordHandler(uc)

		r := gin.New()
		r.POST("/v1/financial-records/:id/pay", h.PayFinancialRecord)

		uc.EXPECT().Pay(gomock.Any(), "f1", usecase.PayInput{PaymentMethod: "CHEQUE"}).Return(entities.FinancialRecord{}, usecase.ErrInvalidPaymentMethod)

		req := httptest.NewRequest(http.MethodPost, "/v1/financial-records/f1/pay", bytes.NewBufferString(`{"payment_method":"CHEQUE"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinancialRecordUseCase(ctrl)
		h := NewFinancialRecordHandler(uc)

		r := gin.New()
		r.POST("/v1/financial-records/:id/pay", h.PayFinancialRecord)

		uc.EXPECT().Pay(gomock.Any(), "f2", usecase.PayInput{}).Return(entities.FinancialRecord{}, usecase.ErrPaymentGatewayFailed)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/financial-records/f2/pay", nil))

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestFinancialRecordHandler_Reopen(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIFinancialRecordUseCase(ctrl)
	h := NewFinancialRecordHandler(uc)

	r := gin.New()
	r.POST("/v1/financial-records/:id/reopen", h.ReopenFinancialRecord)

	uc.EXPECT().Reopen(gomock.Any(), "missing").Return(entities.FinancialRecord{}, usecase.ErrFinancialRecordNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/financial-records/missing/reopen", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
