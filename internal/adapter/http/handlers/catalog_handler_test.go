package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"mercado_erp/internal/adapter/http/handlers/mocks"
	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_Suppliers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sup := mocks.NewMockISupplierUseCase(ctrl)
		h := NewCatalogHandler(sup, mocks.NewMockIProductUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/suppliers", h.ListSuppliers)

		sup.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/suppliers", nil))

		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("create bad category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sup := mocks.NewMockISupplierUseCase(ctrl)
		h := NewCatalogHandler(sup, mocks.NewMockIProductUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/suppliers", h.CreateSupplier)

		sup.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Supplier{}, usecase.ErrInvalidSupplierCategory)

		req := httptest.NewRequest(http.MethodPost, "/v1/suppliers", bytes.NewBufferString(`{"name":"X","category":"Padaria"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_CreateProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	prod := mocks.NewMockIProductUseCase(ctrl)
	h := NewCatalogHandler(mocks.NewMockISupplierUseCase(ctrl), prod)

	r := gin.New()
	r.POST("/v1/products", h.CreateProduct)

	prod.EXPECT().Create(gomock.Any(), entities.Product{Code: "P1", Description: "Batata", Unit: entities.ProductUnitSC, WeightPerUnit: 50}).
		Return(entities.Product{ID: "p-1", Code: "P1", Description: "Batata", Unit: entities.ProductUnitSC, WeightPerUnit: 50}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/products", bytes.NewBufferString(`{"code":"P1","description":"Batata","unit":"SC","weight_per_unit":50}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}
