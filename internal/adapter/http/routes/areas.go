package routes

import (
	"mercado_erp/internal/adapter/http/handlers"
	"mercado_erp/internal/adapter/http/middleware"
	"mercado_erp/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathDashboard        = "/dashboard"
	PathSuppliers        = "/suppliers"
	PathProducts         = "/products"
	PathInvoices         = "/invoices"
	PathFinancialRecords = "/financial-records"
	PathTrips            = "/trips"
	PathUsers            = "/users"
)

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard, middleware.RequireView(entities.ViewDashboard))
	{
		dashboard.GET("", h.GetSummary)
		dashboard.GET("/insights", h.Analyze)
		dashboard.POST("/insights", h.Ask)
	}
}

func addPurchasingRoutes(rg *gin.RouterGroup, catalog *handlers.CatalogHandler, invoices *handlers.InvoiceHandler) {
	guard := middleware.RequireView(entities.ViewPurchases)

	suppliers := rg.Group(PathSuppliers, guard)
	{
		suppliers.GET("", catalog.ListSuppliers)
		suppliers.POST("", catalog.CreateSupplier)
	}

	products := rg.Group(PathProducts, guard)
	{
		products.GET("", catalog.ListProducts)
		products.POST("", catalog.CreateProduct)
	}

	inv := rg.Group(PathInvoices, guard)
	{
		inv.GET("", invoices.ListInvoices)
		inv.POST("", invoices.CreateInvoice)
		inv.GET("/:id", invoices.GetInvoice)
		inv.PUT("/:id", invoices.UpdateInvoice)
		inv.DELETE("/:id", invoices.DeleteInvoice)
	}
}

func addFinanceRoutes(rg *gin.RouterGroup, records *handlers.FinancialRecordHandler, invoices *handlers.InvoiceHandler) {
	finance := rg.Group(PathFinancialRecords, middleware.RequireView(entities.ViewFinance))
	{
		finance.GET("", records.ListFinancialRecords)
		finance.POST("/:id/pay", records.PayFinancialRecord)
		finance.POST("/:id/reopen", records.ReopenFinancialRecord)
		finance.POST("/invoices/:invoice_id/revert", invoices.RevertInvoice)
	}
}

func addLogisticsRoutes(rg *gin.RouterGroup, h *handlers.TripHandler) {
	trips := rg.Group(PathTrips, middleware.RequireView(entities.ViewLogistics))
	{
		trips.GET("", h.ListTrips)
		trips.POST("", h.CreateTrip)
	}
}

func addSettingsRoutes(rg *gin.RouterGroup, h *handlers.UserHandler) {
	users := rg.Group(PathUsers, middleware.RequireView(entities.ViewSettings))
	{
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}
