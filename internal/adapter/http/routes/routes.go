package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "mercado_erp/docs"
	"mercado_erp/internal/adapter/http/handlers"
	"mercado_erp/internal/adapter/http/middleware"
	"mercado_erp/internal/app"
	"mercado_erp/internal/config"
	"mercado_erp/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run builds the container and serves the API until the listener fails.
func Run(ctx context.Context, cfg *config.Config) error {
	log := logger.WithComponent("http")
	if cfg.UsesDevJWTSecret() {
		log.Warn().Msg("[http][server] JWT_SECRET not set, tokens are signed with the public development secret")
	}

	container, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer container.Close()

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Port),
		Handler: NewRouter(container),
	}
	go func() {
		<-ctx.Done()
		log.Info().Msg("[http][server] shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", srv.Addr).Str("storage", cfg.StorageDriver).Msg("[http][server] listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// NewRouter registers every route on a fresh engine.
func NewRouter(c *app.Container) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authHandler := handlers.NewAuthHandler(c.Auth)
	addAuthRoutes(v1, authHandler)

	private := v1.Group("")
	private.Use(middleware.Authenticate(c.Tokens))
	private.GET(PathMe, authHandler.Me)

	invoiceHandler := handlers.NewInvoiceHandler(c.Invoices)
	addDashboardRoutes(private, handlers.NewDashboardHandler(c.Dashboard, c.Insights))
	addPurchasingRoutes(private, handlers.NewCatalogHandler(c.Suppliers, c.Products), invoiceHandler)
	addFinanceRoutes(private, handlers.NewFinancialRecordHandler(c.FinancialRecords), invoiceHandler)
	addLogisticsRoutes(private, handlers.NewTripHandler(c.Trips))
	addSettingsRoutes(private, handlers.NewUserHandler(c.Users))

	return router
}

func setMiddlewares(router *gin.Engine) {
	log := logger.WithComponent("http")
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("path", c.FullPath()).Msg("[http][server] recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
