package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "mercado_erp/docs"
	"mercado_erp/internal/adapter/http/routes"
	"mercado_erp/internal/config"
	"mercado_erp/internal/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           Mercado ERP API
// @version         1.0
// @description     Back office for a neighbourhood supermarket: purchasing, payables, logistics and settings.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		log.Fatal().Err(err).Msg("failed to set up logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}
