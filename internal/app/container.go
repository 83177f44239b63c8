// Package app wires configuration, storage, gateways and use cases into a
// single Container shared by the HTTP server and the operator CLI.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"mercado_erp/internal/adapter/persistence/repository"
	"mercado_erp/internal/adapter/persistence/snapshot"
	"mercado_erp/internal/config"
	"mercado_erp/internal/infrastructure/auth"
	"mercado_erp/internal/infrastructure/database"
	"mercado_erp/internal/infrastructure/insights"
	"mercado_erp/internal/infrastructure/payments"
	"mercado_erp/internal/infrastructure/seed"
	"mercado_erp/internal/logger"
	"mercado_erp/internal/usecase"
	"mercado_erp/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

// Store is a snapshot store that owns a connection.
type Store interface {
	interfaces.ISnapshotStore
	io.Closer
}

type Container struct {
	Store  Store
	Tokens *auth.JWTIssuer

	Auth             *usecase.AuthUseCase
	Users            *usecase.UserUseCase
	Suppliers        *usecase.SupplierUseCase
	Products         *usecase.ProductUseCase
	Invoices         *usecase.InvoiceUseCase
	FinancialRecords *usecase.FinancialRecordUseCase
	Trips            *usecase.TripUseCase
	Dashboard        *usecase.DashboardUseCase
	Insights         *usecase.InsightUseCase
}

// New opens the configured store and builds the container on top of it.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	fx, err := seed.Load(bcrypt.DefaultCost)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	c, err := NewWithStore(ctx, cfg, store, fx)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return c, nil
}

// NewWithStore loads every collection from store, falling back to fx for
// collections that were never persisted.
func NewWithStore(ctx context.Context, cfg *config.Config, store Store, fx seed.Fixtures) (*Container, error) {
	log := logger.WithComponent("app")

	users, err := repository.NewUserRepository(ctx, store, fx.Users)
	if err != nil {
		return nil, err
	}
	suppliers, err := repository.NewSupplierRepository(ctx, store, fx.Suppliers)
	if err != nil {
		return nil, err
	}
	products, err := repository.NewProductRepository(ctx, store, fx.Products)
	if err != nil {
		return nil, err
	}
	invoices, err := repository.NewInvoiceRepository(ctx, store, fx.Invoices)
	if err != nil {
		return nil, err
	}
	records, err := repository.NewFinancialRecordRepository(ctx, store, fx.FinancialRecords)
	if err != nil {
		return nil, err
	}
	trips, err := repository.NewTripRepository(ctx, store, fx.Trips)
	if err != nil {
		return nil, err
	}

	var insightGateway interfaces.IInsightGateway
	if cfg.OpenAIAPIKey != "" {
		gw, err := insights.NewOpenAIGateway(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			return nil, err
		}
		insightGateway = gw
	} else {
		log.Info().Msg("[app][wire] OPENAI_API_KEY not set, insights use fallback text")
	}

	var paymentGateway interfaces.IPaymentGateway
	if cfg.PaymentGatewayEnabled() {
		gw, err := payments.NewMercadoPagoGateway(payments.MercadoPagoOptions{
			AccessToken: cfg.MercadoPagoAccessToken,
			PayerEmail:  cfg.MercadoPagoPayerEmail,
			Mock:        cfg.PaymentGatewayMock,
		})
		if err != nil {
			log.Warn().Err(err).Msg("[app][wire] Mercado Pago gateway not configured")
		} else {
			paymentGateway = gw
		}
	}

	tokens := auth.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL)
	invoiceUseCase, recordUseCase := usecase.NewLedgerUseCases(invoices, records, paymentGateway)

	return &Container{
		Store:            store,
		Tokens:           tokens,
		Auth:             usecase.NewAuthUseCase(users, tokens),
		Users:            usecase.NewUserUseCase(users),
		Suppliers:        usecase.NewSupplierUseCase(suppliers),
		Products:         usecase.NewProductUseCase(products),
		Invoices:         invoiceUseCase,
		FinancialRecords: recordUseCase,
		Trips:            usecase.NewTripUseCase(trips),
		Dashboard:        usecase.NewDashboardUseCase(records, suppliers),
		Insights:         usecase.NewInsightUseCase(records, suppliers, trips, insightGateway),
	}, nil
}

func (c *Container) Close() error {
	return c.Store.Close()
}

// OpenStore returns the snapshot store selected by STORAGE_DRIVER.
func OpenStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageDriver {
	case config.StorageSQLite:
		store, err := snapshot.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:   cfg.AWSRegion,
			Endpoint: cfg.DynamoDBEndpoint,
		})
		if err != nil {
			return nil, err
		}
		return snapshot.NewDynamoStore(ddb, cfg.CollectionsTable), nil
	case config.StorageMemory:
		return snapshot.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// Seed writes the fixtures under every collection key and returns the keys
// written. Without force, keys that already hold a snapshot are skipped.
func Seed(ctx context.Context, store interfaces.ISnapshotStore, fx seed.Fixtures, force bool) ([]string, error) {
	entries := []struct {
		key   string
		items any
	}{
		{repository.KeyUsers, fx.Users},
		{repository.KeySuppliers, fx.Suppliers},
		{repository.KeyProducts, fx.Products},
		{repository.KeyInvoices, fx.Invoices},
		{repository.KeyFinancialRecords, fx.FinancialRecords},
		{repository.KeyTrips, fx.Trips},
	}

	var written []string
	for _, e := range entries {
		if !force {
			existing, err := store.Load(ctx, e.key)
			if err != nil {
				return written, fmt.Errorf("seed %s: %w", e.key, err)
			}
			if existing != nil {
				continue
			}
		}
		raw, err := json.Marshal(e.items)
		if err != nil {
			return written, fmt.Errorf("seed %s: %w", e.key, err)
		}
		if err := store.Save(ctx, e.key, raw); err != nil {
			return written, fmt.Errorf("seed %s: %w", e.key, err)
		}
		written = append(written, e.key)
	}
	return written, nil
}
