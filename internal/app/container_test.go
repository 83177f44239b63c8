package app

import (
	"context"
	"testing"
	"time"

	"mercado_erp/internal/adapter/persistence/repository"
	"mercado_erp/internal/adapter/persistence/snapshot"
	"mercado_erp/internal/config"
	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/infrastructure/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		StorageDriver: config.StorageMemory,
		JWTSecret:     "test-secret",
		JWTTTL:        time.Hour,
	}
}

func TestNewWithStore_SeedsAndLogsIn(t *testing.T) {
	ctx := context.Background()
	fx, err := seed.Load(bcrypt.MinCost)
	require.NoError(t, err)

	c, err := NewWithStore(ctx, testConfig(), snapshot.NewMemoryStore(), fx)
	require.NoError(t, err)
	defer c.Close()

	token, session, err := c.Auth.Login(ctx, "admin", "123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Contains(t, session.Roles, entities.RoleAdmin)

	verified, err := c.Tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, verified.UserID)

	violations, err := c.Invoices.CheckConsistency(ctx)
	require.NoError(t, err)
	assert.Empty(t, violations, "fixtures must satisfy the invoice/record pairing")
}

func TestNewWithStore_ConfirmCreatesRecord(t *testing.T) {
	ctx := context.Background()
	fx, err := seed.Load(bcrypt.MinCost)
	require.NoError(t, err)

	c, err := NewWithStore(ctx, testConfig(), snapshot.NewMemoryStore(), fx)
	require.NoError(t, err)

	saved, err := c.Invoices.Save(ctx, entities.Invoice{
		Number:     "9999",
		SupplierID: "1",
		IssueDate:  "2024-06-01",
		DueDate:    "2024-06-30",
		TotalValue: "1500,75",
		Status:     entities.InvoiceStatusConfirmed,
	})
	require.NoError(t, err)

	records, err := c.FinancialRecords.List(ctx, "PENDING")
	require.NoError(t, err)
	var found bool
	for _, r := range records {
		if r.InvoiceID == saved.ID {
			found = true
			assert.Equal(t, 1500.75, r.Amount)
		}
	}
	assert.True(t, found)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	fx, err := seed.Load(bcrypt.MinCost)
	require.NoError(t, err)
	store := snapshot.NewMemoryStore()

	require.NoError(t, store.Save(ctx, repository.KeyUsers, []byte(`[]`)))

	written, err := Seed(ctx, store, fx, false)
	require.NoError(t, err)
	assert.NotContains(t, written, repository.KeyUsers)
	assert.Len(t, written, 5)

	written, err = Seed(ctx, store, fx, true)
	require.NoError(t, err)
	assert.Len(t, written, 6)

	raw, err := store.Load(ctx, repository.KeyUsers)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"username":"admin"`)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, err := OpenStore(context.Background(), &config.Config{StorageDriver: "postgres"})
	assert.Error(t, err)
}
