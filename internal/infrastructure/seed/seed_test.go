package seed

import (
	"testing"

	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/domain/reconciliation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad_EmbeddedFixtures(t *testing.T) {
	fx, err := Load(bcrypt.MinCost)
	require.NoError(t, err)

	assert.Len(t, fx.Users, 4)
	assert.Len(t, fx.Suppliers, 3)
	assert.Len(t, fx.Products, 3)
	assert.Len(t, fx.Invoices, 4)
	assert.Len(t, fx.FinancialRecords, 4)
	assert.Len(t, fx.Trips, 2)

	admin := fx.Users[0]
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, []entities.Role{entities.RoleAdmin}, admin.Roles)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("123")))

	assert.Equal(t, entities.SupplierCategoryMercearia, fx.Suppliers[1].Category)
	assert.Equal(t, "13050-123", fx.Suppliers[1].ZipCode)
	assert.Equal(t, 50.0, fx.Products[2].WeightPerUnit)
	assert.Equal(t, "boleto_vencido.pdf", fx.Invoices[3].AttachmentURL)
	assert.Equal(t, 1200.50, fx.FinancialRecords[1].Amount)
	assert.Equal(t, []string{"inv1", "inv2"}, fx.Trips[0].Invoices)
}

func TestLoad_FixturesAreConsistent(t *testing.T) {
	fx, err := Load(bcrypt.MinCost)
	require.NoError(t, err)

	assert.Empty(t, reconciliation.Check(fx.Invoices, fx.FinancialRecords))
}

func TestParse_MissingSections(t *testing.T) {
	fx, err := parse([]byte("products:\n  - {id: \"9\", code: X, description: Y, unit: UN, weight_per_unit: 1}\n"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.Len(t, fx.Products, 1)
	assert.Empty(t, fx.Users)
	assert.Empty(t, fx.Invoices)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := parse([]byte("users: [\n"), bcrypt.MinCost)
	assert.Error(t, err)
}
