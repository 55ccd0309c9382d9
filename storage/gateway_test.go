package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kafekita/pos-app/models"
)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatal(err)
	}
	return NewGateway(db)
}

func TestFirstRunSeedsDefaults(t *testing.T) {
	g := newTestGateway(t)

	products, err := g.LoadProducts()
	assert.NoError(t, err)
	assert.NotEmpty(t, products)

	categories, err := g.LoadCategories()
	assert.NoError(t, err)
	assert.Len(t, categories, 4)

	settings, err := g.LoadSettings()
	assert.NoError(t, err)
	assert.Equal(t, "KafeKita", settings.Name)
	assert.True(t, settings.TaxEnabled)
	assert.Equal(t, 11.0, settings.TaxRate)

	orders, err := g.LoadOrders()
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestProductsRoundTrip(t *testing.T) {
	g := newTestGateway(t)

	in := []models.Product{
		{ID: "p1", Name: "Kopi", Price: 18000, CategoryID: "cat_1", Stock: 5, InitialStock: 10, AutoResetStock: true},
		{ID: "p2", Name: "Americano", Price: 15000, IsUnlimited: true},
	}
	assert.NoError(t, g.SaveProducts(in))

	out, err := g.LoadProducts()
	assert.NoError(t, err)
	assert.Equal(t, in, out)

	// Saving again replaces, not appends.
	assert.NoError(t, g.SaveProducts(in[:1]))
	out, err = g.LoadProducts()
	assert.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestAppendOrderPrepends(t *testing.T) {
	g := newTestGateway(t)

	assert.NoError(t, g.AppendOrder(models.Order{ID: "ORD-1", PaymentMethod: models.PaymentCash}))
	assert.NoError(t, g.AppendOrder(models.Order{ID: "ORD-2", PaymentMethod: models.PaymentQRIS}))

	orders, err := g.LoadOrders()
	assert.NoError(t, err)
	assert.Equal(t, "ORD-2", orders[0].ID)
	assert.Equal(t, "ORD-1", orders[1].ID)
}

func TestSettingsLegacyDefaults(t *testing.T) {
	g := newTestGateway(t)

	// A document written before the discount/printer fields existed.
	assert.NoError(t, g.save("kafekita_settings", map[string]interface{}{
		"name":       "Warung Lama",
		"taxEnabled": true,
		"taxRate":    10,
	}))

	settings, err := g.LoadSettings()
	assert.NoError(t, err)
	assert.Equal(t, "Warung Lama", settings.Name)
	assert.Equal(t, models.DiscountPercent, settings.DiscountType)
	assert.Equal(t, models.PrinterBrowser, settings.PrinterType)
	assert.Equal(t, 32, settings.PrinterWidth)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	g := newTestGateway(t)

	_, ok, err := g.LoadPasswordHash()
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, g.SavePasswordHash("$2a$10$hash"))
	hash, ok, err := g.LoadPasswordHash()
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "$2a$10$hash", hash)
}

func TestExportBundlesEverything(t *testing.T) {
	g := newTestGateway(t)
	assert.NoError(t, g.SaveProducts([]models.Product{{ID: "p1", Name: "Kopi", Price: 18000}}))
	assert.NoError(t, g.AppendOrder(models.Order{ID: "ORD-1", PaymentMethod: models.PaymentCash}))

	backup, err := g.Export()
	assert.NoError(t, err)
	assert.Len(t, backup.Products, 1)
	assert.Len(t, backup.Orders, 1)
	assert.NotNil(t, backup.Settings)
	assert.NotEmpty(t, backup.Timestamp)
}

func TestImportReplacesCollections(t *testing.T) {
	g := newTestGateway(t)
	assert.NoError(t, g.SaveProducts([]models.Product{{ID: "old", Name: "Old", Price: 1}}))

	raw := []byte(`{
		"products": [{"id": "new", "name": "New", "price": 5000, "stock": 3, "isUnlimited": false, "initialStock": 3, "autoResetStock": false, "categoryId": "cat_1"}],
		"orders": [{"id": "ORD-9", "timestamp": 1700000000000, "items": [], "totalAmount": 0, "paymentMethod": "cash"}]
	}`)
	assert.NoError(t, g.Import(raw))

	products, _ := g.LoadProducts()
	assert.Len(t, products, 1)
	assert.Equal(t, "new", products[0].ID)

	orders, _ := g.LoadOrders()
	assert.Len(t, orders, 1)
	assert.Equal(t, "ORD-9", orders[0].ID)
}

func TestImportMalformedLeavesDataUntouched(t *testing.T) {
	g := newTestGateway(t)
	assert.NoError(t, g.SaveProducts([]models.Product{{ID: "keep", Name: "Keep", Price: 1}}))

	err := g.Import([]byte(`{"products": [{"id": 42`))
	assert.ErrorIs(t, err, ErrMalformedBackup)

	var persistErr *PersistenceError
	assert.ErrorAs(t, err, &persistErr)

	products, loadErr := g.LoadProducts()
	assert.NoError(t, loadErr)
	assert.Len(t, products, 1)
	assert.Equal(t, "keep", products[0].ID)
}
