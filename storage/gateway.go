package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kafekita/pos-app/models"
)

// Storage keys. They mirror the document layout of the original data
// files so an exported backup stays readable across versions.
const (
	keyProducts   = "kafekita_products"
	keyCategories = "kafekita_categories"
	keyOrders     = "kafekita_orders"
	keySettings   = "kafekita_settings"
	keyPassword   = "kafekita_auth_password"
)

// Record is one whole collection serialized as a JSON document.
type Record struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Value     string `gorm:"type:longtext"`
	UpdatedAt time.Time
}

func (Record) TableName() string { return "kv_records" }

// AutoMigrate creates the key/value table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Record{})
}

// PersistenceError wraps a failed storage read or write. Callers treat
// it as a recoverable outcome, never a crash.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Gateway gives whole-collection read/replace access to the persisted
// state. There is no partial update: callers load a collection, change
// it, and save it back.
type Gateway struct {
	db *gorm.DB
}

func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// Transaction runs fn against a gateway bound to one database
// transaction, so multi-collection saves (products + orders on
// checkout, void and edit) commit or fail as a unit.
func (g *Gateway) Transaction(fn func(tx *Gateway) error) error {
	return g.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Gateway{db: tx})
	})
}

func (g *Gateway) load(key string, out interface{}) (bool, error) {
	var rec Record
	err := g.db.Where("key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, &PersistenceError{Op: "read " + key, Err: err}
	}
	if err := json.Unmarshal([]byte(rec.Value), out); err != nil {
		return false, &PersistenceError{Op: "decode " + key, Err: err}
	}
	return true, nil
}

func (g *Gateway) save(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &PersistenceError{Op: "encode " + key, Err: err}
	}
	rec := Record{Key: key, Value: string(raw), UpdatedAt: time.Now()}
	err = g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return &PersistenceError{Op: "write " + key, Err: err}
	}
	return nil
}

// LoadProducts returns the catalog, seeding the sample catalog on
// first run. A missing initialStock stays zero, which is also the
// reset baseline for unconfigured products.
func (g *Gateway) LoadProducts() ([]models.Product, error) {
	var products []models.Product
	found, err := g.load(keyProducts, &products)
	if err != nil {
		return nil, err
	}
	if !found {
		return seedProducts(), nil
	}
	return products, nil
}

func (g *Gateway) SaveProducts(products []models.Product) error {
	return g.save(keyProducts, products)
}

func (g *Gateway) LoadCategories() ([]models.Category, error) {
	var categories []models.Category
	found, err := g.load(keyCategories, &categories)
	if err != nil {
		return nil, err
	}
	if !found {
		return seedCategories(), nil
	}
	return categories, nil
}

func (g *Gateway) SaveCategories(categories []models.Category) error {
	return g.save(keyCategories, categories)
}

// LoadOrders returns order history, most recent first.
func (g *Gateway) LoadOrders() ([]models.Order, error) {
	var orders []models.Order
	if _, err := g.load(keyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (g *Gateway) SaveOrders(orders []models.Order) error {
	return g.save(keyOrders, orders)
}

// AppendOrder prepends the order to history (most-recent-first
// convention).
func (g *Gateway) AppendOrder(order models.Order) error {
	orders, err := g.LoadOrders()
	if err != nil {
		return err
	}
	orders = append([]models.Order{order}, orders...)
	return g.SaveOrders(orders)
}

// LoadSettings merges the stored record over defaults, so documents
// written before a settings field existed still load with something
// sensible.
func (g *Gateway) LoadSettings() (models.CafeSettings, error) {
	settings := seedSettings()
	if _, err := g.load(keySettings, &settings); err != nil {
		return settings, err
	}
	if settings.DiscountType == "" {
		settings.DiscountType = models.DiscountPercent
	}
	if settings.PrinterType == "" {
		settings.PrinterType = models.PrinterBrowser
	}
	if settings.PrinterWidth == 0 {
		settings.PrinterWidth = 32
	}
	return settings, nil
}

func (g *Gateway) SaveSettings(settings models.CafeSettings) error {
	return g.save(keySettings, settings)
}

// LoadPasswordHash returns the stored credential hash; ok is false
// when no password has ever been set.
func (g *Gateway) LoadPasswordHash() (hash string, ok bool, err error) {
	found, err := g.load(keyPassword, &hash)
	if err != nil {
		return "", false, err
	}
	return hash, found, nil
}

func (g *Gateway) SavePasswordHash(hash string) error {
	return g.save(keyPassword, hash)
}

// Export bundles every collection into one backup envelope.
func (g *Gateway) Export() (models.Backup, error) {
	var backup models.Backup
	var err error
	if backup.Products, err = g.LoadProducts(); err != nil {
		return backup, err
	}
	if backup.Categories, err = g.LoadCategories(); err != nil {
		return backup, err
	}
	if backup.Orders, err = g.LoadOrders(); err != nil {
		return backup, err
	}
	settings, err := g.LoadSettings()
	if err != nil {
		return backup, err
	}
	backup.Settings = &settings
	backup.Timestamp = time.Now().Format(time.RFC3339)
	return backup, nil
}

// ErrMalformedBackup marks an import payload that could not be
// decoded. Nothing is written in that case.
var ErrMalformedBackup = errors.New("malformed backup document")

// Import replaces the collections present in the backup. Malformed
// input aborts before anything is written; a failing write rolls back
// every collection, so existing data is never partially overwritten.
func (g *Gateway) Import(raw []byte) error {
	var backup models.Backup
	if err := json.Unmarshal(raw, &backup); err != nil {
		return &PersistenceError{Op: "decode backup", Err: fmt.Errorf("%w: %v", ErrMalformedBackup, err)}
	}
	return g.Transaction(func(tx *Gateway) error {
		if backup.Products != nil {
			if err := tx.SaveProducts(backup.Products); err != nil {
				return err
			}
		}
		if backup.Categories != nil {
			if err := tx.SaveCategories(backup.Categories); err != nil {
				return err
			}
		}
		if backup.Orders != nil {
			if err := tx.SaveOrders(backup.Orders); err != nil {
				return err
			}
		}
		if backup.Settings != nil {
			if err := tx.SaveSettings(*backup.Settings); err != nil {
				return err
			}
		}
		return nil
	})
}
