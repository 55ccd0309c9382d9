package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the till database. Default is an embedded SQLite file
// next to the binary; set DB_DRIVER=mysql and DB_DSN for installs that
// already run MySQL.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	dsn := os.Getenv("DB_DSN")

	switch driver {
	case "", "sqlite":
		if dsn == "" {
			dsn = "kafekita.db"
		}
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "mysql":
		if dsn == "" {
			return nil, fmt.Errorf("DB_DSN is required for mysql")
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}
