package mysql

import (
	"fmt"
	"os"

	"cart-service/internal/domain"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func NewMySQLFromEnv() (*gorm.DB, error) {
	user := os.Getenv("MYSQL_USER")
	pass := os.Getenv("MYSQL_PASSWORD")
	host := os.Getenv("MYSQL_HOST")
	port := os.Getenv("MYSQL_PORT")
	dbname := os.Getenv("MYSQL_DATABASE")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local", user, pass, host, port, dbname)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&domain.MenuItem{}); err != nil {
		return nil, err
	}

	if err := SeedMenu(db); err != nil {
		return nil, err
	}

	return db, nil
}

// SeedMenu inserts the built-in menu if it is not already present.
// The catalog is read-only at runtime, so existing rows are left untouched.
func SeedMenu(db *gorm.DB) error {
	for _, item := range DefaultMenu {
		if err := db.Where(domain.MenuItem{ID: item.ID}).FirstOrCreate(&item).Error; err != nil {
			return fmt.Errorf("seed menu item %d: %w", item.ID, err)
		}
	}
	return nil
}
