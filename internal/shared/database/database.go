package database

import (
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps the GORM instance backing the static catalog store
type DB struct {
	GORM *gorm.DB
}

// NewDB opens the embedded catalog database
func NewDB(path string) *DB {
	if path == "" {
		log.Fatal("❌ DATABASE_PATH is empty")
	}

	gormDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("❌ Failed to open database: %v", err)
	}

	log.Println("✅ Catalog database opened (GORM/sqlite)!")
	return &DB{GORM: gormDB}
}

func (db *DB) Close() error {
	log.Println("🔌 Closing catalog database...")
	sqlDB, err := db.GORM.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
