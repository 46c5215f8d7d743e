// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"milkbill/entities"
)

// OpenSQLite opens the store at path and migrates the schema. Any failure
// here is fatal: the process must not come up without a reachable store.
func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Bill{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}
