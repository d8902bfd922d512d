// Package model defines the database table structures.
package model

import (
	"gorm.io/gorm"
)

// AutoMigrateAll migrates every table the service owns.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(Note{}, File{})
}
