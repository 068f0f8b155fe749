package database

import (
	"bulletin/internal/models"

	"gorm.io/gorm"
)

// Models returns every entity registered for schema migration.
func Models() []interface{} {
	return []interface{}{
		&models.Post{},
		&models.PostComment{},
	}
}

// Migrate runs GORM auto-migration over the model registry.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
