package repository

import (
	"gorm.io/gorm"

	"github.com/filterable-dev/filterable/internal/models"
)

func AutoMigrate(db *gorm.DB, debug bool) error {
	instanceDB := db

	if debug {
		instanceDB = instanceDB.Debug()
	}

	return instanceDB.AutoMigrate(
		&models.Ticket{},
	)
}
