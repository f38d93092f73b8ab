package adapter

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/filterable-dev/filterable/internal/envconf"
)

// New opens a gorm connection for the configured backend.
func New(conf *envconf.DBConf) (*gorm.DB, error) {
	if conf.SQLite {
		return gorm.Open(sqlite.Open(conf.SQLitePath), &gorm.Config{})
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		conf.PostgresHost,
		conf.PostgresPort,
		conf.PostgresUser,
		conf.PostgresPassword,
		conf.PostgresDB,
	)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
