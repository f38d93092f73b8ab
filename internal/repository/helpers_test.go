package repository

import (
	"os"
	"testing"

	"gorm.io/gorm"

	"github.com/filterable-dev/filterable/internal/adapter"
	"github.com/filterable-dev/filterable/internal/envconf"
)

type tester struct {
	repo       *Repository
	dbFileName string
	db         *gorm.DB
}

func setupTestEnv(tester *tester, t *testing.T) {
	t.Helper()

	db, err := adapter.New(&envconf.DBConf{
		SQLite:     true,
		SQLitePath: tester.dbFileName,
	})

	if err != nil {
		t.Fatalf("%v\n", err)
	}

	err = AutoMigrate(db, false)

	if err != nil {
		t.Fatalf("%v\n", err)
	}

	tester.db = db
	tester.repo = NewRepository(db)
}

func cleanup(tester *tester, t *testing.T) {
	t.Helper()

	// remove the created database file
	os.Remove(tester.dbFileName)
}
