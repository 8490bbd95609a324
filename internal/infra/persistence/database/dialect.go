package database

import (
	"strings"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"authsvc/config"
	"authsvc/internal/errors"
)

const (
	sqliteMemory        = ":memory:"
	sqliteDefaultParams = "_busy_timeout=5000&_journal_mode=WAL"
)

// openPostgres delegates pool and replica setup to go-lib.
func openPostgres(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Postgres == nil {
		return nil, errors.New("postgres section is required for the postgres driver")
	}

	return pgLib.New(cfg.Postgres)
}

func openMySQL(cfg *config.Config) (*gorm.DB, error) {
	if cfg.MySQL == nil || cfg.MySQL.DSN == "" {
		return nil, errors.New("mysql.dsn is required for the mysql driver")
	}

	return gorm.Open(mysql.Open(cfg.MySQL.DSN), &gorm.Config{TranslateError: true})
}

func openSQLite(cfg *config.Config) (*gorm.DB, error) {
	path := sqliteMemory
	if cfg.SQLite != nil && cfg.SQLite.Path != "" {
		path = cfg.SQLite.Path
	}

	db, err := gorm.Open(sqlite.Open(sqliteDSN(path)), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite serializes writers, and each in-memory connection is its own database.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func sqliteDSN(path string) string {
	if path == sqliteMemory || strings.Contains(path, "?") {
		return path
	}

	return path + "?" + sqliteDefaultParams
}
