package database

import (
	"fmt"
	"os"
	"path/filepath"

	"restable/core/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database wraps the shared gorm connection pool
type Database struct {
	DB *gorm.DB
}

// InitDB opens the database configured by DB_DRIVER
func InitDB(cfg *config.Config) (*Database, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}
	if cfg.Env == "development" {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.DBDriver, err)
	}

	return &Database{DB: db}, nil
}

// Dialector picks the gorm driver for the configured database
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "sqlite", "":
		if cfg.DBPath != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		return sqlite.Open(cfg.DBPath), nil
	case "mysql":
		if cfg.DBURL == "" {
			return nil, fmt.Errorf("DB_URL is required for mysql")
		}
		return mysql.Open(cfg.DBURL), nil
	case "postgres", "postgresql":
		if cfg.DBURL == "" {
			return nil, fmt.Errorf("DB_URL is required for postgres")
		}
		return postgres.Open(cfg.DBURL), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DBDriver)
	}
}
