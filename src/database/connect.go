package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Dialector picks the gorm driver for the configured backend.
func Dialector(config Config) (gorm.Dialector, error) {
	switch config.Driver {
	case DriverPostgres, "":
		return postgres.Open(config.DSN()), nil
	case DriverSQLite:
		return sqlite.Open(config.DSN()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, config.Driver)
	}
}

// Open connects to the trade store and verifies it answers. The caller owns
// the handle and must release it with Close.
func Open(ctx context.Context, config Config) (*gorm.DB, error) {
	dialector, err := Dialector(config)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.LogLevel(config.GormLogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", config.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from GORM: %w", err)
	}
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", config.Driver, err)
	}

	if config.Driver != DriverSQLite {
		var dbName, schema string
		if err := db.WithContext(ctx).
			Raw("SELECT current_database(), current_schema()").
			Row().
			Scan(&dbName, &schema); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to query current db/schema: %w", err)
		}
		logrus.WithFields(map[string]interface{}{"dbName": dbName, "schema": schema}).Info("[database] connection established")
	} else {
		logrus.WithField("path", config.SQLitePath).Info("[database] sqlite connection established")
	}

	return db, nil
}

// Close releases the pool behind a handle returned by Open.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from GORM: %w", err)
	}
	return sqlDB.Close()
}
