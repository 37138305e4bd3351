package database

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"debug"` // Expected to hold values like "debug", "info", "warn", "error"
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"` // Expected to hold values like "json" or "text"

	Driver string `envconfig:"DATABASE_DRIVER" default:"postgres"` // "postgres" or "sqlite"
	// DatabaseURL wins over the individual DB_* settings when set.
	DatabaseURL string `envconfig:"DATABASE_URL"`
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	Name        string `envconfig:"DB_NAME" default:"postgres"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"trades.db"`

	GormLogLevel int `envconfig:"GORM_LOG_LEVEL" default:"2"`
	MaxOpenConns int `envconfig:"DB_MAX_OPEN_CONNS" default:"4"`
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}

// DSN builds the connection string for the configured driver.
func (c Config) DSN() string {
	switch c.Driver {
	case DriverSQLite:
		return fmt.Sprintf("file:%s?mode=ro", c.SQLitePath)
	default:
		if c.DatabaseURL != "" {
			return c.DatabaseURL
		}
		return fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host,
			c.User,
			c.Password,
			c.Name,
			c.Port,
			c.SSLMode,
		)
	}
}
