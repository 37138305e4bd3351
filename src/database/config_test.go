package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetConfigDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "secret")

	config := GetConfig()
	require.Equal(t, DriverPostgres, config.Driver)
	require.Equal(t, "db.internal", config.Host)
	require.Equal(t, "5432", config.Port)
	require.Equal(t, 2, config.GormLogLevel)
	require.Equal(t,
		"host=db.internal user=postgres password=secret dbname=postgres port=5432 sslmode=disable",
		config.DSN(),
	)
}

func TestDSN(t *testing.T) {
	url := Config{Driver: DriverPostgres, DatabaseURL: "postgres://u:p@h/db", Host: "ignored"}
	require.Equal(t, "postgres://u:p@h/db", url.DSN())

	lite := Config{Driver: DriverSQLite, SQLitePath: "/tmp/trades.db"}
	require.Equal(t, "file:/tmp/trades.db?mode=ro", lite.DSN())
}

func TestDialector(t *testing.T) {
	d, err := Dialector(Config{Driver: DriverPostgres})
	require.NoError(t, err)
	require.Equal(t, "postgres", d.Name())

	d, err = Dialector(Config{Driver: DriverSQLite, SQLitePath: "x.db"})
	require.NoError(t, err)
	require.Equal(t, "sqlite", d.Name())

	_, err = Dialector(Config{Driver: "mysql"})
	require.True(t, errors.Is(err, ErrUnsupportedDriver))
}

func TestCloseNil(t *testing.T) {
	require.NoError(t, Close(nil))
}
