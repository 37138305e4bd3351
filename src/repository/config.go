package repository

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config names the three source tables.
type Config struct {
	TradesTable  string `envconfig:"TRADES_TABLE" default:"trades"`
	UsersTable   string `envconfig:"USERS_TABLE" default:"users"`
	SymbolsTable string `envconfig:"SYMBOLS_TABLE" default:"symbols"`
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}
