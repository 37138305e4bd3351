package server

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"tradequality/src/report"
)

type Config struct {
	Port string `envconfig:"PORT" default:"9898"`
	// ReportFormat answers /report requests that carry no ?format=.
	ReportFormat string `envconfig:"REPORT_HTTP_FORMAT" default:"json"`
}

func GetConfig() *Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	if _, err := report.NewFormatter(config.ReportFormat); err != nil {
		panic(fmt.Errorf("error processing env config: REPORT_HTTP_FORMAT: %w", err))
	}
	return &config
}
