package checker

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"tradequality/src/checks"
)

type Config struct {
	ReportFormat     string        `envconfig:"REPORT_FORMAT" default:"text"` // "text", "json" or "yaml"
	ReportOutput     string        `envconfig:"REPORT_OUTPUT"`                // file path, stdout when empty
	LogViolations    bool          `envconfig:"LOG_VIOLATIONS" default:"false"`
	StrictTimestamps bool          `envconfig:"STRICT_TIMESTAMPS" default:"false"`
	OutlierThreshold float64       `envconfig:"OUTLIER_THRESHOLD" default:"3"`
	MinOpenYear      int           `envconfig:"MIN_OPEN_YEAR" default:"2020"`
	WebhookURL       string        `envconfig:"WEBHOOK_URL"`
	WebhookTimeout   time.Duration `envconfig:"WEBHOOK_TIMEOUT" default:"15s"`
	WebhookRetries   int           `envconfig:"WEBHOOK_RETRIES" default:"2"`
}

func GetConfig() *Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return &config
}

func (c *Config) RuleOptions() checks.Options {
	return checks.Options{
		OutlierThreshold: c.OutlierThreshold,
		MinOpenYear:      c.MinOpenYear,
		StrictTimestamps: c.StrictTimestamps,
	}
}
