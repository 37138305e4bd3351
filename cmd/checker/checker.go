package checker

import (
	"context"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"

	"tradequality/src/checks"
	"tradequality/src/database"
	"tradequality/src/pipeline"
	"tradequality/src/report"
	"tradequality/src/repository"
)

// Checker runs the data quality battery once and publishes the findings.
type Checker struct {
	Log    *logger.Entry
	Config *Config
	Source pipeline.Source
	Stdout io.Writer
}

func (c *Checker) Start(ctx context.Context) error {
	if c.Config == nil {
		c.Config = GetConfig()
	}
	if c.Log == nil {
		c.Log = logger.WithField("cmd", "check")
	}
	if c.Source == nil {
		c.Source = pipeline.DatabaseSource{
			DB:     database.GetConfig(),
			Tables: repository.GetConfig(),
		}
	}

	sink, err := c.buildSink()
	if err != nil {
		return err
	}

	p := &pipeline.Pipeline{
		Source: c.Source,
		Rules:  checks.DefaultRules(c.Config.RuleOptions()),
		Sink:   sink,
	}

	rep, err := p.Run(ctx)
	if err != nil {
		c.Log.WithError(err).Error("Data quality run failed")
		return err
	}

	c.Log.WithFields(logger.Fields{
		"runID":      rep.RunID,
		"violations": rep.Total,
	}).Info("Data quality checks completed")
	return nil
}

// buildSink assembles the publishers. Nothing is written until the pipeline
// has a complete report, so a failed load leaves an earlier report file intact.
func (c *Checker) buildSink() (report.Sink, error) {
	formatter, err := report.NewFormatter(c.Config.ReportFormat)
	if err != nil {
		return nil, err
	}

	var primary report.Sink
	if c.Config.ReportOutput != "" {
		primary = &report.FileSink{Path: c.Config.ReportOutput, Formatter: formatter}
	} else {
		out := c.Stdout
		if out == nil {
			out = os.Stdout
		}
		primary = &report.WriterSink{W: out, Formatter: formatter}
	}

	sinks := report.MultiSink{primary}
	if c.Config.LogViolations {
		sinks = append(sinks, &report.LogSink{Log: c.Log})
	}
	if c.Config.WebhookURL != "" {
		sinks = append(sinks, report.NewWebhookSink(c.Config.WebhookURL, c.Config.WebhookTimeout, c.Config.WebhookRetries))
	}
	return sinks, nil
}
