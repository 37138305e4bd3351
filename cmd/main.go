package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"tradequality/cmd/checker"
	"tradequality/src/checks"
	"tradequality/src/database"
	"tradequality/src/pipeline"
	"tradequality/src/repository"
	"tradequality/src/server"
	"tradequality/src/utils"
)

var Version string

func main() {
	app := cli.NewApp()
	app.Name = "tradequality"
	app.Usage = "Data quality checks over trades, users and symbols"
	app.Version = Version

	app.Before = func(_ *cli.Context) error {
		config := database.GetConfig()
		utils.SetupLogger(config.LogLevel, config.LogFormat)
		return nil
	}

	app.Commands = []cli.Command{
		checkCMD,
		serveCMD,
	}

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	checkCMD = cli.Command{
		Name:      "check",
		Usage:     "run the data quality checks once",
		Action:    checkAction,
		ArgsUsage: "",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "format", Usage: "report format: text, json or yaml"},
			cli.StringFlag{Name: "output", Usage: "write the report to this file instead of stdout"},
			cli.StringFlag{Name: "webhook", Usage: "also POST the JSON report to this URL"},
			cli.BoolFlag{Name: "strict-timestamps", Usage: "report timestamps that cannot be parsed"},
			cli.BoolFlag{Name: "log-violations", Usage: "log every violation as a structured line"},
		},
		Description: `Load trades, users and symbols and print every violated rule`,
	}
	serveCMD = cli.Command{
		Name:      "serve",
		Usage:     "serve reports over HTTP",
		Action:    serveAction,
		ArgsUsage: "",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "port", Usage: "listen port, defaults to PORT"},
		},
		Description: `Expose /healthcheck and /report`,
	}
)

func checkAction(c *cli.Context) error {
	logrus.Info("Starting data quality check CMD")

	config := checker.GetConfig()
	if c.IsSet("format") {
		config.ReportFormat = c.String("format")
	}
	if c.IsSet("output") {
		config.ReportOutput = c.String("output")
	}
	if c.IsSet("webhook") {
		config.WebhookURL = c.String("webhook")
	}
	if c.Bool("strict-timestamps") {
		config.StrictTimestamps = true
	}
	if c.Bool("log-violations") {
		config.LogViolations = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_checker := &checker.Checker{
		Log:    logrus.WithField("cmd", "check"),
		Config: config,
	}
	if err := _checker.Start(ctx); err != nil {
		logrus.WithError(err).Error("Running check cmd")
		return err
	}
	return nil
}

func serveAction(c *cli.Context) error {
	logrus.Info("Starting data quality server CMD")

	config := server.GetConfig()
	if c.IsSet("port") {
		config.Port = c.String("port")
	}

	p := &pipeline.Pipeline{
		Source: pipeline.DatabaseSource{DB: database.GetConfig(), Tables: repository.GetConfig()},
		Rules:  checks.DefaultRules(checker.GetConfig().RuleOptions()),
	}
	server.StartServer(config, p)
	return nil
}
