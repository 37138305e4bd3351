package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"

	"tradequality/src/checks"
	"tradequality/src/database"
	"tradequality/src/model"
	"tradequality/src/report"
	"tradequality/src/repository"
)

// ErrSourceUnavailable marks a run that never got its three tables.
var ErrSourceUnavailable = errors.New("data source unavailable")

// Source yields a fully materialized dataset snapshot.
type Source interface {
	Load(ctx context.Context) (*model.Dataset, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context) (*model.Dataset, error)

func (f SourceFunc) Load(ctx context.Context) (*model.Dataset, error) {
	return f(ctx)
}

// DatabaseSource connects, loads the tables and disconnects before returning.
type DatabaseSource struct {
	DB     database.Config
	Tables repository.Config
}

func (s DatabaseSource) Load(ctx context.Context) (*model.Dataset, error) {
	db, err := database.Open(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.WithError(err).Warn("Failed to close database connection")
		}
	}()

	return repository.NewDatasetRepository(db, s.Tables).Load(ctx)
}

// Pipeline runs the rule battery over one snapshot and hands the report to a sink.
type Pipeline struct {
	Source Source
	Rules  []checks.Rule
	Sink   report.Sink
}

// Run returns the report even when publishing it fails.
func (p *Pipeline) Run(ctx context.Context) (*model.Report, error) {
	startedAt := time.Now()

	ds, err := p.Source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	results := checks.Run(ds, p.Rules)
	rep := report.Build(results, len(ds.Trades.Rows), startedAt)

	logger.WithFields(logger.Fields{
		"runID":      rep.RunID,
		"trades":     rep.Trades,
		"violations": rep.Total,
		"elapsed":    rep.FinishedAt.Sub(rep.StartedAt).String(),
	}).Info("Data quality checks evaluated")

	if p.Sink != nil {
		if err := p.Sink.Publish(ctx, rep); err != nil {
			return rep, fmt.Errorf("publish report: %w", err)
		}
	}
	return rep, nil
}
