package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"tradequality/src/model"
)

// Sink consumes a finished report.
type Sink interface {
	Publish(ctx context.Context, report *model.Report) error
}

// WriterSink formats the report onto a writer such as stdout or a file.
type WriterSink struct {
	W         io.Writer
	Formatter Formatter
}

func (s *WriterSink) Publish(_ context.Context, report *model.Report) error {
	return s.Formatter.Format(s.W, report)
}

// FileSink replaces the file at Path with the formatted report. The report is
// written to a temporary file in the same directory and renamed over Path, so
// an existing report survives until a new one is complete.
type FileSink struct {
	Path      string
	Formatter Formatter
}

func (s *FileSink) Publish(_ context.Context, report *model.Report) error {
	var buf bytes.Buffer
	if err := s.Formatter.Format(&buf, report); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.Path), "."+filepath.Base(s.Path)+".*")
	if err != nil {
		return fmt.Errorf("create report output: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write report output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close report output: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod report output: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("replace report output: %w", err)
	}
	return nil
}

// LogSink emits one structured log line per violation.
type LogSink struct {
	Log *logger.Entry
}

func (s *LogSink) Publish(_ context.Context, report *model.Report) error {
	log := s.Log
	if log == nil {
		log = logger.NewEntry(logger.StandardLogger())
	}
	log = log.WithField("runID", report.RunID)

	for _, result := range report.Results {
		for _, v := range result.Violations {
			fields := logger.Fields{
				"rule":        v.Rule,
				"ticket_hash": v.TicketHash.String(),
			}
			for _, f := range v.Fields {
				fields[f.Name] = f.Value.String()
			}
			log.WithFields(fields).Warn(result.Description)
		}
	}

	log.WithFields(logger.Fields{
		"trades":     report.Trades,
		"violations": report.Total,
	}).Info("Data quality checks completed")
	return nil
}

// MultiSink publishes to every sink and reports all failures together.
type MultiSink []Sink

func (m MultiSink) Publish(ctx context.Context, report *model.Report) error {
	var errs []error
	for _, s := range m {
		if err := s.Publish(ctx, report); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
